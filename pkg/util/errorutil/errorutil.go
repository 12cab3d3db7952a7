package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidTicket    = "INVALID_TICKET"
	CodeUnknownUser      = "UNKNOWN_USER"
	CodeTicketNotFound   = "TICKET_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// Sentinels for errors.Is checks; matching compares codes only.
var (
	ErrInvalidTicket  = &DomainError{Code: CodeInvalidTicket}
	ErrUnknownUser    = &DomainError{Code: CodeUnknownUser}
	ErrTicketNotFound = &DomainError{Code: CodeTicketNotFound}
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code != "" && other.Code == e.Code
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewInvalidTicket reports a ticket rejected before any side effect.
func NewInvalidTicket(message string) error {
	return NewDomainError(CodeInvalidTicket, message, http.StatusBadRequest, nil)
}

// NewUnknownUser echoes the requested username verbatim, including an empty one.
func NewUnknownUser(username string) error {
	return NewDomainError(CodeUnknownUser, fmt.Sprintf("User %s not found", username), http.StatusNotFound,
		map[string]any{"username": username})
}

func NewTicketNotFound(id int64) error {
	return NewDomainError(CodeTicketNotFound, fmt.Sprintf("No ticket found for id %d", id), http.StatusNotFound,
		map[string]any{"ticket_id": id})
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound("resource", nil).(*DomainError)
	}
	return NewInternalError(err).(*DomainError)
}

func MapError(err error) error {
	return ToDomainError(err)
}
