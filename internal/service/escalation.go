package service

import (
	"strings"
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// DefaultEscalationAge is how far before the evaluation instant a ticket must
// have been created for its priority to be raised.
const DefaultEscalationAge = time.Hour

// titleFlags raise priority when found in a ticket title. Matching is case sensitive.
var titleFlags = []string{"Crash", "Important", "Failure"}

// ShouldEscalate reports whether a ticket created at createdAt with the given
// title escalates when evaluated at now.
func ShouldEscalate(title string, createdAt, now time.Time) bool {
	return shouldEscalate(title, createdAt, now, DefaultEscalationAge)
}

// EscalatePriority applies the escalation check to p, raising it at most one level.
func EscalatePriority(p domain.TicketPriority, title string, createdAt, now time.Time) domain.TicketPriority {
	return escalate(p, title, createdAt, now, DefaultEscalationAge)
}

func escalate(p domain.TicketPriority, title string, createdAt, now time.Time, maxAge time.Duration) domain.TicketPriority {
	return p.Raise(shouldEscalate(title, createdAt, now, maxAge))
}

func shouldEscalate(title string, createdAt, now time.Time, maxAge time.Duration) bool {
	if createdAt.Before(now.Add(-maxAge)) {
		return true
	}
	for _, flag := range titleFlags {
		if strings.Contains(title, flag) {
			return true
		}
	}
	return false
}
