package dto

import "time"

// CreateTicketRequest payload. Priority is one of LOW, MEDIUM, HIGH (case-insensitive).
type CreateTicketRequest struct {
	Title          string     `json:"title"`
	Priority       string     `json:"priority"`
	AssignedTo     string     `json:"assigned_to"`
	Description    string     `json:"description"`
	CreatedAt      *time.Time `json:"created_at"`
	PayingCustomer bool       `json:"paying_customer"`
}

// CreateTicketResponse returns the store-assigned identifier.
type CreateTicketResponse struct {
	ID int64 `json:"id"`
}

// AssignTicketRequest payload.
type AssignTicketRequest struct {
	Username string `json:"username"`
}
