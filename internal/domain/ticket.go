package domain

import "time"

// TicketPriority enumerates SLA urgency, ordered LOW < MEDIUM < HIGH.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID             int64
	Title          string
	Description    string
	Priority       TicketPriority
	AssignedUser   User
	CreatedAt      time.Time
	PriceDollars   float64
	AccountManager *User
}

// WithAssignee returns a copy of the ticket assigned to user; the receiver is left untouched.
func (t Ticket) WithAssignee(user User) Ticket {
	out := t
	out.AssignedUser = user
	if t.AccountManager != nil {
		manager := *t.AccountManager
		out.AccountManager = &manager
	}
	return out
}
