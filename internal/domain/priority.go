package domain

import "strings"

const (
	payingHighPrice    = 100
	payingDefaultPrice = 50
)

// Valid reports whether p is one of the known priorities.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Raise moves p up one level when shouldRaise is set. HIGH stays HIGH.
func (p TicketPriority) Raise(shouldRaise bool) TicketPriority {
	if !shouldRaise {
		return p
	}
	switch p {
	case TicketPriorityLow:
		return TicketPriorityMedium
	case TicketPriorityMedium:
		return TicketPriorityHigh
	default:
		return p
	}
}

// Price is what a paying customer is charged for a ticket at this priority.
func (p TicketPriority) Price() float64 {
	if p == TicketPriorityHigh {
		return payingHighPrice
	}
	return payingDefaultPrice
}

// ParsePriority accepts priorities case-insensitively.
func ParsePriority(raw string) (TicketPriority, bool) {
	p := TicketPriority(strings.ToUpper(strings.TrimSpace(raw)))
	return p, p.Valid()
}
