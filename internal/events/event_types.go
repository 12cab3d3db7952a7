package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAdministratorAlert EventType = "admin_alert"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AdministratorAlertPayload names the ticket that needs an administrator's attention.
type AdministratorAlertPayload struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
}
