package models

import "time"

// Ticket statuses (internal representation; the remote system codes these
// as integers, see services/ticketing).
const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

// Ticket priorities
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// Ticket mirrors a support ticket held by the remote ticketing system.
// It is a projection: mutations are forwarded remotely, never stored here.
type Ticket struct {
	ID          int64           `json:"id"`
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	Requester   TicketRequester `json:"requester"`
	Tags        []string        `json:"tags"`
	Group       string          `json:"group"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TicketRequester identifies who raised the ticket.
type TicketRequester struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TicketGroup is a remote agent group (id to name).
type TicketGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TicketAgent is a remote support agent.
type TicketAgent struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
