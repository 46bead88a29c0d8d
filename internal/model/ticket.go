package model

import (
	"time"

	"github.com/google/uuid"
)

// Ticket statuses.
const (
	TicketOpen       = "open"
	TicketInProgress = "in-progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// IsValidTicketStatus reports whether s is a recognised ticket status.
func IsValidTicketStatus(s string) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// Ticket represents a support request submitted through the contact form.
type Ticket struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	UserID         *uuid.UUID `json:"user,omitempty" db:"user_id"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	Subject        string     `json:"subject" db:"subject"`
	Message        string     `json:"message" db:"message"`
	Status         string     `json:"status" db:"status"`
	Priority       string     `json:"priority" db:"priority"`
	AdminReply     string     `json:"adminReply,omitempty" db:"admin_reply"`
	AdminRepliedAt *time.Time `json:"adminRepliedAt,omitempty" db:"admin_replied_at"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// TicketInput is the contact form payload.
type TicketInput struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Subject string     `json:"subject"`
	Message string     `json:"message"`
	UserID  *uuid.UUID `json:"userId,omitempty"`
}

// TicketReply carries an admin reply. The reply text is accepted under
// either the "message" or the "reply" key.
type TicketReply struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
	Status  string `json:"status"`
}

// Text returns the reply body regardless of which field carried it.
func (r TicketReply) Text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Reply
}
