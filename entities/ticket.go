package entities

import "time"

const (
	TicketOpen    = "open"
	TicketPending = "pending"
	TicketClosed  = "closed"
)

type Ticket struct {
	TicketID       uint   `gorm:"primaryKey" json:"ticket_id"`
	Subject        string `json:"subject"`
	Description    string `json:"description"`
	Status         string `gorm:"index" json:"status"`   // open|pending|closed
	Priority       string `gorm:"index" json:"priority"` // low|normal|high
	AssigneeID     string `json:"assignee_id,omitempty"`
	ContactID      *uint  `gorm:"index" json:"contact_id,omitempty"`
	ConversationID *uint  `json:"conversation_id,omitempty"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
