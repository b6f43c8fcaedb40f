package service

import (
	"context"
	"errors"

	"clubchat/entities"
)

var (
	ErrNotFound = errors.New("ticket not found")
	ErrMissing  = errors.New("subject and description are required")
)

type TicketInput struct {
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	ContactEmail string `json:"contact_email"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// TicketPatch updates only the fields that are set.
type TicketPatch struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssigneeID *string `json:"assignee_id"`
}

type TicketService interface {
	Create(ctx context.Context, in TicketInput) (*entities.Ticket, error)
	List(status, priority, assigneeID string) ([]entities.Ticket, error)
	UpdatePartial(id uint, p TicketPatch) (*entities.Ticket, error)
}
