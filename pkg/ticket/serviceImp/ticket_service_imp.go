package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"clubchat/entities"
	contactsvc "clubchat/pkg/contact/service"
	"clubchat/pkg/ticket/repository"
	"clubchat/pkg/ticket/service"
)

type Svc struct {
	r        repository.TicketRepository
	contacts contactsvc.ContactService
}

func New(r repository.TicketRepository, contacts contactsvc.ContactService) *Svc {
	return &Svc{r: r, contacts: contacts}
}

func (s *Svc) Create(ctx context.Context, in service.TicketInput) (*entities.Ticket, error) {
	if strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, service.ErrMissing
	}
	if in.Status == "" {
		in.Status = entities.TicketOpen
	}
	if in.Priority == "" {
		in.Priority = "normal"
	}

	var contactID *uint
	if in.ContactEmail != "" {
		c, err := s.contacts.FindOrCreateByEmail(ctx, in.ContactEmail, in.ContactName, in.ContactPhone)
		if err != nil {
			// a ticket without a linked contact is still a valid ticket
			log.Printf("[ticket] contact link: %v", err)
		} else {
			contactID = &c.ContactID
		}
	}

	t := &entities.Ticket{
		Subject:     strings.TrimSpace(in.Subject),
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		ContactID:   contactID,
	}
	if err := s.r.Create(t); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return t, nil
}

func (s *Svc) List(status, priority, assigneeID string) ([]entities.Ticket, error) {
	return s.r.List(status, priority, assigneeID)
}

func (s *Svc) UpdatePartial(id uint, p service.TicketPatch) (*entities.Ticket, error) {
	cur, err := s.r.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if p.Priority != nil {
		cur.Priority = *p.Priority
	}
	if p.AssigneeID != nil {
		cur.AssigneeID = *p.AssigneeID
	}
	return cur, s.r.Update(cur)
}
