package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/contact/repository"
	"clubchat/pkg/contact/service"
	"clubchat/pkg/crm"
)

type Svc struct {
	r   repository.ContactRepository
	crm crm.Client
}

func New(r repository.ContactRepository, crmClient crm.Client) *Svc {
	if crmClient == nil {
		crmClient = crm.NewNoop()
	}
	return &Svc{r: r, crm: crmClient}
}

func (s *Svc) Create(ctx context.Context, in service.ContactInput) (*entities.Contact, error) {
	if strings.TrimSpace(in.Email) == "" && strings.TrimSpace(in.Phone) == "" {
		return nil, service.ErrNoIdentity
	}
	if in.Email != "" {
		if _, err := s.r.ByEmail(in.Email); err == nil {
			return nil, service.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}
	c := &entities.Contact{
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		City:       in.City,
		Tags:       in.Tags,
		OptInEmail: in.OptInEmail,
		OptInSMS:   in.OptInSMS,
		OptInPush:  in.OptInPush,
	}
	if err := s.r.Create(c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	// Outward sync is best effort; the contact exists either way.
	if err := s.crm.SyncContact(ctx, c); err != nil {
		log.Printf("[contact] crm sync: %v", err)
	}
	return c, nil
}

func (s *Svc) List(search, tag string) ([]entities.Contact, error) {
	return s.r.List(search, tag)
}

func (s *Svc) ByID(id uint) (*entities.Contact, error) {
	c, err := s.r.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	return c, err
}

func (s *Svc) FindOrCreateByEmail(ctx context.Context, email, name, phone string) (*entities.Contact, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, service.ErrNoIdentity
	}
	if c, err := s.r.ByEmail(email); err == nil {
		return c, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	first, last := splitName(name)
	return s.Create(ctx, service.ContactInput{
		Email:      email,
		Phone:      phone,
		FirstName:  first,
		LastName:   last,
		OptInEmail: true,
		OptInSMS:   phone != "",
	})
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
