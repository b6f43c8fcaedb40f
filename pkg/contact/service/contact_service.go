package service

import (
	"context"
	"errors"

	"clubchat/entities"
)

var (
	ErrNotFound   = errors.New("contact not found")
	ErrEmailTaken = errors.New("contact with this email already exists")
	ErrNoIdentity = errors.New("email or phone is required")
)

type ContactInput struct {
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	City       string   `json:"city"`
	Tags       []string `json:"tags"`
	OptInEmail bool     `json:"opt_in_email"`
	OptInSMS   bool     `json:"opt_in_sms"`
	OptInPush  bool     `json:"opt_in_push"`
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*entities.Contact, error)
	List(search, tag string) ([]entities.Contact, error)
	ByID(id uint) (*entities.Contact, error)
	// FindOrCreateByEmail backs ticket intake: reuse the contact if known.
	FindOrCreateByEmail(ctx context.Context, email, name, phone string) (*entities.Contact, error)
}
