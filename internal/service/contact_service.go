package service

import (
	"context"
	"fmt"

	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
)

// ContactService exposes contact message operations.
type ContactService interface {
	CreateContact(ctx context.Context, name, email, message string) error
	ListContacts(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	contacts repository.ContactRepository
}

// NewContactService builds a ContactService.
func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) CreateContact(ctx context.Context, name, email, message string) error {
	contact := &model.Contact{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  model.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}
