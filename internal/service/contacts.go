package service

import (
	"context"
	"fmt"

	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
	"github.com/jymtan/contact-manager-be/internal/storage"
)

// Contacts applies ownership rules on top of the contact store. Every
// mutating operation verifies the contact belongs to the acting user.
type Contacts struct {
	contacts storage.ContactStore
	users    storage.UserStore
}

// NewContacts constructs the contact service.
func NewContacts(contacts storage.ContactStore, users storage.UserStore) *Contacts {
	return &Contacts{contacts: contacts, users: users}
}

// Create stores a new contact for userID.
func (s *Contacts) Create(ctx context.Context, userID int64, in dto.ContactRequest) (models.Contact, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return models.Contact{}, fmt.Errorf("resolve owner: %w", err)
	}
	return s.contacts.CreateContact(ctx, models.Contact{
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Description: in.Description,
	})
}

// Update rewrites an existing contact after checking ownership.
func (s *Contacts) Update(ctx context.Context, contactID, userID int64, in dto.ContactRequest) (models.Contact, error) {
	contact, err := s.owned(ctx, contactID, userID)
	if err != nil {
		return models.Contact{}, err
	}
	contact.Name = in.Name
	contact.Email = in.Email
	contact.Phone = in.Phone
	contact.Description = in.Description
	return s.contacts.UpdateContact(ctx, contact)
}

// Delete removes a contact after checking ownership.
func (s *Contacts) Delete(ctx context.Context, contactID, userID int64) error {
	if _, err := s.owned(ctx, contactID, userID); err != nil {
		return err
	}
	return s.contacts.DeleteContact(ctx, contactID)
}

// List returns every contact owned by userID.
func (s *Contacts) List(ctx context.Context, userID int64) ([]models.Contact, error) {
	return s.contacts.ListContactsByUser(ctx, userID)
}

// Search matches the keyword against name, email, and phone of userID's contacts.
func (s *Contacts) Search(ctx context.Context, userID int64, keyword string) ([]models.Contact, error) {
	return s.contacts.SearchContacts(ctx, userID, keyword)
}

func (s *Contacts) owned(ctx context.Context, contactID, userID int64) (models.Contact, error) {
	contact, err := s.contacts.FindContactByID(ctx, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	if contact.UserID != userID {
		return models.Contact{}, ErrNotOwner
	}
	return contact, nil
}
