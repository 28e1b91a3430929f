// Package memory provides an in-memory implementation of the store
// interfaces. It backs handler and service tests and is handy for local
// development without a database.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/storage"
)

// Ensure Store satisfies both store interfaces at compile time.
var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.ContactStore = (*Store)(nil)
)

// Store keeps users and contacts in maps guarded by one mutex.
type Store struct {
	mu          sync.Mutex
	nextUser    int64
	nextContact int64
	users       map[int64]models.User
	contacts    map[int64]models.Contact
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:    map[int64]models.User{},
		contacts: map[int64]models.Contact{},
	}
}

// CreateUser inserts a user, enforcing email uniqueness.
func (m *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	m.nextUser++
	user.ID = m.nextUser
	m.users[user.ID] = user
	return user, nil
}

// FindByEmail fetches a user by email.
func (m *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindByID fetches a user by id.
func (m *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

// ExistsByEmail reports whether an email is registered.
func (m *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	return err == nil, nil
}

// ListUsers returns all users ordered by id.
func (m *Store) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for id := int64(1); id <= m.nextUser; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// DeleteUser removes a user and their contacts.
func (m *Store) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.users, id)
	for cid, c := range m.contacts {
		if c.UserID == id {
			delete(m.contacts, cid)
		}
	}
	return nil
}

// UpdateImagePath stores a new image reference.
func (m *Store) UpdateImagePath(_ context.Context, id int64, imagePath string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	u.ImagePath = imagePath
	m.users[id] = u
	return u, nil
}

// CreateContact inserts a contact.
func (m *Store) CreateContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextContact++
	contact.ID = m.nextContact
	m.contacts[contact.ID] = contact
	return contact, nil
}

// UpdateContact rewrites the mutable fields of a contact.
func (m *Store) UpdateContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.contacts[contact.ID]
	if !ok {
		return models.Contact{}, storage.ErrNotFound
	}
	existing.Name = contact.Name
	existing.Email = contact.Email
	existing.Phone = contact.Phone
	existing.Description = contact.Description
	m.contacts[contact.ID] = existing
	return existing, nil
}

// DeleteContact removes a contact.
func (m *Store) DeleteContact(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contacts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.contacts, id)
	return nil
}

// FindContactByID fetches a contact by id.
func (m *Store) FindContactByID(_ context.Context, id int64) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contacts[id]
	if !ok {
		return models.Contact{}, storage.ErrNotFound
	}
	return c, nil
}

// ListContactsByUser returns one user's contacts ordered by id.
func (m *Store) ListContactsByUser(_ context.Context, userID int64) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listLocked(userID), nil
}

// SearchContacts matches keyword case-insensitively against name, email,
// and phone of one user's contacts.
func (m *Store) SearchContacts(_ context.Context, userID int64, keyword string) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kw := strings.ToLower(keyword)
	out := []models.Contact{}
	for _, c := range m.listLocked(userID) {
		if strings.Contains(strings.ToLower(c.Name), kw) ||
			strings.Contains(strings.ToLower(c.Email), kw) ||
			strings.Contains(c.Phone, keyword) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *Store) listLocked(userID int64) []models.Contact {
	out := []models.Contact{}
	for id := int64(1); id <= m.nextContact; id++ {
		if c, ok := m.contacts[id]; ok && c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}
