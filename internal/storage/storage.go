package storage

import (
	"context"
	"errors"

	"github.com/jymtan/contact-manager-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures account persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UpdateImagePath(ctx context.Context, id int64, imagePath string) (models.User, error)
}

// ContactStore captures contact persistence operations. All reads and the
// keyword search are scoped to an owning user id by the caller.
type ContactStore interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
	FindContactByID(ctx context.Context, id int64) (models.Contact, error)
	ListContactsByUser(ctx context.Context, userID int64) ([]models.Contact, error)
	SearchContacts(ctx context.Context, userID int64, keyword string) ([]models.Contact, error)
}
