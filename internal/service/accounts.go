// Package service contains the business logic between HTTP handlers and
// the stores: account registration/login flows and contact ownership rules.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jymtan/contact-manager-be/internal/auth"
	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/storage"
)

// Accounts orchestrates registration and login. Registration implies
// login: both mint a token immediately.
type Accounts struct {
	users  storage.UserStore
	tokens *auth.TokenManager
}

// NewAccounts constructs the account service.
func NewAccounts(users storage.UserStore, tokens *auth.TokenManager) *Accounts {
	return &Accounts{users: users, tokens: tokens}
}

// Register creates a standard user account and returns a fresh token with
// the stored profile. Duplicate emails yield ErrEmailTaken.
func (s *Accounts) Register(ctx context.Context, name, email, password string) (string, models.User, error) {
	return s.register(ctx, name, email, password, auth.RoleUser)
}

// RegisterAdmin creates an administrator account.
func (s *Accounts) RegisterAdmin(ctx context.Context, name, email, password string) (string, models.User, error) {
	return s.register(ctx, name, email, password, auth.RoleAdmin)
}

func (s *Accounts) register(ctx context.Context, name, email, password, role string) (string, models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		// The existence check races with concurrent registrations.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return "", models.User{}, ErrEmailTaken
		}
		return "", models.User{}, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies credentials and mints a token. Unknown email and wrong
// password both return ErrInvalidCredentials.
func (s *Accounts) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.resolve(ctx, email, password)
	if err != nil {
		return "", models.User{}, err
	}
	return s.issue(user)
}

// AdminLogin behaves like Login but additionally requires the resolved
// account to hold the administrator role.
func (s *Accounts) AdminLogin(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.resolve(ctx, email, password)
	if err != nil {
		return "", models.User{}, err
	}
	if !auth.IsAdmin(user.Role) {
		return "", models.User{}, ErrAdminRequired
	}
	return s.issue(user)
}

// Profile returns the account record for an authenticated user.
func (s *Accounts) Profile(ctx context.Context, userID int64) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *Accounts) resolve(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("fetch user: %w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Accounts) issue(user models.User) (string, models.User, error) {
	token, err := s.tokens.Issue(user.Email, user.Role, user.ID)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
