package service

import "errors"

var (
	// ErrEmailTaken indicates a registration attempt with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; the two are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAdminRequired indicates a successful credential check for an
	// account that does not hold the administrator role.
	ErrAdminRequired = errors.New("admin role required")

	// ErrNotOwner indicates a contact operation by someone other than the
	// contact's owner.
	ErrNotOwner = errors.New("contact does not belong to user")
)
