// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidEmail is returned when the registration email fails format validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmailAlreadyExists is returned when registering with an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on login for both an unknown email and a
	// wrong password, so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
