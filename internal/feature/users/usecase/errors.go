// Package usecase implements the business logic for user management.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidEmail is returned when an updated email fails format validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmailInUse is returned when an updated email belongs to another user.
	ErrEmailInUse = errors.New("email already in use")
)
