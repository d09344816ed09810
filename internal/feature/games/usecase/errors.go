// Package usecase implements the business logic for the game catalog.
package usecase

import "errors"

var (
	// ErrGameNotFound is returned when no game exists with the given ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrTitleRequired is returned when creating a game with a blank title.
	ErrTitleRequired = errors.New("title is required")

	// ErrInvalidPrice is returned when the price is not strictly positive.
	ErrInvalidPrice = errors.New("price must be greater than zero")
)
