// Package usecase implements the business logic for the purchase/library feature.
package usecase

import "errors"

var (
	// ErrGameNotFound is returned when the purchased game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameUnavailable is returned when the game exists but is deactivated.
	ErrGameUnavailable = errors.New("game is not available for purchase")

	// ErrAlreadyOwned is returned when the user already owns the game.
	// Ownership is binary; repurchases are rejected.
	ErrAlreadyOwned = errors.New("game already in library")
)
