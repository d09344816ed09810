// Package usecase implements the business logic for promotion management.
package usecase

import "errors"

var (
	// ErrPromotionNotFound is returned when no promotion exists with the given ID.
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrGameNotFound is returned when the target game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidDiscount is returned when the percentage is outside (0, 100].
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

	// ErrInvalidDateRange is returned when the start date is not strictly
	// before the end date.
	ErrInvalidDateRange = errors.New("start date must be before end date")
)
