package entity

import "time"

// Game is a catalog item available for purchase.
// Games are never hard-deleted: deactivating a game keeps the row so
// historical purchases and promotions stay referenceable.
type Game struct {
	// ID is the unique identifier for the game (UUID).
	ID string `gorm:"primaryKey;size:36"`

	// Title is the display title. Required, non-blank.
	Title string `gorm:"size:200;not null"`

	Description string `gorm:"size:2000"`

	// Price is the base price before any promotion is applied.
	Price float64 `gorm:"not null"`

	Genre       string `gorm:"size:100"`
	ReleaseDate time.Time
	Developer   string `gorm:"size:200"`
	Publisher   string `gorm:"size:200"`

	// IsActive is cleared instead of deleting the row (soft delete).
	// Inactive games are hidden from the catalog listing and cannot be purchased.
	IsActive bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
