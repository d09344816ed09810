package entity

import "time"

// UserGame is a library entry: the record of one user purchasing one game.
// Rows are immutable once written; PurchasePrice is the price actually paid
// at purchase time and is never recomputed when promotions change later.
type UserGame struct {
	// ID is the unique identifier for the purchase record (UUID).
	ID string `gorm:"primaryKey;size:36"`

	// UserID and GameID form a unique pair: ownership is binary and a
	// repurchase is rejected. The composite unique index also backstops
	// concurrent purchases that race past the application-level check.
	UserID string `gorm:"size:36;not null;uniqueIndex:idx_user_game"`
	GameID string `gorm:"size:36;not null;uniqueIndex:idx_user_game"`

	// PurchaseDate is when the purchase was made.
	PurchaseDate time.Time `gorm:"not null"`

	// PurchasePrice is the discounted price snapshotted at purchase time.
	PurchasePrice float64 `gorm:"not null"`
}
