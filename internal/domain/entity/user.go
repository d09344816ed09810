// Package entity defines the domain entities shared across features.
package entity

import "time"

// Role is the access level assigned to a user account.
type Role string

const (
	// RoleUser is the default role for self-registered accounts.
	RoleUser Role = "User"

	// RoleAdmin grants access to catalog, promotion and user management.
	RoleAdmin Role = "Admin"
)

// User represents a registered account in the store.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user (UUID).
	ID string `gorm:"primaryKey;size:36"`

	// Name is the display name shown in responses.
	Name string `gorm:"size:200;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:200;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// Role controls access to admin-only operations.
	Role Role `gorm:"size:20;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may perform admin-only operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
