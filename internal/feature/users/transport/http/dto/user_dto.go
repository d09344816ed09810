// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"time"

	"gamestore_backend/internal/domain/entity"
)

// UpdateUserReq is the partial profile update body. Absent fields are
// preserved, which is why both are pointers rather than plain strings.
type UpdateUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity to its response shape.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
