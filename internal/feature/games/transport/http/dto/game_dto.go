// Package dto defines data transfer objects for the games feature's HTTP transport layer.
package dto

import (
	"time"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/games/usecase"
)

// CreateGameReq is the request body for POST /games.
type CreateGameReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" binding:"required"`
	Genre       string    `json:"genre"`
	ReleaseDate time.Time `json:"releaseDate"`
	Developer   string    `json:"developer"`
	Publisher   string    `json:"publisher"`
}

// UpdateGameReq is the partial patch body for PUT /games/:id.
// Absent fields are preserved, hence every field is a pointer.
type UpdateGameReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	Genre       *string    `json:"genre"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Developer   *string    `json:"developer"`
	Publisher   *string    `json:"publisher"`
	IsActive    *bool      `json:"isActive"`
}

// GameResponse is the public shape of a catalog item.
// DiscountedPrice is present only when a promotion is valid right now.
type GameResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DiscountedPrice *float64  `json:"discountedPrice,omitempty"`
	Genre           string    `json:"genre"`
	ReleaseDate     time.Time `json:"releaseDate"`
	Developer       string    `json:"developer"`
	Publisher       string    `json:"publisher"`
	IsActive        bool      `json:"isActive"`
}

// NewGameResponse maps a game entity to its response shape.
func NewGameResponse(g *entity.Game, discounted *float64) GameResponse {
	return GameResponse{
		ID:              g.ID,
		Title:           g.Title,
		Description:     g.Description,
		Price:           g.Price,
		DiscountedPrice: discounted,
		Genre:           g.Genre,
		ReleaseDate:     g.ReleaseDate,
		Developer:       g.Developer,
		Publisher:       g.Publisher,
		IsActive:        g.IsActive,
	}
}

// NewPricedGameResponse maps a priced catalog entry to its response shape.
func NewPricedGameResponse(p usecase.PricedGame) GameResponse {
	return NewGameResponse(&p.Game, p.DiscountedPrice)
}
