// Package dto defines data transfer objects for the library feature's HTTP transport layer.
package dto

import (
	"time"

	"gamestore_backend/internal/feature/library/usecase"
)

// PurchaseReq is the request body for POST /library/purchase.
type PurchaseReq struct {
	GameID string `json:"gameId" binding:"required"`
}

// UserGameResponse is one library entry with its purchase snapshot.
type UserGameResponse struct {
	ID            string    `json:"id"`
	GameID        string    `json:"gameId"`
	GameTitle     string    `json:"gameTitle"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	PurchasePrice float64   `json:"purchasePrice"`
}

// NewUserGameResponse maps a library entry to its response shape.
func NewUserGameResponse(e usecase.LibraryEntry) UserGameResponse {
	return UserGameResponse{
		ID:            e.Record.ID,
		GameID:        e.Record.GameID,
		GameTitle:     e.GameTitle,
		PurchaseDate:  e.Record.PurchaseDate,
		PurchasePrice: e.Record.PurchasePrice,
	}
}
