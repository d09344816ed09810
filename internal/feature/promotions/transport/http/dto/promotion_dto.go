// Package dto defines data transfer objects for the promotions feature's HTTP transport layer.
package dto

import (
	"time"

	"gamestore_backend/internal/feature/promotions/usecase"
)

// CreatePromotionReq is the request body for POST /promotions.
type CreatePromotionReq struct {
	GameID             string    `json:"gameId" binding:"required"`
	DiscountPercentage float64   `json:"discountPercentage" binding:"required"`
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
}

// UpdatePromotionReq is the partial patch body for PUT /promotions/:id.
// Absent fields are preserved, hence every field is a pointer.
type UpdatePromotionReq struct {
	DiscountPercentage *float64   `json:"discountPercentage"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	IsActive           *bool      `json:"isActive"`
}

// PromotionResponse is the public shape of a promotion.
type PromotionResponse struct {
	ID                 string    `json:"id"`
	GameID             string    `json:"gameId"`
	GameTitle          string    `json:"gameTitle"`
	DiscountPercentage float64   `json:"discountPercentage"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	IsActive           bool      `json:"isActive"`
}

// NewPromotionResponse maps a promotion detail to its response shape.
func NewPromotionResponse(d usecase.PromotionDetail) PromotionResponse {
	return PromotionResponse{
		ID:                 d.Promotion.ID,
		GameID:             d.Promotion.GameID,
		GameTitle:          d.GameTitle,
		DiscountPercentage: d.Promotion.DiscountPercentage,
		StartDate:          d.Promotion.StartDate,
		EndDate:            d.Promotion.EndDate,
		IsActive:           d.Promotion.IsActive,
	}
}
