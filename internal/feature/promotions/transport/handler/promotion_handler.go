// Package handler provides the HTTP handlers for promotion management.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/feature/promotions/transport/http/dto"
	"gamestore_backend/internal/feature/promotions/usecase"
)

// PromotionUsecase defines the promotion operations the handler depends on.
type PromotionUsecase interface {
	ListValidNow(ctx context.Context) ([]usecase.PromotionDetail, error)
	GetByID(ctx context.Context, id string) (*usecase.PromotionDetail, error)
	Create(ctx context.Context, in usecase.CreatePromotionInput) (*usecase.PromotionDetail, error)
	Update(ctx context.Context, id string, in usecase.UpdatePromotionInput) error
	Delete(ctx context.Context, id string) error
}

// PromotionHandler handles public promotion reads and admin management.
type PromotionHandler struct {
	promotions PromotionUsecase
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(promotions PromotionUsecase) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

// List handles GET /promotions: promotions valid at this instant.
func (h *PromotionHandler) List(c *gin.Context) {
	promos, err := h.promotions.ListValidNow(c.Request.Context())
	if err != nil {
		slog.Error("list promotions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list promotions"})
		return
	}
	out := make([]dto.PromotionResponse, 0, len(promos))
	for _, p := range promos {
		out = append(out, dto.NewPromotionResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID handles GET /promotions/:id.
func (h *PromotionHandler) GetByID(c *gin.Context) {
	promo, err := h.promotions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPromotionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("get promotion failed", "error", err, "promotion_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load promotion"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPromotionResponse(*promo))
}

// Create handles POST /promotions (admin only).
func (h *PromotionHandler) Create(c *gin.Context) {
	var req dto.CreatePromotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	promo, err := h.promotions.Create(c.Request.Context(), usecase.CreatePromotionInput{
		GameID:             req.GameID,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, usecase.ErrInvalidDiscount), errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			slog.Error("create promotion failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create promotion"})
		}
		return
	}

	slog.Info("promotion created", "promotion_id", promo.Promotion.ID, "game_id", promo.Promotion.GameID)
	c.JSON(http.StatusCreated, gin.H{"message": "promotion created", "data": dto.NewPromotionResponse(*promo)})
}

// Update handles PUT /promotions/:id (admin only).
func (h *PromotionHandler) Update(c *gin.Context) {
	var req dto.UpdatePromotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	id := c.Param("id")
	err := h.promotions.Update(c.Request.Context(), id, usecase.UpdatePromotionInput{
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsActive:           req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPromotionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, usecase.ErrInvalidDiscount), errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			slog.Error("update promotion failed", "error", err, "promotion_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update promotion"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "promotion updated"})
}

// Delete handles DELETE /promotions/:id (admin only): a hard delete.
func (h *PromotionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.promotions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPromotionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("delete promotion failed", "error", err, "promotion_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete promotion"})
		return
	}
	slog.Info("promotion deleted", "promotion_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "promotion deleted"})
}
