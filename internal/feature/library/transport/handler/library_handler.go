// Package handler provides the HTTP handlers for the library feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/library/transport/http/dto"
	"gamestore_backend/internal/feature/library/usecase"
	jwtmw "gamestore_backend/internal/platform/jwt"
)

// LibraryUsecase defines the library operations the handler depends on.
type LibraryUsecase interface {
	Purchase(ctx context.Context, userID, gameID string) (*entity.UserGame, error)
	List(ctx context.Context, userID string) ([]usecase.LibraryEntry, error)
	Owns(ctx context.Context, userID, gameID string) (bool, error)
}

// LibraryHandler handles the caller-scoped library endpoints.
// All routes require authentication; the user ID always comes from the
// token, never from the request.
type LibraryHandler struct {
	library LibraryUsecase
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(library LibraryUsecase) *LibraryHandler {
	return &LibraryHandler{library: library}
}

// List handles GET /library: the caller's purchases with game titles.
func (h *LibraryHandler) List(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	entries, err := h.library.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list library failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load library"})
		return
	}
	out := make([]dto.UserGameResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.NewUserGameResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

// Purchase handles POST /library/purchase.
func (h *LibraryHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	userID := c.GetString(jwtmw.ContextUserID)
	record, err := h.library.Purchase(c.Request.Context(), userID, req.GameID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, usecase.ErrGameUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, usecase.ErrAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			slog.Error("purchase failed", "error", err, "user_id", userID, "game_id", req.GameID)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "purchase failed"})
		}
		return
	}

	slog.Info("game purchased", "user_id", userID, "game_id", req.GameID, "price", record.PurchasePrice)
	c.JSON(http.StatusOK, gin.H{"message": "game added to library"})
}

// Owns handles GET /library/:gameId: a pure ownership check.
func (h *LibraryHandler) Owns(c *gin.Context) {
	userID := c.GetString(jwtmw.ContextUserID)
	owns, err := h.library.Owns(c.Request.Context(), userID, c.Param("gameId"))
	if err != nil {
		slog.Error("ownership check failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "ownership check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"owns": owns})
}
