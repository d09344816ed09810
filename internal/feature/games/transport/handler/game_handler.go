// Package handler provides the HTTP handlers for the game catalog.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/games/transport/http/dto"
	"gamestore_backend/internal/feature/games/usecase"
)

// GameUsecase defines the catalog operations the handler depends on.
type GameUsecase interface {
	ListActive(ctx context.Context) ([]usecase.PricedGame, error)
	GetByID(ctx context.Context, id string) (*usecase.PricedGame, error)
	Create(ctx context.Context, in usecase.CreateGameInput) (*entity.Game, error)
	Update(ctx context.Context, id string, in usecase.UpdateGameInput) error
	Delete(ctx context.Context, id string) error
}

// GameHandler handles catalog reads and admin catalog management.
type GameHandler struct {
	games GameUsecase
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games GameUsecase) *GameHandler {
	return &GameHandler{games: games}
}

// List handles GET /games: every active game with its current best price.
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.games.ListActive(c.Request.Context())
	if err != nil {
		slog.Error("list games failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list games"})
		return
	}
	out := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, dto.NewPricedGameResponse(g))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID handles GET /games/:id. Soft-deleted games are still retrievable
// here with isActive=false.
func (h *GameHandler) GetByID(c *gin.Context) {
	game, err := h.games.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("get game failed", "error", err, "game_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load game"})
		return
	}
	c.JSON(http.StatusOK, dto.NewPricedGameResponse(*game))
}

// Create handles POST /games (admin only).
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	game, err := h.games.Create(c.Request.Context(), usecase.CreateGameInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTitleRequired), errors.Is(err, usecase.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			slog.Error("create game failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create game"})
		}
		return
	}

	slog.Info("game created", "game_id", game.ID, "title", game.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "game created", "data": dto.NewGameResponse(game, nil)})
}

// Update handles PUT /games/:id (admin only). Only provided fields change.
func (h *GameHandler) Update(c *gin.Context) {
	var req dto.UpdateGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	id := c.Param("id")
	err := h.games.Update(c.Request.Context(), id, usecase.UpdateGameInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("update game failed", "error", err, "game_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "game updated"})
}

// Delete handles DELETE /games/:id (admin only): a soft delete that clears
// the active flag.
func (h *GameHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.games.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("delete game failed", "error", err, "game_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete game"})
		return
	}
	slog.Info("game deactivated", "game_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "game deactivated"})
}
