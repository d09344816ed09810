// Package handler provides the HTTP handlers for user management.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/users/transport/http/dto"
	"gamestore_backend/internal/feature/users/usecase"
	jwtmw "gamestore_backend/internal/platform/jwt"
)

// UserUsecase defines the user operations the handler depends on.
type UserUsecase interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id string, in usecase.UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// UserHandler handles profile and admin user-management requests.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe handles GET /users/me for the authenticated caller.
func (h *UserHandler) GetMe(c *gin.Context) {
	h.getByID(c, c.GetString(jwtmw.ContextUserID))
}

// GetByID handles GET /users/:id (admin only).
func (h *UserHandler) GetByID(c *gin.Context) {
	h.getByID(c, c.Param("id"))
}

func (h *UserHandler) getByID(c *gin.Context, id string) {
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("get user failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// List handles GET /users (admin only).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list users"})
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateMe handles PUT /users/me for the authenticated caller.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	id := c.GetString(jwtmw.ContextUserID)
	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, usecase.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, usecase.ErrEmailInUse):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			slog.Error("update user failed", "error", err, "user_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user updated", "data": dto.NewUserResponse(user)})
}

// Delete handles DELETE /users/:id (admin only). The user and their library
// entries are removed.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		slog.Error("delete user failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete user"})
		return
	}
	slog.Info("user deleted", "user_id", id, "deleted_by", c.GetString(jwtmw.ContextUserID))
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
