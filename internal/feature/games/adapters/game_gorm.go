// Package adapters provides the repository implementations for the game catalog.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/games/usecase"
)

// gameGorm is the GORM implementation of the games GameRepository.
type gameGorm struct {
	db *gorm.DB
}

var _ usecase.GameRepository = (*gameGorm)(nil)

// NewGameRepository creates a gameGorm bound to the given connection.
func NewGameRepository(db *gorm.DB) *gameGorm {
	return &gameGorm{db: db}
}

// ListActive retrieves every active game.
func (r *gameGorm) ListActive(ctx context.Context) ([]entity.Game, error) {
	var games []entity.Game
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("title").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FindByID retrieves a game by ID regardless of its active flag.
// Returns usecase.ErrGameNotFound when absent.
func (r *gameGorm) FindByID(ctx context.Context, id string) (*entity.Game, error) {
	var g entity.Game
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Create inserts a new game row.
func (r *gameGorm) Create(ctx context.Context, g *entity.Game) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// Update persists changes to an existing game row.
func (r *gameGorm) Update(ctx context.Context, g *entity.Game) error {
	return r.db.WithContext(ctx).Save(g).Error
}
