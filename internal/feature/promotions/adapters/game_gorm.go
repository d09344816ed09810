package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/promotions/usecase"
)

// gameGorm is the promotions feature's read-only view of games, used for
// target validation and title resolution.
type gameGorm struct {
	db *gorm.DB
}

var _ usecase.GameFinder = (*gameGorm)(nil)

// NewGameFinder creates a gameGorm bound to the given connection.
func NewGameFinder(db *gorm.DB) *gameGorm {
	return &gameGorm{db: db}
}

// FindByID retrieves a game by ID, returning usecase.ErrGameNotFound when absent.
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

// FindByIDs retrieves the games with the given IDs; missing IDs are skipped.
func (r *gameGorm) FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var games []entity.Game
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
