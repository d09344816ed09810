package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/library/usecase"
)

// catalogGorm serves the library feature's read-only view of games and
// promotions: game lookups for the purchase flow and title resolution,
// promotion candidates for purchase pricing.
type catalogGorm struct {
	db *gorm.DB
}

var (
	_ usecase.GameFinder      = (*catalogGorm)(nil)
	_ usecase.PromotionFinder = (*catalogGorm)(nil)
)

// NewCatalogFinder creates a catalogGorm bound to the given connection.
func NewCatalogFinder(db *gorm.DB) *catalogGorm {
	return &catalogGorm{db: db}
}

// FindByID retrieves a game by ID, returning usecase.ErrGameNotFound when absent.
func (r *catalogGorm) FindByID(ctx context.Context, id string) (*entity.Game, error) {
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
func (r *catalogGorm) FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var games []entity.Game
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// ListByGame retrieves all promotions attached to one game.
func (r *catalogGorm) ListByGame(ctx context.Context, gameID string) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}
