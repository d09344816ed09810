package adapters

import (
	"context"

	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/games/usecase"
)

// promotionGorm fetches promotion candidates for catalog pricing.
// It deliberately applies no time filtering: validity is evaluated in the
// entity layer against the caller's clock.
type promotionGorm struct {
	db *gorm.DB
}

var _ usecase.PromotionFinder = (*promotionGorm)(nil)

// NewPromotionFinder creates a promotionGorm bound to the given connection.
func NewPromotionFinder(db *gorm.DB) *promotionGorm {
	return &promotionGorm{db: db}
}

// ListByGame retrieves all promotions attached to one game.
func (r *promotionGorm) ListByGame(ctx context.Context, gameID string) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// ListByGames retrieves all promotions attached to any of the given games.
func (r *promotionGorm) ListByGames(ctx context.Context, gameIDs []string) ([]entity.Promotion, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	var promos []entity.Promotion
	if err := r.db.WithContext(ctx).Where("game_id IN ?", gameIDs).Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}
