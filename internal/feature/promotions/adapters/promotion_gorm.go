// Package adapters provides the repository implementations for promotion management.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/promotions/usecase"
)

// promotionGorm is the GORM implementation of the PromotionRepository.
type promotionGorm struct {
	db *gorm.DB
}

var _ usecase.PromotionRepository = (*promotionGorm)(nil)

// NewPromotionRepository creates a promotionGorm bound to the given connection.
func NewPromotionRepository(db *gorm.DB) *promotionGorm {
	return &promotionGorm{db: db}
}

// Create inserts a new promotion row.
func (r *promotionGorm) Create(ctx context.Context, p *entity.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID retrieves a promotion by ID, returning usecase.ErrPromotionNotFound when absent.
func (r *promotionGorm) FindByID(ctx context.Context, id string) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPromotionNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll retrieves every promotion.
func (r *promotionGorm) FindAll(ctx context.Context) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	if err := r.db.WithContext(ctx).Order("start_date").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// Update persists changes to an existing promotion row.
func (r *promotionGorm) Update(ctx context.Context, p *entity.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete hard-deletes the promotion row.
func (r *promotionGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Promotion{}).Error
}
