// Package adapters provides the repository implementations for the library feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/library/usecase"
)

// userGameGorm is the GORM implementation of the UserGameRepository.
type userGameGorm struct {
	db *gorm.DB
}

var _ usecase.UserGameRepository = (*userGameGorm)(nil)

// NewUserGameRepository creates a userGameGorm bound to the given connection.
func NewUserGameRepository(db *gorm.DB) *userGameGorm {
	return &userGameGorm{db: db}
}

// Create inserts the purchase record. A violation of the (user_id, game_id)
// unique index is translated to usecase.ErrAlreadyOwned, so a purchase that
// races past the ownership check still fails with the same rejection.
func (r *userGameGorm) Create(ctx context.Context, record *entity.UserGame) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadyOwned
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyOwned
		}
		return err
	}
	return nil
}

// ListByUser retrieves the user's purchase records, newest first.
func (r *userGameGorm) ListByUser(ctx context.Context, userID string) ([]entity.UserGame, error) {
	var records []entity.UserGame
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Exists reports whether a purchase record exists for the (user, game) pair.
func (r *userGameGorm) Exists(ctx context.Context, userID, gameID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.UserGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
