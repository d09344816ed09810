package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gamestore_backend/internal/domain/entity"
)

// PromotionRepository abstracts the persistence layer for promotions.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PromotionRepository interface {
	// Create persists a new promotion.
	Create(ctx context.Context, promo *entity.Promotion) error

	// FindByID retrieves a promotion, returning ErrPromotionNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Promotion, error)

	// FindAll retrieves every promotion.
	FindAll(ctx context.Context) ([]entity.Promotion, error)

	// Update persists changes to an existing promotion.
	Update(ctx context.Context, promo *entity.Promotion) error

	// Delete hard-deletes the promotion. Purchase prices are snapshots, so
	// removing a promotion has no downstream effect.
	Delete(ctx context.Context, id string) error
}

// GameFinder looks up games for validation and title resolution.
type GameFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Game, error)
	FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error)
}

// UnknownGameTitle is the fallback when a promotion's game cannot be resolved.
const UnknownGameTitle = "Unknown"

// PromotionDetail is a promotion with its game title resolved.
type PromotionDetail struct {
	Promotion entity.Promotion
	GameTitle string
}

// CreatePromotionInput carries the fields for a new promotion.
type CreatePromotionInput struct {
	GameID             string
	DiscountPercentage float64
	StartDate          time.Time
	EndDate            time.Time
}

// UpdatePromotionInput is the partial patch for a promotion: nil means unchanged.
type UpdatePromotionInput struct {
	DiscountPercentage *float64
	StartDate          *time.Time
	EndDate            *time.Time
	IsActive           *bool
}

// PromotionUsecase implements public promotion reads and admin management.
type PromotionUsecase struct {
	promotions PromotionRepository
	games      GameFinder
	now        func() time.Time
}

// NewPromotionUsecase creates a new PromotionUsecase.
func NewPromotionUsecase(promotions PromotionRepository, games GameFinder) *PromotionUsecase {
	return &PromotionUsecase{promotions: promotions, games: games, now: time.Now}
}

// ListValidNow returns the promotions valid at the moment of the call,
// each with its game title resolved best-effort.
func (u *PromotionUsecase) ListValidNow(ctx context.Context) ([]PromotionDetail, error) {
	promos, err := u.promotions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	valid := promos[:0:0]
	for _, p := range promos {
		if p.IsValidAt(now) {
			valid = append(valid, p)
		}
	}

	ids := make([]string, 0, len(valid))
	for _, p := range valid {
		ids = append(ids, p.GameID)
	}
	titles, err := u.gameTitles(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]PromotionDetail, 0, len(valid))
	for _, p := range valid {
		out = append(out, PromotionDetail{Promotion: p, GameTitle: titles[p.GameID]})
	}
	return out, nil
}

// GetByID returns one promotion with its game title, valid or not.
func (u *PromotionUsecase) GetByID(ctx context.Context, id string) (*PromotionDetail, error) {
	promo, err := u.promotions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	titles, err := u.gameTitles(ctx, []string{promo.GameID})
	if err != nil {
		return nil, err
	}
	return &PromotionDetail{Promotion: *promo, GameTitle: titles[promo.GameID]}, nil
}

func (u *PromotionUsecase) gameTitles(ctx context.Context, ids []string) (map[string]string, error) {
	games, err := u.games.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(ids))
	for _, id := range ids {
		titles[id] = UnknownGameTitle
	}
	for _, g := range games {
		titles[g.ID] = g.Title
	}
	return titles, nil
}

// Create validates and stores a new promotion: the target game must exist,
// the percentage must be in (0, 100] and the window must be ordered.
func (u *PromotionUsecase) Create(ctx context.Context, in CreatePromotionInput) (*PromotionDetail, error) {
	game, err := u.games.FindByID(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if in.DiscountPercentage <= 0 || in.DiscountPercentage > 100 {
		return nil, ErrInvalidDiscount
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, ErrInvalidDateRange
	}

	promo := &entity.Promotion{
		ID:                 uuid.NewString(),
		GameID:             in.GameID,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		IsActive:           true,
	}
	if err := u.promotions.Create(ctx, promo); err != nil {
		return nil, err
	}
	return &PromotionDetail{Promotion: *promo, GameTitle: game.Title}, nil
}

// Update applies a partial patch. The percentage bound is re-checked when
// provided, and start < end is re-checked against the post-update effective
// dates: changing only one bound still validates against the other's prior value.
func (u *PromotionUsecase) Update(ctx context.Context, id string, in UpdatePromotionInput) error {
	promo, err := u.promotions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if in.DiscountPercentage != nil {
		if *in.DiscountPercentage <= 0 || *in.DiscountPercentage > 100 {
			return ErrInvalidDiscount
		}
		promo.DiscountPercentage = *in.DiscountPercentage
	}
	if in.StartDate != nil {
		promo.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		promo.EndDate = *in.EndDate
	}
	if in.IsActive != nil {
		promo.IsActive = *in.IsActive
	}

	if !promo.StartDate.Before(promo.EndDate) {
		return ErrInvalidDateRange
	}

	return u.promotions.Update(ctx, promo)
}

// Delete hard-deletes a promotion.
func (u *PromotionUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.promotions.FindByID(ctx, id); err != nil {
		return err
	}
	return u.promotions.Delete(ctx, id)
}
