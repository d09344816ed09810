package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamestore_backend/internal/domain/entity"
)

// GameRepository abstracts the persistence layer for catalog items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type GameRepository interface {
	// ListActive retrieves every game whose active flag is set.
	ListActive(ctx context.Context) ([]entity.Game, error)

	// FindByID retrieves a game regardless of its active flag, returning
	// ErrGameNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Game, error)

	// Create persists a new game.
	Create(ctx context.Context, game *entity.Game) error

	// Update persists changes to an existing game.
	Update(ctx context.Context, game *entity.Game) error
}

// PromotionFinder fetches the promotion candidates for pricing. Validity and
// best-discount selection happen in the entity layer, against the evaluation
// clock, so every caller prices identically.
type PromotionFinder interface {
	ListByGame(ctx context.Context, gameID string) ([]entity.Promotion, error)
	ListByGames(ctx context.Context, gameIDs []string) ([]entity.Promotion, error)
}

// PricedGame is a catalog item together with its best currently-valid
// discounted price. DiscountedPrice is nil when no promotion applies.
type PricedGame struct {
	Game            entity.Game
	DiscountedPrice *float64
}

// CreateGameInput carries the fields for a new catalog item.
type CreateGameInput struct {
	Title       string
	Description string
	Price       float64
	Genre       string
	ReleaseDate time.Time
	Developer   string
	Publisher   string
}

// UpdateGameInput is the partial patch for a game: nil means unchanged.
type UpdateGameInput struct {
	Title       *string
	Description *string
	Price       *float64
	Genre       *string
	ReleaseDate *time.Time
	Developer   *string
	Publisher   *string
	IsActive    *bool
}

// GameUsecase implements catalog reads (with promotion pricing) and the
// admin-only create, update and soft delete.
type GameUsecase struct {
	games      GameRepository
	promotions PromotionFinder
	now        func() time.Time
}

// NewGameUsecase creates a new GameUsecase.
func NewGameUsecase(games GameRepository, promotions PromotionFinder) *GameUsecase {
	return &GameUsecase{games: games, promotions: promotions, now: time.Now}
}

// ListActive returns all active games, each priced with the best promotion
// valid at the moment of the call.
func (u *GameUsecase) ListActive(ctx context.Context) ([]PricedGame, error) {
	games, err := u.games.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(games))
	for i := range games {
		ids = append(ids, games[i].ID)
	}
	promos, err := u.promotions.ListByGames(ctx, ids)
	if err != nil {
		return nil, err
	}
	byGame := make(map[string][]entity.Promotion)
	for _, p := range promos {
		byGame[p.GameID] = append(byGame[p.GameID], p)
	}

	now := u.now()
	out := make([]PricedGame, 0, len(games))
	for i := range games {
		out = append(out, priceGame(games[i], byGame[games[i].ID], now))
	}
	return out, nil
}

// GetByID returns one game priced with the best promotion valid right now.
// Inactive games remain retrievable by ID; they are only hidden from the listing.
func (u *GameUsecase) GetByID(ctx context.Context, id string) (*PricedGame, error) {
	game, err := u.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	promos, err := u.promotions.ListByGame(ctx, id)
	if err != nil {
		return nil, err
	}
	priced := priceGame(*game, promos, u.now())
	return &priced, nil
}

func priceGame(game entity.Game, promos []entity.Promotion, now time.Time) PricedGame {
	priced := PricedGame{Game: game}
	if best := entity.BestPromotion(promos, now); best != nil {
		price := best.DiscountedPrice(game.Price, now)
		priced.DiscountedPrice = &price
	}
	return priced
}

// Create adds a new active game to the catalog.
func (u *GameUsecase) Create(ctx context.Context, in CreateGameInput) (*entity.Game, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now().UTC()
	game := &entity.Game{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Genre:       in.Genre,
		ReleaseDate: in.ReleaseDate,
		Developer:   in.Developer,
		Publisher:   in.Publisher,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.games.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Update applies a partial patch: only provided fields change, and the
// update timestamp is always refreshed.
func (u *GameUsecase) Update(ctx context.Context, id string, in UpdateGameInput) error {
	game, err := u.games.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if in.Title != nil {
		game.Title = *in.Title
	}
	if in.Description != nil {
		game.Description = *in.Description
	}
	if in.Price != nil {
		game.Price = *in.Price
	}
	if in.Genre != nil {
		game.Genre = *in.Genre
	}
	if in.ReleaseDate != nil {
		game.ReleaseDate = *in.ReleaseDate
	}
	if in.Developer != nil {
		game.Developer = *in.Developer
	}
	if in.Publisher != nil {
		game.Publisher = *in.Publisher
	}
	if in.IsActive != nil {
		game.IsActive = *in.IsActive
	}
	game.UpdatedAt = time.Now().UTC()

	return u.games.Update(ctx, game)
}

// Delete deactivates a game. The row is kept so historical purchases and
// promotions stay referenceable.
func (u *GameUsecase) Delete(ctx context.Context, id string) error {
	game, err := u.games.FindByID(ctx, id)
	if err != nil {
		return err
	}
	game.IsActive = false
	game.UpdatedAt = time.Now().UTC()
	return u.games.Update(ctx, game)
}
