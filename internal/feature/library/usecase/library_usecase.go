package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gamestore_backend/internal/domain/entity"
)

// GameFinder looks up catalog items for the purchase flow and for resolving
// library entry titles.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type GameFinder interface {
	// FindByID retrieves a game, returning ErrGameNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Game, error)

	// FindByIDs retrieves the games with the given IDs; missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error)
}

// PromotionFinder fetches the promotion candidates for purchase pricing.
type PromotionFinder interface {
	ListByGame(ctx context.Context, gameID string) ([]entity.Promotion, error)
}

// UserGameRepository abstracts the persistence layer for purchase records.
type UserGameRepository interface {
	// Create inserts the purchase record. A violation of the (user, game)
	// unique constraint is reported as ErrAlreadyOwned.
	Create(ctx context.Context, record *entity.UserGame) error

	// ListByUser retrieves every purchase record owned by the user.
	ListByUser(ctx context.Context, userID string) ([]entity.UserGame, error)

	// Exists reports whether the user already owns the game.
	Exists(ctx context.Context, userID, gameID string) (bool, error)
}

// UnknownGameTitle is the fallback title for library entries whose game row
// can no longer be resolved. Game deletion is soft, so hitting this path is
// defensive rather than expected.
const UnknownGameTitle = "Unknown"

// LibraryEntry is a purchase record with its game title resolved.
type LibraryEntry struct {
	Record    entity.UserGame
	GameTitle string
}

// LibraryUsecase implements the purchase flow and per-user library reads.
type LibraryUsecase struct {
	games      GameFinder
	promotions PromotionFinder
	library    UserGameRepository
	now        func() time.Time
}

// NewLibraryUsecase creates a new LibraryUsecase.
func NewLibraryUsecase(games GameFinder, promotions PromotionFinder, library UserGameRepository) *LibraryUsecase {
	return &LibraryUsecase{games: games, promotions: promotions, library: library, now: time.Now}
}

// Purchase adds the game to the user's library at the best currently
// discounted price. The stored price is a snapshot: later promotion changes
// never alter it. Two concurrent purchases for the same pair may both pass
// the ownership check; the storage unique constraint rejects the loser and
// the adapter maps that to ErrAlreadyOwned as well.
func (u *LibraryUsecase) Purchase(ctx context.Context, userID, gameID string) (*entity.UserGame, error) {
	game, err := u.games.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsActive {
		return nil, ErrGameUnavailable
	}

	owned, err := u.library.Exists(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	promos, err := u.promotions.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	price := game.Price
	if best := entity.BestPromotion(promos, now); best != nil {
		price = best.DiscountedPrice(game.Price, now)
	}

	record := &entity.UserGame{
		ID:            uuid.NewString(),
		UserID:        userID,
		GameID:        gameID,
		PurchaseDate:  now.UTC(),
		PurchasePrice: price,
	}
	if err := u.library.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the user's library with game titles resolved best-effort.
func (u *LibraryUsecase) List(ctx context.Context, userID string) ([]LibraryEntry, error) {
	records, err := u.library.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.GameID)
	}
	games, err := u.games.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(games))
	for _, g := range games {
		titles[g.ID] = g.Title
	}

	entries := make([]LibraryEntry, 0, len(records))
	for _, r := range records {
		title, ok := titles[r.GameID]
		if !ok {
			title = UnknownGameTitle
		}
		entries = append(entries, LibraryEntry{Record: r, GameTitle: title})
	}
	return entries, nil
}

// Owns reports whether the user owns the game.
func (u *LibraryUsecase) Owns(ctx context.Context, userID, gameID string) (bool, error) {
	return u.library.Exists(ctx, userID, gameID)
}
