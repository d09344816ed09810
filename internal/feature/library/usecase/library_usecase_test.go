package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore_backend/internal/domain/entity"
)

var errDB = errors.New("database error")

type mockGameFinder struct {
	FindByIDFunc  func(ctx context.Context, id string) (*entity.Game, error)
	FindByIDsFunc func(ctx context.Context, ids []string) ([]entity.Game, error)
}

func (m *mockGameFinder) FindByID(ctx context.Context, id string) (*entity.Game, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrGameNotFound
}

func (m *mockGameFinder) FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockPromotionFinder struct {
	ListByGameFunc func(ctx context.Context, gameID string) ([]entity.Promotion, error)
}

func (m *mockPromotionFinder) ListByGame(ctx context.Context, gameID string) ([]entity.Promotion, error) {
	if m.ListByGameFunc != nil {
		return m.ListByGameFunc(ctx, gameID)
	}
	return nil, nil
}

type mockUserGameRepository struct {
	CreateFunc     func(ctx context.Context, record *entity.UserGame) error
	ListByUserFunc func(ctx context.Context, userID string) ([]entity.UserGame, error)
	ExistsFunc     func(ctx context.Context, userID, gameID string) (bool, error)
}

func (m *mockUserGameRepository) Create(ctx context.Context, record *entity.UserGame) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockUserGameRepository) ListByUser(ctx context.Context, userID string) ([]entity.UserGame, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserGameRepository) Exists(ctx context.Context, userID, gameID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, gameID)
	}
	return false, nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestLibraryUsecase(games GameFinder, promos PromotionFinder, library UserGameRepository) *LibraryUsecase {
	uc := NewLibraryUsecase(games, promos, library)
	uc.now = func() time.Time { return testNow }
	return uc
}

func activeGame(id string, price float64) *entity.Game {
	return &entity.Game{ID: id, Title: "Alpha", Price: price, IsActive: true}
}

func TestLibraryUsecase_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("purchase at full price", func(t *testing.T) {
		games := &mockGameFinder{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Game, error) {
				return activeGame(id, 59.99), nil
			},
		}
		var created *entity.UserGame
		library := &mockUserGameRepository{
			CreateFunc: func(ctx context.Context, record *entity.UserGame) error {
				created = record
				return nil
			},
		}

		uc := newTestLibraryUsecase(games, &mockPromotionFinder{}, library)
		record, err := uc.Purchase(ctx, "u1", "g1")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, "u1", record.UserID)
		assert.Equal(t, "g1", record.GameID)
		assert.Equal(t, 59.99, record.PurchasePrice)
		assert.Equal(t, testNow, record.PurchaseDate)
	})

	t.Run("purchase price snapshots the best valid discount", func(t *testing.T) {
		games := &mockGameFinder{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Game, error) {
				return activeGame(id, 100), nil
			},
		}
		promos := &mockPromotionFinder{
			ListByGameFunc: func(ctx context.Context, gameID string) ([]entity.Promotion, error) {
				return []entity.Promotion{
					{ID: "p1", GameID: gameID, DiscountPercentage: 10, IsActive: true, StartDate: testNow.Add(-time.Hour), EndDate: testNow.Add(time.Hour)},
					{ID: "p2", GameID: gameID, DiscountPercentage: 30, IsActive: true, StartDate: testNow.Add(-time.Hour), EndDate: testNow.Add(time.Hour)},
					{ID: "p3", GameID: gameID, DiscountPercentage: 90, IsActive: true, StartDate: testNow.Add(time.Hour), EndDate: testNow.Add(2 * time.Hour)},
				}, nil
			},
		}

		uc := newTestLibraryUsecase(games, promos, &mockUserGameRepository{})
		record, err := uc.Purchase(ctx, "u1", "g1")

		require.NoError(t, err)
		assert.InDelta(t, 70.0, record.PurchasePrice, 0.001)
	})

	t.Run("unknown game", func(t *testing.T) {
		uc := newTestLibraryUsecase(&mockGameFinder{}, &mockPromotionFinder{}, &mockUserGameRepository{})
		_, err := uc.Purchase(ctx, "u1", "missing")

		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("inactive game", func(t *testing.T) {
		games := &mockGameFinder{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Game, error) {
				return &entity.Game{ID: id, Title: "Alpha", Price: 10, IsActive: false}, nil
			},
		}

		uc := newTestLibraryUsecase(games, &mockPromotionFinder{}, &mockUserGameRepository{})
		_, err := uc.Purchase(ctx, "u1", "g1")

		assert.ErrorIs(t, err, ErrGameUnavailable)
	})

	t.Run("already owned", func(t *testing.T) {
		games := &mockGameFinder{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Game, error) {
				return activeGame(id, 10), nil
			},
		}
		library := &mockUserGameRepository{
			ExistsFunc: func(ctx context.Context, userID, gameID string) (bool, error) {
				return true, nil
			},
			CreateFunc: func(ctx context.Context, record *entity.UserGame) error {
				t.Error("Create must not be called for an owned game")
				return nil
			},
		}

		uc := newTestLibraryUsecase(games, &mockPromotionFinder{}, library)
		_, err := uc.Purchase(ctx, "u1", "g1")

		assert.ErrorIs(t, err, ErrAlreadyOwned)
	})

	t.Run("unique constraint race surfaces as already owned", func(t *testing.T) {
		games := &mockGameFinder{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Game, error) {
				return activeGame(id, 10), nil
			},
		}
		library := &mockUserGameRepository{
			CreateFunc: func(ctx context.Context, record *entity.UserGame) error {
				return ErrAlreadyOwned
			},
		}

		uc := newTestLibraryUsecase(games, &mockPromotionFinder{}, library)
		_, err := uc.Purchase(ctx, "u1", "g1")

		assert.ErrorIs(t, err, ErrAlreadyOwned)
	})
}

func TestLibraryUsecase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves titles, unknown rows fall back", func(t *testing.T) {
		library := &mockUserGameRepository{
			ListByUserFunc: func(ctx context.Context, userID string) ([]entity.UserGame, error) {
				return []entity.UserGame{
					{ID: "r1", UserID: userID, GameID: "g1", PurchasePrice: 59.99},
					{ID: "r2", UserID: userID, GameID: "gone", PurchasePrice: 9.99},
				}, nil
			},
		}
		games := &mockGameFinder{
			FindByIDsFunc: func(ctx context.Context, ids []string) ([]entity.Game, error) {
				return []entity.Game{{ID: "g1", Title: "Alpha"}}, nil
			},
		}

		uc := newTestLibraryUsecase(games, &mockPromotionFinder{}, library)
		entries, err := uc.List(ctx, "u1")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Alpha", entries[0].GameTitle)
		assert.Equal(t, UnknownGameTitle, entries[1].GameTitle)
	})

	t.Run("empty library", func(t *testing.T) {
		uc := newTestLibraryUsecase(&mockGameFinder{}, &mockPromotionFinder{}, &mockUserGameRepository{})
		entries, err := uc.List(ctx, "u1")

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("repository failure", func(t *testing.T) {
		library := &mockUserGameRepository{
			ListByUserFunc: func(ctx context.Context, userID string) ([]entity.UserGame, error) {
				return nil, errDB
			},
		}

		uc := newTestLibraryUsecase(&mockGameFinder{}, &mockPromotionFinder{}, library)
		_, err := uc.List(ctx, "u1")

		assert.ErrorIs(t, err, errDB)
	})
}

func TestLibraryUsecase_Owns(t *testing.T) {
	ctx := context.Background()

	library := &mockUserGameRepository{
		ExistsFunc: func(ctx context.Context, userID, gameID string) (bool, error) {
			return gameID == "owned", nil
		},
	}
	uc := newTestLibraryUsecase(&mockGameFinder{}, &mockPromotionFinder{}, library)

	owns, err := uc.Owns(ctx, "u1", "owned")
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = uc.Owns(ctx, "u1", "other")
	require.NoError(t, err)
	assert.False(t, owns)
}
