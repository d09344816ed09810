package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testUser(email string) *entity.User {
	now := time.Now().UTC()
	return &entity.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestNewUserRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := testUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
	})

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		err := repo.Create(context.Background(), testUser("duplicate@example.com"))
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), testUser("duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		expected := testUser("find@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.PasswordHash, found.PasswordHash, "password hash does not match")
		assert.Equal(t, entity.RoleUser, found.Role, "role does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
		assert.Nil(t, found, "user should be nil")
	})

	t.Run("lookup is exact, not case-trimmed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		err := repo.Create(context.Background(), testUser("exact@example.com"))
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), " exact@example.com ")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
		assert.Nil(t, found)
	})
}

func TestUserGorm_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := testUser("update@example.com")
	err := repo.Create(context.Background(), user)
	require.NoError(t, err, "failed to create test data")

	user.Role = entity.RoleAdmin
	user.UpdatedAt = time.Now().UTC()
	err = repo.Update(context.Background(), user)
	require.NoError(t, err, "failed to update user")

	found, err := repo.FindByEmail(context.Background(), "update@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, found.Role, "role change was not persisted")
}
