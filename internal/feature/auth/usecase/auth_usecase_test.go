package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/domain/validator"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// UpdateFunc is called when the Update method is invoked.
	UpdateFunc func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: no such user
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	IssueFunc func(userID, email string, role entity.Role) (string, error)
}

func (m *mockTokenIssuer) Issue(userID, email string, role entity.Role) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email, role)
	}
	return "mock-jwt-token", nil
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				if user.ID == "" {
					t.Error("expected a generated user ID")
				}
				if user.Role != entity.RoleUser {
					t.Errorf("expected role %q, got %q", entity.RoleUser, user.Role)
				}
				// Verify that the password is hashed
				if user.PasswordHash == "Senha123@" {
					t.Error("password is not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123@")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		result, err := uc.Register(ctx, "Alice", "alice@example.com", "Senha123@")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "mock-jwt-token" {
			t.Errorf("expected token 'mock-jwt-token', got: '%s'", result.Token)
		}
		if result.User.Email != "alice@example.com" {
			t.Errorf("unexpected email: %s", result.User.Email)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Register(ctx, "Alice", "user@.com", "Senha123@")

		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got: %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: "existing", Email: email}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(ctx, "Alice", "alice@example.com", "Senha123@")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Register(ctx, "Alice", "alice@example.com", "Abcdef123")

		if !errors.Is(err, validator.ErrPasswordSpecial) {
			t.Errorf("expected ErrPasswordSpecial, got: %v", err)
		}
		if !validator.IsPolicyError(err) {
			t.Error("expected a password policy error")
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Register(ctx, "Alice", "alice@example.com", "Senha123@")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	password := "Senha123@"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hashedPassword),
		Role:         entity.RoleUser,
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == testUser.Email {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockTokens := &mockTokenIssuer{
			IssueFunc: func(userID, email string, role entity.Role) (string, error) {
				if userID != testUser.ID || email != testUser.Email || role != testUser.Role {
					t.Errorf("unexpected claims: userID=%s email=%s role=%s", userID, email, role)
				}
				return "mock-jwt-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockTokens)
		result, err := uc.Login(ctx, "alice@example.com", password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "mock-jwt-token" {
			t.Errorf("expected token 'mock-jwt-token', got: '%s'", result.Token)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Login(ctx, "nobody@example.com", password)

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("incorrect password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Login(ctx, "alice@example.com", "wrong-password")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, notFoundErr := uc.Login(ctx, "nobody@example.com", password)

		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		uc = NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, wrongPasswordErr := uc.Login(ctx, "alice@example.com", "wrong-password")

		if notFoundErr.Error() != wrongPasswordErr.Error() {
			t.Errorf("error messages differ: %q vs %q", notFoundErr, wrongPasswordErr)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockTokens := &mockTokenIssuer{
			IssueFunc: func(userID, email string, role entity.Role) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockTokens)
		_, err := uc.Login(ctx, "alice@example.com", password)

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		expectedErrMsg := "failed to generate token: failed to sign token"
		if err.Error() != expectedErrMsg {
			t.Errorf("expected error message '%s', got: '%s'", expectedErrMsg, err.Error())
		}
	})
}

func TestAuthUsecase_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the admin when absent", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		if err := uc.EnsureAdmin(ctx, "Admin", "admin@gamestore.com", "Admin123@"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatal("expected the admin to be created")
		}
		if created.Role != entity.RoleAdmin {
			t.Errorf("expected role %q, got %q", entity.RoleAdmin, created.Role)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Admin123@")); err != nil {
			t.Errorf("invalid bcrypt hash: %v", err)
		}
	})

	t.Run("promotes an existing user", func(t *testing.T) {
		var updated *entity.User
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: "u1", Email: email, Role: entity.RoleUser}, nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				updated = user
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		if err := uc.EnsureAdmin(ctx, "Admin", "admin@gamestore.com", "Admin123@"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated == nil {
			t.Fatal("expected the user to be updated")
		}
		if updated.Role != entity.RoleAdmin {
			t.Errorf("expected role %q, got %q", entity.RoleAdmin, updated.Role)
		}
	})

	t.Run("no-op when the admin already exists", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: "u1", Email: email, Role: entity.RoleAdmin}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create must not be called")
				return nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Update must not be called")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		if err := uc.EnsureAdmin(ctx, "Admin", "admin@gamestore.com", "Admin123@"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
