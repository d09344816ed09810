package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/domain/validator"
)

// UserRepository abstracts the persistence layer for user accounts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a user
	// with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching exactly the stored email value.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// TokenIssuer creates signed session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string, role entity.Role) (string, error)
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	User  *entity.User
	Token string
}

// AuthUsecase implements registration, login and the startup admin seed.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register creates a new account with the default role and returns the
// identity plus a freshly issued session token.
// Validation order follows the registration rules: email format first, then
// email uniqueness, then password strength.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if !validator.IsEmail(email) {
		return nil, ErrInvalidEmail
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	if err := validator.Password(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// dummyHash keeps bcrypt comparison time constant when the email is unknown,
// so login timing does not reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns the identity plus a session token.
// Unknown email and wrong password both produce ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// EnsureAdmin idempotently guarantees that the seed administrator exists:
// the account is created with the admin role when absent, and promoted to
// admin when present with a lesser role. Run once at startup.
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	existing, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		if existing.Role == entity.RoleAdmin {
			return nil
		}
		existing.Role = entity.RoleAdmin
		existing.UpdatedAt = time.Now().UTC()
		return u.users.Update(ctx, existing)
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	return u.users.Create(ctx, &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
