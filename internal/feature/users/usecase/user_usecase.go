package usecase

import (
	"context"
	"strings"
	"time"

	"gamestore_backend/internal/domain/entity"
	"gamestore_backend/internal/domain/validator"
)

// UserRepository abstracts the persistence layer for user management.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by ID, returning ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]entity.User, error)

	// EmailTaken reports whether email belongs to a user other than excludeID.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete hard-deletes the user and cascades to their library entries.
	Delete(ctx context.Context, id string) error
}

// UpdateUserInput carries the partial profile update. Nil (or blank) fields
// are left unchanged; "absent" is distinct from the zero value.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserUsecase implements profile reads and updates plus the admin-only
// list and delete operations.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetByID returns a single user.
func (u *UserUsecase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// List returns every registered user.
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Update applies a partial profile update. A changed email is re-validated
// for format and re-checked for uniqueness excluding the user's own row.
func (u *UserUsecase) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		user.Name = *in.Name
	}

	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		if !validator.IsEmail(*in.Email) {
			return nil, ErrInvalidEmail
		}
		taken, err := u.users.EmailTaken(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailInUse
		}
		user.Email = *in.Email
	}

	user.UpdatedAt = time.Now().UTC()
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and their library entries.
func (u *UserUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}
