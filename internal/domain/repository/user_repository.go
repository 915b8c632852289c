package repository

import (
	"context"
	"errors"

	"steamcache/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create returns domainerrors.ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error
}
