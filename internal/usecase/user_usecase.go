package usecase

import (
	"context"
	"time"

	"steamcache/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the user and a signed access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// UserUsecase defines the account operations used by the API.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

// AddFavoriteInput adds a game to a user's favorites.
type AddFavoriteInput struct {
	UserID uuid.UUID
	AppID  string
	// Notes keeps the previous note when nil.
	Notes *string
}

// FavoriteUsecase manages the per-user favorites list.
type FavoriteUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteGame, error)
	Add(ctx context.Context, input AddFavoriteInput) (*entity.Favorite, error)
	Remove(ctx context.Context, userID uuid.UUID, appID string) error
}
