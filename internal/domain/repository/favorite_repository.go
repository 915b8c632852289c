package repository

import (
	"context"

	"steamcache/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository persists favorites keyed by (user id, app id).
type FavoriteRepository interface {
	// Upsert keeps the existing note when the new one is nil.
	Upsert(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error)

	// Delete reports false when nothing was removed.
	Delete(ctx context.Context, userID uuid.UUID, appID string) (bool, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteGame, error)
}
