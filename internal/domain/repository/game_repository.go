// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"steamcache/internal/domain/entity"
)

// ErrGameNotFound is returned when no game row exists for an application id.
var ErrGameNotFound = errors.New("game not found")

// TopGamesSort selects the ranking used by FindTop.
type TopGamesSort string

const (
	TopGamesByRating  TopGamesSort = "rating"
	TopGamesByReviews TopGamesSort = "reviews"
	TopGamesByRecent  TopGamesSort = "recent"
)

// GameRepository persists Game metadata keyed by application id.
type GameRepository interface {
	// FindByAppID returns ErrGameNotFound when the game was never stored.
	FindByAppID(ctx context.Context, appID string) (*entity.Game, error)

	// Upsert inserts the game or overwrites every column except created_at.
	Upsert(ctx context.Context, game *entity.Game) error

	// CreateIfAbsent inserts the game and reports false when a row already existed.
	CreateIfAbsent(ctx context.Context, game *entity.Game) (bool, error)

	// SearchByName matches names case-insensitively, exact then prefix then substring.
	SearchByName(ctx context.Context, term string, limit int) ([]*entity.Game, error)

	// FindTop ranks games that have an aggregate with at least minReviews reviews.
	FindTop(ctx context.Context, limit int, minReviews int64, sort TopGamesSort) ([]*entity.TopGame, error)
}
