package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a game with an optional note.
type Favorite struct {
	UserID    uuid.UUID
	AppID     string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FavoriteGame is a favorite joined with what is stored about its game.
type FavoriteGame struct {
	Favorite  *Favorite
	Game      *Game
	Aggregate *ReviewAggregate
}
