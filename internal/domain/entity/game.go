// Package entity contains the domain objects mirrored from Steam.
package entity

import (
	"encoding/json"
	"time"
)

// Game is the metadata snapshot of one Steam application.
// AppID is the natural key; a Game row is never deleted.
type Game struct {
	AppID            string
	Name             string
	ShortDescription string
	HeaderImage      string
	Developers       []string
	Publishers       []string

	// PriceOverview and ReleaseDate are stored as received.
	PriceOverview json.RawMessage
	ReleaseDate   json.RawMessage

	// Placeholder marks a row created without metadata.
	Placeholder bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPlaceholderGame builds the minimal row used when metadata is unavailable.
func NewPlaceholderGame(appID string) *Game {
	return &Game{
		AppID:       appID,
		Name:        appID,
		Developers:  []string{},
		Publishers:  []string{},
		Placeholder: true,
	}
}

// GameSearchHit is a denormalized search result.
type GameSearchHit struct {
	AppID       string
	Name        string
	HeaderImage string
}

// TopGame pairs a game with its aggregate for rankings.
type TopGame struct {
	Game      *Game
	Aggregate *ReviewAggregate
}
