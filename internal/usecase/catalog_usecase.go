// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"steamcache/internal/domain/entity"
	"steamcache/internal/domain/freshness"
	"steamcache/internal/domain/pagination"
)

// --- Input DTOs ---

// ReviewsPageInput selects one page of an application's review feed.
type ReviewsPageInput struct {
	AppID string
	// Cursor is the wire form returned by a previous page; empty starts a new session.
	Cursor   string
	PageSize int
	Language string
}

// --- Output DTOs ---

// SideFetchOutcome reports the best-effort metadata fetch that accompanies a remote fetch.
type SideFetchOutcome struct {
	Attempted   bool
	Succeeded   bool
	Placeholder bool
	Err         error
}

// GameBundle is a game together with its review aggregate.
type GameBundle struct {
	FromCache     bool
	Game          *entity.Game
	Aggregate     *entity.ReviewAggregate
	MetadataFetch SideFetchOutcome
}

// GameDetails is the metadata of a single game.
type GameDetails struct {
	FromCache     bool
	Game          *entity.Game
	MetadataFetch SideFetchOutcome
}

// ReviewsPage is one page of reviews plus the cursor of the next one.
type ReviewsPage struct {
	FromCache     bool
	Reviews       []*entity.Review
	NextCursor    pagination.Cursor
	TotalCount    int64
	Inserted      int
	MetadataFetch SideFetchOutcome
}

// RefreshResult summarises an unconditional refresh of one application.
type RefreshResult struct {
	AppID           string
	Before          freshness.Decision
	Game            *entity.Game
	Aggregate       *entity.ReviewAggregate
	InsertedReviews int
	MetadataFetch   SideFetchOutcome
}

// CatalogUsecase decides per request whether to serve stored Steam data or fetch it again.
type CatalogUsecase interface {
	IsRefreshNeeded(ctx context.Context, appID string) (bool, error)
	RefreshStatus(ctx context.Context, appID string) (freshness.Decision, error)

	FetchGameBundle(ctx context.Context, appID string) (*GameBundle, error)
	FetchGameDetails(ctx context.Context, appID string) (*GameDetails, error)
	FetchReviewsPage(ctx context.Context, input ReviewsPageInput) (*ReviewsPage, error)

	// GetReviewAggregate returns the stored aggregate, nil when it was never fetched.
	GetReviewAggregate(ctx context.Context, appID string) (*entity.ReviewAggregate, error)
	LanguageStats(ctx context.Context, appID string) ([]*entity.LanguageCount, error)

	// RefreshApp fetches metadata, aggregate and the first feed page regardless of freshness.
	RefreshApp(ctx context.Context, appID string) (*RefreshResult, error)
}
