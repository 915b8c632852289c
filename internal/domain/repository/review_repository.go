package repository

import (
	"context"
	"errors"
	"time"

	"steamcache/internal/domain/entity"
)

// ErrFeedNeverSynced is returned when an application's feed was never fetched remotely.
var ErrFeedNeverSynced = errors.New("review feed never synced")

// ReviewFilter selects reviews of one application, optionally in one language.
// An empty Language or "all" disables the language predicate.
type ReviewFilter struct {
	AppID    string
	Language string
}

// ReviewRepository persists reviews keyed by recommendation id.
type ReviewRepository interface {
	// InsertIfAbsent stores the review unless its recommendation id exists and
	// reports whether a row was written.
	InsertIfAbsent(ctx context.Context, review *entity.Review) (bool, error)

	// Count and List share the filter predicate so offset math stays consistent.
	Count(ctx context.Context, filter ReviewFilter) (int64, error)
	List(ctx context.Context, filter ReviewFilter, offset, limit int) ([]*entity.Review, error)

	// LatestIngestedAt returns nil when no review of the application is stored.
	LatestIngestedAt(ctx context.Context, appID string) (*time.Time, error)

	CountByLanguage(ctx context.Context, appID string) ([]*entity.LanguageCount, error)

	// SearchGamesByKeywords ranks applications whose reviews mention the keywords.
	SearchGamesByKeywords(ctx context.Context, keywords []string, limit int, minMatches int64) ([]*entity.KeywordGameMatch, error)

	// FindWithKeywords ranks an application's reviews that mention any keyword.
	FindWithKeywords(ctx context.Context, appID string, keywords []string, limit int) ([]*entity.ReviewMatch, error)
}

// ReviewFeedSyncRepository tracks when the head of each feed was last fetched.
type ReviewFeedSyncRepository interface {
	// FindByAppID returns ErrFeedNeverSynced when no sync was recorded.
	FindByAppID(ctx context.Context, appID string) (*entity.ReviewFeedSync, error)
	Upsert(ctx context.Context, sync *entity.ReviewFeedSync) error
}
