package usecase

import (
	"context"

	"steamcache/internal/domain/entity"
	"steamcache/internal/domain/service"
)

// UpsertCoordinator turns upstream payloads into stored entities.
type UpsertCoordinator interface {
	UpsertGame(ctx context.Context, appID string, metadata *service.AppMetadata) (*entity.Game, error)

	// UpsertPlaceholderGame inserts a minimal game row unless one already exists.
	UpsertPlaceholderGame(ctx context.Context, appID string) (*entity.Game, error)

	UpsertReviewAggregate(ctx context.Context, appID string, summary *service.ReviewSummary) (*entity.ReviewAggregate, error)

	// UpsertReviews stores the batch atomically and returns how many rows were new.
	UpsertReviews(ctx context.Context, appID string, items []service.ReviewItem) (int, error)

	// RecordFeedSync marks the first page of the review feed as freshly fetched.
	RecordFeedSync(ctx context.Context, appID string) error
}

// ReviewPage is a slice of the locally stored review feed.
type ReviewPage struct {
	Reviews []*entity.Review
	Total   int64
	HasMore bool
}

// ReviewPager reads numbered pages of stored reviews.
type ReviewPager interface {
	ListPage(ctx context.Context, appID, language string, page, pageSize int) (*ReviewPage, error)
}
