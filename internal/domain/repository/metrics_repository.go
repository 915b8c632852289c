package repository

import (
	"context"
	"time"

	"steamcache/internal/domain/entity"
)

// MetricsRepository answers read-only questions about the store's content.
type MetricsRepository interface {
	// Overview counts rows; anything updated before staleBefore is stale.
	Overview(ctx context.Context, staleBefore time.Time) (*entity.OverviewMetrics, error)

	// RefreshQueue lists games whose aggregate is missing or older than staleBefore.
	RefreshQueue(ctx context.Context, staleBefore time.Time, limit int) ([]*entity.RefreshQueueItem, error)

	// Ping checks that the store answers.
	Ping(ctx context.Context) error
}
