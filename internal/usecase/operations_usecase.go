package usecase

import (
	"context"

	"steamcache/internal/domain/entity"
)

// PreloadMode tells how refresh jobs were dispatched.
type PreloadMode string

const (
	PreloadModePublished PreloadMode = "published"
	PreloadModeInline    PreloadMode = "inline"
)

// PreloadResult is returned as soon as jobs are dispatched.
type PreloadResult struct {
	Mode   PreloadMode
	AppIDs []string
}

// PreloadFailure names an application whose refresh failed.
type PreloadFailure struct {
	AppID string
	Err   error
}

// PreloadReport is the outcome of a synchronous preload run.
type PreloadReport struct {
	Refreshed []string
	Failed    []PreloadFailure
}

// PreloadUsecase refreshes the configured popular games.
type PreloadUsecase interface {
	// Schedule publishes one refresh event per game, or starts an inline run in the background.
	Schedule(ctx context.Context, limit int) (*PreloadResult, error)

	// Run refreshes the games before returning.
	Run(ctx context.Context, limit int) (*PreloadReport, error)
}

// Overview decorates the store counters with derived figures.
type Overview struct {
	Metrics          *entity.OverviewMetrics
	FreshnessPercent float64
	ExpirationHours  float64
}

// MetricsUsecase reports on cache contents and store health.
type MetricsUsecase interface {
	Overview(ctx context.Context) (*Overview, error)
	RefreshQueue(ctx context.Context, limit int) ([]*entity.RefreshQueueItem, error)
	Health(ctx context.Context) error
}
