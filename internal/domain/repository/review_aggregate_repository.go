package repository

import (
	"context"
	"errors"

	"steamcache/internal/domain/entity"
)

// ErrAggregateNotFound is returned when an application has no stored aggregate.
var ErrAggregateNotFound = errors.New("review aggregate not found")

// ReviewAggregateRepository persists review summaries keyed by application id.
type ReviewAggregateRepository interface {
	FindByAppID(ctx context.Context, appID string) (*entity.ReviewAggregate, error)

	// Upsert replaces the whole row on conflict.
	Upsert(ctx context.Context, aggregate *entity.ReviewAggregate) error
}
