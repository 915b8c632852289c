package repository

import (
	"context"

	"steamcache/internal/domain/entity"
)

// SearchCacheRepository persists remote search results.
type SearchCacheRepository interface {
	// InsertIfAbsent skips entries whose (term, app id) pair is stored.
	InsertIfAbsent(ctx context.Context, entry *entity.SearchCacheEntry) (bool, error)

	// FindByTerm returns entries whose term contains the given term, newest first,
	// one per application.
	FindByTerm(ctx context.Context, term string, limit int) ([]*entity.SearchCacheEntry, error)
}
