package postgres

import (
	"context"
	"strings"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type searchCacheRepository struct {
	db *gorm.DB
}

// NewSearchCacheRepository is the constructor for searchCacheRepository.
func NewSearchCacheRepository(db *gorm.DB) repository.SearchCacheRepository {
	return &searchCacheRepository{db: db}
}

func (repo *searchCacheRepository) InsertIfAbsent(ctx context.Context, entry *entity.SearchCacheEntry) (bool, error) {
	entryM := &model.SearchCacheEntryModel{
		SearchTerm:  strings.ToLower(strings.TrimSpace(entry.SearchTerm)),
		AppID:       entry.AppID,
		Name:        entry.Name,
		HeaderImage: entry.HeaderImage,
		CreatedAt:   entry.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "search_term"}, {Name: "app_id"}},
			DoNothing: true,
		}).
		Create(entryM)
	if result.Error != nil {
		return false, translateWriteError(result.Error, "failed to cache search entry")
	}

	return result.RowsAffected > 0, nil
}

// FindByTerm keeps the newest entry of each application.
func (repo *searchCacheRepository) FindByTerm(ctx context.Context, term string, limit int) ([]*entity.SearchCacheEntry, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return []*entity.SearchCacheEntry{}, nil
	}

	var rows []*model.SearchCacheEntryModel
	err := repo.db.WithContext(ctx).
		Where("search_term LIKE ?", "%"+needle+"%").
		Order("created_at DESC").
		Order("app_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read search cache")
	}

	seen := make(map[string]struct{}, len(rows))
	entries := make([]*entity.SearchCacheEntry, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.AppID]; ok {
			continue
		}
		seen[row.AppID] = struct{}{}
		entries = append(entries, &entity.SearchCacheEntry{
			SearchTerm:  row.SearchTerm,
			AppID:       row.AppID,
			Name:        row.Name,
			HeaderImage: row.HeaderImage,
			CreatedAt:   row.CreatedAt,
		})
		if limit > 0 && len(entries) == limit {
			break
		}
	}

	return entries, nil
}
