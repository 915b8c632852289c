package postgres

import (
	"context"
	"time"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type metricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository is the constructor for metricsRepository.
func NewMetricsRepository(db *gorm.DB) repository.MetricsRepository {
	return &metricsRepository{db: db}
}

// Overview counts every table and how much of the cache is past staleBefore.
func (repo *metricsRepository) Overview(ctx context.Context, staleBefore time.Time) (*entity.OverviewMetrics, error) {
	db := repo.db.WithContext(ctx)
	metrics := &entity.OverviewMetrics{}

	counts := []struct {
		target *int64
		query  *gorm.DB
	}{
		{&metrics.Games, db.Model(&model.GameModel{})},
		{&metrics.PlaceholderGames, db.Model(&model.GameModel{}).Where("placeholder = ?", true)},
		{&metrics.Aggregates, db.Model(&model.ReviewAggregateModel{})},
		{&metrics.Reviews, db.Model(&model.ReviewModel{})},
		{&metrics.Users, db.Model(&model.UserModel{})},
		{&metrics.Favorites, db.Model(&model.FavoriteModel{})},
		{&metrics.SearchCacheEntries, db.Model(&model.SearchCacheEntryModel{})},
		{&metrics.StaleAggregates, db.Model(&model.ReviewAggregateModel{}).Where("updated_at < ?", staleBefore)},
		{
			&metrics.MissingAggregates,
			db.Model(&model.GameModel{}).
				Where("app_id NOT IN (?)", db.Model(&model.ReviewAggregateModel{}).Select("app_id")),
		},
		{
			&metrics.StaleFeeds,
			db.Model(&model.GameModel{}).
				Where("app_id NOT IN (?)", db.Model(&model.ReviewFeedSyncModel{}).Select("app_id").Where("synced_at >= ?", staleBefore)),
		},
	}

	for _, count := range counts {
		if err := count.query.Count(count.target).Error; err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to count overview metrics")
		}
	}

	var latestAggregate []*model.ReviewAggregateModel
	if err := db.Order("updated_at DESC").Limit(1).Find(&latestAggregate).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read latest aggregate sync")
	}
	if len(latestAggregate) > 0 {
		last := latestAggregate[0].UpdatedAt
		metrics.LastAggregateSync = &last
	}

	var latestReview []*model.ReviewModel
	err := db.Select("recommendation_id", "ingested_at").Order("ingested_at DESC").Limit(1).Find(&latestReview).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read latest review ingest")
	}
	if len(latestReview) > 0 {
		last := latestReview[0].IngestedAt
		metrics.LastReviewIngest = &last
	}

	return metrics, nil
}

// RefreshQueue lists missing aggregates first, then the oldest ones.
func (repo *metricsRepository) RefreshQueue(ctx context.Context, staleBefore time.Time, limit int) ([]*entity.RefreshQueueItem, error) {
	db := repo.db.WithContext(ctx)

	var missing []*model.GameModel
	err := db.Where("app_id NOT IN (?)", db.Model(&model.ReviewAggregateModel{}).Select("app_id")).
		Order("app_id ASC").
		Limit(limit).
		Find(&missing).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list missing aggregates")
	}

	items := make([]*entity.RefreshQueueItem, 0, len(missing))
	for _, game := range missing {
		items = append(items, &entity.RefreshQueueItem{AppID: game.AppID, Name: game.Name})
	}

	if limit > 0 && len(items) >= limit {
		return items, nil
	}

	var stale []*model.ReviewAggregateModel
	query := db.Where("updated_at < ?", staleBefore).Order("updated_at ASC").Order("app_id ASC")
	if limit > 0 {
		query = query.Limit(limit - len(items))
	}
	if err := query.Find(&stale).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list stale aggregates")
	}

	appIDs := make([]string, 0, len(stale))
	for _, aggregate := range stale {
		appIDs = append(appIDs, aggregate.AppID)
	}

	games, err := findGamesByAppIDs(ctx, repo.db, appIDs)
	if err != nil {
		return nil, err
	}

	for _, aggregate := range stale {
		updatedAt := aggregate.UpdatedAt
		item := &entity.RefreshQueueItem{AppID: aggregate.AppID, AggregateUpdatedAt: &updatedAt}
		if game, ok := games[aggregate.AppID]; ok {
			item.Name = game.Name
		}
		items = append(items, item)
	}

	return items, nil
}

// Ping checks that the underlying connection answers.
func (repo *metricsRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to get sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return domainerrors.NewStoreError(err, "failed to ping store")
	}

	return nil
}
