package impl

import (
	"context"
	"testing"
	"time"

	"steamcache/internal/domain/entity"
	"steamcache/internal/domain/service"
	"steamcache/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMetricsService(t *testing.T) (storeFixtures, usecase.MetricsUsecase) {
	t.Helper()

	store := newStoreFixtures(t)
	cfg := newTestConfig()

	return store, NewMetricsService(MetricsServiceParams{
		MetricsRepo: store.metricsRepo,
		Oracle:      NewFreshnessOracle(cfg),
		Config:      cfg,
	})
}

func TestMetricsService_OverviewAndQueue(t *testing.T) {
	store, svc := createTestMetricsService(t)
	ctx := context.Background()

	for _, appID := range []string{"1", "2", "3"} {
		_, err := store.coordinator.UpsertGame(ctx, appID, &service.AppMetadata{Name: ptr("Game " + appID)})
		require.NoError(t, err)
	}
	_, err := store.coordinator.UpsertReviewAggregate(ctx, "1", &service.ReviewSummary{TotalReviews: ptr(int64(10))})
	require.NoError(t, err)
	require.NoError(t, store.aggregateRepo.Upsert(ctx, &entity.ReviewAggregate{
		AppID:     "2",
		UpdatedAt: time.Now().UTC().Add(-72 * time.Hour),
	}))

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.Metrics.Games)
	assert.Equal(t, int64(2), overview.Metrics.Aggregates)
	assert.Equal(t, int64(1), overview.Metrics.StaleAggregates)
	assert.Equal(t, int64(1), overview.Metrics.MissingAggregates)
	assert.InDelta(t, 50.0, overview.FreshnessPercent, 0.001)
	assert.InDelta(t, 24.0, overview.ExpirationHours, 0.001)

	queue, err := svc.RefreshQueue(ctx, 0)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "3", queue[0].AppID)
	assert.Nil(t, queue[0].AggregateUpdatedAt)
	assert.Equal(t, "2", queue[1].AppID)

	require.NoError(t, svc.Health(ctx))
}
