package impl

import (
	"context"
	"testing"

	"steamcache/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotRecorder counts how the pager opens its transactions.
type snapshotRecorder struct {
	repository.TransactionManager
	plain     int
	snapshots int
}

func (r *snapshotRecorder) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	r.plain++

	return r.TransactionManager.Execute(ctx, fn)
}

func (r *snapshotRecorder) ExecuteSnapshot(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	r.snapshots++

	return r.TransactionManager.ExecuteSnapshot(ctx, fn)
}

func TestReviewPager_ReadsTotalAndRowsFromOneSnapshot(t *testing.T) {
	store := newStoreFixtures(t)
	ctx := context.Background()

	_, err := store.coordinator.UpsertReviews(ctx, "730", reviewItems("cs", 5, "english"))
	require.NoError(t, err)

	recorder := &snapshotRecorder{TransactionManager: store.txManager}
	pager := NewReviewPager(ReviewPagerParams{TxManager: recorder})

	page, err := pager.ListPage(ctx, "730", "all", 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 1, recorder.snapshots)
	assert.Zero(t, recorder.plain)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Reviews, 2)
	assert.True(t, page.HasMore)
}

func TestReviewPager_RejectsBadPage(t *testing.T) {
	store := newStoreFixtures(t)

	_, err := store.pager.ListPage(context.Background(), "730", "all", 0, 10)
	require.Error(t, err)

	_, err = store.pager.ListPage(context.Background(), "730", "all", 1, 0)
	require.Error(t, err)
}
