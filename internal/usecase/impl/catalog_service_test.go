package impl

import (
	"context"
	"testing"
	"time"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/freshness"
	"steamcache/internal/domain/pagination"
	"steamcache/internal/domain/service"
	"steamcache/internal/infra/persistence/model"
	"steamcache/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func counterStrikeSummary() *service.ReviewSummary {
	return &service.ReviewSummary{
		TotalReviews:    ptr(int64(100000)),
		TotalPositive:   ptr(int64(90000)),
		TotalNegative:   ptr(int64(10000)),
		ReviewScore:     ptr(8),
		ReviewScoreDesc: ptr("Very Positive"),
	}
}

func firstPageQuery(appID string) any {
	return mock.MatchedBy(func(query service.ReviewPageQuery) bool {
		return query.AppID == appID && query.Cursor == pagination.StartToken && query.Language == "all"
	})
}

func TestCatalogService_Scenario730(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().
		GetAppMetadata(mock.Anything, "730", "portuguese").
		Return(&service.AppMetadata{AppID: "730", Name: ptr("Counter-Strike 2"), Developers: []string{"Valve"}}, nil).
		Once()
	fx.steam.EXPECT().
		GetReviewSummary(mock.Anything, "730").
		Return(counterStrikeSummary(), nil).
		Once()
	fx.steam.EXPECT().
		GetReviewsPage(mock.Anything, firstPageQuery("730")).
		Return(&service.ReviewPage{Reviews: reviewItems("cs", 3, "english"), NextCursor: "AoJ4"}, nil).
		Once()

	needed, err := fx.service.IsRefreshNeeded(ctx, "730")
	require.NoError(t, err)
	assert.True(t, needed)

	bundle, err := fx.service.FetchGameBundle(ctx, "730")
	require.NoError(t, err)
	assert.False(t, bundle.FromCache)
	assert.True(t, bundle.MetadataFetch.Succeeded)
	require.NotNil(t, bundle.Game)
	assert.Equal(t, "Counter-Strike 2", bundle.Game.Name)

	aggregate, err := fx.service.GetReviewAggregate(ctx, "730")
	require.NoError(t, err)
	require.NotNil(t, aggregate)
	assert.Equal(t, int64(100000), aggregate.TotalReviews)
	assert.Equal(t, int64(90000), aggregate.TotalPositive)
	assert.Equal(t, int64(10000), aggregate.TotalNegative)
	assert.Equal(t, 8, aggregate.ReviewScore)
	assert.Equal(t, "Very Positive", aggregate.ReviewScoreDesc)
	assert.InDelta(t, 90.0, aggregate.PositivePercentage(), 0.001)

	needed, err = fx.service.IsRefreshNeeded(ctx, "730")
	require.NoError(t, err)
	assert.False(t, needed)
}

func TestCatalogService_FetchGameBundle_CacheHitIsDeterministic(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "730", "portuguese").
		Return(&service.AppMetadata{Name: ptr("Counter-Strike 2")}, nil).Once()
	fx.steam.EXPECT().GetReviewSummary(mock.Anything, "730").
		Return(counterStrikeSummary(), nil).Once()
	fx.steam.EXPECT().GetReviewsPage(mock.Anything, firstPageQuery("730")).
		Return(&service.ReviewPage{Reviews: reviewItems("cs", 2, "english")}, nil).Once()

	fetched, err := fx.service.FetchGameBundle(ctx, "730")
	require.NoError(t, err)
	require.False(t, fetched.FromCache)

	second, err := fx.service.FetchGameBundle(ctx, "730")
	require.NoError(t, err)
	third, err := fx.service.FetchGameBundle(ctx, "730")
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	assert.True(t, third.FromCache)
	assert.False(t, second.MetadataFetch.Attempted)
	assert.Equal(t, second.Game, third.Game)
	assert.Equal(t, second.Aggregate, third.Aggregate)
	assert.Equal(t, fetched.Aggregate.TotalReviews, second.Aggregate.TotalReviews)
	assert.Equal(t, fetched.Aggregate.ReviewScoreDesc, second.Aggregate.ReviewScoreDesc)
	assert.Equal(t, fetched.Game.Name, second.Game.Name)
}

func TestCatalogService_FetchGameBundle_MetadataFailureStoresPlaceholder(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "999", "portuguese").
		Return(nil, domainerrors.NewUpstreamError("steam.appdetails", 500, nil)).Once()
	fx.steam.EXPECT().GetReviewSummary(mock.Anything, "999").
		Return(&service.ReviewSummary{TotalReviews: ptr(int64(3))}, nil).Once()
	fx.steam.EXPECT().GetReviewsPage(mock.Anything, firstPageQuery("999")).
		Return(&service.ReviewPage{}, nil).Once()

	bundle, err := fx.service.FetchGameBundle(ctx, "999")

	require.NoError(t, err)
	assert.False(t, bundle.FromCache)
	assert.True(t, bundle.MetadataFetch.Attempted)
	assert.False(t, bundle.MetadataFetch.Succeeded)
	assert.True(t, bundle.MetadataFetch.Placeholder)
	require.ErrorIs(t, bundle.MetadataFetch.Err, domainerrors.ErrUpstreamUnavailable)
	require.NotNil(t, bundle.Game)
	assert.True(t, bundle.Game.Placeholder)
	assert.Equal(t, "999", bundle.Game.Name)
	assert.Equal(t, int64(3), bundle.Aggregate.TotalReviews)
}

func TestCatalogService_FetchGameDetails_RetriesPlaceholder(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertPlaceholderGame(ctx, "440")
	require.NoError(t, err)

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "440", "portuguese").
		Return(&service.AppMetadata{Name: ptr("Team Fortress 2"), HeaderImage: ptr("https://img/440.jpg")}, nil).Once()

	details, err := fx.service.FetchGameDetails(ctx, "440")
	require.NoError(t, err)
	assert.False(t, details.FromCache)
	assert.True(t, details.MetadataFetch.Succeeded)
	assert.Equal(t, "Team Fortress 2", details.Game.Name)
	assert.False(t, details.Game.Placeholder)

	cached, err := fx.service.FetchGameDetails(ctx, "440")
	require.NoError(t, err)
	assert.True(t, cached.FromCache)
	assert.Equal(t, "https://img/440.jpg", cached.Game.HeaderImage)
}

func TestCatalogService_FetchGameBundle_AggregateFailureIsHard(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "730", "portuguese").
		Return(&service.AppMetadata{Name: ptr("Counter-Strike 2")}, nil).Once()
	fx.steam.EXPECT().GetReviewSummary(mock.Anything, "730").
		Return(nil, domainerrors.NewUpstreamError("steam.appreviews.summary", 0, context.DeadlineExceeded)).Once()

	bundle, err := fx.service.FetchGameBundle(ctx, "730")

	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.Nil(t, bundle)

	aggregate, err := fx.service.GetReviewAggregate(ctx, "730")
	require.NoError(t, err)
	assert.Nil(t, aggregate)
}

func TestCatalogService_RefreshStatus_StaleAggregateOnly(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertGame(ctx, "570", &service.AppMetadata{Name: ptr("Dota 2")})
	require.NoError(t, err)
	require.NoError(t, fx.aggregateRepo.Upsert(ctx, &entity.ReviewAggregate{
		AppID:        "570",
		TotalReviews: 10,
		UpdatedAt:    time.Now().UTC().Add(-48 * time.Hour),
	}))
	require.NoError(t, fx.coordinator.RecordFeedSync(ctx, "570"))

	decision, err := fx.service.RefreshStatus(ctx, "570")
	require.NoError(t, err)
	assert.False(t, decision.GameMissing)
	assert.True(t, decision.AggregateStale)
	assert.False(t, decision.FeedStale)

	fx.steam.EXPECT().GetReviewSummary(mock.Anything, "570").
		Return(&service.ReviewSummary{TotalReviews: ptr(int64(20))}, nil).Once()

	bundle, err := fx.service.FetchGameBundle(ctx, "570")
	require.NoError(t, err)
	assert.False(t, bundle.FromCache)
	assert.False(t, bundle.MetadataFetch.Attempted)
	assert.Equal(t, int64(20), bundle.Aggregate.TotalReviews)

	needed, err := fx.service.IsRefreshNeeded(ctx, "570")
	require.NoError(t, err)
	assert.False(t, needed)
}

func TestCatalogService_FetchReviewsPage_LocalExhaustion(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	const total = 7
	const pageSize = 3

	_, err := fx.coordinator.UpsertReviews(ctx, "730", reviewItems("cs", total, "english"))
	require.NoError(t, err)
	require.NoError(t, fx.coordinator.RecordFeedSync(ctx, "730"))

	seen := make(map[string]int)
	cursor := ""
	pages := 0
	for {
		page, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{
			AppID:    "730",
			Cursor:   cursor,
			PageSize: pageSize,
		})
		require.NoError(t, err)
		require.True(t, page.FromCache)
		assert.Equal(t, int64(total), page.TotalCount)

		pages++
		for _, review := range page.Reviews {
			seen[review.RecommendationID]++
		}

		if page.NextCursor.IsEnd() {
			break
		}
		require.Equal(t, pagination.KindOffset, page.NextCursor.Kind())
		cursor = page.NextCursor.Encode()
		require.LessOrEqual(t, pages, total, "pagination did not terminate")
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, total)
	for id, count := range seen {
		assert.Equal(t, 1, count, "review %s served more than once", id)
	}
}

func TestCatalogService_FetchReviewsPage_LocalOrderAndLanguage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertReviews(ctx, "730", reviewItems("en", 3, "english"))
	require.NoError(t, err)
	_, err = fx.coordinator.UpsertReviews(ctx, "730", reviewItems("br", 2, "Brazilian"))
	require.NoError(t, err)
	require.NoError(t, fx.coordinator.RecordFeedSync(ctx, "730"))

	page, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730", Language: "English"})
	require.NoError(t, err)

	assert.True(t, page.FromCache)
	assert.Equal(t, int64(3), page.TotalCount)
	require.Len(t, page.Reviews, 3)
	assert.Equal(t, "en-000", page.Reviews[0].RecommendationID)
	assert.Equal(t, "en-002", page.Reviews[2].RecommendationID)
	assert.True(t, page.NextCursor.IsEnd())

	all, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), all.TotalCount)

	// br-000 and en-000 share a timestamp; recommendation id breaks the tie.
	assert.Equal(t, "br-000", all.Reviews[0].RecommendationID)
	assert.Equal(t, "en-000", all.Reviews[1].RecommendationID)
}

func TestCatalogService_FetchReviewsPage_OffsetSessionStaysLocalWhenFeedGoesStale(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertReviews(ctx, "730", reviewItems("cs", 5, "english"))
	require.NoError(t, err)
	require.NoError(t, fx.coordinator.RecordFeedSync(ctx, "730"))

	first, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730", PageSize: 2})
	require.NoError(t, err)
	require.True(t, first.FromCache)
	require.Equal(t, pagination.Offset(2), first.NextCursor)

	// Three days later the feed is stale; the session keeps reading the store.
	fx.service.(*catalogService).oracle = freshness.NewOracle(24, func() time.Time {
		return time.Now().UTC().Add(72 * time.Hour)
	})
	status, err := fx.service.RefreshStatus(ctx, "730")
	require.NoError(t, err)
	require.True(t, status.FeedStale)

	second, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{
		AppID:    "730",
		Cursor:   first.NextCursor.Encode(),
		PageSize: 2,
	})

	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Len(t, second.Reviews, 2)
	assert.Equal(t, int64(5), second.TotalCount)
	assert.Equal(t, pagination.Offset(3), second.NextCursor)
}

func TestCatalogService_FetchReviewsPage_FreshFeedWithoutLanguageRowsGoesUpstream(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertGame(ctx, "730", &service.AppMetadata{Name: ptr("Counter-Strike 2")})
	require.NoError(t, err)
	_, err = fx.coordinator.UpsertReviews(ctx, "730", reviewItems("en", 3, "english"))
	require.NoError(t, err)
	require.NoError(t, fx.coordinator.RecordFeedSync(ctx, "730"))

	fx.steam.EXPECT().GetReviewsPage(mock.Anything, mock.MatchedBy(func(query service.ReviewPageQuery) bool {
		return query.Cursor == pagination.StartToken && query.Language == "german"
	})).
		Return(&service.ReviewPage{Reviews: reviewItems("de", 1, "german")}, nil).Once()

	page, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730", Language: "German"})

	require.NoError(t, err)
	assert.False(t, page.FromCache)
	assert.False(t, page.MetadataFetch.Attempted)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "de-000", page.Reviews[0].RecommendationID)
	assert.Equal(t, 1, page.Inserted)
}

func TestCatalogService_FetchReviewsPage_PlaceholderStoreFailureIsReturned(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "730", "portuguese").
		Run(func(context.Context, string, string) {
			require.NoError(t, fx.db.Migrator().DropTable(&model.GameModel{}))
		}).
		Return(nil, domainerrors.NewUpstreamError("steam.appdetails", 503, nil)).Once()

	_, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730"})

	require.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestCatalogService_FetchReviewsPage_RemoteSession(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "730", "portuguese").
		Return(&service.AppMetadata{Name: ptr("Counter-Strike 2")}, nil).Once()
	fx.steam.EXPECT().GetReviewsPage(mock.Anything, firstPageQuery("730")).
		Return(&service.ReviewPage{
			Reviews:      reviewItems("p1", 2, "english"),
			NextCursor:   "tok-1",
			TotalReviews: ptr(int64(4)),
		}, nil).Once()
	fx.steam.EXPECT().GetReviewsPage(mock.Anything, mock.MatchedBy(func(query service.ReviewPageQuery) bool {
		return query.Cursor == "tok-1" && query.PageSize == 2
	})).
		Return(&service.ReviewPage{Reviews: reviewItems("p2", 2, "english")}, nil).Once()

	first, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730", Cursor: "*", PageSize: 2})
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.True(t, first.MetadataFetch.Succeeded)
	assert.Equal(t, 2, first.Inserted)
	assert.Equal(t, int64(4), first.TotalCount)
	require.Equal(t, pagination.KindUpstream, first.NextCursor.Kind())
	assert.Equal(t, "tok-1", first.NextCursor.Token())

	second, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{
		AppID:    "730",
		Cursor:   first.NextCursor.Encode(),
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.False(t, second.FromCache)
	assert.False(t, second.MetadataFetch.Attempted)
	assert.Len(t, second.Reviews, 2)
	assert.Equal(t, int64(4), second.TotalCount)
	assert.True(t, second.NextCursor.IsEnd())

	// The first page recorded the feed sync, so a new session is served locally.
	local, err := fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730", PageSize: 2})
	require.NoError(t, err)
	assert.True(t, local.FromCache)
	assert.Equal(t, int64(4), local.TotalCount)
	assert.Equal(t, pagination.Offset(2), local.NextCursor)
}

func TestCatalogService_FetchReviewsPage_UpstreamFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertGame(ctx, "730", &service.AppMetadata{Name: ptr("Counter-Strike 2")})
	require.NoError(t, err)

	fx.steam.EXPECT().GetReviewsPage(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewUpstreamError("steam.appreviews.page", 503, nil)).Once()

	_, err = fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730"})
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestCatalogService_InvalidInput(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.service.FetchGameBundle(ctx, "abc")
	require.ErrorIs(t, err, domainerrors.ErrInvalidAppID)

	_, err = fx.service.IsRefreshNeeded(ctx, "")
	require.ErrorIs(t, err, domainerrors.ErrInvalidAppID)

	_, err = fx.service.FetchReviewsPage(ctx, usecase.ReviewsPageInput{AppID: "730", Cursor: "offset:0"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCursor)
}

func TestCatalogService_RefreshApp(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.steam.EXPECT().GetAppMetadata(mock.Anything, "730", "portuguese").
		Return(&service.AppMetadata{Name: ptr("Counter-Strike 2")}, nil).Once()
	fx.steam.EXPECT().GetReviewSummary(mock.Anything, "730").
		Return(counterStrikeSummary(), nil).Once()
	fx.steam.EXPECT().GetReviewsPage(mock.Anything, firstPageQuery("730")).
		Return(&service.ReviewPage{Reviews: reviewItems("cs", 5, "english")}, nil).Once()

	result, err := fx.service.RefreshApp(ctx, "730")

	require.NoError(t, err)
	assert.True(t, result.Before.GameMissing)
	assert.True(t, result.Before.AggregateStale)
	assert.True(t, result.Before.FeedStale)
	assert.Equal(t, 5, result.InsertedReviews)
	assert.Equal(t, "Very Positive", result.Aggregate.ReviewScoreDesc)

	stats, err := fx.service.LanguageStats(ctx, "730")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "english", stats[0].Language)
	assert.Equal(t, int64(5), stats[0].Count)

	needed, err := fx.service.IsRefreshNeeded(ctx, "730")
	require.NoError(t, err)
	assert.False(t, needed)
}
