package impl

import (
	"context"
	"fmt"
	"testing"

	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/domain/service"
	mockSvc "steamcache/internal/mocks/service"
	"steamcache/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchFixtures struct {
	storeFixtures
	service usecase.SearchUsecase
	steam   *mockSvc.MockSteamSource
}

func createTestSearchService(t *testing.T) searchFixtures {
	t.Helper()

	store := newStoreFixtures(t)
	steam := mockSvc.NewMockSteamSource(t)

	svc := NewSearchService(SearchServiceParams{
		TxManager:       store.txManager,
		GameRepo:        store.gameRepo,
		ReviewRepo:      store.reviewRepo,
		SearchCacheRepo: store.searchRepo,
		Steam:           steam,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return searchFixtures{storeFixtures: store, service: svc, steam: steam}
}

func TestSearchService_SearchGames_TermTooShort(t *testing.T) {
	fx := createTestSearchService(t)

	_, err := fx.service.SearchGames(context.Background(), "  a ")

	require.ErrorIs(t, err, domainerrors.ErrSearchTermTooShort)
}

func TestSearchService_SearchGames_Local(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	for appID, name := range map[string]string{"620": "Portal 2", "400": "Portal", "220": "Half-Life 2"} {
		_, err := fx.coordinator.UpsertGame(ctx, appID, &service.AppMetadata{Name: ptr(name)})
		require.NoError(t, err)
	}

	output, err := fx.service.SearchGames(ctx, "portal")

	require.NoError(t, err)
	assert.Equal(t, usecase.SearchSourceLocal, output.Source)
	assert.True(t, output.FromCache)
	require.Len(t, output.Games, 2)
	assert.Equal(t, "Portal", output.Games[0].Name)
	assert.Equal(t, "https://cdn.example.com/steam/apps/400/header.jpg", output.Games[0].HeaderImage)
	assert.Equal(t, "Portal 2", output.Games[1].Name)
}

func TestSearchService_SearchGames_RemoteThenCache(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	results := make([]service.AppSearchResult, 0, 12)
	for i := range 12 {
		results = append(results, service.AppSearchResult{AppID: fmt.Sprint(1000 + i), Name: fmt.Sprintf("Stardew %d", i)})
	}
	fx.steam.EXPECT().SearchApps(mock.Anything, "Stardew").Return(results, nil).Once()

	remote, err := fx.service.SearchGames(ctx, " Stardew ")
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchSourceRemote, remote.Source)
	assert.False(t, remote.FromCache)
	require.Len(t, remote.Games, 10)
	assert.Equal(t, "https://cdn.example.com/steam/apps/1000/header.jpg", remote.Games[0].HeaderImage)

	cached, err := fx.service.SearchGames(ctx, "stardew")
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchSourceCache, cached.Source)
	assert.True(t, cached.FromCache)
	assert.Len(t, cached.Games, 10)
}

func TestSearchService_SearchGames_RemoteFailure(t *testing.T) {
	fx := createTestSearchService(t)

	fx.steam.EXPECT().SearchApps(mock.Anything, "zelda").
		Return(nil, domainerrors.NewUpstreamError("steam.searchapps", 502, nil)).Once()

	_, err := fx.service.SearchGames(context.Background(), "zelda")

	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestSearchService_KeywordSearch(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	_, err := fx.coordinator.UpsertGame(ctx, "730", &service.AppMetadata{Name: ptr("Counter-Strike 2")})
	require.NoError(t, err)

	items := reviewItems("cs", 3, "english")
	items[0].Review = ptr("Great maps and great community")
	items[0].VotesUp = ptr(int64(10))
	items[1].Review = ptr("The community is toxic")
	items[1].VotesFunny = ptr(int64(3))
	items[2].Review = ptr("Nothing to say")
	_, err = fx.coordinator.UpsertReviews(ctx, "730", items)
	require.NoError(t, err)

	_, err = fx.service.SearchByKeywords(ctx, usecase.KeywordSearchInput{Keywords: []string{" , "}})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	games, err := fx.service.SearchByKeywords(ctx, usecase.KeywordSearchInput{Keywords: []string{"great, community"}})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "730", games[0].AppID)
	assert.Equal(t, int64(2), games[0].MatchingReviews)

	reviews, err := fx.service.ReviewsWithKeywords(ctx, usecase.ReviewKeywordInput{AppID: "730", Keywords: []string{"community"}})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "cs-000", reviews[0].Review.RecommendationID)
	assert.InDelta(t, 20.0, reviews[0].Relevance, 0.001)
}

func TestSearchService_TopGames(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	for _, appID := range []string{"1", "2"} {
		_, err := fx.coordinator.UpsertGame(ctx, appID, &service.AppMetadata{Name: ptr("Game " + appID)})
		require.NoError(t, err)
	}
	_, err := fx.coordinator.UpsertReviewAggregate(ctx, "1", &service.ReviewSummary{
		TotalReviews: ptr(int64(200)), TotalPositive: ptr(int64(150)), ReviewScore: ptr(7),
	})
	require.NoError(t, err)
	_, err = fx.coordinator.UpsertReviewAggregate(ctx, "2", &service.ReviewSummary{
		TotalReviews: ptr(int64(50)), TotalPositive: ptr(int64(50)), ReviewScore: ptr(9),
	})
	require.NoError(t, err)

	top, err := fx.service.TopGames(ctx, usecase.TopGamesInput{Sort: "unknown"})
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "1", top[0].Game.AppID)
	assert.InDelta(t, 75.0, top[0].PositivePercentage, 0.001)

	all, err := fx.service.TopGames(ctx, usecase.TopGamesInput{MinReviews: 10, Sort: repository.TopGamesByRating})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].Game.AppID)
}
