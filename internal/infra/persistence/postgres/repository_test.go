package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"
	"steamcache/internal/testutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newGame(appID, name string) *entity.Game {
	return &entity.Game{
		AppID:      appID,
		Name:       name,
		Developers: []string{"Valve"},
		Publishers: []string{"Valve"},
		CreatedAt:  baseTime,
		UpdatedAt:  baseTime,
	}
}

func newReview(appID, id string, created int64, text string) *entity.Review {
	return &entity.Review{
		RecommendationID: id,
		AppID:            appID,
		Text:             text,
		TimestampCreated: created,
		Language:         "english",
		IngestedAt:       baseTime,
	}
}

func TestGameRepository_UpsertIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game := newGame("730", "Counter-Strike 2")
	game.PriceOverview = json.RawMessage(`{"final":0}`)
	game.Developers = []string{"Valve", "Hidden Path"}

	require.NoError(t, repo.Upsert(ctx, game))
	require.NoError(t, repo.Upsert(ctx, game))

	var count int64
	require.NoError(t, db.Model(&model.GameModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByAppID(ctx, "730")
	require.NoError(t, err)
	assert.Equal(t, "Counter-Strike 2", stored.Name)
	assert.Equal(t, []string{"Valve", "Hidden Path"}, stored.Developers)
	assert.JSONEq(t, `{"final":0}`, string(stored.PriceOverview))
	assert.Nil(t, stored.ReleaseDate)
	assert.False(t, stored.Placeholder)
}

func TestGameRepository_UpsertOverwritesPlaceholder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	placeholder := entity.NewPlaceholderGame("570")
	placeholder.CreatedAt = baseTime
	placeholder.UpdatedAt = baseTime
	created, err := repo.CreateIfAbsent(ctx, placeholder)
	require.NoError(t, err)
	assert.True(t, created)

	full := newGame("570", "Dota 2")
	full.UpdatedAt = baseTime.Add(time.Hour)
	require.NoError(t, repo.Upsert(ctx, full))

	stored, err := repo.FindByAppID(ctx, "570")
	require.NoError(t, err)
	assert.Equal(t, "Dota 2", stored.Name)
	assert.False(t, stored.Placeholder)
	assert.True(t, stored.UpdatedAt.Equal(baseTime.Add(time.Hour)))
}

func TestGameRepository_CreateIfAbsentKeepsExistingRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newGame("440", "Team Fortress 2")))

	created, err := repo.CreateIfAbsent(ctx, entity.NewPlaceholderGame("440"))
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := repo.FindByAppID(ctx, "440")
	require.NoError(t, err)
	assert.Equal(t, "Team Fortress 2", stored.Name)
}

func TestGameRepository_FindByAppIDNotFound(t *testing.T) {
	repo := NewGameRepository(testutil.NewTestDB(t))

	_, err := repo.FindByAppID(context.Background(), "404")
	assert.ErrorIs(t, err, repository.ErrGameNotFound)
}

func TestGameRepository_SearchByNameRanksExactThenPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newGame("1", "Super Portal Bros")))
	require.NoError(t, repo.Upsert(ctx, newGame("2", "Portal 2")))
	require.NoError(t, repo.Upsert(ctx, newGame("3", "Portal")))
	require.NoError(t, repo.Upsert(ctx, newGame("4", "Half-Life")))

	games, err := repo.SearchByName(ctx, "  PORTAL ", 10)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "3", games[0].AppID)
	assert.Equal(t, "2", games[1].AppID)
	assert.Equal(t, "1", games[2].AppID)
}

func TestGameRepository_FindTop(t *testing.T) {
	db := testutil.NewTestDB(t)
	games := NewGameRepository(db)
	aggregates := NewReviewAggregateRepository(db)
	ctx := context.Background()

	for _, appID := range []string{"10", "20", "30"} {
		require.NoError(t, games.Upsert(ctx, newGame(appID, "Game "+appID)))
	}
	require.NoError(t, aggregates.Upsert(ctx, &entity.ReviewAggregate{AppID: "10", TotalReviews: 500, TotalPositive: 400, ReviewScore: 8, UpdatedAt: baseTime}))
	require.NoError(t, aggregates.Upsert(ctx, &entity.ReviewAggregate{AppID: "20", TotalReviews: 900, TotalPositive: 500, ReviewScore: 6, UpdatedAt: baseTime}))
	require.NoError(t, aggregates.Upsert(ctx, &entity.ReviewAggregate{AppID: "30", TotalReviews: 50, TotalPositive: 50, ReviewScore: 9, UpdatedAt: baseTime}))

	byRating, err := games.FindTop(ctx, 10, 100, repository.TopGamesByRating)
	require.NoError(t, err)
	require.Len(t, byRating, 2)
	assert.Equal(t, "10", byRating[0].Game.AppID)
	assert.Equal(t, "20", byRating[1].Game.AppID)
	assert.Equal(t, int64(400), byRating[0].Aggregate.TotalPositive)

	byReviews, err := games.FindTop(ctx, 1, 0, repository.TopGamesByReviews)
	require.NoError(t, err)
	require.Len(t, byReviews, 1)
	assert.Equal(t, "20", byReviews[0].Game.AppID)
}

func TestReviewAggregateRepository_UpsertReplacesRow(t *testing.T) {
	repo := NewReviewAggregateRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.ReviewAggregate{
		AppID: "730", TotalReviews: 10, TotalPositive: 9, TotalNegative: 1,
		ReviewScore: 8, ReviewScoreDesc: "Very Positive", UpdatedAt: baseTime,
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.ReviewAggregate{
		AppID: "730", TotalReviews: 20, TotalPositive: 5, TotalNegative: 15,
		ReviewScore: 3, UpdatedAt: baseTime.Add(time.Hour),
	}))

	stored, err := repo.FindByAppID(ctx, "730")
	require.NoError(t, err)
	assert.Equal(t, int64(20), stored.TotalReviews)
	assert.Equal(t, int64(15), stored.TotalNegative)
	assert.Equal(t, "", stored.ReviewScoreDesc)
	assert.True(t, stored.UpdatedAt.Equal(baseTime.Add(time.Hour)))

	_, err = repo.FindByAppID(ctx, "570")
	assert.ErrorIs(t, err, repository.ErrAggregateNotFound)
}

func TestReviewAggregateRepository_NegativeCountIsInvalidPayload(t *testing.T) {
	repo := NewReviewAggregateRepository(testutil.NewTestDB(t))

	err := repo.Upsert(context.Background(), &entity.ReviewAggregate{AppID: "730", TotalReviews: -1, UpdatedAt: baseTime})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}

func TestReviewRepository_InsertIfAbsentKeepsFirstCopy(t *testing.T) {
	repo := NewReviewRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	inserted, err := repo.InsertIfAbsent(ctx, newReview("730", "r1", 100, "first"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(ctx, newReview("730", "r1", 100, "second"))
	require.NoError(t, err)
	assert.False(t, inserted)

	reviews, err := repo.List(ctx, repository.ReviewFilter{AppID: "730"}, 0, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "first", reviews[0].Text)
}

func TestReviewRepository_ListOrderAndLanguageFilter(t *testing.T) {
	repo := NewReviewRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	fixtures := []*entity.Review{
		newReview("730", "b", 200, "b"),
		newReview("730", "a", 200, "a"),
		newReview("730", "c", 300, "c"),
		newReview("730", "d", 100, "d"),
		newReview("570", "e", 500, "other app"),
	}
	fixtures[3].Language = "brazilian"
	for _, review := range fixtures {
		_, err := repo.InsertIfAbsent(ctx, review)
		require.NoError(t, err)
	}

	reviews, err := repo.List(ctx, repository.ReviewFilter{AppID: "730", Language: "all"}, 0, 10)
	require.NoError(t, err)
	ids := make([]string, 0, len(reviews))
	for _, review := range reviews {
		ids = append(ids, review.RecommendationID)
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)

	total, err := repo.Count(ctx, repository.ReviewFilter{AppID: "730", Language: "ENGLISH"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	page, err := repo.List(ctx, repository.ReviewFilter{AppID: "730", Language: "english"}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].RecommendationID)

	languages, err := repo.CountByLanguage(ctx, "730")
	require.NoError(t, err)
	require.Len(t, languages, 2)
	assert.Equal(t, "english", languages[0].Language)
	assert.Equal(t, int64(3), languages[0].Count)
}

func TestReviewRepository_LatestIngestedAt(t *testing.T) {
	repo := NewReviewRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	latest, err := repo.LatestIngestedAt(ctx, "730")
	require.NoError(t, err)
	assert.Nil(t, latest)

	older := newReview("730", "r1", 1, "x")
	newer := newReview("730", "r2", 2, "y")
	newer.IngestedAt = baseTime.Add(2 * time.Hour)
	for _, review := range []*entity.Review{older, newer} {
		_, err := repo.InsertIfAbsent(ctx, review)
		require.NoError(t, err)
	}

	latest, err = repo.LatestIngestedAt(ctx, "730")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.Equal(baseTime.Add(2*time.Hour)))
}

func TestReviewRepository_KeywordSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	games := NewGameRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	require.NoError(t, games.Upsert(ctx, newGame("1", "Shooter")))
	require.NoError(t, games.Upsert(ctx, newGame("2", "Farm")))

	fixtures := []*entity.Review{
		newReview("1", "s1", 1, "Great multiplayer and great graphics"),
		newReview("1", "s2", 2, "graphics are fine"),
		newReview("2", "f1", 3, "relaxing multiplayer"),
		newReview("2", "f2", 4, "nothing to see"),
	}
	fixtures[2].VotesUp = 100
	for _, review := range fixtures {
		_, err := reviews.InsertIfAbsent(ctx, review)
		require.NoError(t, err)
	}

	matches, err := reviews.SearchGamesByKeywords(ctx, []string{" Multiplayer ", "GRAPHICS", ""}, 10, 1)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// app 1: 2 matches, coverage 3 -> 20 + 15; app 2: 1 match, coverage 1, 100 votes -> 10 + 5 + 10
	assert.Equal(t, "1", matches[0].AppID)
	assert.Equal(t, "Shooter", matches[0].Name)
	assert.Equal(t, int64(2), matches[0].MatchingReviews)
	assert.Equal(t, int64(3), matches[0].KeywordScore)
	assert.InDelta(t, 35.0, matches[0].Relevance, 0.001)
	assert.InDelta(t, 25.0, matches[1].Relevance, 0.001)

	strict, err := reviews.SearchGamesByKeywords(ctx, []string{"multiplayer", "graphics"}, 10, 2)
	require.NoError(t, err)
	require.Len(t, strict, 1)
	assert.Equal(t, "1", strict[0].AppID)

	ranked, err := reviews.FindWithKeywords(ctx, "2", []string{"multiplayer"}, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "f1", ranked[0].Review.RecommendationID)
	assert.InDelta(t, 200.0, ranked[0].Relevance, 0.001)

	none, err := reviews.SearchGamesByKeywords(ctx, []string{"  "}, 10, 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReviewFeedSyncRepository(t *testing.T) {
	repo := NewReviewFeedSyncRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByAppID(ctx, "730")
	assert.ErrorIs(t, err, repository.ErrFeedNeverSynced)

	require.NoError(t, repo.Upsert(ctx, &entity.ReviewFeedSync{AppID: "730", SyncedAt: baseTime}))
	require.NoError(t, repo.Upsert(ctx, &entity.ReviewFeedSync{AppID: "730", SyncedAt: baseTime.Add(time.Hour)}))

	sync, err := repo.FindByAppID(ctx, "730")
	require.NoError(t, err)
	assert.True(t, sync.SyncedAt.Equal(baseTime.Add(time.Hour)))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	failure := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewReviewRepository()
		if _, err := repo.InsertIfAbsent(ctx, newReview("730", "r1", 1, "kept?")); err != nil {
			return err
		}

		return failure
	})
	assert.ErrorIs(t, err, failure)

	var count int64
	require.NoError(t, db.Model(&model.ReviewModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSnapshotTxOptions(t *testing.T) {
	opts := snapshotTxOptions("postgres")
	require.NotNil(t, opts)
	assert.Equal(t, sql.LevelRepeatableRead, opts.Isolation)
	assert.True(t, opts.ReadOnly)

	assert.Nil(t, snapshotTxOptions("sqlite"))
}

func TestTransactionManager_ExecuteSnapshotReadsCountAndPage(t *testing.T) {
	db := testutil.NewTestDB(t)
	txManager := NewTransactionManager(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	for i, id := range []string{"r1", "r2", "r3"} {
		_, err := reviewRepo.InsertIfAbsent(ctx, newReview("730", id, int64(i)+1, "text"))
		require.NoError(t, err)
	}

	var (
		total int64
		rows  []*entity.Review
	)
	err := txManager.ExecuteSnapshot(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewReviewRepository()
		var err error
		if total, err = repo.Count(ctx, repository.ReviewFilter{AppID: "730"}); err != nil {
			return err
		}
		rows, err = repo.List(ctx, repository.ReviewFilter{AppID: "730"}, 0, 10)

		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 3)
}

func TestTransactionManager_CheckViolationRollsBackBatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewReviewRepository()
		for i, id := range []string{"r1", "r2", "r3", "r4", "r5"} {
			review := newReview("730", id, int64(i), "text")
			if i == 2 {
				review.VotesUp = -1
			}
			if _, err := repo.InsertIfAbsent(ctx, review); err != nil {
				return err
			}
		}

		return nil
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)

	var count int64
	require.NoError(t, db.Model(&model.ReviewModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSearchCacheRepository(t *testing.T) {
	repo := NewSearchCacheRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	entries := []*entity.SearchCacheEntry{
		{SearchTerm: "Portal", AppID: "400", Name: "Portal", CreatedAt: baseTime},
		{SearchTerm: "portal 2", AppID: "620", Name: "Portal 2", CreatedAt: baseTime.Add(time.Minute)},
		{SearchTerm: "portal 2", AppID: "400", Name: "Portal", CreatedAt: baseTime.Add(2 * time.Minute)},
	}
	for _, entry := range entries {
		inserted, err := repo.InsertIfAbsent(ctx, entry)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	inserted, err := repo.InsertIfAbsent(ctx, &entity.SearchCacheEntry{SearchTerm: "PORTAL", AppID: "400", CreatedAt: baseTime})
	require.NoError(t, err)
	assert.False(t, inserted)

	found, err := repo.FindByTerm(ctx, "portal", 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "400", found[0].AppID)
	assert.Equal(t, "portal 2", found[0].SearchTerm)
	assert.Equal(t, "620", found[1].AppID)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	user := &entity.User{Email: " Alice@Example.com ", DisplayName: "Alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	found, err := repo.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.DisplayName)

	err = repo.Create(ctx, &entity.User{Email: "alice@example.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_RollbackDiscardsTransactionalCreate(t *testing.T) {
	db := testutil.NewTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	rollback := errors.New("rollback")

	err := txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		users := txRepoFactory.NewUserRepository()
		require.NoError(t, users.Create(ctx, &entity.User{Email: "bob@example.com", PasswordHash: "hash"}))

		_, err := users.FindByEmail(ctx, "bob@example.com")
		require.NoError(t, err)

		return rollback
	})
	require.ErrorIs(t, err, rollback)

	_, err = NewUserRepository(db).FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestFavoriteRepository_ListByUserNewestFirst(t *testing.T) {
	repo := NewFavoriteRepository(testutil.NewTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	for i, appID := range []string{"20", "10", "30"} {
		created := baseTime.Add(time.Duration(i) * time.Hour)
		_, err := repo.Upsert(ctx, &entity.Favorite{UserID: userID, AppID: appID, CreatedAt: created, UpdatedAt: created})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, &entity.Favorite{UserID: uuid.New(), AppID: "40", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "30", list[0].Favorite.AppID)
	assert.Equal(t, "10", list[1].Favorite.AppID)
	assert.Equal(t, "20", list[2].Favorite.AppID)
}

func TestFavoriteRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	games := NewGameRepository(db)
	aggregates := NewReviewAggregateRepository(db)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, games.Upsert(ctx, newGame("730", "Counter-Strike 2")))
	require.NoError(t, aggregates.Upsert(ctx, &entity.ReviewAggregate{AppID: "730", TotalReviews: 4, TotalPositive: 3, UpdatedAt: baseTime}))

	note := "play with friends"
	saved, err := repo.Upsert(ctx, &entity.Favorite{UserID: userID, AppID: "730", Notes: &note, CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)
	require.NotNil(t, saved.Notes)

	saved, err = repo.Upsert(ctx, &entity.Favorite{UserID: userID, AppID: "730", CreatedAt: baseTime.Add(time.Hour), UpdatedAt: baseTime.Add(time.Hour)})
	require.NoError(t, err)
	require.NotNil(t, saved.Notes)
	assert.Equal(t, note, *saved.Notes)
	assert.True(t, saved.CreatedAt.Equal(baseTime))

	_, err = repo.Upsert(ctx, &entity.Favorite{UserID: userID, AppID: "999", CreatedAt: baseTime, UpdatedAt: baseTime})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	byApp := map[string]*entity.FavoriteGame{}
	for _, item := range list {
		byApp[item.Favorite.AppID] = item
	}
	require.NotNil(t, byApp["730"].Game)
	assert.Equal(t, "Counter-Strike 2", byApp["730"].Game.Name)
	assert.InDelta(t, 75.0, byApp["730"].Aggregate.PositivePercentage(), 0.001)
	assert.Nil(t, byApp["999"].Game)

	removed, err := repo.Delete(ctx, userID, "730")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, userID, "730")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMetricsRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	games := NewGameRepository(db)
	aggregates := NewReviewAggregateRepository(db)
	feeds := NewReviewFeedSyncRepository(db)
	metrics := NewMetricsRepository(db)
	ctx := context.Background()

	require.NoError(t, games.Upsert(ctx, newGame("1", "Fresh")))
	require.NoError(t, games.Upsert(ctx, newGame("2", "Old")))
	_, err := games.CreateIfAbsent(ctx, entity.NewPlaceholderGame("3"))
	require.NoError(t, err)

	require.NoError(t, aggregates.Upsert(ctx, &entity.ReviewAggregate{AppID: "1", UpdatedAt: baseTime}))
	require.NoError(t, aggregates.Upsert(ctx, &entity.ReviewAggregate{AppID: "2", UpdatedAt: baseTime.Add(-48 * time.Hour)}))
	require.NoError(t, feeds.Upsert(ctx, &entity.ReviewFeedSync{AppID: "1", SyncedAt: baseTime}))

	staleBefore := baseTime.Add(-24 * time.Hour)
	overview, err := metrics.Overview(ctx, staleBefore)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.Games)
	assert.Equal(t, int64(1), overview.PlaceholderGames)
	assert.Equal(t, int64(2), overview.Aggregates)
	assert.Equal(t, int64(1), overview.StaleAggregates)
	assert.Equal(t, int64(1), overview.MissingAggregates)
	assert.Equal(t, int64(2), overview.StaleFeeds)
	require.NotNil(t, overview.LastAggregateSync)
	assert.True(t, overview.LastAggregateSync.Equal(baseTime))
	assert.Nil(t, overview.LastReviewIngest)
	assert.InDelta(t, 50.0, overview.AggregateFreshness(), 0.001)

	queue, err := metrics.RefreshQueue(ctx, staleBefore, 10)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "3", queue[0].AppID)
	assert.Nil(t, queue[0].AggregateUpdatedAt)
	assert.Equal(t, "2", queue[1].AppID)
	assert.Equal(t, "Old", queue[1].Name)

	require.NoError(t, metrics.Ping(ctx))
}
