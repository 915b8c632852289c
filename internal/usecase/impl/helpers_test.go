package impl

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"steamcache/config"
	"steamcache/internal/domain/repository"
	"steamcache/internal/domain/service"
	"steamcache/internal/infra/persistence/postgres"
	mockSvc "steamcache/internal/mocks/service"
	"steamcache/internal/testutil"
	"steamcache/internal/usecase"

	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:   &config.AuthConfig{MinPasswordLength: 6},
		Cache:  &config.CacheConfig{ExpirationHours: 24, ReviewPageSize: 20, MaxPageSize: 100},
		Steam:  &config.SteamConfig{MetadataLocale: "portuguese", CDNBaseURL: "https://cdn.example.com"},
		Search: &config.SearchConfig{MinTermLength: 2, LocalLimit: 10, RemoteLimit: 10},
		Preload: &config.PreloadConfig{
			AppIDs:      []string{"730", "570", "440"},
			Concurrency: 2,
		},
	}
}

// storeFixtures wires the gorm repositories over a private SQLite database.
type storeFixtures struct {
	db            *gorm.DB
	txManager     repository.TransactionManager
	gameRepo      repository.GameRepository
	aggregateRepo repository.ReviewAggregateRepository
	reviewRepo    repository.ReviewRepository
	feedSyncRepo  repository.ReviewFeedSyncRepository
	searchRepo    repository.SearchCacheRepository
	userRepo      repository.UserRepository
	favoriteRepo  repository.FavoriteRepository
	metricsRepo   repository.MetricsRepository
	coordinator   usecase.UpsertCoordinator
	pager         usecase.ReviewPager
}

func newStoreFixtures(t *testing.T) storeFixtures {
	t.Helper()

	db := testutil.NewTestDB(t)
	txManager := postgres.NewTransactionManager(db)
	gameRepo := postgres.NewGameRepository(db)
	feedSyncRepo := postgres.NewReviewFeedSyncRepository(db)

	return storeFixtures{
		db:            db,
		txManager:     txManager,
		gameRepo:      gameRepo,
		aggregateRepo: postgres.NewReviewAggregateRepository(db),
		reviewRepo:    postgres.NewReviewRepository(db),
		feedSyncRepo:  feedSyncRepo,
		searchRepo:    postgres.NewSearchCacheRepository(db),
		userRepo:      postgres.NewUserRepository(db),
		favoriteRepo:  postgres.NewFavoriteRepository(db),
		metricsRepo:   postgres.NewMetricsRepository(db),
		coordinator: NewUpsertCoordinator(UpsertCoordinatorParams{
			TxManager:    txManager,
			GameRepo:     gameRepo,
			FeedSyncRepo: feedSyncRepo,
			Logger:       newDiscardLogger(),
		}),
		pager: NewReviewPager(ReviewPagerParams{TxManager: txManager}),
	}
}

// catalogFixtures holds all test dependencies for catalog service tests.
type catalogFixtures struct {
	storeFixtures
	service usecase.CatalogUsecase
	steam   *mockSvc.MockSteamSource
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	t.Helper()

	store := newStoreFixtures(t)
	steam := mockSvc.NewMockSteamSource(t)
	cfg := newTestConfig()

	svc := NewCatalogService(CatalogServiceParams{
		GameRepo:      store.gameRepo,
		AggregateRepo: store.aggregateRepo,
		ReviewRepo:    store.reviewRepo,
		FeedSyncRepo:  store.feedSyncRepo,
		Steam:         steam,
		Coordinator:   store.coordinator,
		Pager:         store.pager,
		Oracle:        NewFreshnessOracle(cfg),
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return catalogFixtures{
		storeFixtures: store,
		service:       svc,
		steam:         steam,
	}
}

func ptr[T any](value T) *T {
	return &value
}

// reviewItems builds n reviews created one minute apart, newest first.
func reviewItems(prefix string, n int, language string) []service.ReviewItem {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	items := make([]service.ReviewItem, 0, n)
	for i := range n {
		items = append(items, service.ReviewItem{
			RecommendationID: fmt.Sprintf("%s-%03d", prefix, i),
			AuthorSteamID:    ptr("7656119" + fmt.Sprint(i)),
			VotedUp:          ptr(i%2 == 0),
			VotesUp:          ptr(int64(i)),
			Review:           ptr(fmt.Sprintf("review %d", i)),
			TimestampCreated: ptr(base - int64(i*60)),
			Language:         ptr(language),
		})
	}

	return items
}
