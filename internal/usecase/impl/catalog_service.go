package impl

import (
	"context"
	"log/slog"
	"time"

	"steamcache/config"
	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/domain/constants"
	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/freshness"
	"steamcache/internal/domain/pagination"
	"steamcache/internal/domain/repository"
	"steamcache/internal/domain/service"
	"steamcache/internal/usecase"
	"steamcache/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	gameRepo      repository.GameRepository
	aggregateRepo repository.ReviewAggregateRepository
	reviewRepo    repository.ReviewRepository
	feedSyncRepo  repository.ReviewFeedSyncRepository
	steam         service.SteamSource
	coordinator   usecase.UpsertCoordinator
	pager         usecase.ReviewPager
	oracle        *freshness.Oracle

	pageSize       int
	maxPageSize    int
	metadataLocale string

	logger *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	GameRepo      repository.GameRepository
	AggregateRepo repository.ReviewAggregateRepository
	ReviewRepo    repository.ReviewRepository
	FeedSyncRepo  repository.ReviewFeedSyncRepository
	Steam         service.SteamSource
	Coordinator   usecase.UpsertCoordinator
	Pager         usecase.ReviewPager
	Oracle        *freshness.Oracle
	Config        *config.Config
	Logger        *slog.Logger
}

// NewFreshnessOracle builds the process-wide oracle from the cache window.
func NewFreshnessOracle(cfg *config.Config) *freshness.Oracle {
	return freshness.NewOracle(cfg.Cache.ExpirationHours, func() time.Time {
		return time.Now().UTC()
	})
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		gameRepo:       params.GameRepo,
		aggregateRepo:  params.AggregateRepo,
		reviewRepo:     params.ReviewRepo,
		feedSyncRepo:   params.FeedSyncRepo,
		steam:          params.Steam,
		coordinator:    params.Coordinator,
		pager:          params.Pager,
		oracle:         params.Oracle,
		pageSize:       params.Config.Cache.ReviewPageSize,
		maxPageSize:    params.Config.Cache.MaxPageSize,
		metadataLocale: params.Config.Steam.MetadataLocale,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) IsRefreshNeeded(ctx context.Context, appID string) (bool, error) {
	decision, err := srv.RefreshStatus(ctx, appID)
	if err != nil {
		return false, err
	}

	return decision.NeedsRefresh(), nil
}

// RefreshStatus reports which stored parts of the application are missing or stale.
func (srv *catalogService) RefreshStatus(ctx context.Context, appID string) (freshness.Decision, error) {
	if err := validateAppID(appID); err != nil {
		return freshness.Decision{}, err
	}

	state, err := srv.loadState(ctx, appID)
	if err != nil {
		return freshness.Decision{}, err
	}

	return srv.decide(state), nil
}

// FetchGameBundle serves the stored game and aggregate while all of them are fresh.
func (srv *catalogService) FetchGameBundle(ctx context.Context, appID string) (*usecase.GameBundle, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	state, err := srv.loadState(ctx, appID)
	if err != nil {
		return nil, err
	}

	decision := srv.decide(state)
	if !decision.NeedsRefresh() {
		srv.log(ctx).Debug("Serving game bundle from cache", slog.String("appID", appID))

		return &usecase.GameBundle{
			FromCache: true,
			Game:      state.game,
			Aggregate: state.aggregate,
		}, nil
	}

	srv.log(ctx).Info("Fetching game bundle from Steam",
		slog.String("appID", appID),
		slog.Bool("gameMissing", decision.GameMissing),
		slog.Bool("aggregateStale", decision.AggregateStale),
		slog.Bool("feedStale", decision.FeedStale),
	)

	outcome, game, err := srv.ensureGame(ctx, appID)
	if err != nil {
		return nil, err
	}

	aggregate, err := srv.fetchAggregate(ctx, appID)
	if err != nil {
		return nil, err
	}

	if decision.FeedStale {
		if _, _, err := srv.fetchRemotePage(ctx, appID, pagination.StartToken, srv.pageSize, constants.LanguageAll); err != nil {
			srv.log(ctx).Warn("Failed to prime review feed", slog.String("appID", appID), slog.Any("error", err))
		}
	}

	return &usecase.GameBundle{
		FromCache:     false,
		Game:          game,
		Aggregate:     aggregate,
		MetadataFetch: outcome,
	}, nil
}

// FetchGameDetails serves stored metadata unless the game is missing or a placeholder.
func (srv *catalogService) FetchGameDetails(ctx context.Context, appID string) (*usecase.GameDetails, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	outcome, game, err := srv.ensureGame(ctx, appID)
	if err != nil {
		return nil, err
	}

	return &usecase.GameDetails{
		FromCache:     !outcome.Attempted,
		Game:          game,
		MetadataFetch: outcome,
	}, nil
}

// FetchReviewsPage keeps offset sessions local and upstream sessions remote.
// A new session starts locally only when the feed is fresh and has matching rows.
func (srv *catalogService) FetchReviewsPage(ctx context.Context, input usecase.ReviewsPageInput) (*usecase.ReviewsPage, error) {
	if err := validateAppID(input.AppID); err != nil {
		return nil, err
	}

	cursor, err := pagination.Decode(input.Cursor)
	if err != nil {
		return nil, err
	}

	pageSize := util.ClampPageSize(input.PageSize, srv.pageSize, srv.maxPageSize)
	language := util.NormalizeLanguageFilter(input.Language)

	switch cursor.Kind() {
	case pagination.KindOffset:
		return srv.localReviewsPage(ctx, input.AppID, language, cursor.Page(), pageSize)
	case pagination.KindUpstream:
		return srv.remoteReviewsPage(ctx, input.AppID, cursor.Token(), pageSize, language)
	}

	local, err := srv.feedServableLocally(ctx, input.AppID, language)
	if err != nil {
		return nil, err
	}
	if local {
		return srv.localReviewsPage(ctx, input.AppID, language, 1, pageSize)
	}

	return srv.remoteReviewsPage(ctx, input.AppID, pagination.StartToken, pageSize, language)
}

func (srv *catalogService) GetReviewAggregate(ctx context.Context, appID string) (*entity.ReviewAggregate, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	aggregate, err := srv.aggregateRepo.FindByAppID(ctx, appID)
	if errors.Is(err, repository.ErrAggregateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read review aggregate %s", appID)
	}

	return aggregate, nil
}

func (srv *catalogService) LanguageStats(ctx context.Context, appID string) ([]*entity.LanguageCount, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	counts, err := srv.reviewRepo.CountByLanguage(ctx, appID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read language stats of %s", appID)
	}

	return counts, nil
}

// RefreshApp ignores freshness; aggregate and first page failures are returned for retry.
func (srv *catalogService) RefreshApp(ctx context.Context, appID string) (*usecase.RefreshResult, error) {
	before, err := srv.RefreshStatus(ctx, appID)
	if err != nil {
		return nil, err
	}

	outcome, game, err := srv.ensureGame(ctx, appID)
	if err != nil {
		return nil, err
	}

	aggregate, err := srv.fetchAggregate(ctx, appID)
	if err != nil {
		return nil, err
	}

	_, inserted, err := srv.fetchRemotePage(ctx, appID, pagination.StartToken, srv.pageSize, constants.LanguageAll)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Application refreshed",
		slog.String("appID", appID),
		slog.Int("insertedReviews", inserted),
		slog.Bool("metadataFetched", outcome.Succeeded),
	)

	return &usecase.RefreshResult{
		AppID:           appID,
		Before:          before,
		Game:            game,
		Aggregate:       aggregate,
		InsertedReviews: inserted,
		MetadataFetch:   outcome,
	}, nil
}

type catalogState struct {
	game         *entity.Game
	aggregate    *entity.ReviewAggregate
	feedSyncedAt *time.Time
}

func (srv *catalogService) loadState(ctx context.Context, appID string) (*catalogState, error) {
	state := &catalogState{}

	game, err := srv.gameRepo.FindByAppID(ctx, appID)
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
	case err != nil:
		return nil, errors.Wrapf(err, "failed to read game %s", appID)
	default:
		state.game = game
	}

	aggregate, err := srv.aggregateRepo.FindByAppID(ctx, appID)
	switch {
	case errors.Is(err, repository.ErrAggregateNotFound):
	case err != nil:
		return nil, errors.Wrapf(err, "failed to read review aggregate %s", appID)
	default:
		state.aggregate = aggregate
	}

	state.feedSyncedAt, err = srv.feedUpdatedAt(ctx, appID)
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (srv *catalogService) decide(state *catalogState) freshness.Decision {
	snapshot := freshness.Snapshot{
		GameExists:    state.game != nil,
		FeedUpdatedAt: state.feedSyncedAt,
	}
	if state.aggregate != nil {
		updatedAt := state.aggregate.UpdatedAt
		snapshot.AggregateUpdatedAt = &updatedAt
	}

	return srv.oracle.Decide(snapshot)
}

// feedUpdatedAt falls back to the newest ingested review when no sync was recorded.
func (srv *catalogService) feedUpdatedAt(ctx context.Context, appID string) (*time.Time, error) {
	sync, err := srv.feedSyncRepo.FindByAppID(ctx, appID)
	if err == nil {
		syncedAt := sync.SyncedAt

		return &syncedAt, nil
	}
	if !errors.Is(err, repository.ErrFeedNeverSynced) {
		return nil, errors.Wrapf(err, "failed to read feed sync of %s", appID)
	}

	latest, err := srv.reviewRepo.LatestIngestedAt(ctx, appID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read latest review of %s", appID)
	}

	return latest, nil
}

func (srv *catalogService) feedServableLocally(ctx context.Context, appID, language string) (bool, error) {
	syncedAt, err := srv.feedUpdatedAt(ctx, appID)
	if err != nil {
		return false, err
	}
	if srv.oracle.IsStale(syncedAt) {
		return false, nil
	}

	total, err := srv.reviewRepo.Count(ctx, repository.ReviewFilter{AppID: appID, Language: language})
	if err != nil {
		return false, errors.Wrapf(err, "failed to count reviews of %s", appID)
	}

	return total > 0, nil
}

func (srv *catalogService) localReviewsPage(ctx context.Context, appID, language string, page, pageSize int) (*usecase.ReviewsPage, error) {
	stored, err := srv.pager.ListPage(ctx, appID, language, page, pageSize)
	if err != nil {
		return nil, err
	}

	next := pagination.End()
	if stored.HasMore {
		next = pagination.Offset(page + 1)
	}

	return &usecase.ReviewsPage{
		FromCache:  true,
		Reviews:    stored.Reviews,
		NextCursor: next,
		TotalCount: stored.Total,
	}, nil
}

func (srv *catalogService) remoteReviewsPage(ctx context.Context, appID, token string, pageSize int, language string) (*usecase.ReviewsPage, error) {
	outcome, _, err := srv.ensureGame(ctx, appID)
	if err != nil {
		return nil, err
	}

	remote, inserted, err := srv.fetchRemotePage(ctx, appID, token, pageSize, language)
	if err != nil {
		return nil, err
	}

	fetchedAt := srv.oracle.Now()
	reviews := make([]*entity.Review, 0, len(remote.Reviews))
	for i := range remote.Reviews {
		reviews = append(reviews, reviewFromItem(appID, &remote.Reviews[i], fetchedAt))
	}

	var total int64
	if remote.TotalReviews != nil {
		total = *remote.TotalReviews
	} else {
		total, err = srv.reviewRepo.Count(ctx, repository.ReviewFilter{AppID: appID, Language: language})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count reviews of %s", appID)
		}
	}

	return &usecase.ReviewsPage{
		FromCache:     false,
		Reviews:       reviews,
		NextCursor:    pagination.Upstream(remote.NextCursor),
		TotalCount:    total,
		Inserted:      inserted,
		MetadataFetch: outcome,
	}, nil
}

// fetchRemotePage stores one upstream page. Only an unfiltered first page marks the feed synced.
func (srv *catalogService) fetchRemotePage(ctx context.Context, appID, token string, pageSize int, language string) (*service.ReviewPage, int, error) {
	remote, err := srv.steam.GetReviewsPage(ctx, service.ReviewPageQuery{
		AppID:    appID,
		Cursor:   token,
		PageSize: pageSize,
		Language: language,
	})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to fetch reviews of %s", appID)
	}

	inserted, err := srv.coordinator.UpsertReviews(ctx, appID, remote.Reviews)
	if err != nil {
		return nil, 0, err
	}

	if token == pagination.StartToken && language == constants.LanguageAll {
		if err := srv.coordinator.RecordFeedSync(ctx, appID); err != nil {
			return nil, 0, err
		}
	}

	return remote, inserted, nil
}

func (srv *catalogService) fetchAggregate(ctx context.Context, appID string) (*entity.ReviewAggregate, error) {
	summary, err := srv.steam.GetReviewSummary(ctx, appID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch review summary of %s", appID)
	}

	return srv.coordinator.UpsertReviewAggregate(ctx, appID, summary)
}

// ensureGame fetches metadata when the game is missing or a placeholder.
// Fetch failures never fail the caller; a missing game gets a placeholder instead.
// A placeholder that cannot be stored is a store failure and is returned.
func (srv *catalogService) ensureGame(ctx context.Context, appID string) (usecase.SideFetchOutcome, *entity.Game, error) {
	game, err := srv.gameRepo.FindByAppID(ctx, appID)
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		game = nil
	case err != nil:
		return usecase.SideFetchOutcome{}, nil, errors.Wrapf(err, "failed to read game %s", appID)
	case !game.Placeholder:
		return usecase.SideFetchOutcome{}, game, nil
	}

	outcome := usecase.SideFetchOutcome{Attempted: true}

	metadata, fetchErr := srv.steam.GetAppMetadata(ctx, appID, srv.metadataLocale)
	if fetchErr == nil {
		stored, upsertErr := srv.coordinator.UpsertGame(ctx, appID, metadata)
		if upsertErr == nil {
			outcome.Succeeded = true

			return outcome, stored, nil
		}
		fetchErr = upsertErr
	}

	outcome.Err = fetchErr
	srv.log(ctx).Warn("Metadata side-fetch failed",
		slog.String("appID", appID),
		slog.Bool("upstream", domainerrors.IsUpstreamFailure(fetchErr)),
		slog.Any("error", fetchErr),
	)

	if game != nil {
		return outcome, game, nil
	}

	placeholder, err := srv.coordinator.UpsertPlaceholderGame(ctx, appID)
	if err != nil {
		return outcome, nil, err
	}
	outcome.Placeholder = true

	return outcome, placeholder, nil
}

func validateAppID(appID string) error {
	if !util.IsNumericID(appID) {
		return domainerrors.ErrInvalidAppID.WrapMessage(appID)
	}

	return nil
}
