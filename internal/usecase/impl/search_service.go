package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"steamcache/config"
	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/domain/service"
	"steamcache/internal/usecase"
	"steamcache/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultKeywordLimit       = 20
	defaultReviewKeywordLimit = 10
	defaultTopGamesLimit      = 50
	defaultTopGamesMinReviews = 100
)

type searchService struct {
	txManager       repository.TransactionManager
	gameRepo        repository.GameRepository
	reviewRepo      repository.ReviewRepository
	searchCacheRepo repository.SearchCacheRepository
	steam           service.AppSearchSource

	minTermLength int
	localLimit    int
	remoteLimit   int
	maxPageSize   int
	cdnBaseURL    string

	logger *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	GameRepo        repository.GameRepository
	ReviewRepo      repository.ReviewRepository
	SearchCacheRepo repository.SearchCacheRepository
	Steam           service.SteamSource
	Config          *config.Config
	Logger          *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		txManager:       params.TxManager,
		gameRepo:        params.GameRepo,
		reviewRepo:      params.ReviewRepo,
		searchCacheRepo: params.SearchCacheRepo,
		steam:           params.Steam,
		minTermLength:   params.Config.Search.MinTermLength,
		localLimit:      params.Config.Search.LocalLimit,
		remoteLimit:     params.Config.Search.RemoteLimit,
		maxPageSize:     params.Config.Cache.MaxPageSize,
		cdnBaseURL:      strings.TrimRight(params.Config.Steam.CDNBaseURL, "/"),
		logger:          params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchGames answers from stored games, then the search cache, then Steam.
func (srv *searchService) SearchGames(ctx context.Context, term string) (*usecase.SearchOutput, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < srv.minTermLength {
		return nil, domainerrors.ErrSearchTermTooShort.WrapMessage(
			fmt.Sprintf("search term needs at least %d characters", srv.minTermLength))
	}

	games, err := srv.gameRepo.SearchByName(ctx, term, srv.localLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stored games")
	}

	hits := make([]*entity.GameSearchHit, 0, len(games))
	for _, game := range games {
		if game.Placeholder {
			continue
		}
		hits = append(hits, srv.hit(game.AppID, game.Name, game.HeaderImage))
	}
	if len(hits) > 0 {
		srv.log(ctx).Debug("Search served from stored games", slog.String("term", term), slog.Int("results", len(hits)))

		return &usecase.SearchOutput{Term: term, Source: usecase.SearchSourceLocal, FromCache: true, Games: hits}, nil
	}

	entries, err := srv.searchCacheRepo.FindByTerm(ctx, term, srv.localLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read search cache")
	}
	if len(entries) > 0 {
		for _, entry := range entries {
			hits = append(hits, srv.hit(entry.AppID, entry.Name, entry.HeaderImage))
		}
		srv.log(ctx).Debug("Search served from search cache", slog.String("term", term), slog.Int("results", len(hits)))

		return &usecase.SearchOutput{Term: term, Source: usecase.SearchSourceCache, FromCache: true, Games: hits}, nil
	}

	return srv.searchRemote(ctx, term)
}

func (srv *searchService) searchRemote(ctx context.Context, term string) (*usecase.SearchOutput, error) {
	results, err := srv.steam.SearchApps(ctx, term)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search Steam for %q", term)
	}
	if len(results) > srv.remoteLimit {
		results = results[:srv.remoteLimit]
	}

	hits := make([]*entity.GameSearchHit, 0, len(results))
	for _, result := range results {
		hits = append(hits, srv.hit(result.AppID, result.Name, ""))
	}

	if len(hits) > 0 {
		createdAt := time.Now().UTC()
		err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			cacheRepo := txRepoFactory.NewSearchCacheRepository()
			for _, hit := range hits {
				if _, err := cacheRepo.InsertIfAbsent(ctx, &entity.SearchCacheEntry{
					SearchTerm:  term,
					AppID:       hit.AppID,
					Name:        hit.Name,
					HeaderImage: hit.HeaderImage,
					CreatedAt:   createdAt,
				}); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to save search results")
		}
	}

	srv.log(ctx).Info("Search served from Steam", slog.String("term", term), slog.Int("results", len(hits)))

	return &usecase.SearchOutput{Term: term, Source: usecase.SearchSourceRemote, FromCache: false, Games: hits}, nil
}

func (srv *searchService) SearchByKeywords(ctx context.Context, input usecase.KeywordSearchInput) ([]*entity.KeywordGameMatch, error) {
	keywords := util.SplitKeywords(input.Keywords...)
	if len(keywords) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one keyword is required")
	}

	limit := util.ClampPageSize(input.Limit, defaultKeywordLimit, srv.maxPageSize)
	minMatches := max(input.MinMatches, 1)

	matches, err := srv.reviewRepo.SearchGamesByKeywords(ctx, keywords, limit, minMatches)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search games by keywords")
	}

	return matches, nil
}

func (srv *searchService) ReviewsWithKeywords(ctx context.Context, input usecase.ReviewKeywordInput) ([]*entity.ReviewMatch, error) {
	if err := validateAppID(input.AppID); err != nil {
		return nil, err
	}

	keywords := util.SplitKeywords(input.Keywords...)
	if len(keywords) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one keyword is required")
	}

	limit := util.ClampPageSize(input.Limit, defaultReviewKeywordLimit, srv.maxPageSize)

	matches, err := srv.reviewRepo.FindWithKeywords(ctx, input.AppID, keywords, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search reviews of %s", input.AppID)
	}

	return matches, nil
}

// TopGames falls back to rating order for unknown sorts.
func (srv *searchService) TopGames(ctx context.Context, input usecase.TopGamesInput) ([]*usecase.TopGame, error) {
	limit := util.ClampPageSize(input.Limit, defaultTopGamesLimit, srv.maxPageSize)

	minReviews := input.MinReviews
	if minReviews <= 0 {
		minReviews = defaultTopGamesMinReviews
	}

	sort := input.Sort
	switch sort {
	case repository.TopGamesByRating, repository.TopGamesByReviews, repository.TopGamesByRecent:
	default:
		sort = repository.TopGamesByRating
	}

	ranked, err := srv.gameRepo.FindTop(ctx, limit, minReviews, sort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank games")
	}

	games := make([]*usecase.TopGame, 0, len(ranked))
	for _, top := range ranked {
		games = append(games, &usecase.TopGame{
			Game:               top.Game,
			Aggregate:          top.Aggregate,
			PositivePercentage: top.Aggregate.PositivePercentage(),
		})
	}

	return games, nil
}

func (srv *searchService) hit(appID, name, headerImage string) *entity.GameSearchHit {
	if headerImage == "" {
		headerImage = srv.defaultHeaderImage(appID)
	}

	return &entity.GameSearchHit{AppID: appID, Name: name, HeaderImage: headerImage}
}

func (srv *searchService) defaultHeaderImage(appID string) string {
	return fmt.Sprintf("%s/steam/apps/%s/header.jpg", srv.cdnBaseURL, appID)
}
