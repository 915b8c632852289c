// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type upsertCoordinator struct {
	txManager    repository.TransactionManager
	gameRepo     repository.GameRepository
	feedSyncRepo repository.ReviewFeedSyncRepository
	now          func() time.Time
	logger       *slog.Logger
}

// UpsertCoordinatorParams holds dependencies for the coordinator, injected by Fx.
type UpsertCoordinatorParams struct {
	fx.In

	TxManager    repository.TransactionManager
	GameRepo     repository.GameRepository
	FeedSyncRepo repository.ReviewFeedSyncRepository
	Logger       *slog.Logger
}

// NewUpsertCoordinator is the constructor for upsertCoordinator.
func NewUpsertCoordinator(params UpsertCoordinatorParams) usecase.UpsertCoordinator {
	return &upsertCoordinator{
		txManager:    params.TxManager,
		gameRepo:     params.GameRepo,
		feedSyncRepo: params.FeedSyncRepo,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       params.Logger,
	}
}

func (c *upsertCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// UpsertGame replaces the stored game with the metadata payload.
func (c *upsertCoordinator) UpsertGame(ctx context.Context, appID string, metadata *service.AppMetadata) (*entity.Game, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, domainerrors.ErrInvalidPayload.WrapMessage("game payload has no app id")
	}
	if metadata == nil {
		return nil, domainerrors.ErrInvalidPayload.WrapMessage("game payload is empty")
	}

	if err := c.gameRepo.Upsert(ctx, gameFromMetadata(appID, metadata, c.now())); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert game %s", appID)
	}

	game, err := c.gameRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read game %s", appID)
	}

	c.log(ctx).Debug("Game upserted", slog.String("appID", appID))

	return game, nil
}

// UpsertPlaceholderGame never overwrites an existing row.
func (c *upsertCoordinator) UpsertPlaceholderGame(ctx context.Context, appID string) (*entity.Game, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, domainerrors.ErrInvalidPayload.WrapMessage("placeholder has no app id")
	}

	created, err := c.gameRepo.CreateIfAbsent(ctx, entity.NewPlaceholderGame(appID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create placeholder game %s", appID)
	}

	game, err := c.gameRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read game %s", appID)
	}

	if created {
		c.log(ctx).Info("Placeholder game created", slog.String("appID", appID))
	}

	return game, nil
}

// UpsertReviewAggregate replaces the stored aggregate; missing counters become zero.
func (c *upsertCoordinator) UpsertReviewAggregate(ctx context.Context, appID string, summary *service.ReviewSummary) (*entity.ReviewAggregate, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, domainerrors.ErrInvalidPayload.WrapMessage("review summary has no app id")
	}
	if summary == nil {
		return nil, domainerrors.ErrInvalidPayload.WrapMessage("review summary is empty")
	}

	aggregate := &entity.ReviewAggregate{
		AppID:           appID,
		TotalReviews:    valueOr(summary.TotalReviews, 0),
		TotalPositive:   valueOr(summary.TotalPositive, 0),
		TotalNegative:   valueOr(summary.TotalNegative, 0),
		ReviewScore:     valueOr(summary.ReviewScore, 0),
		ReviewScoreDesc: valueOr(summary.ReviewScoreDesc, ""),
		UpdatedAt:       c.now(),
	}

	err := c.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewReviewAggregateRepository().Upsert(ctx, aggregate)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert review aggregate %s", appID)
	}

	return aggregate, nil
}

// UpsertReviews inserts unseen reviews in one transaction; any failure stores nothing.
func (c *upsertCoordinator) UpsertReviews(ctx context.Context, appID string, items []service.ReviewItem) (int, error) {
	if strings.TrimSpace(appID) == "" {
		return 0, domainerrors.ErrInvalidPayload.WrapMessage("review batch has no app id")
	}
	if len(items) == 0 {
		return 0, nil
	}

	ingestedAt := c.now()
	reviews := make([]*entity.Review, 0, len(items))
	for i := range items {
		if strings.TrimSpace(items[i].RecommendationID) == "" {
			return 0, errors.Wrapf(domainerrors.ErrInvalidPayload, "review %d of app %s has no recommendation id", i, appID)
		}
		reviews = append(reviews, reviewFromItem(appID, &items[i], ingestedAt))
	}

	inserted := 0
	err := c.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		reviewRepo := txRepoFactory.NewReviewRepository()
		count := 0
		for _, review := range reviews {
			created, err := reviewRepo.InsertIfAbsent(ctx, review)
			if err != nil {
				return errors.Wrapf(err, "review %s", review.RecommendationID)
			}
			if created {
				count++
			}
		}
		inserted = count

		return nil
	})
	if err != nil {
		c.log(ctx).Warn("Review batch rolled back", slog.String("appID", appID), slog.Int("size", len(items)), slog.Any("error", err))

		return 0, errors.Wrapf(err, "failed to upsert reviews for %s", appID)
	}

	c.log(ctx).Debug("Reviews upserted", slog.String("appID", appID), slog.Int("received", len(items)), slog.Int("inserted", inserted))

	return inserted, nil
}

func (c *upsertCoordinator) RecordFeedSync(ctx context.Context, appID string) error {
	if strings.TrimSpace(appID) == "" {
		return domainerrors.ErrInvalidPayload.WrapMessage("feed sync has no app id")
	}

	err := c.feedSyncRepo.Upsert(ctx, &entity.ReviewFeedSync{AppID: appID, SyncedAt: c.now()})
	if err != nil {
		return errors.Wrapf(err, "failed to record feed sync for %s", appID)
	}

	return nil
}

func gameFromMetadata(appID string, metadata *service.AppMetadata, now time.Time) *entity.Game {
	name := strings.TrimSpace(valueOr(metadata.Name, ""))
	if name == "" {
		name = appID
	}

	return &entity.Game{
		AppID:            appID,
		Name:             name,
		ShortDescription: valueOr(metadata.ShortDescription, ""),
		HeaderImage:      valueOr(metadata.HeaderImage, ""),
		Developers:       nonNilStrings(metadata.Developers),
		Publishers:       nonNilStrings(metadata.Publishers),
		PriceOverview:    metadata.PriceOverview,
		ReleaseDate:      metadata.ReleaseDate,
		Placeholder:      false,
		UpdatedAt:        now,
	}
}

func reviewFromItem(appID string, item *service.ReviewItem, ingestedAt time.Time) *entity.Review {
	return &entity.Review{
		RecommendationID:         item.RecommendationID,
		AppID:                    appID,
		AuthorSteamID:            valueOr(item.AuthorSteamID, ""),
		AuthorPlaytimeForever:    valueOr(item.AuthorPlaytimeForever, 0),
		AuthorPlaytimeAtReview:   valueOr(item.AuthorPlaytimeAtReview, 0),
		VotedUp:                  valueOr(item.VotedUp, false),
		VotesUp:                  valueOr(item.VotesUp, 0),
		VotesFunny:               valueOr(item.VotesFunny, 0),
		WeightedVoteScore:        valueOr(item.WeightedVoteScore, ""),
		CommentCount:             valueOr(item.CommentCount, 0),
		SteamPurchase:            valueOr(item.SteamPurchase, false),
		ReceivedForFree:          valueOr(item.ReceivedForFree, false),
		WrittenDuringEarlyAccess: valueOr(item.WrittenDuringEarlyAccess, false),
		Text:                     valueOr(item.Review, ""),
		TimestampCreated:         valueOr(item.TimestampCreated, 0),
		TimestampUpdated:         valueOr(item.TimestampUpdated, 0),
		Language:                 util.NormalizeLanguage(valueOr(item.Language, "")),
		IngestedAt:               ingestedAt,
	}
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}

	return *value
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
