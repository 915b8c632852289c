package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteGame, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// Add stores a placeholder game when the application was never fetched.
func (srv *favoriteService) Add(ctx context.Context, input usecase.AddFavoriteInput) (*entity.Favorite, error) {
	if err := validateAppID(input.AppID); err != nil {
		return nil, err
	}

	var stored *entity.Favorite
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if _, err := txRepoFactory.NewGameRepository().CreateIfAbsent(ctx, entity.NewPlaceholderGame(input.AppID)); err != nil {
			return err
		}

		now := time.Now().UTC()
		favorite, err := txRepoFactory.NewFavoriteRepository().Upsert(ctx, &entity.Favorite{
			UserID:    input.UserID,
			AppID:     input.AppID,
			Notes:     input.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		stored = favorite

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite saved", slog.Any("userID", input.UserID), slog.String("appID", input.AppID))

	return stored, nil
}

func (srv *favoriteService) Remove(ctx context.Context, userID uuid.UUID, appID string) error {
	if err := validateAppID(appID); err != nil {
		return err
	}

	deleted, err := srv.favoriteRepo.Delete(ctx, userID, appID)
	if err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}
	if !deleted {
		return domainerrors.ErrFavoriteNotFound
	}

	return nil
}
