package postgres

import (
	"context"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"
	"steamcache/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type favoriteRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db, q: query.Use(db)}
}

// Upsert adds the favorite; on conflict a nil note keeps the stored one.
func (repo *favoriteRepository) Upsert(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		AppID:     favorite.AppID,
		Notes:     favorite.Notes,
		CreatedAt: favorite.CreatedAt,
		UpdatedAt: favorite.UpdatedAt,
	}

	f := repo.q.FavoriteModel
	err := f.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "app_id"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "notes"}, Value: gorm.Expr("COALESCE(excluded.notes, favorites.notes)")},
				{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("excluded.updated_at")},
			},
		}).
		Create(favoriteM)
	if err != nil {
		return nil, translateWriteError(err, "failed to save favorite")
	}

	stored, err := f.WithContext(ctx).
		Where(f.UserID.Eq(favorite.UserID), f.AppID.Eq(favorite.AppID)).
		Take()
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read saved favorite")
	}

	return toFavoriteDomain(stored), nil
}

func (repo *favoriteRepository) Delete(ctx context.Context, userID uuid.UUID, appID string) (bool, error) {
	f := repo.q.FavoriteModel
	result, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID), f.AppID.Eq(appID)).
		Delete()
	if err != nil {
		return false, domainerrors.NewStoreError(err, "failed to delete favorite")
	}

	return result.RowsAffected > 0, nil
}

// ListByUser returns favorites newest first with their game and aggregate when stored.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteGame, error) {
	f := repo.q.FavoriteModel
	rows, err := f.WithContext(ctx).
		Where(f.UserID.Eq(userID)).
		Order(f.CreatedAt.Desc(), f.AppID).
		Find()
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list favorites")
	}

	appIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		appIDs = append(appIDs, row.AppID)
	}

	games, err := findGamesByAppIDs(ctx, repo.db, appIDs)
	if err != nil {
		return nil, err
	}

	aggregates := make(map[string]*entity.ReviewAggregate, len(appIDs))
	if len(appIDs) > 0 {
		var aggregateRows []*model.ReviewAggregateModel
		if err := repo.db.WithContext(ctx).Where("app_id IN ?", appIDs).Find(&aggregateRows).Error; err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to load favorite aggregates")
		}
		for _, row := range aggregateRows {
			aggregates[row.AppID] = toReviewAggregateDomain(row)
		}
	}

	favorites := make([]*entity.FavoriteGame, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, &entity.FavoriteGame{
			Favorite:  toFavoriteDomain(row),
			Game:      games[row.AppID],
			Aggregate: aggregates[row.AppID],
		})
	}

	return favorites, nil
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		UserID:    data.UserID,
		AppID:     data.AppID,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
