package postgres

import (
	"context"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateUpsertColumns take the incoming values on conflict, updated_at included,
// so the stored stamp is the caller's and not gorm's clock.
var aggregateUpsertColumns = []string{
	"total_reviews",
	"total_positive",
	"total_negative",
	"review_score",
	"review_score_desc",
	"updated_at",
}

type reviewAggregateRepository struct {
	db *gorm.DB
}

// NewReviewAggregateRepository is the constructor for reviewAggregateRepository.
func NewReviewAggregateRepository(db *gorm.DB) repository.ReviewAggregateRepository {
	return &reviewAggregateRepository{db: db}
}

func (repo *reviewAggregateRepository) FindByAppID(ctx context.Context, appID string) (*entity.ReviewAggregate, error) {
	var aggregateM model.ReviewAggregateModel
	err := repo.db.WithContext(ctx).Where("app_id = ?", appID).Take(&aggregateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAggregateNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find review aggregate")
	}

	return toReviewAggregateDomain(&aggregateM), nil
}

// Upsert writes the whole row; the previous summary is discarded.
func (repo *reviewAggregateRepository) Upsert(ctx context.Context, aggregate *entity.ReviewAggregate) error {
	aggregateM := fromReviewAggregateDomain(aggregate)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "app_id"}},
			DoUpdates: clause.AssignmentColumns(aggregateUpsertColumns),
		}).
		Create(aggregateM).Error
	if err != nil {
		return translateWriteError(err, "failed to upsert review aggregate")
	}

	aggregate.UpdatedAt = aggregateM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toReviewAggregateDomain(data *model.ReviewAggregateModel) *entity.ReviewAggregate {
	if data == nil {
		return nil
	}

	return &entity.ReviewAggregate{
		AppID:           data.AppID,
		TotalReviews:    data.TotalReviews,
		TotalPositive:   data.TotalPositive,
		TotalNegative:   data.TotalNegative,
		ReviewScore:     data.ReviewScore,
		ReviewScoreDesc: data.ReviewScoreDesc,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromReviewAggregateDomain(data *entity.ReviewAggregate) *model.ReviewAggregateModel {
	if data == nil {
		return nil
	}

	return &model.ReviewAggregateModel{
		AppID:           data.AppID,
		TotalReviews:    data.TotalReviews,
		TotalPositive:   data.TotalPositive,
		TotalNegative:   data.TotalNegative,
		ReviewScore:     data.ReviewScore,
		ReviewScoreDesc: data.ReviewScoreDesc,
		UpdatedAt:       data.UpdatedAt,
	}
}
