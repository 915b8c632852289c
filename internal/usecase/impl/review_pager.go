package impl

import (
	"context"

	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/usecase"
	"steamcache/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewPager struct {
	txManager repository.TransactionManager
}

// ReviewPagerParams holds dependencies for the pager, injected by Fx.
type ReviewPagerParams struct {
	fx.In

	TxManager repository.TransactionManager
}

// NewReviewPager is the constructor for reviewPager.
func NewReviewPager(params ReviewPagerParams) usecase.ReviewPager {
	return &reviewPager{txManager: params.TxManager}
}

// ListPage reads the total and the rows of a 1-based page from one snapshot.
func (p *reviewPager) ListPage(ctx context.Context, appID, language string, page, pageSize int) (*usecase.ReviewPage, error) {
	if page < 1 {
		return nil, domainerrors.ErrInvalidCursor.WrapMessage("page must be positive")
	}
	if pageSize < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("page size must be positive")
	}

	filter := repository.ReviewFilter{
		AppID:    appID,
		Language: util.NormalizeLanguageFilter(language),
	}
	offset := (page - 1) * pageSize

	result := &usecase.ReviewPage{}
	err := p.txManager.ExecuteSnapshot(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		reviewRepo := txRepoFactory.NewReviewRepository()

		total, err := reviewRepo.Count(ctx, filter)
		if err != nil {
			return err
		}

		reviews, err := reviewRepo.List(ctx, filter, offset, pageSize)
		if err != nil {
			return err
		}

		result.Total = total
		result.Reviews = reviews
		result.HasMore = int64(offset+pageSize) < total

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list review page %d of %s", page, appID)
	}

	return result, nil
}
