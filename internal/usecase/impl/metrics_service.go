package impl

import (
	"context"
	"time"

	"steamcache/config"
	"steamcache/internal/domain/entity"
	"steamcache/internal/domain/freshness"
	"steamcache/internal/domain/repository"
	"steamcache/internal/usecase"
	"steamcache/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRefreshQueueLimit = 20

type metricsService struct {
	metricsRepo repository.MetricsRepository
	oracle      *freshness.Oracle
	maxPageSize int
}

// MetricsServiceParams holds dependencies for MetricsService, injected by Fx.
type MetricsServiceParams struct {
	fx.In

	MetricsRepo repository.MetricsRepository
	Oracle      *freshness.Oracle
	Config      *config.Config
}

// NewMetricsService is the constructor for metricsService.
func NewMetricsService(params MetricsServiceParams) usecase.MetricsUsecase {
	return &metricsService{
		metricsRepo: params.MetricsRepo,
		oracle:      params.Oracle,
		maxPageSize: params.Config.Cache.MaxPageSize,
	}
}

func (srv *metricsService) Overview(ctx context.Context) (*usecase.Overview, error) {
	metrics, err := srv.metricsRepo.Overview(ctx, srv.staleBefore())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cache overview")
	}

	return &usecase.Overview{
		Metrics:          metrics,
		FreshnessPercent: metrics.AggregateFreshness(),
		ExpirationHours:  srv.oracle.ThresholdHours(),
	}, nil
}

// RefreshQueue lists games whose aggregate is missing first, then the oldest stale ones.
func (srv *metricsService) RefreshQueue(ctx context.Context, limit int) ([]*entity.RefreshQueueItem, error) {
	limit = util.ClampPageSize(limit, defaultRefreshQueueLimit, srv.maxPageSize)

	items, err := srv.metricsRepo.RefreshQueue(ctx, srv.staleBefore(), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read refresh queue")
	}

	return items, nil
}

func (srv *metricsService) Health(ctx context.Context) error {
	return srv.metricsRepo.Ping(ctx)
}

func (srv *metricsService) staleBefore() time.Time {
	window := time.Duration(srv.oracle.ThresholdHours() * float64(time.Hour))

	return srv.oracle.Now().Add(-window)
}
