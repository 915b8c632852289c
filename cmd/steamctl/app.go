package main

import (
	"context"

	"steamcache/config"
	"steamcache/internal/domain/lifecycle"
	logs "steamcache/internal/infra/log"
	"steamcache/internal/infra/persistence/postgres"
	"steamcache/internal/infra/pubsub"
	"steamcache/internal/infra/steam"
	"steamcache/internal/usecase"
	"steamcache/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// deps is what the commands need from the fx graph.
type deps struct {
	db      *gorm.DB
	catalog usecase.CatalogUsecase
	preload usecase.PreloadUsecase
	metrics usecase.MetricsUsecase
}

func appOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewGameRepository,
			postgres.NewReviewAggregateRepository,
			postgres.NewReviewRepository,
			postgres.NewReviewFeedSyncRepository,
			postgres.NewMetricsRepository,
		),
		fx.Provide(
			steam.New,
			pubsub.NewEventPublisher,
			impl.NewFreshnessOracle,
		),
		fx.Provide(
			impl.NewUpsertCoordinator,
			impl.NewReviewPager,
			impl.NewCatalogService,
			impl.NewPreloadService,
			impl.NewMetricsService,
		),
	)
}

// withApp starts the graph, runs fn and stops the graph again.
func withApp(ctx context.Context, fn func(context.Context, *deps) error) (err error) {
	var d deps
	app := fx.New(
		appOptions(),
		fx.Populate(&d.db, &d.catalog, &d.preload, &d.metrics),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop application")
		}
	}()

	return fn(ctx, &d)
}
