package main

import (
	"context"
	"log/slog"
	"os"

	"steamcache/config"
	"steamcache/internal/delivery"
	"steamcache/internal/delivery/api"
	apimiddleware "steamcache/internal/delivery/api/middleware"
	"steamcache/internal/delivery/api/router/handler"
	"steamcache/internal/infra/auth"
	logs "steamcache/internal/infra/log"
	"steamcache/internal/infra/persistence/postgres"
	"steamcache/internal/infra/pubsub"
	"steamcache/internal/infra/steam"
	"steamcache/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewGameRepository,
			postgres.NewReviewAggregateRepository,
			postgres.NewReviewRepository,
			postgres.NewReviewFeedSyncRepository,
			postgres.NewSearchCacheRepository,
			postgres.NewUserRepository,
			postgres.NewFavoriteRepository,
			postgres.NewMetricsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			steam.New,
			pubsub.NewEventPublisher,
			impl.NewFreshnessOracle,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUpsertCoordinator,
			impl.NewReviewPager,
			impl.NewCatalogService,
			impl.NewSearchService,
			impl.NewUserService,
			impl.NewFavoriteService,
			impl.NewPreloadService,
			impl.NewMetricsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGameHandler,
			handler.NewSearchHandler,
			handler.NewMetricsHandler,
			handler.NewHealthHandler,
			handler.NewUserHandler,
			handler.NewFavoriteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
