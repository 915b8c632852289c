package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"steamcache/config"
	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/domain/constants"
	"steamcache/internal/domain/service"
	"steamcache/internal/usecase"
	"steamcache/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const preloadReason = "preload"

type preloadService struct {
	catalog     usecase.CatalogUsecase
	publisher   service.EventPublisher
	appIDs      []string
	concurrency int
	delay       time.Duration
	logger      *slog.Logger

	// shutdown is cancelled when the application stops; inline runs derive from it.
	shutdown context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
}

// PreloadServiceParams holds dependencies for PreloadService, injected by Fx.
type PreloadServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Catalog   usecase.CatalogUsecase
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPreloadService is the constructor for preloadService.
func NewPreloadService(params PreloadServiceParams) usecase.PreloadUsecase {
	shutdown, cancel := context.WithCancel(context.Background())
	srv := &preloadService{
		catalog:     params.Catalog,
		publisher:   params.Publisher,
		appIDs:      params.Config.Preload.AppIDs,
		concurrency: max(params.Config.Preload.Concurrency, 1),
		delay:       params.Config.Preload.Delay,
		logger:      params.Logger,
		shutdown:    shutdown,
		cancel:      cancel,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: srv.stop,
		})
	}

	return srv
}

// stop cancels inline runs and waits for them to return.
func (srv *preloadService) stop(ctx context.Context) error {
	srv.cancel()

	done := make(chan struct{})
	go func() {
		srv.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "inline preload did not stop")
	}
}

func (srv *preloadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Schedule hands the jobs to the refresh topic when a publisher is configured.
func (srv *preloadService) Schedule(ctx context.Context, limit int) (*usecase.PreloadResult, error) {
	appIDs := srv.selectApps(limit)

	if srv.publisher.Enabled() {
		requestID := deliverycontext.GetRequestIDFromContext(ctx)
		for _, appID := range appIDs {
			event := &service.RefreshEvent{
				RequestID: requestID,
				EventID:   uuid.NewString(),
				Type:      constants.EventTypeRefreshRequested,
				AppID:     appID,
				Reason:    preloadReason,
			}
			if err := srv.publisher.PublishRefreshEvent(ctx, event); err != nil {
				return nil, errors.Wrapf(err, "failed to publish refresh of %s", appID)
			}
		}

		srv.log(ctx).Info("Preload published", slog.Int("apps", len(appIDs)))

		return &usecase.PreloadResult{Mode: usecase.PreloadModePublished, AppIDs: appIDs}, nil
	}

	// The run outlives the request but keeps its request id and logger.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stopOnShutdown := context.AfterFunc(srv.shutdown, cancel)

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()
		defer cancel()
		defer stopOnShutdown()

		report, err := srv.run(runCtx, appIDs)
		if err != nil {
			srv.log(runCtx).Error("Preload interrupted", slog.Any("error", err))

			return
		}
		srv.log(runCtx).Info("Preload finished",
			slog.Int("refreshed", len(report.Refreshed)),
			slog.Int("failed", len(report.Failed)),
		)
	}()

	return &usecase.PreloadResult{Mode: usecase.PreloadModeInline, AppIDs: appIDs}, nil
}

func (srv *preloadService) Run(ctx context.Context, limit int) (*usecase.PreloadReport, error) {
	return srv.run(ctx, srv.selectApps(limit))
}

// run refreshes at most concurrency apps at once and waits delay between job starts.
func (srv *preloadService) run(ctx context.Context, appIDs []string) (*usecase.PreloadReport, error) {
	started := time.Now()
	errs := make([]error, len(appIDs))

	var group errgroup.Group
	group.SetLimit(srv.concurrency)

	var interrupted error
	for i, appID := range appIDs {
		if i > 0 && srv.delay > 0 {
			select {
			case <-ctx.Done():
				interrupted = ctx.Err()
			case <-time.After(srv.delay):
			}
		}
		if interrupted != nil {
			break
		}

		group.Go(func() error {
			if _, err := srv.catalog.RefreshApp(ctx, appID); err != nil {
				srv.log(ctx).Warn("Preload refresh failed", slog.String("appID", appID), slog.Any("error", err))
				errs[i] = err
			}

			return nil
		})
	}
	_ = group.Wait()

	if interrupted != nil {
		return nil, errors.Wrap(interrupted, "preload interrupted")
	}

	report := &usecase.PreloadReport{
		Refreshed: make([]string, 0, len(appIDs)),
		Failed:    make([]usecase.PreloadFailure, 0),
	}
	for i, appID := range appIDs {
		if errs[i] != nil {
			report.Failed = append(report.Failed, usecase.PreloadFailure{AppID: appID, Err: errs[i]})

			continue
		}
		report.Refreshed = append(report.Refreshed, appID)
	}

	srv.log(ctx).Debug("Preload run completed", slog.String("elapsed", util.FormatDuration(time.Since(started))))

	return report, nil
}

func (srv *preloadService) selectApps(limit int) []string {
	if limit <= 0 || limit > len(srv.appIDs) {
		limit = len(srv.appIDs)
	}

	return append([]string(nil), srv.appIDs[:limit]...)
}
