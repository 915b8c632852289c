package impl

import (
	"context"
	"testing"
	"time"

	"steamcache/internal/domain/constants"
	deliverycontext "steamcache/internal/delivery/context"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/service"
	mockSvc "steamcache/internal/mocks/service"
	mockUC "steamcache/internal/mocks/usecase"
	"steamcache/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type preloadFixtures struct {
	catalog   catalogFixtures
	publisher *mockSvc.MockEventPublisher
	service   usecase.PreloadUsecase
}

func createTestPreloadService(t *testing.T) preloadFixtures {
	t.Helper()

	catalog := createTestCatalogService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewPreloadService(PreloadServiceParams{
		Catalog:   catalog.service,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return preloadFixtures{catalog: catalog, publisher: publisher, service: svc}
}

func TestPreloadService_Schedule_Publishes(t *testing.T) {
	fx := createTestPreloadService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	var published []*service.RefreshEvent
	fx.publisher.EXPECT().Enabled().Return(true)
	fx.publisher.EXPECT().
		PublishRefreshEvent(mock.Anything, mock.AnythingOfType("*service.RefreshEvent")).
		Run(func(_ context.Context, event *service.RefreshEvent) {
			published = append(published, event)
		}).
		Return(nil).
		Times(2)

	result, err := fx.service.Schedule(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, usecase.PreloadModePublished, result.Mode)
	assert.Equal(t, []string{"730", "570"}, result.AppIDs)
	require.Len(t, published, 2)
	assert.Equal(t, "730", published[0].AppID)
	assert.Equal(t, constants.EventTypeRefreshRequested, published[0].Type)
	assert.Equal(t, "req-1", published[0].RequestID)
	assert.NotEmpty(t, published[0].EventID)
	assert.NotEqual(t, published[0].EventID, published[1].EventID)
}

func TestPreloadService_Schedule_PublishFailure(t *testing.T) {
	fx := createTestPreloadService(t)

	fx.publisher.EXPECT().Enabled().Return(true)
	fx.publisher.EXPECT().PublishRefreshEvent(mock.Anything, mock.Anything).Return(errors.New("topic closed")).Once()

	_, err := fx.service.Schedule(context.Background(), 0)

	require.Error(t, err)
}

func TestPreloadService_Run_CollectsFailures(t *testing.T) {
	fx := createTestPreloadService(t)
	steam := fx.catalog.steam

	steam.EXPECT().GetAppMetadata(mock.Anything, mock.Anything, "portuguese").
		Return(&service.AppMetadata{Name: ptr("Game")}, nil)
	steam.EXPECT().GetReviewSummary(mock.Anything, "730").
		Return(counterStrikeSummary(), nil).Once()
	steam.EXPECT().GetReviewSummary(mock.Anything, "570").
		Return(nil, domainerrors.NewUpstreamError("steam.appreviews.summary", 429, nil)).Once()
	steam.EXPECT().GetReviewsPage(mock.Anything, firstPageQuery("730")).
		Return(&service.ReviewPage{Reviews: reviewItems("cs", 2, "english")}, nil).Once()

	report, err := fx.service.Run(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"730"}, report.Refreshed)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "570", report.Failed[0].AppID)
	require.ErrorIs(t, report.Failed[0].Err, domainerrors.ErrUpstreamUnavailable)
}

func TestPreloadService_StopCancelsInlineRun(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	catalog := mockUC.NewMockCatalogUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	cfg.Preload.Concurrency = 1
	cfg.Preload.Delay = time.Hour

	refreshed := make(chan string, len(cfg.Preload.AppIDs))
	publisher.EXPECT().Enabled().Return(false)
	catalog.EXPECT().RefreshApp(mock.Anything, "730").
		Run(func(_ context.Context, appID string) { refreshed <- appID }).
		Return(&usecase.RefreshResult{AppID: "730"}, nil).Once()

	svc := NewPreloadService(PreloadServiceParams{
		Lc:        lc,
		Catalog:   catalog,
		Publisher: publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	lc.RequireStart()

	result, err := svc.Schedule(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, usecase.PreloadModeInline, result.Mode)

	select {
	case appID := <-refreshed:
		assert.Equal(t, "730", appID)
	case <-time.After(5 * time.Second):
		t.Fatal("inline preload never started")
	}

	// The run is parked on the hour-long delay; stopping must end it.
	lc.RequireStop()
	assert.Empty(t, refreshed)
}
