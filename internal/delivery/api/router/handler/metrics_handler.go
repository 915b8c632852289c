package handler

import (
	"log/slog"
	"net/http"
	"time"

	"steamcache/internal/delivery/api/response"
	"steamcache/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MetricsHandlerParams holds dependencies for MetricsHandler, injected by Fx.
type MetricsHandlerParams struct {
	fx.In

	MetricsUC usecase.MetricsUsecase
	PreloadUC usecase.PreloadUsecase
	Logger    *slog.Logger
}

// MetricsHandler serves cache statistics, the refresh queue and preload jobs.
type MetricsHandler struct {
	metricsUC usecase.MetricsUsecase
	preloadUC usecase.PreloadUsecase
	logger    *slog.Logger
}

// NewMetricsHandler is the constructor for MetricsHandler
func NewMetricsHandler(params MetricsHandlerParams) *MetricsHandler {
	return &MetricsHandler{
		metricsUC: params.MetricsUC,
		preloadUC: params.PreloadUC,
		logger:    params.Logger,
	}
}

// LimitRequest carries an optional result limit.
type LimitRequest struct {
	Limit int `query:"limit" json:"limit" validate:"gte=0"`
}

// OverviewResponse summarises what the cache holds.
type OverviewResponse struct {
	Games              int64      `json:"games"`
	PlaceholderGames   int64      `json:"placeholder_games"`
	Aggregates         int64      `json:"aggregates"`
	Reviews            int64      `json:"reviews"`
	Users              int64      `json:"users"`
	Favorites          int64      `json:"favorites"`
	SearchCacheEntries int64      `json:"search_cache_entries"`
	StaleAggregates    int64      `json:"stale_aggregates"`
	MissingAggregates  int64      `json:"missing_aggregates"`
	StaleFeeds         int64      `json:"stale_feeds"`
	LastAggregateSync  *time.Time `json:"last_aggregate_sync"`
	LastReviewIngest   *time.Time `json:"last_review_ingest"`
	FreshnessPercent   float64    `json:"freshness_percent"`
	ExpirationHours    float64    `json:"expiration_hours"`
}

// RefreshQueueResponse is a game waiting for a refetch.
type RefreshQueueResponse struct {
	AppID              string     `json:"app_id"`
	Name               string     `json:"name"`
	AggregateUpdatedAt *time.Time `json:"aggregate_updated_at"`
}

// PreloadResponse lists the games handed to the refresh jobs.
type PreloadResponse struct {
	Mode   string   `json:"mode"`
	AppIDs []string `json:"app_ids"`
}

// Overview returns store counters and the share of fresh aggregates.
func (h *MetricsHandler) Overview(c echo.Context) error {
	overview, err := h.metricsUC.Overview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	m := overview.Metrics

	return response.Success(c, http.StatusOK, &OverviewResponse{
		Games:              m.Games,
		PlaceholderGames:   m.PlaceholderGames,
		Aggregates:         m.Aggregates,
		Reviews:            m.Reviews,
		Users:              m.Users,
		Favorites:          m.Favorites,
		SearchCacheEntries: m.SearchCacheEntries,
		StaleAggregates:    m.StaleAggregates,
		MissingAggregates:  m.MissingAggregates,
		StaleFeeds:         m.StaleFeeds,
		LastAggregateSync:  m.LastAggregateSync,
		LastReviewIngest:   m.LastReviewIngest,
		FreshnessPercent:   overview.FreshnessPercent,
		ExpirationHours:    overview.ExpirationHours,
	})
}

// Queue lists games with a missing or stale aggregate.
func (h *MetricsHandler) Queue(c echo.Context) error {
	var req LimitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid limit")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.metricsUC.RefreshQueue(c.Request().Context(), req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*RefreshQueueResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &RefreshQueueResponse{
			AppID:              item.AppID,
			Name:               item.Name,
			AggregateUpdatedAt: item.AggregateUpdatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// Preload dispatches refresh jobs for the configured popular games.
func (h *MetricsHandler) Preload(c echo.Context) error {
	// echo only binds query parameters for GET, DELETE and HEAD
	var req LimitRequest
	if err := echo.QueryParamsBinder(c).Int("limit", &req.Limit).BindError(); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid limit")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.preloadUC.Schedule(c.Request().Context(), req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, &PreloadResponse{
		Mode:   string(result.Mode),
		AppIDs: result.AppIDs,
	})
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	MetricsUC usecase.MetricsUsecase
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	metricsUC usecase.MetricsUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{metricsUC: params.MetricsUC}
}

// HealthCheck reports ok when the store answers a ping.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if err := h.metricsUC.Health(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
