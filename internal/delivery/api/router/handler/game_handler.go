package handler

import (
	"log/slog"
	"net/http"

	"steamcache/internal/delivery/api/response"
	"steamcache/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GameHandlerParams holds dependencies for GameHandler, injected by Fx.
type GameHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	SearchUC  usecase.SearchUsecase
	Logger    *slog.Logger
}

// GameHandler serves the per-game catalog endpoints.
type GameHandler struct {
	catalogUC usecase.CatalogUsecase
	searchUC  usecase.SearchUsecase
	logger    *slog.Logger
}

// NewGameHandler is the constructor for GameHandler
func NewGameHandler(params GameHandlerParams) *GameHandler {
	return &GameHandler{
		catalogUC: params.CatalogUC,
		searchUC:  params.SearchUC,
		logger:    params.Logger,
	}
}

// ReviewsRequest selects one page of a game's review feed.
type ReviewsRequest struct {
	AppID    string `param:"appId" json:"appId" validate:"required"`
	Cursor   string `query:"cursor" json:"cursor"`
	PageSize int    `query:"pageSize" json:"pageSize" validate:"gte=0"`
	Language string `query:"language" json:"language" validate:"omitempty,max=32"`
}

// ReviewSearchRequest lists the reviews of one game that mention keywords.
type ReviewSearchRequest struct {
	AppID    string   `param:"appId" json:"appId" validate:"required"`
	Keywords []string `query:"keywords" json:"keywords" validate:"required,min=1"`
	Limit    int      `query:"limit" json:"limit" validate:"gte=0"`
}

// GetGame returns the game with its review aggregate, refetching whatever is stale.
func (h *GameHandler) GetGame(c echo.Context) error {
	bundle, err := h.catalogUC.FetchGameBundle(c.Request().Context(), c.Param("appId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Cached(c, bundle.FromCache, &GameBundleResponse{
		Game:          toGameResponse(bundle.Game),
		Aggregate:     toAggregateResponse(bundle.Aggregate),
		MetadataFetch: toSideFetchResponse(bundle.MetadataFetch),
	})
}

// GetDetails returns the stored metadata, fetching it only when the game is unknown.
func (h *GameHandler) GetDetails(c echo.Context) error {
	details, err := h.catalogUC.FetchGameDetails(c.Request().Context(), c.Param("appId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Cached(c, details.FromCache, &GameDetailsResponse{
		Game:          toGameResponse(details.Game),
		MetadataFetch: toSideFetchResponse(details.MetadataFetch),
	})
}

// GetReviews returns one page of reviews and the cursor of the next one.
func (h *GameHandler) GetReviews(c echo.Context) error {
	var req ReviewsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review page input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.catalogUC.FetchReviewsPage(c.Request().Context(), usecase.ReviewsPageInput{
		AppID:    req.AppID,
		Cursor:   req.Cursor,
		PageSize: req.PageSize,
		Language: req.Language,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Cached(c, page.FromCache, &ReviewsPageResponse{
		Reviews:       toReviewResponses(page.Reviews),
		NextCursor:    encodeCursor(page.NextCursor),
		TotalCount:    page.TotalCount,
		Inserted:      page.Inserted,
		MetadataFetch: toSideFetchResponse(page.MetadataFetch),
	})
}

// RefreshNeeded reports which parts of the game are missing or stale.
func (h *GameHandler) RefreshNeeded(c echo.Context) error {
	appID := c.Param("appId")

	decision, err := h.catalogUC.RefreshStatus(c.Request().Context(), appID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRefreshStatusResponse(appID, decision))
}

// GetLanguages returns the number of stored reviews per language.
func (h *GameHandler) GetLanguages(c echo.Context) error {
	stats, err := h.catalogUC.LanguageStats(c.Request().Context(), c.Param("appId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*LanguageCountResponse, 0, len(stats))
	for _, stat := range stats {
		out = append(out, &LanguageCountResponse{Language: stat.Language, Count: stat.Count})
	}

	return response.Success(c, http.StatusOK, out)
}

// SearchReviews lists stored reviews of the game that mention the keywords.
func (h *GameHandler) SearchReviews(c echo.Context) error {
	var req ReviewSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.searchUC.ReviewsWithKeywords(c.Request().Context(), usecase.ReviewKeywordInput{
		AppID:    req.AppID,
		Keywords: req.Keywords,
		Limit:    req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*ReviewMatchResponse, 0, len(matches))
	for _, match := range matches {
		out = append(out, &ReviewMatchResponse{
			Review:    toReviewResponse(match.Review),
			Relevance: match.Relevance,
		})
	}

	return response.Success(c, http.StatusOK, out)
}
