package handler

import (
	"log/slog"
	"net/http"

	"steamcache/internal/delivery/api/response"
	deliverycontext "steamcache/internal/delivery/context"
	"steamcache/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler manages the favorites of the authenticated user.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for adding a favorite
type AddFavoriteRequest struct {
	AppID string  `json:"app_id" validate:"required"`
	Notes *string `json:"notes" validate:"omitempty,max=500"`
}

// ListFavorites returns the caller's favorites with whatever is stored about each game.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		out = append(out, &FavoriteResponse{
			AppID:     favorite.Favorite.AppID,
			Notes:     favorite.Favorite.Notes,
			CreatedAt: favorite.Favorite.CreatedAt,
			Game:      toGameResponse(favorite.Game),
			Aggregate: toAggregateResponse(favorite.Aggregate),
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// AddFavorite stores a favorite, keeping the previous note when none is sent.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.Add(c.Request().Context(), usecase.AddFavoriteInput{
		UserID: userID,
		AppID:  req.AppID,
		Notes:  req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &FavoriteResponse{
		AppID:     favorite.AppID,
		Notes:     favorite.Notes,
		CreatedAt: favorite.CreatedAt,
	})
}

// RemoveFavorite deletes one favorite of the caller.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.favoriteUC.Remove(c.Request().Context(), userID, c.Param("appId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite removed"})
}
