package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apimiddleware "steamcache/internal/delivery/api/middleware"
	"steamcache/internal/delivery/api/router/handler"
	"steamcache/internal/delivery/api/validator"
	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/service"
	mockSvc "steamcache/internal/mocks/service"
	mockUC "steamcache/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo     *echo.Echo
	catalog  *mockUC.MockCatalogUsecase
	search   *mockUC.MockSearchUsecase
	user     *mockUC.MockUserUsecase
	favorite *mockUC.MockFavoriteUsecase
	tokens   *mockSvc.MockTokenService
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := routerFixtures{
		echo:     echo.New(),
		catalog:  mockUC.NewMockCatalogUsecase(t),
		search:   mockUC.NewMockSearchUsecase(t),
		user:     mockUC.NewMockUserUsecase(t),
		favorite: mockUC.NewMockFavoriteUsecase(t),
		tokens:   mockSvc.NewMockTokenService(t),
	}
	metrics := mockUC.NewMockMetricsUsecase(t)

	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		GameHandler: handler.NewGameHandler(handler.GameHandlerParams{
			CatalogUC: fx.catalog, SearchUC: fx.search, Logger: logger,
		}),
		SearchHandler: handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: fx.search, Logger: logger}),
		MetricsHandler: handler.NewMetricsHandler(handler.MetricsHandlerParams{
			MetricsUC: metrics, PreloadUC: mockUC.NewMockPreloadUsecase(t), Logger: logger,
		}),
		HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{MetricsUC: metrics}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.user, Logger: logger}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: fx.favorite, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: fx.tokens, Logger: logger,
		}),
	})
	r.RegisterRoutes(fx.echo)

	return fx
}

func (fx routerFixtures) serve(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_TopGamesIsNotAnAppID(t *testing.T) {
	fx := createTestRouter(t)

	fx.search.EXPECT().TopGames(mock.Anything, mock.Anything).Return(nil, nil)

	rec := fx.serve(http.MethodGet, "/api/games/top?sort=reviews", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_GameRoute(t *testing.T) {
	fx := createTestRouter(t)

	fx.catalog.EXPECT().FetchGameDetails(mock.Anything, "620").
		Return(nil, domainerrors.ErrGameNotFound)

	rec := fx.serve(http.MethodGet, "/api/games/620/details", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "GAME_NOT_FOUND")
}

func TestRouter_ProfileRequiresToken(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.serve(http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")

	fx.tokens.EXPECT().ValidateToken("expired").Return(nil, domainerrors.ErrUnauthorized).Once()
	rec = fx.serve(http.MethodGet, "/api/me", "expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProfileWithToken(t *testing.T) {
	fx := createTestRouter(t)
	userID := uuid.New()

	fx.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Email: "me@example.com"}, nil)
	fx.user.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "me@example.com", DisplayName: "me"}, nil)

	rec := fx.serve(http.MethodGet, "/api/me", "good")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestRouter_RemoveFavorite(t *testing.T) {
	fx := createTestRouter(t)
	userID := uuid.New()

	fx.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)
	fx.favorite.EXPECT().Remove(mock.Anything, userID, "730").Return(domainerrors.ErrFavoriteNotFound)

	rec := fx.serve(http.MethodDelete, "/api/favorites/730", "good")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
