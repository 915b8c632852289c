// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"steamcache/internal/delivery/api/middleware"
	"steamcache/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GameHandler     *handler.GameHandler
	SearchHandler   *handler.SearchHandler
	MetricsHandler  *handler.MetricsHandler
	HealthHandler   *handler.HealthHandler
	UserHandler     *handler.UserHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	gameHandler     *handler.GameHandler
	searchHandler   *handler.SearchHandler
	metricsHandler  *handler.MetricsHandler
	healthHandler   *handler.HealthHandler
	userHandler     *handler.UserHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		gameHandler:     params.GameHandler,
		searchHandler:   params.SearchHandler,
		metricsHandler:  params.MetricsHandler,
		healthHandler:   params.HealthHandler,
		userHandler:     params.UserHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	api := e.Group("/api")

	// Static segments win over :appId in echo's router
	gamesGroup := api.Group("/games")
	{
		gamesGroup.GET("/top", r.searchHandler.TopGames)
		gamesGroup.GET("/:appId", r.gameHandler.GetGame)
		gamesGroup.GET("/:appId/details", r.gameHandler.GetDetails)
		gamesGroup.GET("/:appId/reviews", r.gameHandler.GetReviews)
		gamesGroup.GET("/:appId/reviews/search", r.gameHandler.SearchReviews)
		gamesGroup.GET("/:appId/refresh-needed", r.gameHandler.RefreshNeeded)
		gamesGroup.GET("/:appId/languages", r.gameHandler.GetLanguages)
	}

	searchGroup := api.Group("/search")
	{
		searchGroup.GET("", r.searchHandler.SearchGames)
		searchGroup.GET("/keywords", r.searchHandler.SearchByKeywords)
	}

	metricsGroup := api.Group("/metrics")
	{
		metricsGroup.GET("/overview", r.metricsHandler.Overview)
		metricsGroup.GET("/queue", r.metricsHandler.Queue)
	}

	api.POST("/preload", r.metricsHandler.Preload)

	// Routes below require a bearer token
	api.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)

	favoritesGroup := api.Group("/favorites", r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:appId", r.favoriteHandler.RemoveFavorite)
	}
}
