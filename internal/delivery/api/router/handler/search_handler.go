package handler

import (
	"log/slog"
	"net/http"

	"steamcache/internal/delivery/api/response"
	"steamcache/internal/domain/repository"
	"steamcache/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves name search, keyword search and rankings.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest looks games up by name.
type SearchRequest struct {
	Term string `query:"term" json:"term" validate:"max=200"`
}

// KeywordSearchRequest ranks games by keywords found in their reviews.
type KeywordSearchRequest struct {
	Keywords   []string `query:"keywords" json:"keywords" validate:"required,min=1"`
	Limit      int      `query:"limit" json:"limit" validate:"gte=0"`
	MinMatches int64    `query:"minMatches" json:"minMatches" validate:"gte=0"`
}

// TopGamesRequest selects the best reviewed games.
type TopGamesRequest struct {
	Limit      int    `query:"limit" json:"limit" validate:"gte=0"`
	MinReviews int64  `query:"minReviews" json:"minReviews" validate:"gte=0"`
	Sort       string `query:"sort" json:"sort"`
}

// SearchResultResponse is the answer of the name search.
type SearchResultResponse struct {
	Term   string           `json:"term"`
	Source string           `json:"source"`
	Games  []*SearchHitItem `json:"games"`
}

// SearchHitItem is one game found by name.
type SearchHitItem struct {
	AppID       string `json:"app_id"`
	Name        string `json:"name"`
	HeaderImage string `json:"header_image"`
}

// KeywordMatchResponse is a game ranked by review keywords.
type KeywordMatchResponse struct {
	AppID           string  `json:"app_id"`
	Name            string  `json:"name"`
	HeaderImage     string  `json:"header_image"`
	MatchingReviews int64   `json:"matching_reviews"`
	KeywordScore    int64   `json:"keyword_score"`
	UsefulVotes     int64   `json:"useful_votes"`
	Relevance       float64 `json:"relevance"`
}

// TopGameResponse is one entry of the ranking.
type TopGameResponse struct {
	Game               *GameResponse      `json:"game"`
	Aggregate          *AggregateResponse `json:"aggregate"`
	PositivePercentage float64            `json:"positive_percentage"`
}

// SearchGames runs the local, cache and remote cascade.
func (h *SearchHandler) SearchGames(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.searchUC.SearchGames(c.Request().Context(), req.Term)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	hits := make([]*SearchHitItem, 0, len(output.Games))
	for _, game := range output.Games {
		hits = append(hits, &SearchHitItem{AppID: game.AppID, Name: game.Name, HeaderImage: game.HeaderImage})
	}

	return response.Cached(c, output.FromCache, &SearchResultResponse{
		Term:   output.Term,
		Source: string(output.Source),
		Games:  hits,
	})
}

// SearchByKeywords ranks games whose stored reviews mention the keywords.
func (h *SearchHandler) SearchByKeywords(c echo.Context) error {
	var req KeywordSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid keyword search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.searchUC.SearchByKeywords(c.Request().Context(), usecase.KeywordSearchInput{
		Keywords:   req.Keywords,
		Limit:      req.Limit,
		MinMatches: req.MinMatches,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*KeywordMatchResponse, 0, len(matches))
	for _, match := range matches {
		out = append(out, &KeywordMatchResponse{
			AppID:           match.AppID,
			Name:            match.Name,
			HeaderImage:     match.HeaderImage,
			MatchingReviews: match.MatchingReviews,
			KeywordScore:    match.KeywordScore,
			UsefulVotes:     match.UsefulVotes,
			Relevance:       match.Relevance,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// TopGames ranks stored games by rating, review count or positive share.
func (h *SearchHandler) TopGames(c echo.Context) error {
	var req TopGamesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ranking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	games, err := h.searchUC.TopGames(c.Request().Context(), usecase.TopGamesInput{
		Limit:      req.Limit,
		MinReviews: req.MinReviews,
		Sort:       repository.TopGamesSort(req.Sort),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*TopGameResponse, 0, len(games))
	for _, game := range games {
		out = append(out, &TopGameResponse{
			Game:               toGameResponse(game.Game),
			Aggregate:          toAggregateResponse(game.Aggregate),
			PositivePercentage: game.PositivePercentage,
		})
	}

	return response.Success(c, http.StatusOK, out)
}
