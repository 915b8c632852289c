package usecase

import (
	"context"

	"steamcache/internal/domain/entity"
	"steamcache/internal/domain/repository"
)

// SearchSource names the cascade step that answered a search.
type SearchSource string

const (
	SearchSourceLocal  SearchSource = "local"
	SearchSourceCache  SearchSource = "cache"
	SearchSourceRemote SearchSource = "remote"
)

// --- Input DTOs ---

// KeywordSearchInput ranks games by keywords found in their reviews.
type KeywordSearchInput struct {
	Keywords   []string
	Limit      int
	MinMatches int64
}

// ReviewKeywordInput lists the reviews of one game that mention the keywords.
type ReviewKeywordInput struct {
	AppID    string
	Keywords []string
	Limit    int
}

// TopGamesInput selects the best reviewed games.
type TopGamesInput struct {
	Limit      int
	MinReviews int64
	Sort       repository.TopGamesSort
}

// --- Output DTOs ---

// SearchOutput is the answer of the name search cascade.
type SearchOutput struct {
	Term      string
	Source    SearchSource
	FromCache bool
	Games     []*entity.GameSearchHit
}

// TopGame decorates a ranked game with its positive share.
type TopGame struct {
	Game               *entity.Game
	Aggregate          *entity.ReviewAggregate
	PositivePercentage float64
}

// SearchUsecase covers name search, review keyword search and rankings.
type SearchUsecase interface {
	SearchGames(ctx context.Context, term string) (*SearchOutput, error)
	SearchByKeywords(ctx context.Context, input KeywordSearchInput) ([]*entity.KeywordGameMatch, error)
	ReviewsWithKeywords(ctx context.Context, input ReviewKeywordInput) ([]*entity.ReviewMatch, error)
	TopGames(ctx context.Context, input TopGamesInput) ([]*TopGame, error)
}
