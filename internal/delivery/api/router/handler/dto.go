package handler

import (
	"encoding/json"
	"time"

	"steamcache/internal/domain/entity"
	"steamcache/internal/domain/freshness"
	"steamcache/internal/domain/pagination"
	"steamcache/internal/usecase"

	"github.com/google/uuid"
)

// GameResponse is the JSON form of a stored game.
type GameResponse struct {
	AppID            string          `json:"app_id"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	HeaderImage      string          `json:"header_image"`
	Developers       []string        `json:"developers"`
	Publishers       []string        `json:"publishers"`
	PriceOverview    json.RawMessage `json:"price_overview,omitempty"`
	ReleaseDate      json.RawMessage `json:"release_date,omitempty"`
	Placeholder      bool            `json:"placeholder"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AggregateResponse is the JSON form of a review aggregate.
type AggregateResponse struct {
	TotalReviews       int64     `json:"total_reviews"`
	TotalPositive      int64     `json:"total_positive"`
	TotalNegative      int64     `json:"total_negative"`
	ReviewScore        int       `json:"review_score"`
	ReviewScoreDesc    string    `json:"review_score_desc"`
	PositivePercentage float64   `json:"positive_percentage"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ReviewResponse is the JSON form of a stored review.
type ReviewResponse struct {
	RecommendationID         string `json:"recommendation_id"`
	AuthorSteamID            string `json:"author_steam_id"`
	AuthorPlaytimeForever    int64  `json:"author_playtime_forever"`
	AuthorPlaytimeAtReview   int64  `json:"author_playtime_at_review"`
	VotedUp                  bool   `json:"voted_up"`
	VotesUp                  int64  `json:"votes_up"`
	VotesFunny               int64  `json:"votes_funny"`
	WeightedVoteScore        string `json:"weighted_vote_score"`
	CommentCount             int64  `json:"comment_count"`
	SteamPurchase            bool   `json:"steam_purchase"`
	ReceivedForFree          bool   `json:"received_for_free"`
	WrittenDuringEarlyAccess bool   `json:"written_during_early_access"`
	Review                   string `json:"review"`
	TimestampCreated         int64  `json:"timestamp_created"`
	TimestampUpdated         int64  `json:"timestamp_updated"`
	Language                 string `json:"language"`
}

// SideFetchResponse reports the metadata fetch made alongside a remote read.
type SideFetchResponse struct {
	Succeeded   bool   `json:"succeeded"`
	Placeholder bool   `json:"placeholder"`
	Error       string `json:"error,omitempty"`
}

// GameBundleResponse is a game with its aggregate.
type GameBundleResponse struct {
	Game          *GameResponse      `json:"game"`
	Aggregate     *AggregateResponse `json:"aggregate"`
	MetadataFetch *SideFetchResponse `json:"metadata_fetch,omitempty"`
}

// GameDetailsResponse is the metadata of one game.
type GameDetailsResponse struct {
	Game          *GameResponse      `json:"game"`
	MetadataFetch *SideFetchResponse `json:"metadata_fetch,omitempty"`
}

// ReviewsPageResponse is one page of reviews.
type ReviewsPageResponse struct {
	Reviews       []*ReviewResponse  `json:"reviews"`
	NextCursor    *string            `json:"next_cursor"`
	TotalCount    int64              `json:"total_count"`
	Inserted      int                `json:"inserted"`
	MetadataFetch *SideFetchResponse `json:"metadata_fetch,omitempty"`
}

// RefreshStatusResponse explains the freshness decision of one game.
type RefreshStatusResponse struct {
	AppID          string `json:"app_id"`
	NeedsRefresh   bool   `json:"needs_refresh"`
	GameMissing    bool   `json:"game_missing"`
	AggregateStale bool   `json:"aggregate_stale"`
	FeedStale      bool   `json:"feed_stale"`
}

// LanguageCountResponse is the number of stored reviews in one language.
type LanguageCountResponse struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

// ReviewMatchResponse is a review ranked by keyword relevance.
type ReviewMatchResponse struct {
	Review    *ReviewResponse `json:"review"`
	Relevance float64         `json:"relevance"`
}

// UserResponse is the public part of an account.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// FavoriteResponse is a favorite with its game.
type FavoriteResponse struct {
	AppID     string             `json:"app_id"`
	Notes     *string            `json:"notes"`
	CreatedAt time.Time          `json:"created_at"`
	Game      *GameResponse      `json:"game,omitempty"`
	Aggregate *AggregateResponse `json:"aggregate,omitempty"`
}

func toGameResponse(game *entity.Game) *GameResponse {
	if game == nil {
		return nil
	}

	return &GameResponse{
		AppID:            game.AppID,
		Name:             game.Name,
		ShortDescription: game.ShortDescription,
		HeaderImage:      game.HeaderImage,
		Developers:       game.Developers,
		Publishers:       game.Publishers,
		PriceOverview:    game.PriceOverview,
		ReleaseDate:      game.ReleaseDate,
		Placeholder:      game.Placeholder,
		UpdatedAt:        game.UpdatedAt,
	}
}

func toAggregateResponse(aggregate *entity.ReviewAggregate) *AggregateResponse {
	if aggregate == nil {
		return nil
	}

	return &AggregateResponse{
		TotalReviews:       aggregate.TotalReviews,
		TotalPositive:      aggregate.TotalPositive,
		TotalNegative:      aggregate.TotalNegative,
		ReviewScore:        aggregate.ReviewScore,
		ReviewScoreDesc:    aggregate.ReviewScoreDesc,
		PositivePercentage: aggregate.PositivePercentage(),
		UpdatedAt:          aggregate.UpdatedAt,
	}
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		RecommendationID:         review.RecommendationID,
		AuthorSteamID:            review.AuthorSteamID,
		AuthorPlaytimeForever:    review.AuthorPlaytimeForever,
		AuthorPlaytimeAtReview:   review.AuthorPlaytimeAtReview,
		VotedUp:                  review.VotedUp,
		VotesUp:                  review.VotesUp,
		VotesFunny:               review.VotesFunny,
		WeightedVoteScore:        review.WeightedVoteScore,
		CommentCount:             review.CommentCount,
		SteamPurchase:            review.SteamPurchase,
		ReceivedForFree:          review.ReceivedForFree,
		WrittenDuringEarlyAccess: review.WrittenDuringEarlyAccess,
		Review:                   review.Text,
		TimestampCreated:         review.TimestampCreated,
		TimestampUpdated:         review.TimestampUpdated,
		Language:                 review.Language,
	}
}

func toReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

// toSideFetchResponse omits the block when no metadata fetch was attempted.
func toSideFetchResponse(outcome usecase.SideFetchOutcome) *SideFetchResponse {
	if !outcome.Attempted {
		return nil
	}

	resp := &SideFetchResponse{
		Succeeded:   outcome.Succeeded,
		Placeholder: outcome.Placeholder,
	}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}

	return resp
}

func encodeCursor(cursor pagination.Cursor) *string {
	if cursor.IsEnd() {
		return nil
	}

	encoded := cursor.Encode()

	return &encoded
}

func toRefreshStatusResponse(appID string, decision freshness.Decision) *RefreshStatusResponse {
	return &RefreshStatusResponse{
		AppID:          appID,
		NeedsRefresh:   decision.NeedsRefresh(),
		GameMissing:    decision.GameMissing,
		AggregateStale: decision.AggregateStale,
		FeedStale:      decision.FeedStale,
	}
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func toAuthResponse(output *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:        toUserResponse(output.User),
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
	}
}
