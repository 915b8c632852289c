package service

import (
	"context"
	"encoding/json"
)

// AppMetadata is the store metadata of one application as returned by Steam.
// Nil fields were absent from the payload.
type AppMetadata struct {
	AppID            string
	Name             *string
	ShortDescription *string
	HeaderImage      *string
	Developers       []string
	Publishers       []string
	PriceOverview    json.RawMessage
	ReleaseDate      json.RawMessage
}

// ReviewSummary is the aggregate block of the review endpoint.
type ReviewSummary struct {
	TotalReviews    *int64
	TotalPositive   *int64
	TotalNegative   *int64
	ReviewScore     *int
	ReviewScoreDesc *string
}

// ReviewItem is one review of a feed page. RecommendationID is required.
type ReviewItem struct {
	RecommendationID         string
	AuthorSteamID            *string
	AuthorPlaytimeForever    *int64
	AuthorPlaytimeAtReview   *int64
	VotedUp                  *bool
	VotesUp                  *int64
	VotesFunny               *int64
	WeightedVoteScore        *string
	CommentCount             *int64
	SteamPurchase            *bool
	ReceivedForFree          *bool
	WrittenDuringEarlyAccess *bool
	Review                   *string
	TimestampCreated         *int64
	TimestampUpdated         *int64
	Language                 *string
}

// ReviewPageQuery addresses one page of a review feed.
// Cursor "*" is the start of the feed.
type ReviewPageQuery struct {
	AppID    string
	Cursor   string
	PageSize int
	Filter   string
	Language string
}

// ReviewPage is one page of a review feed. An empty NextCursor ends the feed.
type ReviewPage struct {
	Reviews    []ReviewItem
	NextCursor string

	// TotalReviews is only reported with the first page.
	TotalReviews *int64
}

// AppSearchResult is one hit of the community app search.
type AppSearchResult struct {
	AppID string
	Name  string
	Icon  string
	Logo  string
}

// MetadataSource fetches application metadata.
type MetadataSource interface {
	GetAppMetadata(ctx context.Context, appID, locale string) (*AppMetadata, error)
}

// ReviewSummarySource fetches review aggregates.
type ReviewSummarySource interface {
	GetReviewSummary(ctx context.Context, appID string) (*ReviewSummary, error)
}

// ReviewFeedSource pages through the review feed with Steam's opaque cursors.
type ReviewFeedSource interface {
	GetReviewsPage(ctx context.Context, query ReviewPageQuery) (*ReviewPage, error)
}

// AppSearchSource searches applications by name.
type AppSearchSource interface {
	SearchApps(ctx context.Context, term string) ([]AppSearchResult, error)
}

// SteamSource bundles every upstream call.
type SteamSource interface {
	MetadataSource
	ReviewSummarySource
	ReviewFeedSource
	AppSearchSource
}
