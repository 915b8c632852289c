package entity

import "time"

// Review is a single user review. RecommendationID is the natural key and the
// first stored copy wins; reviews are never updated afterwards.
type Review struct {
	RecommendationID         string
	AppID                    string
	AuthorSteamID            string
	AuthorPlaytimeForever    int64
	AuthorPlaytimeAtReview   int64
	VotedUp                  bool
	VotesUp                  int64
	VotesFunny               int64
	WeightedVoteScore        string
	CommentCount             int64
	SteamPurchase            bool
	ReceivedForFree          bool
	WrittenDuringEarlyAccess bool
	Text                     string
	TimestampCreated         int64
	TimestampUpdated         int64
	Language                 string
	IngestedAt               time.Time
}

// ReviewFeedSync records the last successful remote read of an application's feed head.
type ReviewFeedSync struct {
	AppID    string
	SyncedAt time.Time
}

// ReviewMatch is a review ranked by a keyword query.
type ReviewMatch struct {
	Review    *Review
	Relevance float64
}

// KeywordGameMatch ranks an application by how many of its reviews match keywords.
type KeywordGameMatch struct {
	AppID           string
	Name            string
	HeaderImage     string
	MatchingReviews int64
	KeywordScore    int64
	UsefulVotes     int64
	Relevance       float64
}

// LanguageCount is the number of stored reviews in one language.
type LanguageCount struct {
	Language string
	Count    int64
}
