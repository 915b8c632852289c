package model

import "time"

// ReviewModel mirrors the 'reviews' table keyed by Steam recommendation id.
type ReviewModel struct {
	RecommendationID         string `gorm:"type:varchar(32);primaryKey"`
	AppID                    string `gorm:"type:varchar(32);not null;index:idx_reviews_app_created,priority:1;index:idx_reviews_app_language,priority:1"`
	AuthorSteamID            string `gorm:"type:varchar(32)"`
	AuthorPlaytimeForever    int64  `gorm:"not null;default:0"`
	AuthorPlaytimeAtReview   int64  `gorm:"not null;default:0"`
	VotedUp                  bool   `gorm:"not null;default:false"`
	VotesUp                  int64  `gorm:"not null;default:0;check:chk_reviews_votes_up,votes_up >= 0"`
	VotesFunny               int64  `gorm:"not null;default:0;check:chk_reviews_votes_funny,votes_funny >= 0"`
	WeightedVoteScore        string `gorm:"type:varchar(32)"`
	CommentCount             int64  `gorm:"not null;default:0;check:chk_reviews_comment_count,comment_count >= 0"`
	SteamPurchase            bool   `gorm:"not null;default:false"`
	ReceivedForFree          bool   `gorm:"not null;default:false"`
	WrittenDuringEarlyAccess bool   `gorm:"not null;default:false"`
	Review                   string `gorm:"type:text"`
	TimestampCreated         int64  `gorm:"not null;default:0;index:idx_reviews_app_created,priority:2"`
	TimestampUpdated         int64  `gorm:"not null;default:0"`
	Language                 string `gorm:"type:varchar(32);not null;default:'unknown';index:idx_reviews_app_language,priority:2"`
	IngestedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewFeedSyncModel mirrors the 'review_feed_syncs' table.
type ReviewFeedSyncModel struct {
	AppID    string `gorm:"type:varchar(32);primaryKey"`
	SyncedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewFeedSyncModel) TableName() string {
	return "review_feed_syncs"
}
