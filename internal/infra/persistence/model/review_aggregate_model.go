package model

import "time"

// ReviewAggregateModel mirrors the 'review_aggregates' table, one row per application.
type ReviewAggregateModel struct {
	AppID           string    `gorm:"type:varchar(32);primaryKey"`
	TotalReviews    int64     `gorm:"not null;default:0;check:chk_review_aggregates_total_reviews,total_reviews >= 0"`
	TotalPositive   int64     `gorm:"not null;default:0;check:chk_review_aggregates_total_positive,total_positive >= 0"`
	TotalNegative   int64     `gorm:"not null;default:0;check:chk_review_aggregates_total_negative,total_negative >= 0"`
	ReviewScore     int       `gorm:"not null;default:0"`
	ReviewScoreDesc string    `gorm:"type:varchar(64)"`
	UpdatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewAggregateModel) TableName() string {
	return "review_aggregates"
}
