package entity

import "time"

// ReviewAggregate is the review summary of one application.
// Every refresh overwrites the whole row.
type ReviewAggregate struct {
	AppID           string
	TotalReviews    int64
	TotalPositive   int64
	TotalNegative   int64
	ReviewScore     int
	ReviewScoreDesc string
	UpdatedAt       time.Time
}

// PositivePercentage returns the share of positive reviews rounded to two decimals.
func (a *ReviewAggregate) PositivePercentage() float64 {
	if a == nil || a.TotalReviews <= 0 {
		return 0
	}

	pct := float64(a.TotalPositive) * 100 / float64(a.TotalReviews)

	return float64(int64(pct*100+0.5)) / 100
}
