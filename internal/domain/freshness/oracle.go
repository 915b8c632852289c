// Package freshness decides whether stored data may be served without a refetch.
package freshness

import "time"

// IsStale reports whether data last updated at lastUpdated is older than thresholdHours.
// Data that was never fetched is always stale.
func IsStale(lastUpdated *time.Time, thresholdHours float64, now time.Time) bool {
	if lastUpdated == nil {
		return true
	}

	return now.Sub(*lastUpdated).Hours() > thresholdHours
}

// Oracle applies one process-wide threshold to review aggregates and review feeds.
// Game metadata is never stale once stored.
type Oracle struct {
	thresholdHours float64
	now            func() time.Time
}

// NewOracle builds an oracle; now defaults to time.Now.
func NewOracle(thresholdHours float64, now func() time.Time) *Oracle {
	if now == nil {
		now = time.Now
	}

	return &Oracle{
		thresholdHours: thresholdHours,
		now:            now,
	}
}

// ThresholdHours returns the configured freshness window.
func (o *Oracle) ThresholdHours() float64 {
	return o.thresholdHours
}

// Now returns the oracle's clock reading.
func (o *Oracle) Now() time.Time {
	return o.now()
}

// IsStale applies the configured threshold to lastUpdated.
func (o *Oracle) IsStale(lastUpdated *time.Time) bool {
	return IsStale(lastUpdated, o.thresholdHours, o.now())
}

// Snapshot is what the store knows about one application.
type Snapshot struct {
	GameExists         bool
	AggregateUpdatedAt *time.Time
	FeedUpdatedAt      *time.Time
}

// Decision is the outcome of the composite refresh rule.
type Decision struct {
	GameMissing    bool
	AggregateStale bool
	FeedStale      bool
}

// NeedsRefresh is true when any part of the application must be refetched.
func (d Decision) NeedsRefresh() bool {
	return d.GameMissing || d.AggregateStale || d.FeedStale
}

// Decide evaluates the composite rule for one application.
func (o *Oracle) Decide(s Snapshot) Decision {
	return Decision{
		GameMissing:    !s.GameExists,
		AggregateStale: o.IsStale(s.AggregateUpdatedAt),
		FeedStale:      o.IsStale(s.FeedUpdatedAt),
	}
}
