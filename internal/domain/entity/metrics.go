package entity

import "time"

// OverviewMetrics summarizes what the store holds and how fresh it is.
type OverviewMetrics struct {
	Games              int64
	PlaceholderGames   int64
	Aggregates         int64
	Reviews            int64
	Users              int64
	Favorites          int64
	SearchCacheEntries int64

	StaleAggregates   int64
	MissingAggregates int64
	StaleFeeds        int64

	LastAggregateSync *time.Time
	LastReviewIngest  *time.Time
}

// AggregateFreshness returns the percentage of aggregates inside the freshness window.
func (m *OverviewMetrics) AggregateFreshness() float64 {
	if m.Aggregates == 0 {
		return 0
	}

	fresh := m.Aggregates - m.StaleAggregates

	return float64(int64(float64(fresh)*10000/float64(m.Aggregates)+0.5)) / 100
}

// RefreshQueueItem is an application whose aggregate needs a refetch.
type RefreshQueueItem struct {
	AppID              string
	Name               string
	AggregateUpdatedAt *time.Time
}
