package entity

import "time"

// SearchCacheEntry remembers one application returned by a remote search.
// Entries are unique per (SearchTerm, AppID) and never expire.
type SearchCacheEntry struct {
	SearchTerm  string
	AppID       string
	Name        string
	HeaderImage string
	CreatedAt   time.Time
}
