// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Review feed sentinels
const (
	// LanguageAll disables the review language filter.
	LanguageAll = "all"

	// LanguageUnknown is stored when a review carries no language.
	LanguageUnknown = "unknown"
)

// Event types published on the refresh topic
const (
	EventTypeRefreshRequested = "refresh.requested"
)
