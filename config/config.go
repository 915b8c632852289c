package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBcryptCost        = 10
	defaultTokenTTL          = 7 * 24 * time.Hour
	defaultMinPasswordLength = 6

	defaultExpirationHours = 24
	defaultReviewPageSize  = 20
	defaultMaxPageSize     = 100

	defaultStoreBaseURL     = "https://store.steampowered.com"
	defaultCommunityBaseURL = "https://steamcommunity.com"
	defaultCDNBaseURL       = "https://cdn.akamai.steamstatic.com"
	defaultMetadataLocale   = "portuguese"
	defaultSteamTimeout     = 15 * time.Second

	defaultSlowQueryThreshold = 200 * time.Millisecond

	defaultMinTermLength = 2
	defaultSearchLimit   = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration struct {
		Auto bool `json:"auto" yaml:"auto"`
	} `json:"migration" yaml:"migration"`

	// Database tunes how store statements are logged
	Database struct {
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Cache holds the single process-wide freshness window
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Steam *SteamConfig `json:"steam" yaml:"steam"`

	Search *SearchConfig `json:"search" yaml:"search"`

	Preload *PreloadConfig `json:"preload" yaml:"preload"`

	// PubSub configuration for refresh job publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL          time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type Log struct {
	Pretty bool    `json:"pretty" yaml:"pretty"`
	Level  string  `json:"level" yaml:"level"`
	File   LogFile `json:"file" yaml:"file"`
}

// LogFile enables a rotating log file next to stdout when Path is set
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// CacheConfig controls when stored Steam data is trusted without a refetch
type CacheConfig struct {
	// Hours after which review aggregates and the review feed are stale
	ExpirationHours float64 `json:"expirationHours" yaml:"expirationHours"`

	ReviewPageSize int `json:"reviewPageSize" yaml:"reviewPageSize"`
	MaxPageSize    int `json:"maxPageSize" yaml:"maxPageSize"`
}

// SteamConfig defines the upstream Steam endpoints
type SteamConfig struct {
	StoreBaseURL     string        `json:"storeBaseURL" yaml:"storeBaseURL"`
	CommunityBaseURL string        `json:"communityBaseURL" yaml:"communityBaseURL"`
	CDNBaseURL       string        `json:"cdnBaseURL" yaml:"cdnBaseURL"`
	MetadataLocale   string        `json:"metadataLocale" yaml:"metadataLocale"`
	RequestTimeout   time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	UserAgent        string        `json:"userAgent" yaml:"userAgent"`
}

// SearchConfig defines the game search cascade limits
type SearchConfig struct {
	MinTermLength int `json:"minTermLength" yaml:"minTermLength"`
	LocalLimit    int `json:"localLimit" yaml:"localLimit"`
	RemoteLimit   int `json:"remoteLimit" yaml:"remoteLimit"`
}

// PreloadConfig defines the popular games refreshed by the preload job
type PreloadConfig struct {
	AppIDs      []string      `json:"appIds" yaml:"appIds"`
	Concurrency int           `json:"concurrency" yaml:"concurrency"`
	Delay       time.Duration `json:"delay" yaml:"delay"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every optional section so callers never nil-check config.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.MinPasswordLength == 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.ExpirationHours <= 0 {
		cfg.Cache.ExpirationHours = defaultExpirationHours
	}
	if cfg.Cache.ReviewPageSize <= 0 {
		cfg.Cache.ReviewPageSize = defaultReviewPageSize
	}
	if cfg.Cache.MaxPageSize < cfg.Cache.ReviewPageSize {
		cfg.Cache.MaxPageSize = max(defaultMaxPageSize, cfg.Cache.ReviewPageSize)
	}

	if cfg.Steam == nil {
		cfg.Steam = &SteamConfig{}
	}
	if cfg.Steam.StoreBaseURL == "" {
		cfg.Steam.StoreBaseURL = defaultStoreBaseURL
	}
	if cfg.Steam.CommunityBaseURL == "" {
		cfg.Steam.CommunityBaseURL = defaultCommunityBaseURL
	}
	if cfg.Steam.CDNBaseURL == "" {
		cfg.Steam.CDNBaseURL = defaultCDNBaseURL
	}
	if cfg.Steam.MetadataLocale == "" {
		cfg.Steam.MetadataLocale = defaultMetadataLocale
	}
	if cfg.Steam.RequestTimeout == 0 {
		cfg.Steam.RequestTimeout = defaultSteamTimeout
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.MinTermLength <= 0 {
		cfg.Search.MinTermLength = defaultMinTermLength
	}
	if cfg.Search.LocalLimit <= 0 {
		cfg.Search.LocalLimit = defaultSearchLimit
	}
	if cfg.Search.RemoteLimit <= 0 {
		cfg.Search.RemoteLimit = defaultSearchLimit
	}

	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = cfg.HTTP.Port + 1
	}

	if cfg.Preload == nil {
		cfg.Preload = &PreloadConfig{}
	}
	if cfg.Preload.Concurrency <= 0 {
		cfg.Preload.Concurrency = 1
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
