package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEmptySections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	require.NotNil(t, cfg.Cache)
	assert.InDelta(t, 24.0, cfg.Cache.ExpirationHours, 0)
	assert.Equal(t, 20, cfg.Cache.ReviewPageSize)
	assert.Equal(t, 100, cfg.Cache.MaxPageSize)
	require.NotNil(t, cfg.Steam)
	assert.Equal(t, "https://store.steampowered.com", cfg.Steam.StoreBaseURL)
	assert.Equal(t, "portuguese", cfg.Steam.MetadataLocale)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	require.NotNil(t, cfg.Search)
	assert.Equal(t, 2, cfg.Search.MinTermLength)
	require.NotNil(t, cfg.Preload)
	assert.Equal(t, 1, cfg.Preload.Concurrency)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Cache: &CacheConfig{ExpirationHours: 6, ReviewPageSize: 50, MaxPageSize: 10},
	}

	applyDefaults(cfg)

	assert.InDelta(t, 6.0, cfg.Cache.ExpirationHours, 0)
	assert.Equal(t, 50, cfg.Cache.ReviewPageSize)
	// max page size never drops below the default page size
	assert.Equal(t, 100, cfg.Cache.MaxPageSize)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  env: develop
cache:
  expirationHours: 24
preload:
  appIds: ["730"]
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "steamtest.yaml"), yaml, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("CACHE_EXPIRATIONHOURS", "12")
	t.Setenv("PRELOAD_APPIDS", "730,570")

	cfg, err := LoadWithEnv[Config]("steamtest", rel)
	require.NoError(t, err)
	assert.Equal(t, "develop", cfg.Env.Env)
	require.NotNil(t, cfg.Cache)
	assert.InDelta(t, 12.0, cfg.Cache.ExpirationHours, 0)
	require.NotNil(t, cfg.Preload)
	assert.Equal(t, []string{"730", "570"}, cfg.Preload.AppIDs)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
