package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RateLimitFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("RATE_LIMIT_LIMIT", "25")
	t.Setenv("RATE_LIMIT_PERIOD", "30s")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, int64(25), cfg.RateLimitLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimitPeriod)
}

func TestLoad_CatalogCacheKnobs(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("CATALOG_CACHE_MAX", "25")
	t.Setenv("CATALOG_FETCH_CHUNK", "5")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.CatalogCacheTTL)
	assert.Equal(t, 25, cfg.CatalogCacheMax)
	assert.Equal(t, 5, cfg.CatalogChunk)
}
