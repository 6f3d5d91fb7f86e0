package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/pkg/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://open.er-api.com/v6/latest", cfg.RateAPIBaseURL)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 600*time.Second, cfg.RateCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.RateRequestTimeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_API_BASE_URL", "http://localhost:9000/rates")
	t.Setenv("BASE_CURRENCY", "EUR")
	t.Setenv("RATE_CACHE_TTL", "1m")
	t.Setenv("RATE_REQUEST_TIMEOUT", "2s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/rates", cfg.RateAPIBaseURL)
	assert.Equal(t, "EUR", cfg.BaseCurrency)
	assert.Equal(t, time.Minute, cfg.RateCacheTTL)
	assert.Equal(t, 2*time.Second, cfg.RateRequestTimeout)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("RATE_CACHE_TTL", "soon")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_CACHE_TTL")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("BASE_CURRENCY", "usd")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
