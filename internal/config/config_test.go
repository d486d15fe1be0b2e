package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 12*time.Hour, cfg.LookupCacheTTL)
	assert.Equal(t, "SCV", cfg.RequestApplicationCode)
	assert.Equal(t, "A2A", cfg.RequestSearchApplicationCode)
	assert.Equal(t, []string{"S"}, cfg.HearingRestrictionTypes)
	assert.True(t, cfg.BreakerEnabled)
	assert.Equal(t, uint32(10), cfg.BreakerMinRequests)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CACHE_TTL", "5")
	t.Setenv("HEARING_RESTRICTION_TYPES", "S, A ,,G")
	t.Setenv("FILE_SERVICES_URL", "https://files.example")
	t.Setenv("API_RATE_WINDOW", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"S", "A", "G"}, cfg.HearingRestrictionTypes)
	assert.Equal(t, "https://files.example", cfg.FileServices.URL)
	assert.Equal(t, 10*time.Second, cfg.APIRateWindow)
}

func TestLoadInvalidNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"CACHE_SIZE", "lots"},
		{"CACHE_TTL", "soon"},
		{"LOOKUP_CACHE_TTL", "x"},
		{"UPSTREAM_TIMEOUT", "1.5"},
		{"BREAKER_MIN_REQUESTS", "-1"},
		{"BREAKER_FAILURE_RATIO", "half"},
		{"API_RATE_LIMIT", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
