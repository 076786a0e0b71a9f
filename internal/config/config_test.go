package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.InsightsTimeout)
	assert.Equal(t, 2, cfg.InsightsRetries)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("DATA_DIR", "/tmp/stock-data")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("INSIGHTS_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "/tmp/stock-data", cfg.DataDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.InsightsTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_EmptyDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")

	// An explicitly empty DATA_DIR falls back to the default rather than
	// producing an unusable config.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
}
