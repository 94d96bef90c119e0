package logs

import (
	"context"
	"log/slog"
	"testing"

	"mazraa/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "mazraa-api"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewHonorsConfiguredLevel(t *testing.T) {
	logger, err := New(Params{Config: testConfig("warn", true)})
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Params{Config: testConfig("verbose", false)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestParseLogLevelDefaultsToInfo(t *testing.T) {
	level, err := parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = parseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}
