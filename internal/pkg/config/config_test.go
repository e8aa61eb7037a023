package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.False(t, cfg.StrictRoles)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORTFOLIO_ENV":          "production",
		"PORTFOLIO_LOG_LEVEL":    "debug",
		"PORTFOLIO_LOG_PRETTY":   "false",
		"PORTFOLIO_STRICT_ROLES": "true",
		"PORTFOLIO_METRICS_FILE": "/tmp/portfolio.prom",
		"LOG_LEVEL":              "error",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/portfolio.prom", cfg.MetricsFile)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.True(t, cfg.StrictRoles)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORTFOLIO_STRICT_ROLES": "maybe",
	}))
	assert.Error(t, err)

	_, err = LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORTFOLIO_LOG_LEVEL": "loud",
	}))
	assert.ErrorContains(t, err, "PORTFOLIO_LOG_LEVEL")
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_STRICT_ROLES", "true")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.StrictRoles)
}
