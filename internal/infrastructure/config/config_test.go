package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "Garnish", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 600, cfg.RateLimit.RequestsPerMin)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GARNISH_SERVER_PORT", "9191")
	t.Setenv("GARNISH_APP_ENVIRONMENT", "production")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("GARNISH_SERVER_PORT", "70000")

	_, err := Load("")

	assert.Error(t, err)
}

func TestValidateRejectsZeroRateLimit(t *testing.T) {
	cfg := &Config{
		App:       AppConfig{Name: "Garnish"},
		Server:    ServerConfig{Port: 8080},
		RateLimit: RateLimitConfig{RequestsPerMin: 0},
	}

	assert.Error(t, cfg.Validate())
}
