package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPushURL = "http://pushgateway.local:9091"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, "https://api.weather.gov", cfg.NWSBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.PushEnabled)
	assert.Empty(t, cfg.PushgatewayURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/reportes")
	t.Setenv("NWS_BASE_URL", "http://localhost:8089")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PUSHGATEWAY_URL", testPushURL)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reportes", cfg.OutputDir)
	assert.Equal(t, "http://localhost:8089", cfg.NWSBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.PushEnabled)
	assert.Equal(t, testPushURL, cfg.PushgatewayURL)
}

func TestLoad_InvalidHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_NegativeHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_ZeroHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_HTTPTimeoutTooLarge(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "30s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_PushEnabledWithoutURL(t *testing.T) {
	t.Setenv("PUSH_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUSHGATEWAY_URL")
}

func TestLoad_PushURLImpliesEnabled(t *testing.T) {
	t.Setenv("PUSHGATEWAY_URL", testPushURL)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.PushEnabled)
}

func TestLoad_PushExplicitlyDisabled(t *testing.T) {
	t.Setenv("PUSHGATEWAY_URL", testPushURL)
	t.Setenv("PUSH_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.PushEnabled)
}
