package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	OutputDir   string
	NWSBaseURL  string
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string

	// Pushgateway telemetry configuration.
	PushgatewayURL string
	PushEnabled    bool
}

// maxHTTPTimeout caps the per-request timeout so one stalled feed cannot
// hold the scheduled run open past its window.
const maxHTTPTimeout = 15 * time.Second

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("HTTP_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}
	if timeout > maxHTTPTimeout {
		return nil, errors.New("HTTP_TIMEOUT must not exceed 15s")
	}

	pushURL := os.Getenv("PUSHGATEWAY_URL")
	pushEnabled := pushURL != ""
	if v := os.Getenv("PUSH_ENABLED"); v != "" {
		pushEnabled = v == "true"
	}

	cfg := &Config{
		OutputDir:      envOrDefault("OUTPUT_DIR", "reports"),
		NWSBaseURL:     envOrDefault("NWS_BASE_URL", "https://api.weather.gov"),
		HTTPTimeout:    timeout,
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
		PushgatewayURL: pushURL,
		PushEnabled:    pushEnabled,
	}

	if cfg.PushEnabled && cfg.PushgatewayURL == "" {
		return nil, errors.New("PUSH_ENABLED is true but PUSHGATEWAY_URL is not set")
	}

	return cfg, nil
}

// envOrDefault returns the variable's value, or def when unset or empty.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
