//go:build nws

package nws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/observability"
)

// These tests hit the real NWS API (no credentials needed, but they require
// network access and the feed's content varies by the hour).
// Run with: go test -tags=nws ./internal/adapter/nws/ -v -count=1

func smokeClient() *Client {
	return &Client{
		baseURL:    "https://api.weather.gov",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:    observability.NewMetricsForTesting(),
	}
}

func TestSmoke_ActiveAlerts(t *testing.T) {
	alerts := smokeClient().ActiveAlerts(context.Background())

	// A quiet day returns an empty slice; nil means the fetch itself failed.
	require.NotNil(t, alerts)
	for _, a := range alerts {
		assert.NotEmpty(t, a.Event)
	}
}

func TestSmoke_Forecast(t *testing.T) {
	periods := smokeClient().Forecast(context.Background())

	require.NotNil(t, periods)
	require.NotEmpty(t, periods)
	assert.NotEmpty(t, periods[0].Name)
	assert.NotEmpty(t, periods[0].StartTime)
}
