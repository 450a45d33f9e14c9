package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/observability"
)

const (
	// alertsPath is the active-alerts feed for Puerto Rico; 25 covers the
	// worst historical alert days with room to spare.
	alertsPath = "/alerts/active?area=PR&limit=25"

	// pointsPath is the Arecibo observation point. The coordinate string is
	// kept verbatim from the office's registration of the monitor.
	pointsPath = "/points/18.4736,-66.7220"

	// userAgent identifies the client to the NWS API, which requires a
	// distinctive User-Agent and may throttle anonymous callers.
	userAgent = "AreciboWeatherMonitor/2.0 github-actions"

	acceptGeoJSON = "application/geo+json"
)

// Client reads the NWS endpoints the report consumes. Every fetch degrades
// to nil on failure after logging a warning; the run substitutes empty data
// and still produces a report.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an NWS API client with a bounded per-request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// ActiveAlerts fetches the active Puerto Rico alerts. nil means the fetch
// failed; an empty slice means a clean feed.
func (c *Client) ActiveAlerts(ctx context.Context) []domain.Alert {
	var payload alertsResponse
	if !c.getJSON(ctx, c.baseURL+alertsPath, "alerts", &payload) {
		return nil
	}

	alerts := make([]domain.Alert, 0, len(payload.Features))
	for _, f := range payload.Features {
		alerts = append(alerts, domain.Alert{
			Event:    f.Properties.Event,
			Severity: domain.Severity(f.Properties.Severity),
			Area:     f.Properties.AreaDesc,
			Expires:  f.Properties.Expires,
		})
	}
	return alerts
}

// Forecast fetches the Arecibo forecast in two legs: the point lookup
// resolves the gridpoint forecast URL, then that URL serves the periods.
// nil if either leg fails or the point response carries no forecast link.
func (c *Client) Forecast(ctx context.Context) []domain.ForecastPeriod {
	var point pointsResponse
	if !c.getJSON(ctx, c.baseURL+pointsPath, "points", &point) {
		return nil
	}
	if point.Properties.Forecast == "" {
		c.logger.Warn("point lookup returned no forecast link")
		return nil
	}

	var fc forecastResponse
	if !c.getJSON(ctx, point.Properties.Forecast, "forecast", &fc) {
		return nil
	}

	periods := make([]domain.ForecastPeriod, 0, len(fc.Properties.Periods))
	for _, p := range fc.Properties.Periods {
		periods = append(periods, domain.ForecastPeriod{
			Name:             p.Name,
			IsDaytime:        p.IsDaytime,
			StartTime:        p.StartTime,
			Temperature:      p.Temperature,
			TemperatureUnit:  p.TemperatureUnit,
			PrecipProb:       p.ProbabilityOfPrecipitation.Value,
			ShortForecast:    p.ShortForecast,
			DetailedForecast: p.DetailedForecast,
		})
	}
	return periods
}

// getJSON issues one GET and decodes the body into v. Any failure is
// logged, counted, and reported as false; fetch errors never propagate
// past this client.
func (c *Client) getJSON(ctx context.Context, url, endpoint string, v any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.fail(endpoint, url, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return c.fail(endpoint, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return c.fail(endpoint, url, fmt.Errorf("NWS API error: status %d: %s", resp.StatusCode, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return c.fail(endpoint, url, fmt.Errorf("decode response: %w", err))
	}

	c.metrics.FetchRequests.WithLabelValues(endpoint, "success").Inc()
	return true
}

func (c *Client) fail(endpoint, url string, err error) bool {
	c.logger.Warn("nws fetch failed", "endpoint", endpoint, "url", url, "error", err)
	c.metrics.FetchRequests.WithLabelValues(endpoint, "error").Inc()
	return false
}

// NWS API response types. Only the fields the report reads are declared.

type alertsResponse struct {
	Features []struct {
		Properties alertProperties `json:"properties"`
	} `json:"features"`
}

type alertProperties struct {
	Event    string `json:"event"`
	Severity string `json:"severity"`
	AreaDesc string `json:"areaDesc"`
	Expires  string `json:"expires"`
}

type pointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []periodProperties `json:"periods"`
	} `json:"properties"`
}

type periodProperties struct {
	Name                       string `json:"name"`
	IsDaytime                  bool   `json:"isDaytime"`
	StartTime                  string `json:"startTime"`
	Temperature                *int   `json:"temperature"`
	TemperatureUnit            string `json:"temperatureUnit"`
	ProbabilityOfPrecipitation struct {
		Value *int `json:"value"`
	} `json:"probabilityOfPrecipitation"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}
