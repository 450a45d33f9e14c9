package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/adapter/disk"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/adapter/nws"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/adapter/pdf"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/pipeline"
)

// Replays the recorded NWS fixtures (regenerable with cmd/genmock) through
// the real run: NWS client against an httptest server, classifier, renderer,
// PDF builder, and disk writer into a temp directory.

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "mock", name))
	require.NoError(t, err)
	return data
}

// fixtureServer serves the three NWS endpoints from the recorded fixtures,
// rewriting the forecast link in the points payload to point back at itself.
func fixtureServer(t *testing.T) (*httptest.Server, map[string]*int) {
	t.Helper()

	alerts := readFixture(t, "nws_alerts_250825.json")
	points := readFixture(t, "nws_points_250825.json")
	forecast := readFixture(t, "nws_forecast_250825.json")

	hits := map[string]*int{
		"alerts":   new(int),
		"points":   new(int),
		"forecast": new(int),
	}

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/alerts/active", func(w http.ResponseWriter, _ *http.Request) {
		*hits["alerts"]++
		_, _ = w.Write(alerts)
	})
	mux.HandleFunc("/points/18.4736,-66.7220", func(w http.ResponseWriter, _ *http.Request) {
		*hits["points"]++
		rewritten := strings.ReplaceAll(string(points), "https://api.weather.gov", srv.URL)
		_, _ = w.Write([]byte(rewritten))
	})
	mux.HandleFunc("/gridpoints/SJU/35,84/forecast", func(w http.ResponseWriter, _ *http.Request) {
		*hits["forecast"]++
		_, _ = w.Write(forecast)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, hits
}

func TestPipeline_Run_WithMockNWSData(t *testing.T) {
	freezeClock(t)
	srv, hits := fixtureServer(t)

	outDir := t.TempDir()
	logger := testLogger()
	metrics := newTestMetrics()

	p := pipeline.New(
		nws.NewClient(srv.URL, 5*time.Second, logger, metrics),
		pdf.NewBuilder(),
		disk.NewWriter(outDir, logger),
		logger,
		metrics,
	)

	require.NoError(t, p.Run(context.Background()))

	// Each endpoint is fetched exactly once, in one sequential pass.
	assert.Equal(t, 1, *hits["alerts"])
	assert.Equal(t, 1, *hits["points"])
	assert.Equal(t, 1, *hits["forecast"])

	// The dated document and its latest copy carry the same bytes.
	doc, err := os.ReadFile(filepath.Join(outDir, "Reporte_Meteorologico_Arecibo_2025-08-25.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-1.")), "missing PDF magic")

	latest, err := os.ReadFile(filepath.Join(outDir, "reporte_mas_reciente.pdf"))
	require.NoError(t, err)
	assert.Equal(t, doc, latest)

	// The summary record reflects the fixture classification: two flood
	// alerts (worst Severe), three marine, rain probability 85 today.
	summary, err := os.ReadFile(filepath.Join(outDir, "reporte_info.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"fecha": "lunes, 25 de agosto de 2025",
		"hora": "06:00 AM AST",
		"archivo": "Reporte_Meteorologico_Arecibo_2025-08-25.pdf",
		"alertas_total": 6,
		"alertas_inundacion": 2,
		"alertas_marinas": 3,
		"lluvia_hoy_pct": 85,
		"riesgo": "ALTO",
		"generado_utc": "2025-08-25T10:00:00Z"
	}`, string(summary))
}

func TestPipeline_Run_WithMockNWSData_ForecastOutage(t *testing.T) {
	freezeClock(t)

	alerts := readFixture(t, "nws_alerts_250825.json")
	mux := http.NewServeMux()
	mux.HandleFunc("/alerts/active", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(alerts)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	outDir := t.TempDir()
	logger := testLogger()
	metrics := newTestMetrics()

	p := pipeline.New(
		nws.NewClient(srv.URL, 5*time.Second, logger, metrics),
		pdf.NewBuilder(),
		disk.NewWriter(outDir, logger),
		logger,
		metrics,
	)

	require.NoError(t, p.Run(context.Background()), "a dead forecast feed must not fail the run")

	summary, err := os.ReadFile(filepath.Join(outDir, "reporte_info.json"))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(summary, &rec))
	assert.Equal(t, float64(6), rec["alertas_total"])
	assert.Nil(t, rec["lluvia_hoy_pct"], "no forecast means a null rain percentage")
	assert.Equal(t, "ALTO", rec["riesgo"])
}

func TestMockFixtures_ForecastShape(t *testing.T) {
	// Guards the recorded fixture against drift when cmd/genmock changes:
	// the renderer expects seven day/night pairs.
	var fixture struct {
		Properties struct {
			Periods []struct {
				Name      string `json:"name"`
				IsDaytime bool   `json:"isDaytime"`
			} `json:"periods"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(readFixture(t, "nws_forecast_250825.json"), &fixture))

	periods := fixture.Properties.Periods
	require.Len(t, periods, 14)

	daytime := 0
	for _, p := range periods {
		if p.IsDaytime {
			daytime++
		}
	}
	assert.Equal(t, 7, daytime)
	assert.Equal(t, "Today", periods[0].Name)
	assert.True(t, periods[0].IsDaytime)
	assert.Equal(t, "Tonight", periods[1].Name)
}
