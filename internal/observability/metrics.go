package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a
// report run. The gauges carry last-run values; a Pushgateway keeps them
// visible between scheduled runs.
type Metrics struct {
	RunsTotal     prometheus.Counter
	BuildFailures prometheus.Counter

	// NWS fetch metrics.
	FetchRequests *prometheus.CounterVec   // labels: endpoint={alerts,points,forecast}, outcome={success,error}
	FetchDuration *prometheus.HistogramVec // labels: endpoint={alerts,points,forecast}

	// Last-run snapshot.
	ActiveAlerts    prometheus.Gauge
	FloodAlerts     prometheus.Gauge
	MarineAlerts    prometheus.Gauge
	RunDuration     prometheus.Gauge
	LastSuccessTime prometheus.Gauge
}

// NewMetrics creates and registers all run metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arecibo_report",
			Name:      "runs_total",
			Help:      "Total report generation attempts.",
		}),
		BuildFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arecibo_report",
			Name:      "build_failures_total",
			Help:      "Total fatal document build or artifact write failures.",
		}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arecibo_report",
			Name:      "fetch_requests_total",
			Help:      "NWS API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "arecibo_report",
			Name:      "fetch_duration_seconds",
			Help:      "NWS API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"endpoint"}),
		ActiveAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arecibo_report",
			Name:      "active_alerts",
			Help:      "Active Puerto Rico alerts seen by the last run.",
		}),
		FloodAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arecibo_report",
			Name:      "flood_alerts",
			Help:      "Flood-related alerts seen by the last run.",
		}),
		MarineAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arecibo_report",
			Name:      "marine_alerts",
			Help:      "Marine-related alerts seen by the last run.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arecibo_report",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		LastSuccessTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arecibo_report",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}

	prometheus.MustRegister(
		m.RunsTotal,
		m.BuildFailures,
		m.FetchRequests,
		m.FetchDuration,
		m.ActiveAlerts,
		m.FloodAlerts,
		m.MarineAlerts,
		m.RunDuration,
		m.LastSuccessTime,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RunsTotal:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "arecibo_report", Name: "runs_total"}),
		BuildFailures:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "arecibo_report", Name: "build_failures_total"}),
		FetchRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "arecibo_report", Name: "fetch_requests_total"}, []string{"endpoint", "outcome"}),
		FetchDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "arecibo_report", Name: "fetch_duration_seconds"}, []string{"endpoint"}),
		ActiveAlerts:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "arecibo_report", Name: "active_alerts"}),
		FloodAlerts:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "arecibo_report", Name: "flood_alerts"}),
		MarineAlerts:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "arecibo_report", Name: "marine_alerts"}),
		RunDuration:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "arecibo_report", Name: "run_duration_seconds"}),
		LastSuccessTime: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "arecibo_report", Name: "last_success_timestamp_seconds"}),
	}
}

// Push sends the default registry's current state to a Pushgateway under
// the report job name. The run is one-shot, so nothing scrapes it; pushing
// after the run is the only way the gauges become visible.
func Push(url string) error {
	return push.New(url, "arecibo_weather_report").
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
