// Package pipeline orchestrates one report run: fetch the NWS feeds,
// classify risk, assemble the document, draw the PDF, and persist the three
// artifacts. Stages are injected through small interfaces so tests can run
// the pass against fakes or recorded fixtures.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/observability"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/report"
)

// Fetcher reads the upstream weather feeds. A nil return means the fetch
// failed; the run substitutes empty data and still renders.
type Fetcher interface {
	ActiveAlerts(ctx context.Context) []domain.Alert
	Forecast(ctx context.Context) []domain.ForecastPeriod
}

// Builder draws an assembled document into finished PDF bytes.
type Builder interface {
	Build(doc report.Document) ([]byte, error)
}

// ArtifactWriter persists the run outputs in order: the dated document, the
// latest copy, the summary record.
type ArtifactWriter interface {
	WriteDocument(name string, data []byte) error
	CopyLatest(name string) error
	WriteSummary(rec domain.ReportRecord) error
}

// Pipeline runs the fetch-classify-render-write pass.
type Pipeline struct {
	fetcher Fetcher
	builder Builder
	writer  ArtifactWriter
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, b Builder, w ArtifactWriter, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher: f,
		builder: b,
		writer:  w,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes one report pass. Fetch failures degrade to an offline
// edition; a document build or artifact write failure aborts the run, so
// the latest copy and summary never describe a document that was not built.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.metrics.RunsTotal.Inc()

	now := domain.NowAST()
	p.logger.Info("report run started",
		"date", domain.FormatLongDate(now),
		"time", domain.FormatClock(now),
	)

	alerts, periods := p.fetch(ctx)
	summary := domain.Classify(alerts, periods)
	p.recordClassification(alerts, periods, summary)

	doc := report.Assemble(report.Input{
		Now:     now,
		Alerts:  alerts,
		Periods: periods,
		Summary: summary,
	})

	name := domain.ArchiveName(now)
	if err := p.writeArtifacts(doc, name, domain.NewReportRecord(now, len(alerts), summary)); err != nil {
		p.metrics.BuildFailures.Inc()
		return err
	}

	p.metrics.RunDuration.Set(time.Since(start).Seconds())
	p.metrics.LastSuccessTime.Set(float64(domain.Now().Unix()))
	p.logger.Info("report run complete",
		"file", name,
		"risk", summary.FloodRisk,
		"rain", domain.RainDisplay(summary.RainPct),
		"duration", time.Since(start),
	)
	return nil
}

// fetch pulls both feeds sequentially, substituting empty slices for failed
// fetches so every downstream stage sees usable input.
func (p *Pipeline) fetch(ctx context.Context) ([]domain.Alert, []domain.ForecastPeriod) {
	alerts := p.fetcher.ActiveAlerts(ctx)
	if alerts == nil {
		p.logger.Warn("alerts unavailable, rendering with empty feed")
		alerts = []domain.Alert{}
	}

	periods := p.fetcher.Forecast(ctx)
	if periods == nil {
		p.logger.Warn("forecast unavailable, rendering without periods")
		periods = []domain.ForecastPeriod{}
	}
	return alerts, periods
}

func (p *Pipeline) recordClassification(alerts []domain.Alert, periods []domain.ForecastPeriod, s domain.RiskSummary) {
	p.metrics.ActiveAlerts.Set(float64(len(alerts)))
	p.metrics.FloodAlerts.Set(float64(len(s.FloodAlerts)))
	p.metrics.MarineAlerts.Set(float64(len(s.MarineAlerts)))
	p.logger.Info("nws data classified",
		"alerts", len(alerts),
		"flood_alerts", len(s.FloodAlerts),
		"marine_alerts", len(s.MarineAlerts),
		"periods", len(periods),
		"risk", s.FloodRisk,
	)
}

// writeArtifacts builds the PDF and persists the three outputs in their
// fixed order. The first failure aborts the rest.
func (p *Pipeline) writeArtifacts(doc report.Document, name string, rec domain.ReportRecord) error {
	data, err := p.builder.Build(doc)
	if err != nil {
		return fmt.Errorf("build document: %w", err)
	}
	if err := p.writer.WriteDocument(name, data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := p.writer.CopyLatest(name); err != nil {
		return fmt.Errorf("copy latest: %w", err)
	}
	if err := p.writer.WriteSummary(rec); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
