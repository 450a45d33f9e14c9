// Command reporte generates the daily Arecibo weather report: it fetches
// active alerts and the forecast from the NWS API, classifies flood, rain,
// and marine risk, renders the Spanish PDF, and writes the artifacts the
// dashboard serves. One invocation is one report; scheduling lives outside
// (GitHub Actions, cron).
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/adapter/disk"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/adapter/nws"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/adapter/pdf"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/config"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/observability"
	"github.com/rcolinpr/arecibo-weather-monitor/internal/pipeline"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := nws.NewClient(cfg.NWSBaseURL, cfg.HTTPTimeout, logger, metrics)
	writer := disk.NewWriter(cfg.OutputDir, logger)
	p := pipeline.New(client, pdf.NewBuilder(), writer, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := p.Run(ctx)

	// Push run metrics even after a failed run so the failure is visible
	// between scheduled invocations.
	if cfg.PushEnabled {
		if err := observability.Push(cfg.PushgatewayURL); err != nil {
			logger.Warn("metrics push failed", "error", err, "url", cfg.PushgatewayURL)
		}
	}

	if runErr != nil {
		logger.Error("report run failed", "error", runErr)
		os.Exit(1)
	}
}
