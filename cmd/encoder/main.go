// Command encoder consumes assembled observations from Kafka, encodes each as a
// WMO FM-12 SYNOP report, and publishes the reports to the sink topic.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/synop-encoder/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/synop-encoder/internal/adapter/kafka"
	"github.com/couchcryptid/synop-encoder/internal/adapter/sqlite"
	"github.com/couchcryptid/synop-encoder/internal/config"
	"github.com/couchcryptid/synop-encoder/internal/observability"
	"github.com/couchcryptid/synop-encoder/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)

	// The archive upserts, so it goes first: a batch retried after a Kafka failure
	// rewrites the same rows.
	loaders := make([]pipeline.BatchLoader, 0, 2)
	var reports httpadapter.LatestReports
	var archive *sqlite.Archive
	if cfg.ArchiveEnabled {
		archive, err = sqlite.Open(ctx, cfg.ReportArchivePath, logger, metrics)
		if err != nil {
			logger.Error("failed to open report archive", "error", err)
			os.Exit(1)
		}
		loaders = append(loaders, archive)
		reports = archive
	} else {
		logger.Info("report archive disabled")
	}
	loaders = append(loaders, writer)

	encoder := pipeline.NewEncoder(logger, metrics)
	p := pipeline.New(reader, encoder, pipeline.NewFanOut(loaders...), logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, reports, metrics, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
	if archive != nil {
		if err := archive.Close(); err != nil {
			logger.Error("report archive close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
