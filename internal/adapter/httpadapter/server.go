package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/synop-encoder/internal/domain"
	"github.com/couchcryptid/synop-encoder/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LatestReports looks up the newest stored report for a station.
type LatestReports interface {
	Latest(ctx context.Context, station string) (domain.Report, error)
}

// Server exposes health, readiness, metrics, and encoding HTTP endpoints.
type Server struct {
	httpServer *http.Server
	reports    LatestReports
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and POST /v1/encode.
// GET /v1/stations/{station}/latest is registered only when reports is non-nil.
func NewServer(addr string, ready sharedobs.ReadinessChecker, reports LatestReports, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		reports: reports,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/encode", s.handleEncode)
	if reports != nil {
		mux.HandleFunc("GET /v1/stations/{station}/latest", s.handleLatest)
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
