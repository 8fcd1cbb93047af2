// Package server exposes rendered heatmaps over HTTP. It serves
// per-year artifacts for a single loaded dataset alongside health and
// Prometheus metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calheat/calheat/pkg/errors"
	"github.com/calheat/calheat/pkg/pipeline"
	"github.com/calheat/calheat/pkg/series"
)

// contentTypes maps the servable formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

// Config assembles a Server.
type Config struct {
	Addr        string
	Runner      *pipeline.Runner
	Series      *series.Series
	DatasetHash string
	Options     pipeline.Options
	Logger      *log.Logger
	Metrics     *Metrics
}

// Server serves rendered heatmaps for one dataset.
type Server struct {
	httpServer  *http.Server
	runner      *pipeline.Runner
	series      *series.Series
	datasetHash string
	opts        pipeline.Options
	logger      *log.Logger
	metrics     *Metrics
}

// New creates a server with /years/{year}.{format}, /years, /healthz
// and /metrics routes.
func New(cfg Config) *Server {
	s := &Server{
		runner:      cfg.Runner,
		series:      cfg.Series,
		datasetHash: cfg.DatasetHash,
		opts:        cfg.Options,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.metrics == nil {
		s.metrics = NewMetricsForTesting()
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/years", s.handleYears)
	r.Get("/years/{year}.{format}", s.handleRender)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful
// shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr, "years", s.series.Years())
	return s.httpServer.ListenAndServe()
}

// Shutdown drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleYears lists the years present in the dataset.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"years": s.series.Years(),
		"rows":  s.series.Len(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	format := chi.URLParam(r, "format")
	contentType, ok := contentTypes[format]
	if !ok {
		http.Error(w, "unsupported format", http.StatusBadRequest)
		return
	}

	data, hit, err := s.runner.RenderYear(r.Context(), s.series, s.datasetHash, year, format, s.opts)
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.RendersTotal.WithLabelValues(format, "error").Inc()
		if errors.Is(err, errors.ErrCodeYearNotFound) {
			http.Error(w, errors.UserMessage(err), http.StatusNotFound)
			return
		}
		s.logger.Error("render failed", "year", year, "format", format, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.metrics.RendersTotal.WithLabelValues(format, "success").Inc()
	if hit {
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	s.logger.Debug("served render", "year", year, "format", format, "cached", hit, "bytes", len(data))
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}
