package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for serve mode.
type Metrics struct {
	RendersTotal   *prometheus.CounterVec // labels: format, outcome={success,error}
	RenderDuration prometheus.Histogram
	CacheLookups   *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all server metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RendersTotal,
		m.RenderDuration,
		m.CacheLookups,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calheat",
			Name:      "renders_total",
			Help:      "Served renders by format and outcome.",
		}, []string{"format", "outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calheat",
			Name:      "render_duration_seconds",
			Help:      "Duration of a year render, including cache lookup.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calheat",
			Name:      "cache_lookups_total",
			Help:      "Artifact cache lookups by result.",
		}, []string{"result"}),
	}
}
