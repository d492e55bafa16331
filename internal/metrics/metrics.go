package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Roster Metrics
	RosterBuildsTotal        prometheus.Counter
	RosterBuildFailuresTotal prometheus.CounterVec
	RosterPairingsTotal      prometheus.Counter
	RosterBuildDuration      prometheus.Histogram

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdeck_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crewdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crewdeck_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		RosterBuildsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crewdeck_roster_builds_total",
				Help: "Total monthly roster builds that completed successfully",
			},
		),
		RosterBuildFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdeck_roster_build_failures_total",
				Help: "Roster builds aborted, by failure reason",
			},
			[]string{"reason"},
		),
		RosterPairingsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crewdeck_roster_pairings_total",
				Help: "Total pairings emitted across all roster builds",
			},
		),
		RosterBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crewdeck_roster_build_duration_seconds",
				Help:    "Wall time spent generating and persisting a monthly roster",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdeck_cache_hits_total",
				Help: "Cache hits by cache key prefix",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewdeck_cache_misses_total",
				Help: "Cache misses by cache key prefix",
			},
			[]string{"cache"},
		),
	}
}
