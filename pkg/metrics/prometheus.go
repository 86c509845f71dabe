// Package metrics provides Prometheus metrics for the live game tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric exposed by the tracker.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// Upstream fetch metrics.
	fetchRequests *prometheus.CounterVec
	fetchRetries  prometheus.Counter
	fetchLatency  *prometheus.HistogramVec
	breakerOpen   prometheus.Gauge

	// Refresh cycle metrics.
	refreshCycles   prometheus.Counter
	refreshFailures prometheus.Counter
	refreshDuration prometheus.Histogram

	// Snapshot metrics.
	snapshotBuilds   prometheus.Counter
	snapshotLastUnix prometheus.Gauge
	gamesTracked     prometheus.Gauge
	pitchRows        prometheus.Gauge
	duplicatePitches prometheus.Counter

	// Cache metrics.
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec

	// HTTP serving metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Process metrics updated by the main loop.
	memoryBytes prometheus.Gauge
	goroutines  prometheus.Gauge
}

// latency buckets in milliseconds, tuned for an external JSON API.
var latencyBuckets = []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

// Option configures the Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// NewManager builds a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "lgt",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.fetchRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "fetch_requests_total",
		Help:      "Upstream stats API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	m.fetchRetries = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "fetch_retries_total",
		Help:      "Retried upstream requests.",
	})

	m.fetchLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "fetch_latency_ms",
		Help:      "Upstream request latency in milliseconds.",
		Buckets:   latencyBuckets,
	}, []string{"endpoint"})

	m.breakerOpen = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "fetch_breaker_open",
		Help:      "1 when the upstream circuit breaker is open.",
	})

	m.refreshCycles = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "refresh_cycles_total",
		Help:      "Completed refresh cycles.",
	})

	m.refreshFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "refresh_failures_total",
		Help:      "Refresh cycles that produced no snapshot.",
	})

	m.refreshDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "refresh_duration_ms",
		Help:      "End-to-end refresh cycle duration in milliseconds.",
		Buckets:   latencyBuckets,
	})

	m.snapshotBuilds = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_builds_total",
		Help:      "Snapshots published to the store.",
	})

	m.snapshotLastUnix = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "snapshot_last_build_unix",
		Help:      "Unix time of the most recent snapshot.",
	})

	m.gamesTracked = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "games_tracked",
		Help:      "Games included in the current snapshot.",
	})

	m.pitchRows = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "pitch_rows",
		Help:      "Derived pitch rows in the current snapshot.",
	})

	m.duplicatePitches = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "duplicate_pitches_total",
		Help:      "Pitch rows suppressed by composite-key dedupe.",
	})

	m.cacheHits = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "cache_hits_total",
		Help:      "TTL cache hits by cache name.",
	}, []string{"cache"})

	m.cacheMisses = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "cache_misses_total",
		Help:      "TTL cache misses by cache name.",
	}, []string{"cache"})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   latencyBuckets,
	}, []string{"endpoint"})

	m.memoryBytes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "memory_alloc_bytes",
		Help:      "Heap bytes currently allocated.",
	})

	m.goroutines = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "goroutines",
		Help:      "Current goroutine count.",
	})

	return m
}

// Registry exposes the manager's registry for promhttp serving.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

var defaultManager = NewManager()

// GetRegistry returns the default manager's registry.
func GetRegistry() *prometheus.Registry { return defaultManager.Registry() }

// Package-level helpers over the default manager.

func RecordFetch(endpoint, outcome string) {
	defaultManager.fetchRequests.WithLabelValues(endpoint, outcome).Inc()
}

func RecordFetchRetry() { defaultManager.fetchRetries.Inc() }

func RecordFetchLatency(endpoint string, ms float64) {
	defaultManager.fetchLatency.WithLabelValues(endpoint).Observe(ms)
}

func SetBreakerOpen(open bool) {
	if open {
		defaultManager.breakerOpen.Set(1)
	} else {
		defaultManager.breakerOpen.Set(0)
	}
}

func RecordRefreshCycle()  { defaultManager.refreshCycles.Inc() }
func RecordRefreshFailure() { defaultManager.refreshFailures.Inc() }

func RecordRefreshDuration(ms float64) { defaultManager.refreshDuration.Observe(ms) }

func RecordSnapshotBuild(unix int64) {
	defaultManager.snapshotBuilds.Inc()
	defaultManager.snapshotLastUnix.Set(float64(unix))
}

func UpdateGamesTracked(n int) { defaultManager.gamesTracked.Set(float64(n)) }
func UpdatePitchRows(n int)    { defaultManager.pitchRows.Set(float64(n)) }

func RecordDuplicatePitches(n int) {
	if n > 0 {
		defaultManager.duplicatePitches.Add(float64(n))
	}
}

func RecordCacheHit(name string)  { defaultManager.cacheHits.WithLabelValues(name).Inc() }
func RecordCacheMiss(name string) { defaultManager.cacheMisses.WithLabelValues(name).Inc() }

func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint string, ms float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint).Observe(ms)
}

func UpdateMemoryAlloc(bytes uint64) { defaultManager.memoryBytes.Set(float64(bytes)) }
func UpdateGoroutines(n int)         { defaultManager.goroutines.Set(float64(n)) }
