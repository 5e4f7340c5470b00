// Package metrics provides Prometheus metrics for the quarterdeck service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	// Refresh pipeline
	refreshTotal    prometheus.Counter
	refreshErrors   prometheus.Counter
	refreshDuration prometheus.Histogram

	// Normalization
	rowsParsed  *prometheus.CounterVec
	rowsSkipped *prometheus.CounterVec

	// Snapshot state
	crewTotal          prometheus.Gauge
	leaderboardEntries prometheus.Gauge
	compliancePercent  prometheus.Gauge
	loaCount           prometheus.Gauge
	snapshotLastUnix   prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager on a custom registry: the default registry's Go
// runtime collectors would drown the handful of metrics that matter here.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton metrics registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton metrics manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "quarterdeck",
		subsystem: "roster",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	m.refreshTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_total",
		Help:      "Total number of completed sheet refreshes",
	})
	m.refreshErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_errors_total",
		Help:      "Total number of refreshes that failed before producing a snapshot",
	})
	m.refreshDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_duration_seconds",
		Help:      "End-to-end refresh duration including sheet fetches",
		Buckets:   m.buckets,
	})

	m.rowsParsed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_parsed_total",
		Help:      "Data rows normalized into records, by sheet",
	}, []string{"sheet"})
	m.rowsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_skipped_total",
		Help:      "Data rows dropped during normalization, by sheet",
	}, []string{"sheet"})

	m.crewTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "crew_total",
		Help:      "Crew members in the latest snapshot",
	})
	m.leaderboardEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_entries",
		Help:      "Leaderboard entries in the latest snapshot",
	})
	m.compliancePercent = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "compliance_percent",
		Help:      "Fully compliant share of the latest snapshot, 0-100",
	})
	m.loaCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loa_count",
		Help:      "Members on leave of absence in the latest snapshot",
	})
	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix",
		Help:      "Unix time of the latest stored snapshot",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry backing the global manager, for the
// /healthz metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordRefresh records one refresh attempt and its duration.
func RecordRefresh(d time.Duration, err error) {
	globalManager.refreshTotal.Inc()
	globalManager.refreshDuration.Observe(d.Seconds())
	if err != nil {
		globalManager.refreshErrors.Inc()
	}
}

// RecordRowsParsed adds normalized row counts for a sheet.
func RecordRowsParsed(sheet string, n int) {
	globalManager.rowsParsed.WithLabelValues(sheet).Add(float64(n))
}

// RecordRowsSkipped adds skipped row counts for a sheet.
func RecordRowsSkipped(sheet string, n int) {
	globalManager.rowsSkipped.WithLabelValues(sheet).Add(float64(n))
}

// UpdateSnapshot publishes gauge state for the latest snapshot.
func UpdateSnapshot(crew, entries, percent, onLOA int, at time.Time) {
	globalManager.crewTotal.Set(float64(crew))
	globalManager.leaderboardEntries.Set(float64(entries))
	globalManager.compliancePercent.Set(float64(percent))
	globalManager.loaCount.Set(float64(onLOA))
	globalManager.snapshotLastUnix.Set(float64(at.Unix()))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}
