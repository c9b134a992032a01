// Package metrics provides Prometheus metrics for the sports catalog.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcomes used as label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

const millisecondsPerSecond = 1e3

// Manager owns the catalog metrics registered on a single registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	starBuckets      []float64
	registry         *prometheus.Registry

	operations       *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	ratingStars      prometheus.Histogram
	queryLatency     *prometheus.HistogramVec

	activities prometheus.Gauge
	categories prometheus.Gauge
	products   prometheus.Gauge
	ratings    prometheus.Gauge
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry for the default manager

var defaultManager = NewManager(WithPrometheusRegistry(customRegistry)) //nolint:gochecknoglobals // default manager used by package helpers

// NewManager creates a new metrics manager. Without WithPrometheusRegistry
// the metrics are registered on a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "sports",
		subsystem:        "catalog",
		histogramBuckets: prometheus.DefBuckets,
		starBuckets:      []float64{0, 1, 2, 3, 4, 5},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.operations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "operations_total",
		Help:      "Catalog mutations by operation and outcome",
	}, []string{"operation", "outcome"})

	m.validationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_errors_total",
		Help:      "Rejected catalog mutations by reason",
	}, []string{"reason"})

	m.ratingStars = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_stars",
		Help:      "Distribution of accepted rating stars",
		Buckets:   m.starBuckets,
	})

	m.queryLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_duration_milliseconds",
		Help:      "Latency of catalog read queries in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"query"})

	m.activities = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "activities",
		Help:      "Number of defined activities",
	})
	m.categories = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "categories",
		Help:      "Number of defined categories",
	})
	m.products = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "products",
		Help:      "Number of products",
	})
	m.ratings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings",
		Help:      "Number of ratings across all products",
	})
}

// RecordOperation counts one mutation with its outcome.
func (m *Manager) RecordOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// RecordValidationError counts one rejected mutation by reason.
func (m *Manager) RecordValidationError(reason string) {
	m.validationErrors.WithLabelValues(reason).Inc()
}

// ObserveRatingStars records the stars of an accepted rating.
func (m *Manager) ObserveRatingStars(stars int) {
	m.ratingStars.Observe(float64(stars))
}

// ObserveQuery records the latency of a read query.
func (m *Manager) ObserveQuery(query string, d time.Duration) {
	m.queryLatency.WithLabelValues(query).Observe(d.Seconds() * millisecondsPerSecond)
}

// UpdateCatalogSize sets the catalog size gauges.
func (m *Manager) UpdateCatalogSize(activities, categories, products, ratings int) {
	m.activities.Set(float64(activities))
	m.categories.Set(float64(categories))
	m.products.Set(float64(products))
	m.ratings.Set(float64(ratings))
}

// Registry returns the registry the manager's metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Default returns the process-wide manager backed by GetRegistry.
func Default() *Manager {
	return defaultManager
}

// GetRegistry returns the custom Prometheus registry used by the default manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
