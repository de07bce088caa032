package routedir

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures registration metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "routedir").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for registration pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures registration metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "routedir",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus instruments a registration pass records
// into. Instruments register on construction, so create one Metrics per
// registry and share it across CreateRouter calls.
//
// Metrics collected:
//   - routedir_descriptors_total: Counter of processed descriptors by kind
//   - routedir_registrations_total: Counter of adapter registrations by kind and method
//   - routedir_skipped_total: Counter of silently skipped descriptors by kind and reason
//   - routedir_create_duration_seconds: Histogram of full registration pass duration
//
// Example:
//
//	m := routedir.NewMetrics(routedir.WithNamespace("myapp"))
//	_, err := routedir.CreateRouter(ctx, adapter, routedir.Options{
//	    RoutesDir: "app/routes",
//	    Source:    reg,
//	    Metrics:   m,
//	})
//
//	http.Handle("/metrics", promhttp.Handler())
type Metrics struct {
	descriptors   *prometheus.CounterVec
	registrations *prometheus.CounterVec
	skipped       *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

// NewMetrics creates and registers the registration instruments.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		descriptors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "descriptors_total",
			Help:        "Total number of route and middleware descriptors processed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registrations_total",
			Help:        "Total number of adapter registrations performed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "method"}),

		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "skipped_total",
			Help:        "Total number of descriptors skipped without registration",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "reason"}),

		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "create_duration_seconds",
			Help:        "Duration of a full registration pass in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) recordDescriptor(kind string) {
	if m == nil {
		return
	}
	m.descriptors.WithLabelValues(kind).Inc()
}

func (m *Metrics) recordRegistration(kind, method string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(kind, method).Inc()
}

func (m *Metrics) recordSkip(kind, reason string) {
	if m == nil {
		return
	}
	m.skipped.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) observeRun(d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(d.Seconds())
}
