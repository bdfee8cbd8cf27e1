// Package prometheus exposes dashboard counters on a private registry.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the dashboard collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	tableLoads     *prometheus.CounterVec
	loadDuration   prometheus.Histogram
	chartsRendered *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) { m.namespace = namespace }
}

// WithSubsystem overrides the metric subsystem.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) { m.subsystem = subsystem }
}

// WithHistogramBuckets sets the load duration buckets, in seconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) { m.histogramBuckets = buckets }
}

// WithRegistry registers collectors on r instead of a fresh registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) { m.registry = r }
}

// NewManager creates a Manager with its own registry so the default Go
// runtime collectors are not exported.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "aidash",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
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

	m.tableLoads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "table_loads_total",
			Help:      "Table reads by table and outcome",
		},
		[]string{"table", "outcome"},
	)

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_duration_seconds",
		Help:      "Time spent loading and validating both tables",
		Buckets:   m.histogramBuckets,
	})

	m.chartsRendered = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "charts_rendered_total",
			Help:      "Charts written to a page",
		},
		[]string{"chart"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
}

func (m *Manager) TableLoaded(table, outcome string) {
	m.tableLoads.WithLabelValues(table, outcome).Inc()
}

func (m *Manager) LoadDuration(d time.Duration) {
	m.loadDuration.Observe(d.Seconds())
}

func (m *Manager) ChartRendered(chart string) {
	m.chartsRendered.WithLabelValues(chart).Inc()
}

func (m *Manager) HTTPRequest(route string, code int) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry returns the registry the collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
