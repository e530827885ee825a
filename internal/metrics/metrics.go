// Package metrics defines the Prometheus collectors exported by the gallery
// server at /metrics.
//
// Metrics collected:
//   - gallery_http_requests_total: Counter of requests by route and status
//   - gallery_http_request_duration_seconds: Histogram of request duration by route
//   - gallery_registry_resolutions_total: Counter of showcase lookups by page and result
//   - gallery_query_cache_total: Counter of query cache lookups by result
//   - gallery_query_fetch_errors_total: Counter of failed provider fetches
//   - gallery_realtime_events_total: Counter of change-feed events by table
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "gallery").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the collectors. Default: a fresh registry with the
	// Go and process collectors.
	Registry *prometheus.Registry
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the gallery collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	resolutions     *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	fetchErrors     prometheus.Counter
	realtimeEvents  *prometheus.CounterVec
}

// New creates and registers the collectors.
func New(opts ...Option) *Metrics {
	cfg := Config{
		Namespace: "gallery",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
		cfg.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(cfg.Registry)
	return &Metrics{
		registry: cfg.Registry,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: cfg.ConstLabels,
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"route"}),

		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "registry",
			Name:        "resolutions_total",
			Help:        "Showcase registry lookups by page and result",
			ConstLabels: cfg.ConstLabels,
		}, []string{"page", "result"}),

		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "query",
			Name:        "cache_total",
			Help:        "Query cache lookups by result",
			ConstLabels: cfg.ConstLabels,
		}, []string{"result"}),

		fetchErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "query",
			Name:        "fetch_errors_total",
			Help:        "Provider fetches that returned an error",
			ConstLabels: cfg.ConstLabels,
		}),

		realtimeEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   "realtime",
			Name:        "events_total",
			Help:        "Change-feed events received by table",
			ConstLabels: cfg.ConstLabels,
		}, []string{"table"}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Resolution records a registry lookup for page ("category" or "component").
func (m *Metrics) Resolution(page string, hit bool) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(page, result(hit)).Inc()
}

// CacheLookup records a query cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result(hit)).Inc()
}

// FetchError records a failed provider fetch.
func (m *Metrics) FetchError() {
	if m == nil {
		return
	}
	m.fetchErrors.Inc()
}

// RealtimeEvent records a change-feed event.
func (m *Metrics) RealtimeEvent(table string) {
	if m == nil {
		return
	}
	m.realtimeEvents.WithLabelValues(table).Inc()
}

func result(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
