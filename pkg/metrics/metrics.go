package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carelink"

// Metrics holds the portal collectors on a dedicated registry so tests and
// multiple servers in one process never collide on the default one
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	pageRenders      *prometheus.CounterVec
	shellTransitions *prometheus.CounterVec
	proxyRequests    *prometheus.CounterVec
}

type Option func(*options)

type options struct {
	runtime bool
}

// WithRuntimeCollectors registers the Go and process collectors
func WithRuntimeCollectors() Option {
	return func(o *options) {
		o.runtime = true
	}
}

// New creates and registers the collectors
func New(opts ...Option) *Metrics {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		pageRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_renders_total",
				Help:      "Total number of rendered portal pages",
			},
			[]string{"page"},
		),
		shellTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shell_transitions_total",
				Help:      "Total number of navigation shell events by kind and result",
			},
			[]string{"event", "result"},
		),
		proxyRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "proxy_requests_total",
				Help:      "Total number of requests forwarded to the backend",
			},
			[]string{"prefix", "status_code"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.pageRenders,
		m.shellTransitions,
		m.proxyRequests,
	)
	if o.runtime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// PageRendered counts a rendered page
func (m *Metrics) PageRendered(page string) {
	m.pageRenders.WithLabelValues(page).Inc()
}

// ShellTransition counts a shell event. result is "ok" or "rejected".
func (m *Metrics) ShellTransition(event string, ok bool) {
	result := "ok"
	if !ok {
		result = "rejected"
	}
	m.shellTransitions.WithLabelValues(event, result).Inc()
}

// ProxyForwarded counts a request forwarded to the backend
func (m *Metrics) ProxyForwarded(prefix string, status int) {
	m.proxyRequests.WithLabelValues(prefix, strconv.Itoa(status)).Inc()
}
