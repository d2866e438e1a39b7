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

// Collector defines the interface for request metrics collection
type Collector interface {
	RequestStarted()
	RequestCompleted(method, path string, status int, duration time.Duration)

	// Handler returns an HTTP handler for the metrics endpoint
	Handler() http.Handler
}

// PrometheusCollector implements the Collector interface using Prometheus
type PrometheusCollector struct {
	registry *prometheus.Registry

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusCollector creates a new PrometheusCollector with its own
// registry, including the standard Go and process collectors.
func NewPrometheusCollector() *PrometheusCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &PrometheusCollector{
		registry: registry,

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pulsed_http_in_flight_requests",
			Help: "Number of HTTP requests currently being served",
		}),

		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsed_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),

		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pulsed_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RequestStarted records the beginning of a request
func (c *PrometheusCollector) RequestStarted() {
	c.inFlight.Inc()
}

// RequestCompleted records a finished request
func (c *PrometheusCollector) RequestCompleted(method, path string, status int, duration time.Duration) {
	c.inFlight.Dec()
	c.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler returns the Prometheus exposition handler
func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
