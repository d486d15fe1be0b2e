package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal     *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestInFlight  prometheus.Gauge
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	cacheEvents      *prometheus.CounterVec
	degradedLookups  *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "court_viewer",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "court_viewer",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "court_viewer",
				Subsystem: "http",
				Name:      "in_flight_requests",
				Help:      "Number of in-flight HTTP requests.",
			},
		),
		upstreamTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "court_viewer",
				Subsystem: "upstream",
				Name:      "calls_total",
				Help:      "Calls made to upstream providers by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "court_viewer",
				Subsystem: "upstream",
				Name:      "call_duration_seconds",
				Help:      "Upstream call duration in seconds.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"operation"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "court_viewer",
				Subsystem: "cache",
				Name:      "events_total",
				Help:      "Memoizer hits, misses, shared flights and failures.",
			},
			[]string{"store", "event"},
		),
		degradedLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "court_viewer",
				Subsystem: "lookup",
				Name:      "degraded_total",
				Help:      "Codes that resolved to an empty description.",
			},
			[]string{"category"},
		),
	}

	registry.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.requestInFlight,
		m.upstreamTotal,
		m.upstreamDuration,
		m.cacheEvents,
		m.degradedLookups,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) StartRequest() {
	m.requestInFlight.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	m.requestInFlight.Dec()
	if route == "" {
		route = "unmatched"
	}
	m.requestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// ObserveUpstream implements upstream.Recorder.
func (m *Metrics) ObserveUpstream(operation string, err error, took time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.upstreamTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(took.Seconds())
}

// CacheEvent implements cache.Recorder.
func (m *Metrics) CacheEvent(store, event string) {
	m.cacheEvents.WithLabelValues(store, event).Inc()
}

// LookupDegraded implements lookup.Recorder.
func (m *Metrics) LookupDegraded(category string) {
	m.degradedLookups.WithLabelValues(category).Inc()
}
