package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/formkit/pkg/report"
)

const metricsNamespace = "formkit"

// Metrics holds the Prometheus collectors of the service. Each Metrics owns
// its registry so tests and embedders can run several routers side by side.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	controlsTotal   *prometheus.CounterVec
	flagsTotal      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the service metrics on a fresh registry,
// together with the Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "validity",
				Name:      "requests_total",
				Help:      "Validity checks served, by HTTP status code.",
			},
			[]string{"status"},
		),
		controlsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "validity",
				Name:      "controls_total",
				Help:      "Controls evaluated, by control kind.",
			},
			[]string{"kind"},
		),
		flagsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "validity",
				Name:      "flags_total",
				Help:      "Validity flags raised, by flag name.",
			},
			[]string{"flag"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency, by route pattern and method.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"route", "method"},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.controlsTotal,
		m.flagsTotal,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// ObserveReport counts the controls and raised flags of a served report.
func (m *Metrics) ObserveReport(r report.Report) {
	for _, e := range r.Entries {
		m.controlsTotal.WithLabelValues(e.Kind).Inc()
		for _, f := range e.Flags {
			m.flagsTotal.WithLabelValues(f).Inc()
		}
	}
}

// ObserveRequest counts one validity request with its final status.
func (m *Metrics) ObserveRequest(status int) {
	m.requestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// ObserveDuration records the latency of any routed request.
func (m *Metrics) ObserveDuration(route, method string, d time.Duration) {
	m.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
