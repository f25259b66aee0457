package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	HeartbeatsRecorded prometheus.Counter
	HeartbeatFailures  prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served, by method, path and status.",
		}, []string{"method", "path", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency from receipt to response write.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HeartbeatsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "heartbeats_recorded_total",
			Help: "Total number of heartbeat rows successfully persisted.",
		}),

		HeartbeatFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "heartbeat_failures_total",
			Help: "Total number of heartbeat persistence attempts that failed.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.HeartbeatsRecorded,
		m.HeartbeatFailures,
	)

	return m
}

// ObserveRequest records one completed HTTP request. Called from the
// instrumentation middleware with the routed path pattern, not the raw URL,
// to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, path string, status int, latency time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

// HeartbeatHooks returns the metric callbacks expected by worker.MetricHooks.
// Centralises the prometheus calls so the worker package stays import-free.
func (m *Metrics) HeartbeatHooks() (onRecorded func(), onFailed func()) {
	onRecorded = func() { m.HeartbeatsRecorded.Inc() }
	onFailed = func() { m.HeartbeatFailures.Inc() }
	return
}
