// Package metrics holds the Prometheus collectors shared by the client and the sandbox.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

const namespace = "storefront"

// Metrics holds all collectors. A nil *Metrics records nothing.
type Metrics struct {
	APIRequests        *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	CacheLookups       *prometheus.CounterVec
	CacheInvalidations prometheus.Counter
	ServerRequests     *prometheus.CounterVec
}

// New creates and registers all metrics with the given registry.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		APIRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Backend requests sent by the client",
			},
			[]string{"method", "status"}, // status=2xx/4xx/5xx/error
		),
		APIRequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Backend request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		CacheLookups: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Query cache lookups",
			},
			[]string{"result"}, // result=hit/miss
		),
		CacheInvalidations: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "invalidations_total",
				Help:      "Query cache entries marked stale",
			},
		),
		ServerRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sandbox",
				Name:      "requests_total",
				Help:      "Requests served by the sandbox backend",
			},
			[]string{"method", "status"},
		),
	}
}

// ObserveAPI records one backend call. status 0 means the request never got a response.
func (m *Metrics) ObserveAPI(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.APIRequests.WithLabelValues(method, StatusClass(status)).Inc()
	m.APIRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// CacheHit records a lookup served from the cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss records a lookup that needed a fetch.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

// Invalidated records n entries marked stale.
func (m *Metrics) Invalidated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CacheInvalidations.Add(float64(n))
}

// ObserveServer records one request served by the sandbox.
func (m *Metrics) ObserveServer(method string, status int) {
	if m == nil {
		return
	}
	m.ServerRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// StatusClass maps an HTTP status to its class label, "error" for 0.
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}

	return strconv.Itoa(status/100) + "xx"
}

// NewRegistry creates the process registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		New,
	),
)
