// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gearbin"

// Metrics is the set of collectors registered on one registry. Services and
// middleware receive it explicitly; there are no package-level collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TenantTransitions   *prometheus.CounterVec
	JoinCodeCollisions  prometheus.Counter
	HierarchyIntegrity  *prometheus.CounterVec
	ResolverSignalFails *prometheus.CounterVec
	RateLimitRejections *prometheus.CounterVec
	AuthFailures        *prometheus.CounterVec
}

// New registers all collectors on reg. Passing a fresh registry in tests
// keeps them isolated.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route template.",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		TenantTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenant_transitions_total",
			Help:      "Successful tenant boundary transitions by operation.",
		}, []string{"transition"}),

		JoinCodeCollisions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "join_code_collisions_total",
			Help:      "Generated join codes that were already taken.",
		}),

		HierarchyIntegrity: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hierarchy_integrity_failures_total",
			Help:      "Corrupted hierarchy walks by reason.",
		}, []string{"reason"}),

		ResolverSignalFails: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_resolver_signal_failures_total",
			Help:      "Visibility signals skipped because they failed.",
		}, []string{"signal"}),

		RateLimitRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Requests rejected by the rate limiter by route group.",
		}, []string{"group"}),

		AuthFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected authentication attempts by reason.",
		}, []string{"reason"}),
	}
}

// NewWithRuntime is New plus the Go runtime and process collectors, for the
// production registry.
func NewWithRuntime() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
