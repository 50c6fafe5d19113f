// Package metrics exposes Prometheus counters for HTTP traffic and domain
// activity.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several apps can coexist in one
// process (tests build many).
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	entitiesCreated *prometheus.CounterVec
	signinFailures  prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		entitiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Records created by entity type.",
		}, []string{"entity"}),
		signinFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signin_failures_total",
			Help: "Rejected sign-in attempts.",
		}),
	}
	m.registry.MustRegister(
		m.httpRequests,
		m.entitiesCreated,
		m.signinFailures,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest counts one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// EntityCreated counts one created record of the given entity type.
func (m *Metrics) EntityCreated(entity string) {
	if m == nil {
		return
	}
	m.entitiesCreated.WithLabelValues(entity).Inc()
}

// SigninFailed counts one rejected sign-in.
func (m *Metrics) SigninFailed() {
	if m == nil {
		return
	}
	m.signinFailures.Inc()
}
