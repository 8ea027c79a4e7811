// Package metrics defines the Prometheus collectors exported by the HTTP and
// gRPC servers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	grpcRequests *prometheus.CounterVec
	grpcDuration *prometheus.HistogramVec
	authFailures *prometheus.CounterVec
}

// New registers the collectors on reg. Passing a fresh prometheus.Registry
// keeps tests isolated from the global default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passkeeper",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "passkeeper",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		grpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passkeeper",
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "gRPC calls by method and status code.",
		}, []string{"method", "code"}),
		grpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "passkeeper",
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "gRPC call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		authFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "passkeeper",
			Name:      "auth_failures_total",
			Help:      "Rejected logins and session tokens.",
		}, []string{"reason"}),
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveGRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.grpcRequests.WithLabelValues(method, code).Inc()
	m.grpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

// AuthFailure counts a rejected credential or token. reason is one of
// "invalid_credentials" or "invalid_token".
func (m *Metrics) AuthFailure(reason string) {
	if m == nil {
		return
	}
	m.authFailures.WithLabelValues(reason).Inc()
}
