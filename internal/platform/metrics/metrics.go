// Package metrics holds the Prometheus instrumentation for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SignupsTotal   prometheus.Counter
	LoginsTotal    prometheus.Counter
	PostersCreated prometheus.Counter
	PostersUpdated prometheus.Counter
	PostersDeleted prometheus.Counter

	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all metrics on the given registerer.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate
// registration across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "posterati_signups_total",
			Help: "Total number of successful user signups",
		}),
		LoginsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "posterati_logins_total",
			Help: "Total number of successful logins",
		}),
		PostersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "posterati_posters_created_total",
			Help: "Total number of posters created",
		}),
		PostersUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "posterati_posters_updated_total",
			Help: "Total number of posters updated",
		}),
		PostersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "posterati_posters_deleted_total",
			Help: "Total number of posters deleted",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "posterati_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route pattern, and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementSignups increments the signup counter by 1. Nil-safe so services
// can run without metrics wired (unit tests).
func (m *Metrics) IncrementSignups() {
	if m != nil {
		m.SignupsTotal.Inc()
	}
}

func (m *Metrics) IncrementLogins() {
	if m != nil {
		m.LoginsTotal.Inc()
	}
}

func (m *Metrics) IncrementPostersCreated() {
	if m != nil {
		m.PostersCreated.Inc()
	}
}

func (m *Metrics) IncrementPostersUpdated() {
	if m != nil {
		m.PostersUpdated.Inc()
	}
}

func (m *Metrics) IncrementPostersDeleted() {
	if m != nil {
		m.PostersDeleted.Inc()
	}
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
	}
}
