package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	SweepsRun           prometheus.Counter
	PenaltiesApplied    *prometheus.CounterVec
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	HTTPRequests        *prometheus.CounterVec
}

// New creates all metrics against the given registerer. Pass
// prometheus.DefaultRegisterer in main; tests pass their own registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SweepsRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "council_rental_overdue_sweeps_total",
			Help: "Total number of overdue sweep runs",
		}),
		PenaltiesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "council_rental_penalties_applied_total",
			Help: "Total number of penalty ledger entries applied, by type",
		}, []string{"type"}),
		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "council_rental_notifications_sent_total",
			Help: "Total number of webhook notifications delivered",
		}),
		NotificationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "council_rental_notifications_failed_total",
			Help: "Total number of webhook notifications that failed to deliver",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "council_rental_http_requests_total",
			Help: "Total number of HTTP requests, by route and status code",
		}, []string{"route", "code"}),
	}
}
