// internal/pkg/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	CheckoutsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_started_total",
		Help: "Total number of checkouts begun",
	})

	CheckoutsAbandonedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_abandoned_total",
		Help: "Total number of checkouts cancelled before confirmation",
	})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders appended to the ledger",
	})

	AIDescriptionRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ai_description_requests_total",
		Help: "Total number of product description generations",
	}, []string{"outcome"})
)
