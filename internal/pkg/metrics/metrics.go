// Package metrics provides Prometheus instrumentation for the order intake
// and production workflow. Counters are registered with the default registry
// via promauto; expose them by mounting Handler() on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersPlaced counts successfully placed orders.
	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "printstream",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of orders placed.",
		},
	)

	// StatusTransitions counts work order status changes by target status.
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "printstream",
			Subsystem: "work_orders",
			Name:      "status_transitions_total",
			Help:      "Total number of work order status transitions.",
		},
		[]string{"to"},
	)

	// EnhancementDegraded counts design enhancement calls that fell back to
	// the original design because the upstream service failed.
	EnhancementDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "printstream",
			Subsystem: "designs",
			Name:      "enhancement_degraded_total",
			Help:      "Total number of design enhancements that degraded to the original design.",
		},
	)
)

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
