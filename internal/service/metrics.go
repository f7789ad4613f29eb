package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of placed orders",
		},
	)

	itemTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "item_transitions_total",
			Help:      "Total number of item status changes by target status",
		},
		[]string{"status"},
	)

	restocksSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "restocks_skipped_total",
			Help:      "Cancelled items whose product no longer exists",
		},
	)

	txRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "orders",
			Name:      "tx_retries_total",
			Help:      "Transactions rerun after a serialization failure or deadlock",
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Order cache lookups by result",
		},
		[]string{"result"},
	)

	staleFills = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "cache",
			Name:      "stale_fills_skipped_total",
			Help:      "Cache fills dropped because the order changed while it was loading",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		itemTransitions,
		restocksSkipped,
		txRetries,
		cacheLookups,
		staleFills,
	)
}
