package notify

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Total number of delivered notifications",
		},
		[]string{"channel", "event"},
	)

	notificationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "notifications",
			Name:      "failed_total",
			Help:      "Total number of notifications that could not be delivered",
		},
		[]string{"channel"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		notificationsSent,
		notificationsFailed,
	)
}
