package orderevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_publish_retries_total",
			Help: "Total number of order event publish retry attempts",
		},
		[]string{"topic", "result"},
	)

	PublishDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_publish_dropped_total",
			Help: "Order events dropped after exhausting publish retries",
		},
		[]string{"topic"},
	)

	PublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_events_publish_duration_seconds",
			Help:    "Duration of order event publishes including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"topic", "result"},
	)
)
