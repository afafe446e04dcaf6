package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin_store",
			Name:      "effects_submitted_total",
			Help:      "Tasks accepted into the runner queue.",
		},
		[]string{"task"},
	)

	failedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin_store",
			Name:      "effects_failed_total",
			Help:      "Tasks whose final attempt returned an error or panicked.",
		},
		[]string{"task"},
	)

	queueFullTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "admin_store",
			Name:      "effects_queue_full_total",
			Help:      "Submissions rejected because the queue stayed full.",
		},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "admin_store",
			Name:      "effects_run_duration_seconds",
			Help:      "Latency of a single task attempt.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"task"},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "admin_store",
			Name:      "effects_queue_depth",
			Help:      "Tasks waiting in the queue.",
		},
	)
)
