package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	errs "github.com/Akash8377/futuresoulmate-admin/client/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin_client",
			Name:      "requests_total",
			Help:      "Backend calls by resource, operation and outcome.",
		},
		[]string{"resource", "op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "admin_client",
			Name:      "request_duration_seconds",
			Help:      "Backend call latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "op"},
	)
)

// observe runs fn and records its latency and outcome ("ok" or the error kind).
func observe[T any](resource, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	requestDuration.WithLabelValues(resource, op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(resource, op, outcome(err)).Inc()
	return v, err
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if e, ok := errs.As(err); ok {
		return e.Kind.String()
	}
	return "error"
}
