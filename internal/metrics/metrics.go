package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SchedulesScanned tracks candidate schedules fetched per dispatcher run
	SchedulesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_service_schedules_scanned_total",
			Help: "Total number of candidate schedules scanned by the dispatcher",
		},
	)

	// RemindersDispatched tracks per-channel dispatch attempts
	RemindersDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_service_dispatched_total",
			Help: "Total number of reminder dispatch attempts",
		},
		[]string{"channel", "status"},
	)

	// SchedulesSkipped tracks schedules filtered out before fan-out
	SchedulesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_service_schedules_skipped_total",
			Help: "Total number of schedules skipped by the dispatcher",
		},
		[]string{"reason"}, // preferences, quiet_hours, not_due, duplicate, error
	)

	// RunDuration tracks full dispatcher run duration
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reminder_service_run_duration_seconds",
			Help:    "Dispatcher run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// InvalidTokensPruned tracks stale FCM tokens deleted after failed pushes
	InvalidTokensPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_service_invalid_tokens_pruned_total",
			Help: "Total number of invalid FCM tokens deleted",
		},
	)

	// RateLimitExceeded tracks rate limit violations on the API
	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_service_rate_limit_exceeded_total",
			Help: "Total number of rate limit exceeded events",
		},
	)
)
