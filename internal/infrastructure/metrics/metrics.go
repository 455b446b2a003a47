package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engagement core metrics. Registered on the default registry and served by
// the router's /metrics endpoint.
var (
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_optimistic_mutations_total",
		Help: "Optimistic mutations issued, by action and outcome.",
	}, []string{"action", "outcome"})

	RollbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_optimistic_rollbacks_total",
		Help: "Optimistic mutations reverted after a remote failure.",
	}, []string{"action"})

	SuppressedSnapshotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pulse_suppressed_snapshots_total",
		Help: "Push snapshots whose guarded fields were discarded inside the interaction cooldown.",
	})

	FanoutFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pulse_notification_fanout_failures_total",
		Help: "Notification writes or publishes that failed and were swallowed.",
	})

	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_uploads_total",
		Help: "Upload pipeline attempts, by terminal state.",
	}, []string{"state"})
)
