package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_registrations_created_total",
		Help: "Total number of registrations created, by target type.",
	},
		[]string{"target_type"},
	)

	RegistrationRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_registration_rejections_total",
		Help: "Business-rule rejections returned by the coordinator, by operation and kind.",
	},
		[]string{"operation", "kind"},
	)

	CheckInsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodcamp_checkins_total",
		Help: "Total number of registrations checked in on site.",
	})

	DonationsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodcamp_donations_completed_total",
		Help: "Total number of donations marked completed.",
	})

	CollectedVolumeMl = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodcamp_collected_volume_ml_total",
		Help: "Sum of donated volume recorded on completion, in ml.",
	})

	RegistrationTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_registration_transitions_total",
		Help: "Registration status transitions applied, by target status.",
	},
		[]string{"status"},
	)

	GoalsReachedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodcamp_campaign_goals_reached_total",
		Help: "Number of campaigns whose collected volume crossed the target.",
	})

	AggregateRecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bloodcamp_aggregate_recompute_duration_seconds",
		Help:    "Duration of campaign aggregate recomputation.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_notification_failures_total",
		Help: "Notifications that could not be handed to the notifier, by action type.",
	},
		[]string{"action_type"},
	)

	OutboxTasksPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_outbox_tasks_published_total",
		Help: "Outbox tasks relayed to Kafka, by result.",
	},
		[]string{"result"},
	)

	VerdictCacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_verdict_cache_requests_total",
		Help: "Screening verdict cache lookups and refreshes, by result (hit, miss, error, stale).",
	},
		[]string{"result"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodcamp_operation_errors_total",
		Help: "Total number of store failures encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
