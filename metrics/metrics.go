package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "frontdesk_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Room lifecycle
	RoomsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_rooms_added_total",
			Help: "Rooms added to the inventory",
		},
	)

	CheckIns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_checkins_total",
			Help: "Guest check-ins",
		},
	)

	CheckOuts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_checkouts_total",
			Help: "Guest check-outs",
		},
	)

	BilledAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_billed_amount_total",
			Help: "Sum of amounts due at checkout",
		},
	)

	StatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_status_changes_total",
			Help: "Manual room status changes",
		},
		[]string{"from", "to"},
	)

	Rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_rejected_operations_total",
			Help: "Lifecycle operations rejected by validation or state guards",
		},
		[]string{"operation", "reason"},
	)

	// Advisory
	AdvisoryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_advisory_requests_total",
			Help: "Assistant questions by outcome",
		},
		[]string{"outcome"}, // answered, cached, empty, unconfigured, failed, busy
	)

	AdvisoryLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "frontdesk_advisory_latency_seconds",
			Help:    "Completion API latency",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)
