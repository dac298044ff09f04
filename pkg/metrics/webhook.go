package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Webhook events dispatched, by event name and outcome",
		},
		[]string{"event", "outcome"},
	)

	WebhookDispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent applying a webhook event to its order",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"event"},
	)
)

func init() {
	Registry.MustRegister(WebhookEventsTotal, WebhookDispatchDuration)
}
