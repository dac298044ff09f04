package webhook

import (
	"context"
	"log/slog"
	"time"

	"AirwallexPayments/internal/domain/eventlog"
	"AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/pkg/metrics"
)

// SyncProcessor applies the event before returning and records the outcome in the event log.
type SyncProcessor struct {
	dispatcher Dispatcher
	sink       eventlog.Sink
	now        func() time.Time
}

// NewSyncProcessor accepts a nil sink, in which case outcomes are not recorded.
func NewSyncProcessor(dispatcher Dispatcher, sink eventlog.Sink) *SyncProcessor {
	return &SyncProcessor{dispatcher: dispatcher, sink: sink, now: time.Now}
}

func (p *SyncProcessor) Process(ctx context.Context, ev webhook.Event, _ []byte) (Result, error) {
	receivedAt := p.now().UTC()

	start := time.Now()
	handled, err := p.dispatcher.Dispatch(ctx, ev)
	label := metricName(ev.Name, handled)
	metrics.WebhookDispatchDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	outcome := outcomeOf(handled, err)
	metrics.WebhookEventsTotal.WithLabelValues(label, string(outcome)).Inc()

	if err != nil {
		slog.WarnContext(ctx, "Webhook event failed",
			"event_name", ev.Name, "event_id", ev.ID, "payment_intent_id", ev.PaymentIntentID(), "error", err)
	}

	p.record(ctx, ev, outcome, err, receivedAt)
	return Result{Handled: handled}, err
}

// record is best effort: a lost log entry must not fail an applied event.
func (p *SyncProcessor) record(ctx context.Context, ev webhook.Event, outcome eventlog.Outcome, err error, receivedAt time.Time) {
	if p.sink == nil {
		return
	}

	entry := eventlog.NewEntry{
		EventID:         ev.ID,
		Name:            ev.Name,
		PaymentIntentID: ev.PaymentIntentID(),
		Outcome:         outcome,
		Payload:         ev.Data,
		ReceivedAt:      receivedAt,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	if _, recErr := p.sink.Record(ctx, entry); recErr != nil {
		slog.ErrorContext(ctx, "Failed to record webhook event",
			"event_name", ev.Name, "event_id", ev.ID, "error", recErr)
	}
}

func outcomeOf(handled bool, err error) eventlog.Outcome {
	switch {
	case err != nil:
		return eventlog.OutcomeFailed
	case !handled:
		return eventlog.OutcomeIgnored
	default:
		return eventlog.OutcomeApplied
	}
}

// metricName folds unknown names into one label so arbitrary input cannot grow the series count.
func metricName(name string, handled bool) string {
	if !handled {
		return "unhandled"
	}
	return name
}
