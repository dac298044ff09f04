package webhook

import (
	"context"
	"fmt"

	"AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/internal/messaging"
)

// AsyncProcessor hands events to the broker. The key is the payment intent ID,
// so events of one intent are consumed in the order they arrived.
type AsyncProcessor struct {
	publisher messaging.Publisher
}

func NewAsyncProcessor(publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{publisher: publisher}
}

func (p *AsyncProcessor) Process(ctx context.Context, ev webhook.Event, body []byte) (Result, error) {
	key := ev.PaymentIntentID()
	if key == "" {
		key = ev.Name
	}

	envelope := messaging.NewEnvelope(ev.ID, key, ev.Name, body)
	if err := p.publisher.Publish(ctx, envelope); err != nil {
		return Result{}, fmt.Errorf("queue webhook event: %w", err)
	}
	return Result{Queued: true}, nil
}
