// Package release tells the rest of the platform that a canceled order's reservations can go.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/internal/messaging"
)

const MessageType = "order.release_requested"

type Request struct {
	OrderID         string `json:"order_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	Currency        string `json:"currency"`
	GrandTotal      string `json:"grand_total"`
}

var (
	_ webhook.Releaser = (*PublishingReleaser)(nil)
	_ webhook.Releaser = LogReleaser{}
)

// PublishingReleaser announces the release on the broker, keyed by order ID.
type PublishingReleaser struct {
	publisher messaging.Publisher
}

func NewPublishingReleaser(publisher messaging.Publisher) *PublishingReleaser {
	return &PublishingReleaser{publisher: publisher}
}

func (r *PublishingReleaser) Release(ctx context.Context, o order.Order, paymentIntentID string) error {
	payload, err := json.Marshal(Request{
		OrderID:         o.ID,
		PaymentIntentID: paymentIntentID,
		Currency:        o.Currency,
		GrandTotal:      o.GrandTotal.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal release request: %w", err)
	}

	env := messaging.NewEnvelope("", o.ID, MessageType, payload)
	if err := r.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish release request: %w", err)
	}
	return nil
}

// LogReleaser only records the release. Used when no broker is configured.
type LogReleaser struct{}

func (LogReleaser) Release(ctx context.Context, o order.Order, paymentIntentID string) error {
	slog.InfoContext(ctx, "Order resources released", "order_id", o.ID, "payment_intent_id", paymentIntentID)
	return nil
}
