package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	domain "AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/internal/messaging"
	"AirwallexPayments/internal/webhook"
)

// WebhookMessageController applies webhook events queued by the async endpoint.
type WebhookMessageController struct {
	processor webhook.Processor
}

func NewWebhookMessageController(processor webhook.Processor) *WebhookMessageController {
	return &WebhookMessageController{processor: processor}
}

// HandleMessage marks malformed messages and rejected data as permanent so they skip retries.
// A missing order or an early event stays retryable: the earlier event may still be in flight.
func (c *WebhookMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		slog.ErrorContext(ctx, "Failed to unmarshal envelope", "key", string(key), "error", err)
		return messaging.Permanent(fmt.Errorf("unmarshal envelope: %w", err))
	}

	ev, err := domain.Decode(env.Payload)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to decode queued webhook", "event_id", env.EventID, "error", err)
		return messaging.Permanent(err)
	}

	slog.DebugContext(ctx, "Processing webhook message", "event_id", env.EventID, "key", env.Key, "event_name", ev.Name)

	res, err := c.processor.Process(ctx, ev, env.Payload)
	switch {
	case err == nil:
	case domain.IsValidationError(err):
		return messaging.Permanent(err)
	case domain.IsOrderNotFound(err), errors.Is(err, domain.ErrOutOfOrder):
		slog.WarnContext(ctx, "Webhook event not applicable yet", "event_id", env.EventID, "error", err)
		return err
	default:
		return err
	}

	slog.InfoContext(ctx, "Webhook message processed",
		"event_id", env.EventID, "event_name", ev.Name, "handled", res.Handled)
	return nil
}
