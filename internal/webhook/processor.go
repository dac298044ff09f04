// Package webhook runs decoded processor notifications, either in process or through Kafka.
package webhook

import (
	"context"

	"AirwallexPayments/internal/domain/webhook"
)

//go:generate mockgen -source processor.go -destination mock_processor.go -package webhook

// Processor takes a decoded event and the raw body it came from.
type Processor interface {
	Process(ctx context.Context, ev webhook.Event, body []byte) (Result, error)
}

type Result struct {
	// Queued means the event was handed to the broker and not applied yet.
	Queued bool
	// Handled is false for event names no handler is registered for.
	Handled bool
}

type Dispatcher interface {
	Dispatch(ctx context.Context, ev webhook.Event) (bool, error)
}
