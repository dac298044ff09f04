// Package messaging defines the broker-agnostic pieces of the async webhook pipeline.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is what travels through the broker. Key decides the partition,
// so events of one payment intent keep their order.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope keeps eventID when given and generates one otherwise.
func NewEnvelope(eventID, key, msgType string, payload json.RawMessage) Envelope {
	if eventID == "" {
		eventID = uuid.New().String()
	}
	return Envelope{
		EventID:   eventID,
		Key:       key,
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

//go:generate mockgen -source types.go -destination mock_messaging.go -package messaging

type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

type MessageHandler func(ctx context.Context, key, value []byte) error

type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
