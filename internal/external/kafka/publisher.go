package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"AirwallexPayments/internal/messaging"
	"AirwallexPayments/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// Publisher implements messaging.Publisher. Envelopes with the same key land in the same partition.
type Publisher struct {
	writer writer
	topic  string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{writer: newWriter(brokers, topic), topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{Key: []byte(env.Key), Value: value}
	if corrID := correlation.FromContext(ctx); corrID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: correlation.KafkaHeaderName, Value: []byte(corrID)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish message", "topic", p.topic, "key", env.Key, "error", err)
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	slog.DebugContext(ctx, "Message published", "topic", p.topic, "key", env.Key, "event_id", env.EventID)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
