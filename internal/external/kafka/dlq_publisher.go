package kafka

import (
	"context"
	"log/slog"
	"time"

	"AirwallexPayments/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

// DLQPublisher parks messages the consumer gave up on, with the failure in headers.
type DLQPublisher struct {
	writer writer
	topic  string
	now    func() time.Time
}

func NewDLQPublisher(brokers []string, dlqTopic string) *DLQPublisher {
	return &DLQPublisher{writer: newWriter(brokers, dlqTopic), topic: dlqTopic, now: time.Now}
}

func (p *DLQPublisher) PublishToDLQ(ctx context.Context, key, value []byte, err error) error {
	headers := []kafka.Header{
		{Key: "error", Value: []byte(err.Error())},
		{Key: "failed_at", Value: []byte(p.now().UTC().Format(time.RFC3339))},
	}
	if corrID := correlation.FromContext(ctx); corrID != "" {
		headers = append(headers, kafka.Header{Key: correlation.KafkaHeaderName, Value: []byte(corrID)})
	}

	if writeErr := p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value, Headers: headers}); writeErr != nil {
		slog.ErrorContext(ctx, "Failed to publish to DLQ",
			"topic", p.topic, "key", string(key), "error", writeErr, "original_error", err)
		return writeErr
	}

	slog.WarnContext(ctx, "Message sent to DLQ", "topic", p.topic, "key", string(key), "error", err)
	return nil
}

func (p *DLQPublisher) Close() error {
	return p.writer.Close()
}
