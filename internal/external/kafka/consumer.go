// Package kafka implements the messaging ports with segmentio/kafka-go.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"AirwallexPayments/internal/messaging"
	"AirwallexPayments/pkg/correlation"
	"AirwallexPayments/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer implements messaging.Worker. A message is committed only after the handler succeeds.
type Consumer struct {
	reader  reader
	topic   string
	groupID string
}

func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{reader: r, topic: topic, groupID: groupID}
}

func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	slog.InfoContext(ctx, "Consumer started", "topic", c.topic, "group_id", c.groupID)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				slog.InfoContext(ctx, "Consumer stopped", "topic", c.topic)
				return nil
			}
			slog.ErrorContext(ctx, "Failed to fetch message", "topic", c.topic, "error", err)
			return err
		}

		msgCtx := messageContext(ctx, msg)
		slog.DebugContext(msgCtx, "Message received",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "key", string(msg.Key))

		observeLag(c.groupID, msg)
		start := time.Now()
		err = handler(msgCtx, msg.Key, msg.Value)
		observe(c.topic, c.groupID, start, err)

		if err != nil {
			// not committed: redelivered after restart or rebalance
			slog.ErrorContext(msgCtx, "Handler error, message not committed",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "key", string(msg.Key), "error", err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			slog.ErrorContext(msgCtx, "Failed to commit message",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
			return err
		}
	}
}

func (c *Consumer) Close() error {
	slog.Info("Closing consumer", "topic", c.topic, "group_id", c.groupID)
	return c.reader.Close()
}

func messageContext(ctx context.Context, msg kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == correlation.KafkaHeaderName && len(h.Value) > 0 {
			return correlation.WithID(ctx, string(h.Value))
		}
	}
	ctx, _ = correlation.Ensure(ctx)
	return ctx
}

func observe(topic, groupID string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.KafkaProcessingDuration.WithLabelValues(topic, groupID, status).Observe(time.Since(start).Seconds())
	metrics.KafkaMessagesProcessed.WithLabelValues(topic, groupID, status).Inc()
}

func observeLag(groupID string, msg kafka.Message) {
	if msg.HighWaterMark <= 0 {
		return
	}
	lag := max(msg.HighWaterMark-msg.Offset-1, 0)
	metrics.KafkaConsumerLag.WithLabelValues(msg.Topic, groupID, strconv.Itoa(msg.Partition)).Set(float64(lag))
}
