package app

import (
	"context"
	"log/slog"

	"AirwallexPayments/config"
	"AirwallexPayments/internal/controller/message"
	"AirwallexPayments/internal/external/kafka"
	"AirwallexPayments/internal/messaging"
	"AirwallexPayments/internal/webhook"
)

// StartWorkers consumes queued webhooks and applies them with processor.
// The returned channel is closed once the consumer has stopped, after ctx is cancelled.
func StartWorkers(ctx context.Context, cfg config.Config, processor webhook.Processor) <-chan struct{} {
	dlqPub := kafka.NewDLQPublisher(cfg.KafkaBrokers, cfg.KafkaWebhooksDLQTopic)

	// Retry inside, DLQ outside: a message reaches the DLQ only once retries are spent
	controller := message.NewWebhookMessageController(processor)
	handler := messaging.WithDLQ(
		messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
		dlqPub,
	)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaWebhooksTopic, cfg.KafkaConsumerGroup)
	runner := messaging.NewRunner([]messaging.Worker{consumer}, handler)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer dlqPub.Close()

		slog.Info("Starting webhook consumer",
			"topic", cfg.KafkaWebhooksTopic,
			"group", cfg.KafkaConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			slog.Error("Webhook runner failed", slog.Any("error", err))
		}
	}()
	return done
}
