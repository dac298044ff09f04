//go:build integration

package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"AirwallexPayments/config"
	"AirwallexPayments/internal/app"
	"AirwallexPayments/internal/domain/eventlog"
	"AirwallexPayments/internal/domain/order"
	domain "AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/internal/external/kafka"
	"AirwallexPayments/internal/messaging"
	"AirwallexPayments/internal/release"
	eventlog_repo "AirwallexPayments/internal/repo/eventlog"
	order_repo "AirwallexPayments/internal/repo/order"
	"AirwallexPayments/internal/testinfra"
	"AirwallexPayments/internal/webhook"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suite *testinfra.TestSuite

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	suite, err = testinfra.NewTestSuite(ctx, testinfra.SuiteOptions{WithKafka: true})
	if err != nil {
		panic(fmt.Sprintf("Failed to start test suite: %v", err))
	}

	code := m.Run()

	suite.Cleanup(ctx)
	os.Exit(code)
}

func TestKafkaMode_WebhookIsAppliedByConsumer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// given
	require.NoError(t, suite.Postgres.SeedOrder(ctx, "ord_kafka_1", "int_kafka_1", "USD", "64.00"))

	orderRepo := order_repo.NewPgOrderRepo(suite.Postgres.Pool)
	sink := eventlog_repo.NewPgEventLogRepo(suite.Postgres.Pool)
	syncProcessor := webhook.NewSyncProcessor(domain.NewDefaultRegistry(orderRepo, release.LogReleaser{}), sink)

	cfg := config.Config{
		KafkaBrokers:          suite.Kafka.Brokers,
		KafkaWebhooksTopic:    suite.Kafka.WebhooksTopic,
		KafkaWebhooksDLQTopic: suite.Kafka.DLQTopic,
		KafkaConsumerGroup:    suite.Kafka.Group,
	}
	workersCtx, stopWorkers := context.WithCancel(ctx)
	done := app.StartWorkers(workersCtx, cfg, syncProcessor)
	defer func() {
		stopWorkers()
		<-done
	}()

	publisher := kafka.NewPublisher(suite.Kafka.Brokers, suite.Kafka.WebhooksTopic)
	defer publisher.Close()
	asyncProcessor := webhook.NewAsyncProcessor(publisher)

	body := []byte(`{"id":"evt_kafka_1","name":"payment_attempt.capture_requested","data":{"object":{"payment_intent_id":"int_kafka_1","captured_amount":64.00}}}`)
	ev, err := domain.Decode(body)
	require.NoError(t, err)

	// when
	result, err := asyncProcessor.Process(ctx, ev, body)

	// then
	require.NoError(t, err)
	assert.True(t, result.Queued)

	require.Eventually(t, func() bool {
		o, err := orderRepo.GetOrder(ctx, "ord_kafka_1")
		return err == nil && o.State == order.StateInvoiced
	}, 60*time.Second, 500*time.Millisecond)

	require.Eventually(t, func() bool {
		page, err := sink.List(ctx, eventlog.Query{PaymentIntentIDs: []string{"int_kafka_1"}})
		return err == nil && len(page.Items) == 1 && page.Items[0].Outcome == eventlog.OutcomeApplied
	}, 10*time.Second, 200*time.Millisecond)
}

func TestKafkaMode_UndecodableMessageGoesToDLQ(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// given
	dlqTopic := suite.Kafka.DLQTopic + "-undecodable"
	webhooksTopic := suite.Kafka.WebhooksTopic + "-undecodable"
	require.NoError(t, suite.Kafka.CreateTopic(ctx, webhooksTopic, 1))
	require.NoError(t, suite.Kafka.CreateTopic(ctx, dlqTopic, 1))

	orderRepo := order_repo.NewPgOrderRepo(suite.Postgres.Pool)
	syncProcessor := webhook.NewSyncProcessor(domain.NewDefaultRegistry(orderRepo, release.LogReleaser{}), nil)

	cfg := config.Config{
		KafkaBrokers:          suite.Kafka.Brokers,
		KafkaWebhooksTopic:    webhooksTopic,
		KafkaWebhooksDLQTopic: dlqTopic,
		KafkaConsumerGroup:    suite.Kafka.Group + "-undecodable",
	}
	workersCtx, stopWorkers := context.WithCancel(ctx)
	done := app.StartWorkers(workersCtx, cfg, syncProcessor)
	defer func() {
		stopWorkers()
		<-done
	}()

	publisher := kafka.NewPublisher(suite.Kafka.Brokers, webhooksTopic)
	defer publisher.Close()

	// when
	env := messaging.NewEnvelope("evt_broken", "broken", "unknown", json.RawMessage(`{"data":{}}`))
	require.NoError(t, publisher.Publish(ctx, env))

	// then
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: suite.Kafka.Brokers,
		Topic:   dlqTopic,
		GroupID: suite.Kafka.Group + "-dlq-reader",
	})
	defer reader.Close()

	readCtx, readCancel := context.WithTimeout(ctx, 60*time.Second)
	defer readCancel()
	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)

	assert.Equal(t, "broken", string(msg.Key))
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Contains(t, headers["error"], "missing name")
	assert.NotEmpty(t, headers["failed_at"])
}
