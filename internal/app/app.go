package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AirwallexPayments/config"
	"AirwallexPayments/internal/controller/rest"
	"AirwallexPayments/internal/controller/rest/handlers"
	"AirwallexPayments/internal/domain/eventlog"
	"AirwallexPayments/internal/domain/methods"
	"AirwallexPayments/internal/domain/order"
	"AirwallexPayments/internal/domain/paymentintent"
	domain "AirwallexPayments/internal/domain/webhook"
	"AirwallexPayments/internal/external/airwallex"
	"AirwallexPayments/internal/external/kafka"
	"AirwallexPayments/internal/external/opensearch"
	"AirwallexPayments/internal/release"
	eventlog_repo "AirwallexPayments/internal/repo/eventlog"
	order_repo "AirwallexPayments/internal/repo/order"
	paymentintent_repo "AirwallexPayments/internal/repo/paymentintent"
	"AirwallexPayments/internal/webhook"
	"AirwallexPayments/pkg/cache"
	"AirwallexPayments/pkg/health"
	"AirwallexPayments/pkg/logger"
	"AirwallexPayments/pkg/postgres"
)

const shutdownTimeout = 10 * time.Second

//go:embed migrations/*.sql
var MigrationFS embed.FS

func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MigrationFS); err != nil {
		return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
	}

	healthRegistry := health.NewRegistry(health.NewPingChecker("postgres", pool.Pool))
	if cfg.KafkaEnabled() {
		healthRegistry.Register(health.NewKafkaChecker(cfg.KafkaBrokers))
	}

	// Repositories
	orderRepo := order_repo.NewPgOrderRepo(pool)
	intentRepo := paymentintent_repo.NewPgPaymentIntentRepo(pool)

	sink, err := newEventLogSink(ctx, cfg, pool, healthRegistry)
	if err != nil {
		return fmt.Errorf("app - Run - event log: %w", err)
	}

	releaser := domain.Releaser(release.LogReleaser{})
	if cfg.KafkaReleaseTopic != "" {
		releasePub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaReleaseTopic)
		defer releasePub.Close()
		releaser = release.NewPublishingReleaser(releasePub)
	}

	// Webhook processing
	registry := domain.NewDefaultRegistry(orderRepo, releaser)
	syncProcessor := webhook.NewSyncProcessor(registry, sink)

	var processor webhook.Processor = syncProcessor
	var workersDone <-chan struct{}
	if cfg.WebhookMode == config.WebhookModeKafka {
		webhookPub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaWebhooksTopic)
		defer webhookPub.Close()
		processor = webhook.NewAsyncProcessor(webhookPub)

		slog.Info("Webhook mode: kafka - starting Kafka consumers")
		workersDone = StartWorkers(ctx, cfg, syncProcessor)
	}
	slog.Info("Webhook handlers registered", "events", registry.Names())

	// Payment methods
	airwallexClient := airwallex.New(
		cfg.AirwallexBaseURL,
		cfg.AirwallexPaymentMethodsPath,
		cfg.AirwallexClientID,
		cfg.AirwallexAPIKey,
		&http.Client{Timeout: cfg.HTTPAirwallexClientTimeout},
	)
	methodsHelper := methods.NewHelper(
		airwallexClient,
		cache.NewTagged(cfg.MethodsCacheSize, cfg.MethodsCacheTTL),
		cfg.DefaultCurrency,
		cfg.MethodsCacheTTL,
	)

	verifier := airwallex.NewVerifier(cfg.AirwallexWebhookSecret)
	if !verifier.Enabled() {
		slog.Warn("AIRWALLEX_WEBHOOK_SECRET is empty, webhook signatures are not checked")
	}

	// Router
	engine := NewGinEngine()
	health.Routes(engine, healthRegistry)
	router := rest.NewRouter(
		handlers.NewWebhookHandler(verifier, processor),
		handlers.NewPaymentMethodsHandler(methodsHelper),
		handlers.NewPaymentIntentHandler(paymentintent.NewService(intentRepo)),
		handlers.NewOrderHandler(order.NewOrderService(orderRepo)),
		handlers.NewEventLogHandler(sink),
	)
	router.SetUp(engine)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for shutdown signal
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		cancel()
		return fmt.Errorf("app - Run - http server: %w", err)
	}
	slog.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", slog.Any("error", err))
	}

	if workersDone != nil {
		select {
		case <-workersDone:
		case <-shutdownCtx.Done():
			slog.Warn("Kafka consumers did not stop in time")
		}
	}
	return nil
}

func newEventLogSink(ctx context.Context, cfg config.Config, pool *postgres.Postgres, healthRegistry *health.Registry) (eventlog.Sink, error) {
	if cfg.EventLogSink != config.EventLogOpensearch {
		return eventlog_repo.NewPgEventLogRepo(pool), nil
	}

	sink, err := opensearch.NewEventLogSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexWebhooks)
	if err != nil {
		return nil, err
	}
	healthRegistry.Register(health.NewPingChecker("opensearch", sink))
	return sink, nil
}
