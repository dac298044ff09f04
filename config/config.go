package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WebhookModeSync  = "sync"
	WebhookModeKafka = "kafka"

	EventLogPostgres   = "postgres"
	EventLogOpensearch = "opensearch"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	AirwallexBaseURL            string        `env:"AIRWALLEX_BASE_URL,required"`
	AirwallexPaymentMethodsPath string        `env:"AIRWALLEX_PAYMENT_METHODS_PATH" envDefault:"/api/v1/pa/config/payment_method_types"`
	AirwallexClientID           string        `env:"AIRWALLEX_CLIENT_ID"`
	AirwallexAPIKey             string        `env:"AIRWALLEX_API_KEY"`
	AirwallexWebhookSecret      string        `env:"AIRWALLEX_WEBHOOK_SECRET"`
	HTTPAirwallexClientTimeout  time.Duration `env:"HTTP_AIRWALLEX_CLIENT_TIMEOUT" envDefault:"20s"`

	DefaultCurrency  string        `env:"DEFAULT_CURRENCY" envDefault:"USD"`
	MethodsCacheTTL  time.Duration `env:"METHODS_CACHE_TTL" envDefault:"1h"`
	MethodsCacheSize int           `env:"METHODS_CACHE_SIZE" envDefault:"256"`

	// Webhook processing mode: "sync" (direct) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	KafkaBrokers          []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaWebhooksTopic    string   `env:"KAFKA_WEBHOOKS_TOPIC" envDefault:"webhooks.airwallex"`
	KafkaWebhooksDLQTopic string   `env:"KAFKA_WEBHOOKS_DLQ_TOPIC" envDefault:"webhooks.airwallex.dlq"`
	KafkaConsumerGroup    string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"airwallex-webhooks"`
	// Empty disables publishing of release requests; they are only logged.
	KafkaReleaseTopic string `env:"KAFKA_RELEASE_TOPIC"`

	EventLogSink            string   `env:"EVENT_LOG_SINK" envDefault:"postgres"`
	OpensearchUrls          []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexWebhooks string   `env:"OPENSEARCH_INDEX_WEBHOOKS" envDefault:"webhook-events"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	switch c.WebhookMode {
	case WebhookModeSync:
	case WebhookModeKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("WEBHOOK_MODE=%s requires KAFKA_BROKERS", c.WebhookMode)
		}
	default:
		return fmt.Errorf("unknown WEBHOOK_MODE %q", c.WebhookMode)
	}

	switch c.EventLogSink {
	case EventLogPostgres:
	case EventLogOpensearch:
		if len(c.OpensearchUrls) == 0 {
			return fmt.Errorf("EVENT_LOG_SINK=%s requires OPENSEARCH_URLS", c.EventLogSink)
		}
	default:
		return fmt.Errorf("unknown EVENT_LOG_SINK %q", c.EventLogSink)
	}

	if c.KafkaReleaseTopic != "" && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_RELEASE_TOPIC requires KAFKA_BROKERS")
	}
	return nil
}

// KafkaEnabled reports whether any component talks to Kafka.
func (c Config) KafkaEnabled() bool {
	return c.WebhookMode == WebhookModeKafka || c.KafkaReleaseTopic != ""
}
