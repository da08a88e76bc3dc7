package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	// BaseCurrency seeds workspaces that have not chosen one yet and
	// shapes the unauthenticated default payload.
	BaseCurrency string

	// MonthCloseSchedule is a standard 5-field cron expression evaluated
	// in UTC. The default closes the previous cycle shortly after the
	// month boundary.
	MonthCloseSchedule string

	EnableMonthClose       bool
	EnableEnvelopeRollover bool
	EnableOutboxRelay      bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "financeos"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	baseCurrency := strings.ToUpper(strings.TrimSpace(os.Getenv("BASE_CURRENCY")))
	if baseCurrency == "" {
		baseCurrency = "USD"
	}

	schedule := strings.TrimSpace(os.Getenv("MONTH_CLOSE_SCHEDULE"))
	if schedule == "" {
		schedule = "0 2 1 * *"
	}

	return Config{
		ServiceName:        service,
		HTTPPort:           port,
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		KafkaBrokers:       brokers,
		BaseCurrency:       baseCurrency,
		MonthCloseSchedule: schedule,

		EnableMonthClose:       envBool("ENABLE_MONTH_CLOSE", true),
		EnableEnvelopeRollover: envBool("ENABLE_ENVELOPE_ROLLOVER", true),
		EnableOutboxRelay:      envBool("ENABLE_OUTBOX_RELAY", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
