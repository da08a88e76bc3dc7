package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

const (
	monthClosedTopic                = "workspace.month.closed"
	defaultMonthClosedConsumerGroup = "forecast-engine-month-closed-cg"
)

// MonthClosedConsumer rolls envelopes into the new cycle when a workspace
// month closes. Month close emits at most one event per owner and cycle, and
// the rollover skips envelopes that already exist in the target cycle, so
// redelivery is harmless without a dedup store.
type MonthClosedConsumer struct {
	Subscriber    ports.EventSubscriber
	Rollover      EnvelopeRolloverWorker
	ConsumerGroup string
	Disabled      bool
	Logger        *slog.Logger
}

func (c MonthClosedConsumer) Start(ctx context.Context) error {
	logger := application.ResolveLogger(c.Logger)
	if c.Disabled {
		logger.Info("month closed consumer disabled by feature flag",
			"event", "forecast_month_closed_consumer_disabled",
			"module", "finance-core/forecast-engine",
			"layer", "worker",
		)
		return nil
	}
	group := strings.TrimSpace(c.ConsumerGroup)
	if group == "" {
		group = defaultMonthClosedConsumerGroup
	}
	return c.Subscriber.Subscribe(ctx, monthClosedTopic, group, c.handleMonthClosed)
}

func (c MonthClosedConsumer) handleMonthClosed(ctx context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)

	var payload struct {
		UserID   string `json:"user_id"`
		CycleKey string `json:"cycle_key"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return fmt.Errorf("decode workspace.month.closed payload: %w", err)
	}
	if strings.TrimSpace(payload.UserID) == "" {
		return fmt.Errorf("workspace.month.closed payload missing user_id")
	}
	fromCycle := strings.TrimSpace(payload.CycleKey)
	toCycle, err := nextCycleKey(fromCycle)
	if err != nil {
		return err
	}

	rolled, err := c.Rollover.rollOwner(ctx, payload.UserID, fromCycle, toCycle, c.Rollover.now())
	if err != nil {
		logger.Error("envelope rollover from month closed event failed",
			"event", "forecast_month_closed_rollover_failed",
			"module", "finance-core/forecast-engine",
			"layer", "worker",
			"event_id", event.EventID,
			"user_id", payload.UserID,
			"from_cycle", fromCycle,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("month closed event consumed",
		"event", "forecast_month_closed_consumed",
		"module", "finance-core/forecast-engine",
		"layer", "worker",
		"event_id", event.EventID,
		"user_id", payload.UserID,
		"from_cycle", fromCycle,
		"to_cycle", toCycle,
		"rolled_count", rolled,
	)
	return nil
}

// nextCycleKey is the cycle immediately after key.
func nextCycleKey(key string) (string, error) {
	parsed, err := time.Parse("2006-01", key)
	if err != nil {
		return "", fmt.Errorf("workspace.month.closed payload cycle_key %q is not a cycle", key)
	}
	return parsed.AddDate(0, 1, 0).Format("2006-01"), nil
}
