package workers

import (
	"context"
	"log/slog"
	"time"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
	"financeos/contexts/finance-core/forecast-engine/domain/services"
	"financeos/contexts/finance-core/forecast-engine/ports"

	"github.com/shopspring/decimal"
)

// EnvelopeRolloverWorker carries rollover-enabled envelopes into the new
// cycle when a month turns: the unspent remainder becomes the new cycle's
// carryover, the plan is repeated, and actual spend starts at zero. An
// envelope already present in the new cycle is left alone, so reruns are
// safe.
type EnvelopeRolloverWorker struct {
	Workspaces ports.WorkspaceReader
	Envelopes  ports.EnvelopeRepository
	Outbox     ports.OutboxWriter
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// RunOnce rolls the previous cycle's envelopes forward for every owner.
// Per-owner failures are logged and skipped.
func (w EnvelopeRolloverWorker) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(w.Logger)
	now := w.now()
	fromCycle := previousCycleKey(now)
	toCycle := services.CurrentCycleKey(now)
	logger.Info("envelope rollover cycle started",
		"event", "forecast_envelope_rollover_started",
		"module", "finance-core/forecast-engine",
		"layer", "worker",
		"from_cycle", fromCycle,
		"to_cycle", toCycle,
	)

	owners, err := w.Workspaces.ListOwners(ctx)
	if err != nil {
		logger.Error("envelope rollover owner listing failed",
			"event", "forecast_envelope_rollover_list_failed",
			"module", "finance-core/forecast-engine",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	rolled := 0
	for _, owner := range owners {
		count, err := w.rollOwner(ctx, owner, fromCycle, toCycle, now)
		if err != nil {
			logger.Error("envelope rollover failed for workspace",
				"event", "forecast_envelope_rollover_owner_failed",
				"module", "finance-core/forecast-engine",
				"layer", "worker",
				"user_id", owner,
				"from_cycle", fromCycle,
				"error", err.Error(),
			)
			continue
		}
		rolled += count
	}

	logger.Info("envelope rollover cycle completed",
		"event", "forecast_envelope_rollover_completed",
		"module", "finance-core/forecast-engine",
		"layer", "worker",
		"from_cycle", fromCycle,
		"to_cycle", toCycle,
		"owner_count", len(owners),
		"rolled_count", rolled,
	)
	return nil
}

func (w EnvelopeRolloverWorker) rollOwner(ctx context.Context, owner, fromCycle, toCycle string, now time.Time) (int, error) {
	rows, err := w.Envelopes.ListEnvelopesByCycle(ctx, owner, fromCycle)
	if err != nil {
		return 0, err
	}

	nctx := normalize.Context{Now: now}
	rolled := 0
	for _, row := range rows {
		previous := normalize.Envelope(row, nctx)
		if !previous.Rollover {
			continue
		}
		_, exists, err := w.Envelopes.GetEnvelopeByCycleCategory(ctx, owner, toCycle, previous.Category)
		if err != nil {
			return rolled, err
		}
		if exists {
			continue
		}

		envelopeID, err := w.IDGen.NewID(ctx)
		if err != nil {
			return rolled, err
		}
		// Snap carryover to cents so repeated rollovers cannot accumulate
		// float dust in a balance.
		carryover := decimal.NewFromFloat(previous.RemainingAmount).Round(2).InexactFloat64()
		next := ports.RawRecord{
			"id":              envelopeID,
			"cycleKey":        toCycle,
			"category":        previous.Category,
			"plannedAmount":   previous.PlannedAmount,
			"actualAmount":    0.0,
			"carryoverAmount": carryover,
			"ownership":       string(previous.Ownership),
			"rollover":        true,
			"currency":        previous.Currency,
			"createdAt":       now.UnixMilli(),
			"updatedAt":       now.UnixMilli(),
		}
		if err := w.Envelopes.SaveEnvelope(ctx, owner, next); err != nil {
			return rolled, err
		}
		if err := w.appendRolloverEvent(ctx, owner, previous.Category, fromCycle, toCycle, carryover, now); err != nil {
			return rolled, err
		}
		rolled++
	}
	return rolled, nil
}

func (w EnvelopeRolloverWorker) appendRolloverEvent(
	ctx context.Context,
	owner string,
	category string,
	fromCycle string,
	toCycle string,
	carryover float64,
	occurredAt time.Time,
) error {
	if w.Outbox == nil {
		return nil
	}
	eventID, err := w.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newWorkerEnvelope(eventID, "workspace.envelope.rolled_over", owner, occurredAt, map[string]any{
		"user_id":     owner,
		"category":    category,
		"from_cycle":  fromCycle,
		"to_cycle":    toCycle,
		"carryover":   carryover,
		"occurred_at": occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return w.Outbox.AppendOutbox(ctx, envelope)
}

func (w EnvelopeRolloverWorker) now() time.Time {
	now := time.Now().UTC()
	if w.Clock != nil {
		now = w.Clock.Now().UTC()
	}
	return now
}
