package commands

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"time"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
	"financeos/contexts/finance-core/forecast-engine/domain/services"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

// UpsertEnvelopeCommand creates or updates the envelope identified by
// (cycleKey, category). A blank cycle key targets the current cycle.
type UpsertEnvelopeCommand struct {
	UserID          string
	CycleKey        string
	Category        string
	PlannedAmount   float64
	ActualAmount    float64
	CarryoverAmount float64
	Ownership       string
	Rollover        bool
	Currency        string
}

type UpsertEnvelopeResult struct {
	Envelope entities.EnvelopeBudget
	Created  bool
}

// UpsertEnvelopeUseCase writes envelope budgets keyed by cycle and
// category, deriving the funding status from utilization on every write.
type UpsertEnvelopeUseCase struct {
	Envelopes ports.EnvelopeRepository
	Outbox    ports.OutboxWriter
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc UpsertEnvelopeUseCase) Execute(ctx context.Context, cmd UpsertEnvelopeCommand) (UpsertEnvelopeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	userID := strings.TrimSpace(cmd.UserID)
	category := strings.ToLower(strings.TrimSpace(cmd.Category))
	logger.Info("envelope upsert started",
		"event", "forecast_envelope_upsert_started",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"cycle_key", strings.TrimSpace(cmd.CycleKey),
		"category", category,
	)
	if userID == "" || category == "" {
		logger.Warn("envelope upsert validation failed",
			"event", "forecast_envelope_upsert_validation_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"category", category,
		)
		return UpsertEnvelopeResult{}, domainerrors.ErrInvalidInput
	}

	now := uc.now()
	cycleKey := strings.TrimSpace(cmd.CycleKey)
	if cycleKey == "" {
		cycleKey = services.CurrentCycleKey(now)
	} else if !normalize.IsCycleKey(cycleKey) {
		logger.Warn("envelope upsert rejected malformed cycle key",
			"event", "forecast_envelope_upsert_invalid_cycle",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"cycle_key", cycleKey,
		)
		return UpsertEnvelopeResult{}, domainerrors.ErrInvalidCycleKey
	}

	existing, found, err := uc.Envelopes.GetEnvelopeByCycleCategory(ctx, userID, cycleKey, category)
	if err != nil {
		return UpsertEnvelopeResult{}, err
	}

	var row ports.RawRecord
	if found {
		row = maps.Clone(existing)
	} else {
		envelopeID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return UpsertEnvelopeResult{}, err
		}
		row = ports.RawRecord{
			"id":        envelopeID,
			"createdAt": now.UnixMilli(),
		}
	}
	row["cycleKey"] = cycleKey
	row["category"] = category
	row["plannedAmount"] = roundMoney(cmd.PlannedAmount)
	row["actualAmount"] = roundMoney(cmd.ActualAmount)
	row["carryoverAmount"] = roundMoney(cmd.CarryoverAmount)
	row["ownership"] = string(entities.ParseOwnership(cmd.Ownership))
	row["rollover"] = cmd.Rollover
	row["status"] = string(deriveEnvelopeStatus(cmd.PlannedAmount, cmd.ActualAmount, cmd.CarryoverAmount))
	row["updatedAt"] = now.UnixMilli()
	if currency := strings.ToUpper(strings.TrimSpace(cmd.Currency)); currency != "" {
		row["currency"] = currency
	}

	if err := uc.Envelopes.SaveEnvelope(ctx, userID, row); err != nil {
		logger.Error("envelope upsert save failed",
			"event", "forecast_envelope_upsert_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"cycle_key", cycleKey,
			"category", category,
			"error", err.Error(),
		)
		return UpsertEnvelopeResult{}, err
	}

	envelope := normalize.Envelope(row, normalize.Context{Now: now})
	if err := uc.appendEnvelopeEvent(ctx, userID, envelope, now); err != nil {
		return UpsertEnvelopeResult{}, err
	}

	logger.Info("envelope upserted",
		"event", "forecast_envelope_upserted",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"envelope_id", envelope.ID,
		"cycle_key", envelope.CycleKey,
		"category", envelope.Category,
		"status", string(envelope.Status),
		"created", !found,
	)
	return UpsertEnvelopeResult{Envelope: envelope, Created: !found}, nil
}

func (uc UpsertEnvelopeUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc UpsertEnvelopeUseCase) appendEnvelopeEvent(
	ctx context.Context,
	userID string,
	envelope entities.EnvelopeBudget,
	occurredAt time.Time,
) error {
	// Outbox is optional for pure read/test wiring, so nil is treated as no-op.
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelopeEvent, err := newWorkspaceEnvelope(eventID, "workspace.envelope.upserted", userID, occurredAt, map[string]any{
		"envelope_id":     envelope.ID,
		"user_id":         userID,
		"cycle_key":       envelope.CycleKey,
		"category":        envelope.Category,
		"planned_amount":  envelope.PlannedAmount,
		"actual_amount":   envelope.ActualAmount,
		"status":          string(envelope.Status),
		"utilization_pct": envelope.UtilizationPct,
		"occurred_at":     occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelopeEvent)
}

// deriveEnvelopeStatus maps utilization of the funding base to the envelope
// lifecycle: spending past the base is over, within 15% of it is at risk,
// any funded base is funded, and an unfunded envelope stays draft.
func deriveEnvelopeStatus(planned, actual, carryover float64) entities.EnvelopeStatus {
	base := planned + carryover
	if base > 0 {
		utilization := actual / base
		switch {
		case utilization > 1:
			return entities.EnvelopeStatusOver
		case utilization >= 0.85:
			return entities.EnvelopeStatusAtRisk
		}
	}
	if planned > 0 {
		return entities.EnvelopeStatusFunded
	}
	return entities.EnvelopeStatusDraft
}
