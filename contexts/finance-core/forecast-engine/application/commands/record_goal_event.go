package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"maps"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

// RecordGoalEventCommand appends one ledger entry to a goal. Amount is a
// magnitude for contributions and withdrawals; adjustments keep their sign.
type RecordGoalEventCommand struct {
	UserID         string
	IdempotencyKey string
	GoalID         string
	EventType      string
	Amount         float64
	Note           string
	OccurredAt     int64
}

type RecordGoalEventResult struct {
	Goal     entities.Goal
	Event    entities.GoalEvent
	Replayed bool
}

// RecordGoalEventUseCase appends goal ledger entries and moves the goal's
// current amount. The ledger is append-only, so the method is replay-safe
// via idempotency key plus request hash validation.
type RecordGoalEventUseCase struct {
	Goals          ports.GoalRepository
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (uc RecordGoalEventUseCase) Execute(ctx context.Context, cmd RecordGoalEventCommand) (RecordGoalEventResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	userID := strings.TrimSpace(cmd.UserID)
	goalID := strings.TrimSpace(cmd.GoalID)
	logger.Info("goal event processing started",
		"event", "forecast_goal_event_started",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"goal_id", goalID,
		"event_type", strings.TrimSpace(cmd.EventType),
	)
	if userID == "" || goalID == "" {
		logger.Warn("goal event validation failed",
			"event", "forecast_goal_event_validation_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"goal_id", goalID,
		)
		return RecordGoalEventResult{}, domainerrors.ErrInvalidInput
	}
	eventType := entities.ParseGoalEventType(cmd.EventType)
	amount := roundMoney(signNormalizedAmount(eventType, cmd.Amount))
	if amount == 0 && (eventType == entities.GoalEventContribution || eventType == entities.GoalEventWithdrawal) {
		logger.Warn("goal event rejected zero amount",
			"event", "forecast_goal_event_zero_amount",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"goal_id", goalID,
		)
		return RecordGoalEventResult{}, domainerrors.ErrInvalidInput
	}
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		logger.Warn("goal event idempotency key missing",
			"event", "forecast_goal_event_idempotency_missing",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"goal_id", goalID,
		)
		return RecordGoalEventResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	now := uc.now()
	requestHash := hashGoalEventCommand(cmd)
	if record, found, err := uc.Idempotency.GetRecord(ctx, cmd.IdempotencyKey, now); err != nil {
		logger.Error("goal event idempotency lookup failed",
			"event", "forecast_goal_event_idempotency_lookup_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"goal_id", goalID,
			"error", err.Error(),
		)
		return RecordGoalEventResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			logger.Warn("goal event idempotency conflict",
				"event", "forecast_goal_event_idempotency_conflict",
				"module", "finance-core/forecast-engine",
				"layer", "application",
				"user_id", userID,
				"goal_id", goalID,
			)
			return RecordGoalEventResult{}, domainerrors.ErrIdempotencyConflict
		}
		var replayed RecordGoalEventResult
		if err := json.Unmarshal(record.ResponsePayload, &replayed); err != nil {
			return RecordGoalEventResult{}, err
		}
		replayed.Replayed = true
		logger.Info("goal event replayed",
			"event", "forecast_goal_event_replayed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"goal_id", goalID,
		)
		return replayed, nil
	}

	goalRow, found, err := uc.Goals.GetGoal(ctx, userID, goalID)
	if err != nil {
		return RecordGoalEventResult{}, err
	}
	if !found {
		return RecordGoalEventResult{}, domainerrors.ErrGoalNotFound
	}

	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return RecordGoalEventResult{}, err
	}
	occurredAt := cmd.OccurredAt
	if occurredAt <= 0 {
		occurredAt = now.UnixMilli()
	}
	eventRow := ports.RawRecord{
		"id":         eventID,
		"goalId":     goalID,
		"eventType":  string(eventType),
		"amount":     amount,
		"note":       strings.TrimSpace(cmd.Note),
		"occurredAt": occurredAt,
		"createdAt":  now.UnixMilli(),
		"updatedAt":  now.UnixMilli(),
	}
	if err := uc.Goals.SaveGoalEvent(ctx, userID, eventRow); err != nil {
		return RecordGoalEventResult{}, err
	}

	nctx := normalize.Context{Now: now}
	goal := normalize.Goal(goalRow, nil, nctx)
	newCurrent := roundMoney(goal.CurrentAmount + amount)
	if newCurrent < 0 {
		newCurrent = 0
	}

	updatedRow := maps.Clone(goalRow)
	updatedRow["currentAmount"] = newCurrent
	updatedRow["lastEventAt"] = occurredAt
	updatedRow["updatedAt"] = now.UnixMilli()
	if err := uc.Goals.SaveGoal(ctx, userID, updatedRow); err != nil {
		return RecordGoalEventResult{}, err
	}

	updatedGoal := normalize.Goal(updatedRow, nil, nctx)
	event := normalize.GoalEvent(eventRow, nctx)
	result := RecordGoalEventResult{Goal: updatedGoal, Event: event}

	if err := uc.appendGoalEvent(ctx, userID, updatedGoal, event, now); err != nil {
		return RecordGoalEventResult{}, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return RecordGoalEventResult{}, err
	}
	if err := uc.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             strings.TrimSpace(cmd.IdempotencyKey),
		RequestHash:     requestHash,
		ResponsePayload: payload,
		ExpiresAt:       now.Add(uc.resolveIdempotencyTTL()),
	}); err != nil {
		return RecordGoalEventResult{}, err
	}

	logger.Info("goal event recorded",
		"event", "forecast_goal_event_recorded",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"goal_id", goalID,
		"event_id", event.ID,
		"event_type", string(event.EventType),
		"amount", event.Amount,
		"current_amount", updatedGoal.CurrentAmount,
	)
	return result, nil
}

func (uc RecordGoalEventUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc RecordGoalEventUseCase) resolveIdempotencyTTL() time.Duration {
	if uc.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return uc.IdempotencyTTL
}

func (uc RecordGoalEventUseCase) appendGoalEvent(
	ctx context.Context,
	userID string,
	goal entities.Goal,
	event entities.GoalEvent,
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
	envelope, err := newWorkspaceEnvelope(eventID, "workspace.goal.event_recorded", userID, occurredAt, map[string]any{
		"goal_id":        goal.ID,
		"goal_event_id":  event.ID,
		"user_id":        userID,
		"event_type":     string(event.EventType),
		"amount":         event.Amount,
		"current_amount": goal.CurrentAmount,
		"progress_pct":   goal.ProgressPct,
		"occurred_at":    occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

// signNormalizedAmount applies the ledger sign convention: withdrawals are
// negative, contributions positive, adjustments keep the caller's sign.
func signNormalizedAmount(eventType entities.GoalEventType, amount float64) float64 {
	switch eventType {
	case entities.GoalEventWithdrawal:
		return -math.Abs(amount)
	case entities.GoalEventContribution:
		return math.Abs(amount)
	default:
		return amount
	}
}

// roundMoney snaps a monetary delta to cents before it moves a balance.
func roundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func hashGoalEventCommand(cmd RecordGoalEventCommand) string {
	payload := map[string]string{
		"user_id":     strings.TrimSpace(cmd.UserID),
		"goal_id":     strings.TrimSpace(cmd.GoalID),
		"event_type":  strings.ToLower(strings.TrimSpace(cmd.EventType)),
		"amount":      strconv.FormatFloat(cmd.Amount, 'f', -1, 64),
		"note":        strings.TrimSpace(cmd.Note),
		"occurred_at": strconv.FormatInt(cmd.OccurredAt, 10),
		"op":          "record_goal_event",
	}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
