package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/adapters/memory"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func seedGoalStore(t *testing.T, currentAmount float64) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	store.SeedWorkspace("user_1", ports.WorkspaceRecords{
		Goals: []ports.RawRecord{{
			"id":                  "goal_1",
			"title":               "Emergency fund",
			"targetAmount":        float64(1200),
			"currentAmount":       currentAmount,
			"monthlyContribution": float64(100),
		}},
	})
	return store
}

func TestRecordGoalEventMovesGoalBalance(t *testing.T) {
	store := seedGoalStore(t, 200)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := RecordGoalEventUseCase{
		Goals:       store,
		Idempotency: store,
		Outbox:      store,
		Clock:       fixedClock{now: now},
		IDGen:       store,
	}

	result, err := useCase.Execute(context.Background(), RecordGoalEventCommand{
		UserID:         "user_1",
		IdempotencyKey: "idem-1",
		GoalID:         "goal_1",
		EventType:      "contribution",
		Amount:         150,
	})
	if err != nil {
		t.Fatalf("contribution failed: %v", err)
	}
	if result.Replayed {
		t.Fatalf("expected first call not to replay")
	}
	if result.Goal.CurrentAmount != 350 {
		t.Fatalf("expected current amount 350, got %v", result.Goal.CurrentAmount)
	}
	if result.Event.Amount != 150 {
		t.Fatalf("expected event amount 150, got %v", result.Event.Amount)
	}
	if result.Event.OccurredAt != now.UnixMilli() {
		t.Fatalf("expected occurredAt stamped from clock, got %d", result.Event.OccurredAt)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("listing outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row, got %d", len(pending))
	}
	if pending[0].EventType != "workspace.goal.event_recorded" {
		t.Fatalf("expected goal event type, got %s", pending[0].EventType)
	}
	var envelope ports.EventEnvelope
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("decoding outbox payload failed: %v", err)
	}
	if envelope.PartitionKey != "user_1" {
		t.Fatalf("expected user partition key, got %s", envelope.PartitionKey)
	}
}

func TestRecordGoalEventIdempotencyReplay(t *testing.T) {
	store := seedGoalStore(t, 0)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := RecordGoalEventUseCase{
		Goals:       store,
		Idempotency: store,
		Outbox:      store,
		Clock:       fixedClock{now: now},
		IDGen:       store,
	}
	cmd := RecordGoalEventCommand{
		UserID:         "user_1",
		IdempotencyKey: "idem-1",
		GoalID:         "goal_1",
		EventType:      "contribution",
		Amount:         100,
	}

	first, err := useCase.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := useCase.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !second.Replayed {
		t.Fatalf("expected second call to replay")
	}
	if second.Event.ID != first.Event.ID {
		t.Fatalf("expected replayed event id %s, got %s", first.Event.ID, second.Event.ID)
	}

	row, found, err := store.GetGoal(context.Background(), "user_1", "goal_1")
	if err != nil || !found {
		t.Fatalf("loading goal failed: found=%v err=%v", found, err)
	}
	if row["currentAmount"].(float64) != 100 {
		t.Fatalf("expected balance applied once, got %v", row["currentAmount"])
	}

	amended := cmd
	amended.Amount = 999
	if _, err := useCase.Execute(context.Background(), amended); !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected idempotency conflict for reused key, got %v", err)
	}
}

func TestRecordGoalEventWithdrawalClampsAtZero(t *testing.T) {
	store := seedGoalStore(t, 80)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := RecordGoalEventUseCase{Goals: store, Idempotency: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), RecordGoalEventCommand{
		UserID:         "user_1",
		IdempotencyKey: "idem-w",
		GoalID:         "goal_1",
		EventType:      "withdrawal",
		Amount:         200,
	})
	if err != nil {
		t.Fatalf("withdrawal failed: %v", err)
	}
	if result.Event.Amount != -200 {
		t.Fatalf("expected withdrawal stored negative, got %v", result.Event.Amount)
	}
	if result.Goal.CurrentAmount != 0 {
		t.Fatalf("expected balance clamped at zero, got %v", result.Goal.CurrentAmount)
	}
}

func TestRecordGoalEventAdjustmentKeepsSign(t *testing.T) {
	store := seedGoalStore(t, 500)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := RecordGoalEventUseCase{Goals: store, Idempotency: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), RecordGoalEventCommand{
		UserID:         "user_1",
		IdempotencyKey: "idem-a",
		GoalID:         "goal_1",
		EventType:      "adjustment",
		Amount:         -75,
	})
	if err != nil {
		t.Fatalf("adjustment failed: %v", err)
	}
	if result.Event.Amount != -75 {
		t.Fatalf("expected adjustment to keep its sign, got %v", result.Event.Amount)
	}
	if result.Goal.CurrentAmount != 425 {
		t.Fatalf("expected current amount 425, got %v", result.Goal.CurrentAmount)
	}
}

func TestRecordGoalEventValidation(t *testing.T) {
	store := seedGoalStore(t, 0)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := RecordGoalEventUseCase{Goals: store, Idempotency: store, Clock: fixedClock{now: now}, IDGen: store}

	_, err := useCase.Execute(context.Background(), RecordGoalEventCommand{
		UserID:         "user_1",
		IdempotencyKey: "k1",
		GoalID:         "goal_1",
		EventType:      "contribution",
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected zero contribution rejected, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), RecordGoalEventCommand{
		UserID:    "user_1",
		GoalID:    "goal_1",
		EventType: "contribution",
		Amount:    50,
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyRequired) {
		t.Fatalf("expected missing idempotency key rejected, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), RecordGoalEventCommand{
		UserID:         "user_1",
		IdempotencyKey: "k2",
		GoalID:         "missing",
		EventType:      "contribution",
		Amount:         50,
	})
	if !errors.Is(err, domainerrors.ErrGoalNotFound) {
		t.Fatalf("expected unknown goal rejected, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), RecordGoalEventCommand{
		IdempotencyKey: "k3",
		GoalID:         "goal_1",
		EventType:      "contribution",
		Amount:         50,
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected blank user rejected, got %v", err)
	}
}
