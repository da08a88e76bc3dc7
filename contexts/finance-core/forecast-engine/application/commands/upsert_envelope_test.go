package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/adapters/memory"
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
)

func TestUpsertEnvelopeCreatesThenUpdates(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := UpsertEnvelopeUseCase{Envelopes: store, Outbox: store, Clock: fixedClock{now: now}, IDGen: store}

	first, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:        "user_1",
		CycleKey:      "2026-08",
		Category:      "Groceries",
		PlannedAmount: 400,
		ActualAmount:  120,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !first.Created {
		t.Fatalf("expected created flag on first write")
	}
	if first.Envelope.Category != "groceries" {
		t.Fatalf("expected category folded to lower case, got %s", first.Envelope.Category)
	}
	if first.Envelope.Status != entities.EnvelopeStatusFunded {
		t.Fatalf("expected funded status, got %s", first.Envelope.Status)
	}

	second, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:        "user_1",
		CycleKey:      "2026-08",
		Category:      "groceries",
		PlannedAmount: 400,
		ActualAmount:  390,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if second.Created {
		t.Fatalf("expected update for same cycle and category")
	}
	if second.Envelope.ID != first.Envelope.ID {
		t.Fatalf("expected envelope id kept, got %s", second.Envelope.ID)
	}
	if second.Envelope.Status != entities.EnvelopeStatusAtRisk {
		t.Fatalf("expected at_risk status near the cap, got %s", second.Envelope.Status)
	}
	if second.Envelope.RemainingAmount != 10 {
		t.Fatalf("expected remaining 10, got %v", second.Envelope.RemainingAmount)
	}
}

func TestUpsertEnvelopeStatusDerivation(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := UpsertEnvelopeUseCase{Envelopes: store, Clock: fixedClock{now: now}, IDGen: store}

	over, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:        "user_1",
		CycleKey:      "2026-08",
		Category:      "dining",
		PlannedAmount: 100,
		ActualAmount:  130,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if over.Envelope.Status != entities.EnvelopeStatusOver {
		t.Fatalf("expected over status, got %s", over.Envelope.Status)
	}

	draft, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:   "user_1",
		CycleKey: "2026-08",
		Category: "future",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if draft.Envelope.Status != entities.EnvelopeStatusDraft {
		t.Fatalf("expected draft status without funding, got %s", draft.Envelope.Status)
	}
}

func TestUpsertEnvelopeCountsCarryoverInUtilization(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := UpsertEnvelopeUseCase{Envelopes: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:          "user_1",
		CycleKey:        "2026-08",
		Category:        "groceries",
		PlannedAmount:   100,
		ActualAmount:    130,
		CarryoverAmount: 50,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if result.Envelope.Status != entities.EnvelopeStatusAtRisk {
		t.Fatalf("expected carryover to keep utilization under the cap, got %s", result.Envelope.Status)
	}
	if result.Envelope.RemainingAmount != 20 {
		t.Fatalf("expected remaining 20, got %v", result.Envelope.RemainingAmount)
	}
}

func TestUpsertEnvelopeRoundsAmounts(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := UpsertEnvelopeUseCase{Envelopes: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:        "user_1",
		CycleKey:      "2026-08",
		Category:      "misc",
		PlannedAmount: 100.005,
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if result.Envelope.PlannedAmount != 100.01 {
		t.Fatalf("expected planned amount rounded to cents, got %v", result.Envelope.PlannedAmount)
	}
}

func TestUpsertEnvelopeValidation(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := UpsertEnvelopeUseCase{Envelopes: store, Clock: fixedClock{now: now}, IDGen: store}

	_, err := useCase.Execute(context.Background(), UpsertEnvelopeCommand{UserID: "user_1"})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected blank category rejected, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), UpsertEnvelopeCommand{
		UserID:   "user_1",
		Category: "misc",
		CycleKey: "Aug 2026",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCycleKey) {
		t.Fatalf("expected malformed cycle rejected, got %v", err)
	}
}
