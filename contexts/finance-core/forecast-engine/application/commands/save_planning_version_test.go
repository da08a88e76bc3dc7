package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/adapters/memory"
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

func TestSavePlanningVersionCreatesWithGeneratedID(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := SavePlanningVersionUseCase{Planning: store, Outbox: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), SavePlanningVersionCommand{
		UserID:          "user_1",
		Name:            "August plan",
		Status:          "active",
		ScenarioType:    "base",
		PlannedIncome:   4000,
		PlannedExpenses: 3200,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !result.Created {
		t.Fatalf("expected created flag")
	}
	if result.Version.ID == "" {
		t.Fatalf("expected generated version id")
	}
	if result.Version.CycleKey != "2026-08" {
		t.Fatalf("expected current cycle fallback, got %s", result.Version.CycleKey)
	}
	if result.Version.PlannedNet != 800 {
		t.Fatalf("expected derived planned net 800, got %v", result.Version.PlannedNet)
	}
	if result.Version.Status != entities.VersionStatusActive {
		t.Fatalf("expected active status, got %s", result.Version.Status)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("listing outbox failed: %v", err)
	}
	if len(pending) != 1 || pending[0].EventType != "workspace.plan.version_saved" {
		t.Fatalf("expected version saved event, got %+v", pending)
	}
}

func TestSavePlanningVersionActivationDemotesOthers(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	store.SeedWorkspace("user_1", ports.WorkspaceRecords{
		PlanningVersions: []ports.RawRecord{
			{"id": "v-old", "cycleKey": "2026-07", "name": "July plan", "status": "active"},
		},
	})
	useCase := SavePlanningVersionUseCase{Planning: store, Outbox: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), SavePlanningVersionCommand{
		UserID:   "user_1",
		CycleKey: "2026-08",
		Name:     "August plan",
		Status:   "active",
	})
	if err != nil {
		t.Fatalf("activation failed: %v", err)
	}

	records, err := store.LoadWorkspace(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("loading workspace failed: %v", err)
	}
	active := 0
	for _, row := range records.PlanningVersions {
		status, _ := row["status"].(string)
		if status == "active" {
			active++
			if row["id"] != result.Version.ID {
				t.Fatalf("expected only the new version active, got %v", row["id"])
			}
		}
		if row["id"] == "v-old" && status != "draft" {
			t.Fatalf("expected previous active version demoted to draft, got %s", status)
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active version, got %d", active)
	}
}

func TestSavePlanningVersionUpdateKeepsID(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	store.SeedWorkspace("user_1", ports.WorkspaceRecords{
		PlanningVersions: []ports.RawRecord{
			{"id": "v1", "cycleKey": "2026-08", "name": "Draft", "status": "draft", "createdAt": float64(1000)},
		},
	})
	useCase := SavePlanningVersionUseCase{Planning: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), SavePlanningVersionCommand{
		UserID:    "user_1",
		VersionID: "v1",
		CycleKey:  "2026-08",
		Name:      "Draft v2",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Created {
		t.Fatalf("expected update not to report created")
	}
	if result.Version.ID != "v1" {
		t.Fatalf("expected version id kept, got %s", result.Version.ID)
	}
	if result.Version.Name != "Draft v2" {
		t.Fatalf("expected name updated, got %s", result.Version.Name)
	}
}

func TestSavePlanningVersionCarriesRecurringScenario(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := SavePlanningVersionUseCase{Planning: store, Clock: fixedClock{now: now}, IDGen: store}

	result, err := useCase.Execute(context.Background(), SavePlanningVersionCommand{
		UserID:   "user_1",
		CycleKey: "2026-08",
		Name:     "Payday reset",
		Recurring: &RecurringInput{
			Enabled:        true,
			IntervalMonths: 2,
			StartCycleKey:  "2026-08",
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !result.Version.Recurring.Enabled {
		t.Fatalf("expected recurring enabled on the saved version")
	}
	if result.Version.Recurring.IntervalMonths != 2 {
		t.Fatalf("expected interval 2, got %d", result.Version.Recurring.IntervalMonths)
	}
}

func TestSavePlanningVersionValidation(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := SavePlanningVersionUseCase{Planning: store, Clock: fixedClock{now: now}, IDGen: store}

	_, err := useCase.Execute(context.Background(), SavePlanningVersionCommand{
		UserID:   "user_1",
		CycleKey: "08-2026",
		Name:     "Backwards",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCycleKey) {
		t.Fatalf("expected malformed cycle rejected, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), SavePlanningVersionCommand{UserID: "user_1"})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected missing name rejected, got %v", err)
	}
}
