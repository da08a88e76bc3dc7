package normalize

import (
	"testing"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestPlanningVersionPlannedNetFallbackChain(t *testing.T) {
	version := PlanningVersion(RawRecord{
		"id":         "v1",
		"cycleKey":   "2026-08",
		"plannedNet": float64(123),
	}, testCtx)
	if version.PlannedNet != 123 {
		t.Fatalf("expected explicit net to win, got %v", version.PlannedNet)
	}

	version = PlanningVersion(RawRecord{
		"id":              "v2",
		"cycleKey":        "2026-08",
		"plannedIncome":   float64(4000),
		"plannedExpenses": float64(3600),
		"plannedSavings":  float64(500),
	}, testCtx)
	if version.PlannedNet != 500 {
		t.Fatalf("expected savings fallback, got %v", version.PlannedNet)
	}

	version = PlanningVersion(RawRecord{
		"id":              "v3",
		"cycleKey":        "2026-08",
		"plannedIncome":   float64(4000),
		"plannedExpenses": float64(3500),
	}, testCtx)
	if version.PlannedNet != 500 {
		t.Fatalf("expected income minus expenses fallback, got %v", version.PlannedNet)
	}
}

func TestPlanningVersionCycleFallsBackToCurrent(t *testing.T) {
	version := PlanningVersion(RawRecord{"id": "v4", "cycleKey": "bogus"}, testCtx)

	if version.CycleKey != "2026-08" {
		t.Fatalf("expected cycle of now, got %s", version.CycleKey)
	}
	if version.Status != entities.VersionStatusDraft {
		t.Fatalf("expected draft status default, got %s", version.Status)
	}
	if version.ScenarioType != entities.ScenarioTypeBase {
		t.Fatalf("expected base scenario default, got %s", version.ScenarioType)
	}
	if version.HorizonMonths != 12 {
		t.Fatalf("expected 12 month horizon default, got %d", version.HorizonMonths)
	}
}

func TestPlanningVersionParsesRecurringScenario(t *testing.T) {
	version := PlanningVersion(RawRecord{
		"id":       "v5",
		"cycleKey": "2026-08",
		"recurringScenario": map[string]any{
			"enabled":        true,
			"name":           "Payday reset",
			"intervalMonths": float64(2),
			"startCycleKey":  "2026-01",
			"tags":           []any{"auto", "", "budget"},
		},
	}, testCtx)

	if !version.Recurring.Enabled {
		t.Fatalf("expected recurring enabled")
	}
	if version.Recurring.Name != "Payday reset" {
		t.Fatalf("expected recurring name mapped, got %s", version.Recurring.Name)
	}
	if version.Recurring.IntervalMonths != 2 {
		t.Fatalf("expected interval 2, got %d", version.Recurring.IntervalMonths)
	}
	if version.Recurring.StartCycleKey != "2026-01" {
		t.Fatalf("expected start cycle 2026-01, got %s", version.Recurring.StartCycleKey)
	}
	if len(version.Recurring.Tags) != 2 || version.Recurring.Tags[0] != "auto" || version.Recurring.Tags[1] != "budget" {
		t.Fatalf("expected blank tags dropped, got %v", version.Recurring.Tags)
	}
}

func TestPlanningTaskEnumAliases(t *testing.T) {
	task := PlanningTask(RawRecord{
		"id":       "t1",
		"title":    "Trim subscriptions",
		"status":   "doing",
		"priority": "urgent",
	}, testCtx)

	if task.Status != entities.TaskStatusInProgress {
		t.Fatalf("expected doing to parse as in_progress, got %s", task.Status)
	}
	if task.Priority != entities.PriorityHigh {
		t.Fatalf("expected urgent to parse as high, got %s", task.Priority)
	}
	if task.OwnerScope != entities.OwnershipShared {
		t.Fatalf("expected shared ownership default, got %s", task.OwnerScope)
	}
}
