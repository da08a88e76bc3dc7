package normalize

import (
	"testing"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestFinanceStateDefaults(t *testing.T) {
	state := FinanceState(RawRecord{"id": "st-1", "name": "Baseline"}, testCtx)

	if state.Kind != entities.StateKindScenario {
		t.Fatalf("expected scenario kind default, got %s", state.Kind)
	}
	if state.HorizonMonths != 12 {
		t.Fatalf("expected 12 month horizon default, got %d", state.HorizonMonths)
	}
	if state.MonthlyIncome != 0 || state.Assets != 0 {
		t.Fatalf("expected zero figures kept, got %+v", state)
	}
	if state.Currency != "USD" {
		t.Fatalf("expected base currency fallback, got %s", state.Currency)
	}
}

func TestFinanceStateParsesKindAliases(t *testing.T) {
	if got := FinanceState(RawRecord{"id": "a", "kind": "goal"}, testCtx).Kind; got != entities.StateKindTarget {
		t.Fatalf("expected goal alias to parse as target, got %s", got)
	}
	if got := FinanceState(RawRecord{"id": "b", "stateKind": "actual"}, testCtx).Kind; got != entities.StateKindCurrent {
		t.Fatalf("expected actual alias to parse as current, got %s", got)
	}
}

func TestFinanceStateClampsHorizon(t *testing.T) {
	state := FinanceState(RawRecord{"id": "st-2", "name": "Long view", "horizonMonths": float64(999)}, testCtx)

	if state.HorizonMonths != 240 {
		t.Fatalf("expected horizon clamped to 240, got %d", state.HorizonMonths)
	}
}
