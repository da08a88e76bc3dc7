package queries

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

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func seedWorkspace(store *memory.Store) {
	store.SeedWorkspace("user_1", ports.WorkspaceRecords{
		BaseCurrency: "USD",
		Incomes: []ports.RawRecord{
			{"id": "inc_1", "name": "Salary", "amount": 4000, "cadence": "monthly", "receivedDay": 1},
		},
		Bills: []ports.RawRecord{
			{"id": "bill_1", "name": "Rent", "amount": 1200, "dueDay": 1, "category": "rent"},
		},
		Cards: []ports.RawRecord{
			{"id": "card_1", "name": "Visa", "minPayment": 50, "usedLimit": 500, "creditLimit": 2000, "dueDay": 25},
		},
		Accounts: []ports.RawRecord{
			{"id": "acc_1", "name": "Checking", "type": "checking", "balance": 3000},
		},
		PlanningVersions: []ports.RawRecord{
			{"id": "v1", "cycleKey": "2026-08", "name": "August plan", "status": "active", "plannedIncome": 4100, "plannedExpenses": 3300},
		},
		PlanningTasks: []ports.RawRecord{
			{"id": "t1", "title": "Review subscriptions", "status": "todo", "planningVersionId": "v1"},
			{"id": "t2", "title": "Close July", "status": "done", "planningVersionId": "v1"},
		},
		Goals: []ports.RawRecord{
			{"id": "g1", "title": "Emergency fund", "targetAmount": 1200, "currentAmount": 200, "monthlyContribution": 100, "status": "active"},
		},
		Envelopes: []ports.RawRecord{
			{"id": "env_1", "cycleKey": "2026-08", "category": "groceries", "plannedAmount": 400, "actualAmount": 100},
		},
	})
}

func TestWorkspaceForecastAssemblesView(t *testing.T) {
	store := memory.NewStore()
	seedWorkspace(store)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := WorkspaceForecastUseCase{Workspaces: store, Clock: fixedClock{now: now}}

	view, err := useCase.Execute(context.Background(), ForecastRequest{UserID: "user_1"})
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}

	if view.SelectedCycleKey != "2026-08" {
		t.Fatalf("expected cycle from the active plan, got %s", view.SelectedCycleKey)
	}
	if view.ActiveVersionID != "v1" {
		t.Fatalf("expected active version v1, got %s", view.ActiveVersionID)
	}
	if view.BaseCurrency != "USD" || view.DisplayCurrency != "USD" || view.Locale != "en-US" {
		t.Fatalf("unexpected presentation defaults: %s %s %s", view.BaseCurrency, view.DisplayCurrency, view.Locale)
	}

	if view.Baseline.MonthlyIncome != 4000 {
		t.Fatalf("expected income 4000, got %v", view.Baseline.MonthlyIncome)
	}
	if view.Baseline.MonthlyExpenses != 1250 {
		t.Fatalf("expected expenses 1250, got %v", view.Baseline.MonthlyExpenses)
	}
	if view.Baseline.MonthlyNet != 2750 {
		t.Fatalf("expected net 2750, got %v", view.Baseline.MonthlyNet)
	}
	if view.Baseline.NetWorth != 2500 {
		t.Fatalf("expected net worth 2500, got %v", view.Baseline.NetWorth)
	}

	if len(view.Scenarios) != 2 {
		t.Fatalf("expected core and plan scenarios, got %d", len(view.Scenarios))
	}
	if view.Scenarios[0].Source != entities.ScenarioSourceCoreLive {
		t.Fatalf("expected core scenario first, got %s", view.Scenarios[0].Source)
	}
	if view.Scenarios[1].ID != "plan-v1" {
		t.Fatalf("expected plan scenario for v1, got %s", view.Scenarios[1].ID)
	}

	if len(view.PlanningVersions) != 1 {
		t.Fatalf("expected one version, got %d", len(view.PlanningVersions))
	}
	counts := view.PlanningVersions[0].TaskCounts
	if counts.Total != 2 || counts.Open != 1 || counts.Done != 1 {
		t.Fatalf("unexpected task counts: %+v", counts)
	}
	if view.TaskSummary.Todo != 1 || view.TaskSummary.Done != 1 {
		t.Fatalf("unexpected task summary: %+v", view.TaskSummary)
	}

	if len(view.GoalForecasts) != 1 {
		t.Fatalf("expected one goal forecast, got %d", len(view.GoalForecasts))
	}
	forecast := view.GoalForecasts[0]
	if forecast.GoalID != "g1" {
		t.Fatalf("unexpected goal id %s", forecast.GoalID)
	}
	if forecast.MonthsToTarget == nil || *forecast.MonthsToTarget != 10 {
		t.Fatalf("expected 10 months to target, got %v", forecast.MonthsToTarget)
	}

	if view.EnvelopeSummary.CycleKey != "2026-08" || view.EnvelopeSummary.Count != 1 {
		t.Fatalf("unexpected envelope summary: %+v", view.EnvelopeSummary)
	}
	if view.EnvelopeSummary.Planned != 400 || view.EnvelopeSummary.Remaining != 300 {
		t.Fatalf("unexpected envelope totals: %+v", view.EnvelopeSummary)
	}

	if view.SpendingLens.Fixed != 1250 {
		t.Fatalf("expected fixed spend 1250, got %v", view.SpendingLens.Fixed)
	}
	if view.SpendingLens.Controllable != 400 {
		t.Fatalf("expected controllable spend 400, got %v", view.SpendingLens.Controllable)
	}

	if len(view.Fragility.DueRows) != 2 {
		t.Fatalf("expected rent and card due rows, got %d", len(view.Fragility.DueRows))
	}
	if view.Fragility.DueRows[0].Day != 1 || view.Fragility.DueRows[1].Day != 25 {
		t.Fatalf("expected due rows ordered by day, got %+v", view.Fragility.DueRows)
	}

	expectedCategories := []string{"groceries", "rent"}
	if len(view.Categories) != len(expectedCategories) {
		t.Fatalf("unexpected categories: %v", view.Categories)
	}
	for i, category := range expectedCategories {
		if view.Categories[i] != category {
			t.Fatalf("unexpected categories: %v", view.Categories)
		}
	}
	if len(view.Currencies) != 1 || view.Currencies[0] != "USD" {
		t.Fatalf("unexpected currencies: %v", view.Currencies)
	}
	if len(view.AccountOptions) != 1 || view.AccountOptions[0].ID != "acc_1" {
		t.Fatalf("unexpected account options: %+v", view.AccountOptions)
	}

	if len(view.AvailableCycleKeys) != 13 {
		t.Fatalf("expected the 13 key rolling window, got %d", len(view.AvailableCycleKeys))
	}
	if view.GeneratedAt != now.UnixMilli() {
		t.Fatalf("expected generated at %d, got %d", now.UnixMilli(), view.GeneratedAt)
	}
}

func TestWorkspaceForecastHonorsRequestedCycle(t *testing.T) {
	store := memory.NewStore()
	seedWorkspace(store)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := WorkspaceForecastUseCase{Workspaces: store, Clock: fixedClock{now: now}}

	view, err := useCase.Execute(context.Background(), ForecastRequest{
		UserID:          "user_1",
		CycleKey:        "2026-06",
		DisplayCurrency: "eur",
		Locale:          "de-DE",
	})
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if view.SelectedCycleKey != "2026-06" {
		t.Fatalf("expected requested cycle, got %s", view.SelectedCycleKey)
	}
	if view.DisplayCurrency != "EUR" || view.Locale != "de-DE" {
		t.Fatalf("unexpected presentation: %s %s", view.DisplayCurrency, view.Locale)
	}
	if view.EnvelopeSummary.Count != 0 {
		t.Fatalf("expected no envelopes for 2026-06, got %d", view.EnvelopeSummary.Count)
	}
	if view.SpendingLens.Controllable != 0 {
		t.Fatalf("expected no controllable spend outside the envelope cycle, got %v", view.SpendingLens.Controllable)
	}
}

func TestWorkspaceForecastRequiresUser(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	useCase := WorkspaceForecastUseCase{Workspaces: store, Clock: fixedClock{now: now}}

	_, err := useCase.Execute(context.Background(), ForecastRequest{UserID: "  "})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected blank user rejected, got %v", err)
	}
}

func TestDefaultWorkspaceViewShape(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	view := DefaultWorkspaceView("GBP", now)

	if view.BaseCurrency != "GBP" || view.DisplayCurrency != "GBP" {
		t.Fatalf("expected GBP base, got %s %s", view.BaseCurrency, view.DisplayCurrency)
	}
	if view.Locale != "en-US" {
		t.Fatalf("expected default locale, got %s", view.Locale)
	}
	if view.SelectedCycleKey != "2026-08" {
		t.Fatalf("expected current cycle, got %s", view.SelectedCycleKey)
	}
	if len(view.AvailableCycleKeys) != 13 {
		t.Fatalf("expected the rolling window, got %d keys", len(view.AvailableCycleKeys))
	}
	if len(view.Scenarios) != 1 || view.Scenarios[0].Source != entities.ScenarioSourceCoreLive {
		t.Fatalf("expected only the core scenario, got %+v", view.Scenarios)
	}
	if view.Scenarios[0].RunwayMonths != nil {
		t.Fatalf("expected no runway without expenses, got %v", *view.Scenarios[0].RunwayMonths)
	}
	if view.Baseline.MonthlyIncome != 0 || view.Baseline.NetWorth != 0 {
		t.Fatalf("expected zero baseline, got %+v", view.Baseline)
	}
	if len(view.Incomes) != 0 || len(view.Goals) != 0 || len(view.Envelopes) != 0 {
		t.Fatalf("expected empty collections")
	}
	if view.Fragility.Score != 0 || view.Fragility.Level != entities.FragilityLevelLow {
		t.Fatalf("unexpected fragility: %+v", view.Fragility)
	}
	if view.GeneratedAt != now.UnixMilli() {
		t.Fatalf("expected generated at %d, got %d", now.UnixMilli(), view.GeneratedAt)
	}
}
