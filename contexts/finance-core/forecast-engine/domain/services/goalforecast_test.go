package services

import (
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestForecastGoalProjectsCompletion(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	goal := entities.Goal{
		ID:                  "g1",
		Title:               "Emergency fund",
		TargetAmount:        1200,
		CurrentAmount:       200,
		MonthlyContribution: 100,
	}
	goal.RefreshDerived()

	forecast := ForecastGoal(goal, now)

	if forecast.GoalID != "g1" || forecast.Title != "Emergency fund" {
		t.Fatalf("expected goal identity carried through, got %+v", forecast)
	}
	if forecast.RemainingAmount != 1000 {
		t.Fatalf("expected remaining 1000, got %v", forecast.RemainingAmount)
	}
	if forecast.MonthsToTarget == nil || *forecast.MonthsToTarget != 10 {
		t.Fatalf("expected 10 months to target, got %v", forecast.MonthsToTarget)
	}
	want := time.Date(2027, time.January, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	if forecast.ProjectedCompletionAt != want {
		t.Fatalf("expected completion at %d, got %d", want, forecast.ProjectedCompletionAt)
	}
	if !forecast.OnTrack {
		t.Fatalf("expected goal without due date to be on track")
	}
}

func TestForecastGoalComparesDueDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	goal := entities.Goal{
		ID:                  "g2",
		TargetAmount:        1200,
		CurrentAmount:       200,
		MonthlyContribution: 100,
		DueAt:               time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC).UnixMilli(),
	}
	goal.RefreshDerived()

	forecast := ForecastGoal(goal, now)
	if forecast.OnTrack {
		t.Fatalf("expected goal due before projected completion to be off track")
	}

	goal.DueAt = time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	forecast = ForecastGoal(goal, now)
	if !forecast.OnTrack {
		t.Fatalf("expected goal due after projected completion to be on track")
	}
}

func TestForecastGoalWithoutContribution(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	goal := entities.Goal{ID: "g3", TargetAmount: 500, CurrentAmount: 100}
	goal.RefreshDerived()

	forecast := ForecastGoal(goal, now)

	if forecast.MonthsToTarget != nil {
		t.Fatalf("expected no months estimate without contribution, got %d", *forecast.MonthsToTarget)
	}
	if forecast.ProjectedCompletionAt != 0 {
		t.Fatalf("expected no projected completion, got %d", forecast.ProjectedCompletionAt)
	}
	if forecast.OnTrack {
		t.Fatalf("expected goal without estimate to be off track")
	}
}

func TestForecastGoalClampsMonthEndStart(t *testing.T) {
	now := time.Date(2026, time.January, 31, 10, 0, 0, 0, time.UTC)
	goal := entities.Goal{ID: "g4", TargetAmount: 100, MonthlyContribution: 100}
	goal.RefreshDerived()

	forecast := ForecastGoal(goal, now)

	want := time.Date(2026, time.February, 28, 10, 0, 0, 0, time.UTC).UnixMilli()
	if forecast.ProjectedCompletionAt != want {
		t.Fatalf("expected completion pinned to feb 28, got %d", forecast.ProjectedCompletionAt)
	}
}

func TestForecastGoalsKeepInputOrder(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	forecasts := ForecastGoals([]entities.Goal{{ID: "g-a", TargetAmount: 100}, {ID: "g-b", TargetAmount: 200}}, now)

	if len(forecasts) != 2 || forecasts[0].GoalID != "g-a" || forecasts[1].GoalID != "g-b" {
		t.Fatalf("expected forecasts in input order, got %+v", forecasts)
	}
}
