package services

import (
	"testing"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestSortPlanningTasksTriageOrder(t *testing.T) {
	tasks := []entities.PlanningTask{
		{ID: "done", Status: entities.TaskStatusDone, Priority: entities.PriorityHigh},
		{ID: "todo-undated", Status: entities.TaskStatusTodo, Priority: entities.PriorityMedium},
		{ID: "todo-dated", Status: entities.TaskStatusTodo, Priority: entities.PriorityMedium, DueAt: 100},
		{ID: "todo-high", Status: entities.TaskStatusTodo, Priority: entities.PriorityHigh},
		{ID: "blocked", Status: entities.TaskStatusBlocked, Priority: entities.PriorityLow},
		{ID: "doing", Status: entities.TaskStatusInProgress, Priority: entities.PriorityLow},
	}

	SortPlanningTasks(tasks)

	want := []string{"blocked", "doing", "todo-high", "todo-dated", "todo-undated", "done"}
	for i, task := range tasks {
		if task.ID != want[i] {
			t.Fatalf("expected %s at position %d, got %s", want[i], i, task.ID)
		}
	}
}

func TestSortGoalsLifecyclePriorityRecency(t *testing.T) {
	goals := []entities.Goal{
		{ID: "paused", Status: entities.GoalStatusPaused, Priority: entities.PriorityHigh, UpdatedAt: 900},
		{ID: "active-old", Status: entities.GoalStatusActive, Priority: entities.PriorityMedium, UpdatedAt: 10},
		{ID: "done", Status: entities.GoalStatusCompleted, Priority: entities.PriorityHigh, UpdatedAt: 999},
		{ID: "active-new", Status: entities.GoalStatusActive, Priority: entities.PriorityMedium, UpdatedAt: 20},
		{ID: "active-high", Status: entities.GoalStatusActive, Priority: entities.PriorityHigh, UpdatedAt: 5},
	}

	SortGoals(goals)

	want := []string{"active-high", "active-new", "active-old", "paused", "done"}
	for i, goal := range goals {
		if goal.ID != want[i] {
			t.Fatalf("expected %s at position %d, got %s", want[i], i, goal.ID)
		}
	}
}

func TestSortEnvelopesNewestCycleThenCategory(t *testing.T) {
	envelopes := []entities.EnvelopeBudget{
		{ID: "groceries-mar", CycleKey: "2026-03", Category: "groceries"},
		{ID: "rent-apr", CycleKey: "2026-04", Category: "rent"},
		{ID: "dining-mar", CycleKey: "2026-03", Category: "dining"},
	}

	SortEnvelopes(envelopes)

	want := []string{"rent-apr", "dining-mar", "groceries-mar"}
	for i, envelope := range envelopes {
		if envelope.ID != want[i] {
			t.Fatalf("expected %s at position %d, got %s", want[i], i, envelope.ID)
		}
	}
}

func TestMostRecentFirstFallsBackToCreatedAt(t *testing.T) {
	states := []entities.FinanceState{
		{ID: "created-50", CreatedAt: 50},
		{ID: "updated-100", CreatedAt: 1, UpdatedAt: 100},
		{ID: "created-70", CreatedAt: 70},
	}

	MostRecentFirst(states, func(item entities.FinanceState) (int64, int64) {
		return item.UpdatedAt, item.CreatedAt
	})

	want := []string{"updated-100", "created-70", "created-50"}
	for i, state := range states {
		if state.ID != want[i] {
			t.Fatalf("expected %s at position %d, got %s", want[i], i, state.ID)
		}
	}
}
