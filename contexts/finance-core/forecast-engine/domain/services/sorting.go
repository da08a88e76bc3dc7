package services

import (
	"sort"
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// Sorting policies for workspace collections. All sorts are stable so
// equal elements keep their storage order, which SelectActiveVersion
// depends on.

var taskStatusRank = map[entities.TaskStatus]int{
	entities.TaskStatusBlocked:    0,
	entities.TaskStatusInProgress: 1,
	entities.TaskStatusTodo:       2,
	entities.TaskStatusDone:       3,
}

var priorityRank = map[entities.Priority]int{
	entities.PriorityHigh:   0,
	entities.PriorityMedium: 1,
	entities.PriorityLow:    2,
}

var goalStatusRank = map[entities.GoalStatus]int{
	entities.GoalStatusActive:    0,
	entities.GoalStatusPaused:    1,
	entities.GoalStatusCompleted: 2,
	entities.GoalStatusCancelled: 3,
}

func recencyKey(updatedAt, createdAt int64) int64 {
	if updatedAt != 0 {
		return updatedAt
	}
	return createdAt
}

// SortPlanningTasks orders tasks for triage: blocked work first, then by
// priority, then soonest due date with undated tasks last, then most
// recently touched.
func SortPlanningTasks(tasks []entities.PlanningTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if ra, rb := taskStatusRank[a.Status], taskStatusRank[b.Status]; ra != rb {
			return ra < rb
		}
		if ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]; ra != rb {
			return ra < rb
		}
		if a.DueAt != b.DueAt {
			if a.DueAt == 0 {
				return false
			}
			if b.DueAt == 0 {
				return true
			}
			return a.DueAt < b.DueAt
		}
		return a.UpdatedAt > b.UpdatedAt
	})
}

// SortGoals orders goals by lifecycle, then priority, then recency.
func SortGoals(goals []entities.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		a, b := goals[i], goals[j]
		if ra, rb := goalStatusRank[a.Status], goalStatusRank[b.Status]; ra != rb {
			return ra < rb
		}
		if ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]; ra != rb {
			return ra < rb
		}
		return a.UpdatedAt > b.UpdatedAt
	})
}

// SortEnvelopes orders envelopes newest cycle first, category ascending
// within a cycle. Lexicographic comparison is correct for YYYY-MM keys.
func SortEnvelopes(envelopes []entities.EnvelopeBudget) {
	sort.SliceStable(envelopes, func(i, j int) bool {
		a, b := envelopes[i], envelopes[j]
		if a.CycleKey != b.CycleKey {
			return strings.Compare(a.CycleKey, b.CycleKey) > 0
		}
		return strings.Compare(a.Category, b.Category) < 0
	})
}

// MostRecentFirst orders items by updatedAt, falling back to createdAt,
// newest first. stamps returns the two timestamps for an item.
func MostRecentFirst[T any](items []T, stamps func(T) (updatedAt, createdAt int64)) {
	sort.SliceStable(items, func(i, j int) bool {
		iu, ic := stamps(items[i])
		ju, jc := stamps(items[j])
		return recencyKey(iu, ic) > recencyKey(ju, jc)
	})
}
