package entities

import "strings"

type VersionStatus string

const (
	VersionStatusDraft    VersionStatus = "draft"
	VersionStatusActive   VersionStatus = "active"
	VersionStatusArchived VersionStatus = "archived"
	VersionStatusLocked   VersionStatus = "locked"
)

// ParseVersionStatus defaults unrecognized values to draft.
func ParseVersionStatus(value string) VersionStatus {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "active":
		return VersionStatusActive
	case "archived":
		return VersionStatusArchived
	case "locked":
		return VersionStatusLocked
	default:
		return VersionStatusDraft
	}
}

type ScenarioType string

const (
	ScenarioTypeBase     ScenarioType = "base"
	ScenarioTypeDownside ScenarioType = "downside"
	ScenarioTypeRecovery ScenarioType = "recovery"
	ScenarioTypeStretch  ScenarioType = "stretch"
)

// ParseScenarioType defaults unrecognized values to base.
func ParseScenarioType(value string) ScenarioType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "downside", "pessimistic":
		return ScenarioTypeDownside
	case "recovery":
		return ScenarioTypeRecovery
	case "stretch", "optimistic":
		return ScenarioTypeStretch
	default:
		return ScenarioTypeBase
	}
}

// RecurringScenario marks a planning version that repeats on an interval.
type RecurringScenario struct {
	Enabled        bool
	Name           string
	IntervalMonths int
	StartCycleKey  string
	Tags           []string
}

// TaskCounts is the per-version task rollup the orchestrator attaches.
type TaskCounts struct {
	Total int
	Open  int
	Done  int
}

// PlanningVersion is one saved monthly plan. PlannedNet defaults to
// PlannedSavings when nonzero, else PlannedIncome minus PlannedExpenses.
type PlanningVersion struct {
	ID              string
	CycleKey        string
	Name            string
	VersionKey      string
	Status          VersionStatus
	ScenarioType    ScenarioType
	PlannedIncome   float64
	PlannedExpenses float64
	PlannedSavings  float64
	PlannedNet      float64
	HorizonMonths   int
	LinkedStateID   string
	Note            string
	Recurring       RecurringScenario
	TaskCounts      TaskCounts
	CreatedAt       int64
	UpdatedAt       int64
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusDone       TaskStatus = "done"
)

// ParseTaskStatus defaults unrecognized values to todo.
func ParseTaskStatus(value string) TaskStatus {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "in_progress", "in-progress", "doing":
		return TaskStatusInProgress
	case "blocked":
		return TaskStatusBlocked
	case "done", "complete", "completed":
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

// IsOpen reports whether the task still needs attention.
func (s TaskStatus) IsOpen() bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress || s == TaskStatusBlocked
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority defaults unrecognized values to medium.
func ParsePriority(value string) Priority {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return PriorityLow
	case "high", "urgent", "critical":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

type Ownership string

const (
	OwnershipShared    Ownership = "shared"
	OwnershipPersonal  Ownership = "personal"
	OwnershipHousehold Ownership = "household"
)

// ParseOwnership defaults unrecognized values to shared.
func ParseOwnership(value string) Ownership {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "personal", "private":
		return OwnershipPersonal
	case "household", "family":
		return OwnershipHousehold
	default:
		return OwnershipShared
	}
}

// PlanningTask is an action item attached to a planning version.
// DueAt 0 means no due date.
type PlanningTask struct {
	ID                string
	PlanningVersionID string
	Title             string
	Status            TaskStatus
	Priority          Priority
	OwnerScope        Ownership
	DueAt             int64
	ImpactMonthly     float64
	Note              string
	LinkedEntityType  string
	LinkedEntityID    string
	CreatedAt         int64
	UpdatedAt         int64
}
