package entities

import (
	"math"
	"strings"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// ParseGoalStatus defaults unrecognized values to active.
func ParseGoalStatus(value string) GoalStatus {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "paused", "on_hold", "on-hold":
		return GoalStatusPaused
	case "completed", "complete", "done":
		return GoalStatusCompleted
	case "cancelled", "canceled", "abandoned":
		return GoalStatusCancelled
	default:
		return GoalStatusActive
	}
}

type GoalEventType string

const (
	GoalEventContribution GoalEventType = "contribution"
	GoalEventWithdrawal   GoalEventType = "withdrawal"
	GoalEventAdjustment   GoalEventType = "adjustment"
	GoalEventMilestone    GoalEventType = "milestone"
)

// ParseGoalEventType defaults unrecognized values to contribution.
func ParseGoalEventType(value string) GoalEventType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "withdrawal", "withdraw":
		return GoalEventWithdrawal
	case "adjustment", "adjust", "correction":
		return GoalEventAdjustment
	case "milestone":
		return GoalEventMilestone
	default:
		return GoalEventContribution
	}
}

// GoalEvent is one ledger entry against a goal. Amount is sign-normalized:
// withdrawals are negative, contributions positive.
type GoalEvent struct {
	ID         string
	GoalID     string
	EventType  GoalEventType
	Amount     float64
	Note       string
	OccurredAt int64
	CreatedAt  int64
	UpdatedAt  int64
}

// Goal is a savings target. ProgressPct, RemainingAmount, and MonthsToTarget
// are derived; RefreshDerived keeps them consistent after amount changes.
type Goal struct {
	ID                  string
	Title               string
	Category            string
	Status              GoalStatus
	Priority            Priority
	Ownership           Ownership
	TargetAmount        float64
	CurrentAmount       float64
	MonthlyContribution float64
	DueAt               int64
	DueLabel            string
	Currency            string
	Note                string
	ProgressPct         float64
	RemainingAmount     float64
	MonthsToTarget      *int
	LastEventAt         int64
	RecentEvents        []GoalEvent
	CreatedAt           int64
	UpdatedAt           int64
}

// RefreshDerived recomputes progress, remaining amount, and months-to-target
// from the base amounts. Zero targets yield zero progress, and a zero
// contribution yields no months-to-target estimate.
func (g *Goal) RefreshDerived() {
	if g.TargetAmount > 0 {
		ratio := g.CurrentAmount / g.TargetAmount
		if ratio > 1 {
			ratio = 1
		}
		g.ProgressPct = ratio
	} else {
		g.ProgressPct = 0
	}

	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}
	g.RemainingAmount = remaining

	if g.MonthlyContribution > 0 {
		months := int(math.Ceil(remaining / g.MonthlyContribution))
		g.MonthsToTarget = &months
	} else {
		g.MonthsToTarget = nil
	}
}
