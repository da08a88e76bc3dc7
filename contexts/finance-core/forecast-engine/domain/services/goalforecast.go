package services

import (
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// ForecastGoal computes the pacing projection for one goal. Without a
// contribution-derived estimate the goal is never on track; with one but no
// due date it always is.
func ForecastGoal(goal entities.Goal, now time.Time) entities.GoalForecast {
	forecast := entities.GoalForecast{
		GoalID:              goal.ID,
		Title:               goal.Title,
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		MonthlyContribution: goal.MonthlyContribution,
		RemainingAmount:     goal.RemainingAmount,
		ProgressPct:         goal.ProgressPct,
		DueAt:               goal.DueAt,
	}
	if goal.MonthsToTarget == nil {
		return forecast
	}

	months := *goal.MonthsToTarget
	forecast.MonthsToTarget = &months
	forecast.ProjectedCompletionAt = advanceMonths(now, months).UnixMilli()
	if goal.DueAt == 0 {
		forecast.OnTrack = true
	} else {
		forecast.OnTrack = forecast.ProjectedCompletionAt <= goal.DueAt
	}
	return forecast
}

// ForecastGoals projects every goal in the given order.
func ForecastGoals(goals []entities.Goal, now time.Time) []entities.GoalForecast {
	out := make([]entities.GoalForecast, 0, len(goals))
	for _, goal := range goals {
		out = append(out, ForecastGoal(goal, now))
	}
	return out
}

// advanceMonths moves a time forward by whole calendar months. The day of
// month is clamped to 28 first so the result never rolls into the
// following month.
func advanceMonths(t time.Time, months int) time.Time {
	day := t.Day()
	if day > 28 {
		day = 28
	}
	base := time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return base.AddDate(0, months, 0)
}
