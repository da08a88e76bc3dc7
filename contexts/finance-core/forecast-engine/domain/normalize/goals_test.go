package normalize

import (
	"fmt"
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestGoalEventsOrderNewestFirst(t *testing.T) {
	events := GoalEvents([]RawRecord{
		{"id": "e1", "goalId": "g1", "amount": float64(50), "occurredAt": float64(100)},
		{"id": "e3", "goalId": "g1", "amount": float64(25), "occurredAt": float64(300)},
		{"id": "e2", "goalId": "g1", "amount": float64(10), "occurredAt": float64(200)},
	}, testCtx)

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].ID != "e3" || events[1].ID != "e2" || events[2].ID != "e1" {
		t.Fatalf("expected newest first, got %s %s %s", events[0].ID, events[1].ID, events[2].ID)
	}
}

func TestGoalEventDefaults(t *testing.T) {
	event := GoalEvent(RawRecord{"id": "e1", "goalId": "g1", "createdAt": float64(5000)}, testCtx)

	if event.EventType != entities.GoalEventContribution {
		t.Fatalf("expected contribution default, got %s", event.EventType)
	}
	if event.OccurredAt != 5000 {
		t.Fatalf("expected occurredAt to fall back to createdAt, got %d", event.OccurredAt)
	}
}

func TestGoalEventOccurredAtAcceptsRFC3339(t *testing.T) {
	event := GoalEvent(RawRecord{"id": "e1", "goalId": "g1", "occurredAt": "2026-08-15T12:00:00Z"}, testCtx)

	want := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	if event.OccurredAt != want {
		t.Fatalf("expected RFC3339 timestamp coerced to millis, got %d", event.OccurredAt)
	}
}

func TestGoalAttachesRecentEventsAndDerivedFigures(t *testing.T) {
	rows := make([]RawRecord, 0, 8)
	for i := 1; i <= 7; i++ {
		rows = append(rows, RawRecord{
			"id":         fmt.Sprintf("e%d", i),
			"goalId":     "g1",
			"eventType":  "contribution",
			"amount":     float64(10),
			"occurredAt": float64(i * 100),
		})
	}
	rows = append(rows, RawRecord{"id": "other", "goalId": "g2", "occurredAt": float64(9999)})
	events := GoalEvents(rows, testCtx)

	goal := Goal(RawRecord{
		"id":                  "g1",
		"title":               "Emergency fund",
		"targetAmount":        float64(1000),
		"currentAmount":       float64(250),
		"monthlyContribution": float64(250),
	}, events, testCtx)

	if len(goal.RecentEvents) != 5 {
		t.Fatalf("expected recent events capped at 5, got %d", len(goal.RecentEvents))
	}
	if goal.RecentEvents[0].ID != "e7" {
		t.Fatalf("expected newest event first, got %s", goal.RecentEvents[0].ID)
	}
	for _, event := range goal.RecentEvents {
		if event.GoalID != "g1" {
			t.Fatalf("expected only matching events attached, got %s", event.GoalID)
		}
	}
	if goal.LastEventAt != 700 {
		t.Fatalf("expected last event at 700, got %d", goal.LastEventAt)
	}
	if goal.RemainingAmount != 750 {
		t.Fatalf("expected remaining 750, got %v", goal.RemainingAmount)
	}
	if goal.MonthsToTarget == nil || *goal.MonthsToTarget != 3 {
		t.Fatalf("expected 3 months to target, got %v", goal.MonthsToTarget)
	}
	if goal.ProgressPct != 0.25 {
		t.Fatalf("expected progress 0.25, got %v", goal.ProgressPct)
	}
}

func TestGoalEnumDefaults(t *testing.T) {
	goal := Goal(RawRecord{"id": "g1", "title": "Trip", "status": "unknown", "priority": "critical"}, nil, testCtx)

	if goal.Status != entities.GoalStatusActive {
		t.Fatalf("expected active status default, got %s", goal.Status)
	}
	if goal.Priority != entities.PriorityHigh {
		t.Fatalf("expected critical to parse as high, got %s", goal.Priority)
	}
	if goal.MonthsToTarget != nil {
		t.Fatalf("expected no estimate without contribution, got %d", *goal.MonthsToTarget)
	}
}
