package normalize

import (
	"sort"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

const (
	maxGoalEvents       = 200
	recentEventsPerGoal = 5
)

// GoalEvent normalizes one goal ledger entry. OccurredAt falls back to the
// row's creation time so an event always lands somewhere on the timeline.
func GoalEvent(row RawRecord, nctx Context) entities.GoalEvent {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.GoalEvent{
		ID:         recordID(row, payload),
		GoalID:     stringField(row, payload, "", "goalId", "goal"),
		EventType:  entities.ParseGoalEventType(stringField(row, payload, "", "eventType", "type", "kind")),
		Amount:     floatField(row, payload, 0, "amount", "value", "delta"),
		Note:       stringField(row, payload, "", "note", "notes", "memo"),
		OccurredAt: millisField(row, payload, createdAt, "occurredAt", "happenedAt", "eventAt"),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// GoalEvents normalizes, orders newest-first, and caps the event history.
// The cap bounds workspace assembly regardless of how long a goal has been
// collecting contributions.
func GoalEvents(rows []RawRecord, nctx Context) []entities.GoalEvent {
	out := make([]entities.GoalEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, GoalEvent(row, nctx))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OccurredAt != out[j].OccurredAt {
			return out[i].OccurredAt > out[j].OccurredAt
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	if len(out) > maxGoalEvents {
		out = out[:maxGoalEvents]
	}
	return out
}

// Goal normalizes one goal row and attaches its recent history. events must
// already be newest-first, as GoalEvents returns them.
func Goal(row RawRecord, events []entities.GoalEvent, nctx Context) entities.Goal {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	goal := entities.Goal{
		ID:                  recordID(row, payload),
		Title:               stringField(row, payload, "", "title", "name", "label"),
		Category:            stringField(row, payload, "", "category", "group", "bucket"),
		Status:              entities.ParseGoalStatus(stringField(row, payload, "", "status", "state")),
		Priority:            entities.ParsePriority(stringField(row, payload, "", "priority", "importance")),
		Ownership:           entities.ParseOwnership(stringField(row, payload, "", "ownership", "ownerScope", "scope")),
		TargetAmount:        floatField(row, payload, 0, "targetAmount", "target"),
		CurrentAmount:       floatField(row, payload, 0, "currentAmount", "saved", "current"),
		MonthlyContribution: floatField(row, payload, 0, "monthlyContribution", "contribution"),
		DueAt:               millisField(row, payload, 0, "dueAt", "dueDate", "targetDate"),
		DueLabel:            stringField(row, payload, "", "dueLabel", "dueText"),
		Currency:            currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		Note:                stringField(row, payload, "", "note", "notes", "memo"),
		LastEventAt:         millisField(row, payload, 0, "lastEventAt", "lastActivityAt"),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}

	recent := make([]entities.GoalEvent, 0, recentEventsPerGoal)
	for _, event := range events {
		if event.GoalID != goal.ID {
			continue
		}
		recent = append(recent, event)
		if len(recent) == recentEventsPerGoal {
			break
		}
	}
	goal.RecentEvents = recent
	if len(recent) > 0 {
		goal.LastEventAt = recent[0].OccurredAt
	}
	goal.RefreshDerived()
	return goal
}

func Goals(rows []RawRecord, events []entities.GoalEvent, nctx Context) []entities.Goal {
	out := make([]entities.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, Goal(row, events, nctx))
	}
	return out
}
