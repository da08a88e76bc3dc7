package normalize

import (
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// PlanningVersion normalizes one planning version row. A missing or
// malformed cycle key lands the version in the cycle of Context.Now so
// drafts never disappear from the workspace. A zero plannedNet defaults to
// plannedSavings when that is set, else plannedIncome minus plannedExpenses.
func PlanningVersion(row RawRecord, nctx Context) entities.PlanningVersion {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	cycleKey := cycleKeyField(row, payload, "cycleKey", "cycle", "month")
	if cycleKey == "" {
		cycleKey = nctx.Now.Format("2006-01")
	}
	recurring := objectField(row, payload, "recurringScenario", "recurring")

	plannedIncome := floatField(row, payload, 0, "plannedIncome", "incomePlanned")
	plannedExpenses := floatField(row, payload, 0, "plannedExpenses", "expensesPlanned")
	plannedSavings := floatField(row, payload, 0, "plannedSavings", "savingsPlanned")
	plannedNet := floatField(row, payload, 0, "plannedNet", "netPlanned")
	if plannedNet == 0 {
		if plannedSavings != 0 {
			plannedNet = plannedSavings
		} else {
			plannedNet = plannedIncome - plannedExpenses
		}
	}

	return entities.PlanningVersion{
		ID:              recordID(row, payload),
		CycleKey:        cycleKey,
		Name:            stringField(row, payload, "", "name", "label", "title"),
		VersionKey:      stringField(row, payload, "", "versionKey", "versionTag", "key"),
		Status:          entities.ParseVersionStatus(stringField(row, payload, "", "status", "state")),
		ScenarioType:    entities.ParseScenarioType(stringField(row, payload, "", "scenarioType", "scenario")),
		PlannedIncome:   plannedIncome,
		PlannedExpenses: plannedExpenses,
		PlannedSavings:  plannedSavings,
		PlannedNet:      plannedNet,
		HorizonMonths:   intField(row, payload, 12, 1, 120, "horizonMonths", "horizon"),
		LinkedStateID:   stringField(row, payload, "", "linkedStateId", "financeStateId", "stateId"),
		Note:            stringField(row, payload, "", "note", "notes", "memo"),
		Recurring: entities.RecurringScenario{
			Enabled:        boolField(recurring, nil, false, "enabled", "active"),
			Name:           stringField(recurring, nil, "", "name", "label"),
			IntervalMonths: intField(recurring, nil, 1, 1, 12, "intervalMonths", "interval"),
			StartCycleKey:  cycleKeyField(recurring, nil, "startCycleKey", "startCycle"),
			Tags:           stringSliceField(recurring, nil, 8, "tags"),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func PlanningVersions(rows []RawRecord, nctx Context) []entities.PlanningVersion {
	out := make([]entities.PlanningVersion, 0, len(rows))
	for _, row := range rows {
		out = append(out, PlanningVersion(row, nctx))
	}
	return out
}

// PlanningTask normalizes one planning task row.
func PlanningTask(row RawRecord, nctx Context) entities.PlanningTask {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.PlanningTask{
		ID:                recordID(row, payload),
		PlanningVersionID: stringField(row, payload, "", "planningVersionId", "versionId", "planId"),
		Title:             stringField(row, payload, "", "title", "name"),
		Status:            entities.ParseTaskStatus(stringField(row, payload, "", "status", "state")),
		Priority:          entities.ParsePriority(stringField(row, payload, "", "priority", "importance")),
		OwnerScope:        entities.ParseOwnership(stringField(row, payload, "", "ownerScope", "ownership", "scope")),
		DueAt:             millisField(row, payload, 0, "dueAt", "dueDate", "deadline"),
		ImpactMonthly:     floatField(row, payload, 0, "impactMonthly", "monthlyImpact", "impact"),
		Note:              stringField(row, payload, "", "note", "notes", "memo"),
		LinkedEntityType:  stringField(row, payload, "", "linkedEntityType", "entityType"),
		LinkedEntityID:    stringField(row, payload, "", "linkedEntityId", "entityId"),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func PlanningTasks(rows []RawRecord, nctx Context) []entities.PlanningTask {
	out := make([]entities.PlanningTask, 0, len(rows))
	for _, row := range rows {
		out = append(out, PlanningTask(row, nctx))
	}
	return out
}
