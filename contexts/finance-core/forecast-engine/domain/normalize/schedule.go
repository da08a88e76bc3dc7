package normalize

import (
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func recordID(row RawRecord, payload map[string]any) string {
	return stringField(row, payload, "", "id", "_id", "recordId")
}

func timestamps(row RawRecord, payload map[string]any) (createdAt, updatedAt int64) {
	createdAt = millisField(row, payload, 0, "createdAt", "creationTimestamp", "insertedAt")
	updatedAt = millisField(row, payload, createdAt, "updatedAt", "modifiedAt", "lastUpdatedAt")
	return createdAt, updatedAt
}

// Income normalizes one income source row. ReceivedDay 0 means the pay day
// is unknown; fragility scoring skips the early-month check for it.
func Income(row RawRecord, nctx Context) entities.IncomeSource {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.IncomeSource{
		ID:             recordID(row, payload),
		Name:           stringField(row, payload, "", "name", "source", "label"),
		Amount:         floatField(row, payload, 0, "amount", "value", "monthlyAmount"),
		Cadence:        entities.ParseCadence(stringField(row, payload, "", "cadence", "frequency", "schedule")),
		CustomInterval: intField(row, payload, 1, 1, 365, "customInterval", "intervalCount", "every"),
		CustomUnit:     strings.ToLower(stringField(row, payload, "week", "customUnit", "intervalUnit", "unit")),
		ReceivedDay:    intField(row, payload, 0, 0, 31, "receivedDay", "payDay", "dayReceived"),
		Currency:       currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		Note:           stringField(row, payload, "", "note", "notes", "memo"),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func Incomes(rows []RawRecord, nctx Context) []entities.IncomeSource {
	out := make([]entities.IncomeSource, 0, len(rows))
	for _, row := range rows {
		out = append(out, Income(row, nctx))
	}
	return out
}

// Bill normalizes one recurring bill row. A missing due day lands on the
// first of the month.
func Bill(row RawRecord, nctx Context) entities.Bill {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.Bill{
		ID:             recordID(row, payload),
		Name:           stringField(row, payload, "", "name", "label", "title"),
		Category:       strings.ToLower(stringField(row, payload, "", "category", "group", "bucket")),
		Amount:         floatField(row, payload, 0, "amount", "value", "monthlyAmount"),
		Cadence:        entities.ParseCadence(stringField(row, payload, "", "cadence", "frequency", "schedule")),
		CustomInterval: intField(row, payload, 1, 1, 365, "customInterval", "intervalCount", "every"),
		CustomUnit:     strings.ToLower(stringField(row, payload, "week", "customUnit", "intervalUnit", "unit")),
		DueDay:         intField(row, payload, 1, 1, 31, "dueDay", "dayDue", "billingDay"),
		Currency:       currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		Note:           stringField(row, payload, "", "note", "notes", "memo"),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func Bills(rows []RawRecord, nctx Context) []entities.Bill {
	out := make([]entities.Bill, 0, len(rows))
	for _, row := range rows {
		out = append(out, Bill(row, nctx))
	}
	return out
}
