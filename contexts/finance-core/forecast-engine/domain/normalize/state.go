package normalize

import (
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// FinanceState normalizes one saved finance state row. Zero figures keep
// their zero here; projection applies the live-baseline fallbacks.
func FinanceState(row RawRecord, nctx Context) entities.FinanceState {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.FinanceState{
		ID:                recordID(row, payload),
		Name:              stringField(row, payload, "", "name", "label", "title"),
		Kind:              entities.ParseStateKind(stringField(row, payload, "", "stateKind", "kind")),
		HorizonMonths:     intField(row, payload, 12, 1, 240, "horizonMonths", "horizon"),
		MonthlyIncome:     floatField(row, payload, 0, "monthlyIncome", "income"),
		MonthlyExpenses:   floatField(row, payload, 0, "monthlyExpenses", "expenses"),
		LiquidCash:        floatField(row, payload, 0, "liquidCash", "cash", "liquid"),
		Assets:            floatField(row, payload, 0, "assets", "totalAssets"),
		Liabilities:       floatField(row, payload, 0, "liabilities", "totalLiabilities", "debt"),
		StartingNetWorth:  floatField(row, payload, 0, "startingNetWorth", "netWorth"),
		ExpectedReturnPct: floatField(row, payload, 0, "expectedReturnPct", "expectedReturn", "returnPct"),
		InflationPct:      floatField(row, payload, 0, "inflationPct", "inflation"),
		Currency:          currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		Note:              stringField(row, payload, "", "note", "notes", "memo"),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func FinanceStates(rows []RawRecord, nctx Context) []entities.FinanceState {
	out := make([]entities.FinanceState, 0, len(rows))
	for _, row := range rows {
		out = append(out, FinanceState(row, nctx))
	}
	return out
}
