package normalize

import (
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// Card normalizes one credit card row. Card payments default to the 20th
// when no due day is stored.
func Card(row RawRecord, nctx Context) entities.CardAccount {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.CardAccount{
		ID:             recordID(row, payload),
		Name:           stringField(row, payload, "", "name", "label", "issuer"),
		MinimumPayment: floatField(row, payload, 0, "minimumPayment", "minPayment", "minimumDue"),
		UsedLimit:      floatField(row, payload, 0, "usedLimit", "currentBalance", "usedAmount"),
		CreditLimit:    floatField(row, payload, 0, "creditLimit", "limit"),
		DueDay:         intField(row, payload, 20, 1, 31, "dueDay", "dayDue", "paymentDay"),
		Currency:       currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func Cards(rows []RawRecord, nctx Context) []entities.CardAccount {
	out := make([]entities.CardAccount, 0, len(rows))
	for _, row := range rows {
		out = append(out, Card(row, nctx))
	}
	return out
}

// Loan normalizes one loan row. Loan payments default to the 15th.
func Loan(row RawRecord, nctx Context) entities.LoanAccount {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.LoanAccount{
		ID:             recordID(row, payload),
		Name:           stringField(row, payload, "", "name", "label", "lender"),
		Balance:        floatField(row, payload, 0, "balance", "principal", "remainingBalance"),
		MinimumPayment: floatField(row, payload, 0, "minimumPayment", "minPayment", "monthlyPayment"),
		DueDay:         intField(row, payload, 15, 1, 31, "dueDay", "dayDue", "paymentDay"),
		Currency:       currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		Note:           stringField(row, payload, "", "note", "notes", "memo"),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func Loans(rows []RawRecord, nctx Context) []entities.LoanAccount {
	out := make([]entities.LoanAccount, 0, len(rows))
	for _, row := range rows {
		out = append(out, Loan(row, nctx))
	}
	return out
}

// Account normalizes one cash or asset account row. Balances keep their
// sign here; aggregation clamps where the metric calls for it.
func Account(row RawRecord, nctx Context) entities.Account {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	return entities.Account{
		ID:        recordID(row, payload),
		Name:      stringField(row, payload, "", "name", "label", "institution"),
		Type:      strings.ToLower(stringField(row, payload, "", "type", "accountType", "kind")),
		Balance:   floatField(row, payload, 0, "balance", "currentBalance", "value"),
		Liquid:    boolField(row, payload, false, "liquid", "isLiquid"),
		Currency:  currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func Accounts(rows []RawRecord, nctx Context) []entities.Account {
	out := make([]entities.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, Account(row, nctx))
	}
	return out
}

// snapshotMetric resolves a summary figure from the nested summary object
// first and the flat row second. Non-finite and absent values stay nil so
// the baseline can tell "zero" apart from "never recorded".
func snapshotMetric(summary map[string]any, row RawRecord, payload map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if value, ok := summary[key]; ok && value != nil {
			return finitePtr(value)
		}
	}
	if value, ok := lookup(row, payload, keys...); ok {
		return finitePtr(value)
	}
	return nil
}

// MonthSnapshot normalizes one closed-month snapshot row.
func MonthSnapshot(row RawRecord, nctx Context) entities.MonthCloseSnapshot {
	payload := payloadObject(row)
	summary := objectField(row, payload, "summary", "totals")
	createdAt, updatedAt := timestamps(row, payload)
	return entities.MonthCloseSnapshot{
		ID:       recordID(row, payload),
		CycleKey: cycleKeyField(row, payload, "cycleKey", "cycle", "month"),
		Summary: entities.SnapshotSummary{
			NetWorth:         snapshotMetric(summary, row, payload, "netWorth", "net_worth"),
			TotalAssets:      snapshotMetric(summary, row, payload, "totalAssets", "assets"),
			TotalLiabilities: snapshotMetric(summary, row, payload, "totalLiabilities", "liabilities"),
			MonthlyIncome:    snapshotMetric(summary, row, payload, "monthlyIncome", "income"),
			MonthlyExpenses:  snapshotMetric(summary, row, payload, "monthlyExpenses", "expenses"),
		},
		Note:      stringField(row, payload, "", "note", "notes", "memo"),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func MonthSnapshots(rows []RawRecord, nctx Context) []entities.MonthCloseSnapshot {
	out := make([]entities.MonthCloseSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, MonthSnapshot(row, nctx))
	}
	return out
}
