package normalize

import (
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// Envelope normalizes one envelope budget row. The cycle key falls back to
// the cycle of Context.Now; category comparison is case-insensitive
// throughout, so it is folded here.
func Envelope(row RawRecord, nctx Context) entities.EnvelopeBudget {
	payload := payloadObject(row)
	createdAt, updatedAt := timestamps(row, payload)
	cycleKey := cycleKeyField(row, payload, "cycleKey", "cycle", "month")
	if cycleKey == "" {
		cycleKey = nctx.Now.Format("2006-01")
	}
	envelope := entities.EnvelopeBudget{
		ID:              recordID(row, payload),
		CycleKey:        cycleKey,
		Category:        strings.ToLower(stringField(row, payload, "", "category", "group", "bucket")),
		PlannedAmount:   floatField(row, payload, 0, "plannedAmount", "planned", "budget"),
		ActualAmount:    floatField(row, payload, 0, "actualAmount", "actual", "spent"),
		CarryoverAmount: floatField(row, payload, 0, "carryoverAmount", "carryover", "rolloverAmount"),
		Ownership:       entities.ParseOwnership(stringField(row, payload, "", "ownership", "ownerScope", "scope")),
		Status:          entities.ParseEnvelopeStatus(stringField(row, payload, "", "status", "state")),
		Rollover:        boolField(row, payload, false, "rollover", "rolloverEnabled", "carryForward"),
		Currency:        currencyField(row, payload, nctx.BaseCurrency, "currency", "currencyCode"),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	envelope.RefreshDerived()
	return envelope
}

func Envelopes(rows []RawRecord, nctx Context) []entities.EnvelopeBudget {
	out := make([]entities.EnvelopeBudget, 0, len(rows))
	for _, row := range rows {
		out = append(out, Envelope(row, nctx))
	}
	return out
}

// Currency normalizes one currency catalog row.
func Currency(row RawRecord, nctx Context) entities.CurrencyInfo {
	payload := payloadObject(row)
	return entities.CurrencyInfo{
		Code:   currencyField(row, payload, nctx.BaseCurrency, "code", "currencyCode", "currency"),
		Symbol: stringField(row, payload, "", "symbol", "sign"),
		Name:   stringField(row, payload, "", "name", "label"),
	}
}

func Currencies(rows []RawRecord, nctx Context) []entities.CurrencyInfo {
	out := make([]entities.CurrencyInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, Currency(row, nctx))
	}
	return out
}
