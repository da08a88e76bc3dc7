package normalize

import (
	"testing"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestIncomeNormalizesFullRow(t *testing.T) {
	income := Income(RawRecord{
		"id":          "inc-1",
		"name":        "Salary",
		"amount":      float64(2500),
		"cadence":     "biweekly",
		"receivedDay": float64(5),
		"currency":    "eur",
		"note":        "after tax",
		"createdAt":   float64(1700000000000),
		"updatedAt":   float64(1700000005000),
	}, testCtx)

	if income.ID != "inc-1" || income.Name != "Salary" {
		t.Fatalf("expected identity fields mapped, got %+v", income)
	}
	if income.Amount != 2500 {
		t.Fatalf("expected amount 2500, got %v", income.Amount)
	}
	if income.Cadence != entities.CadenceBiweekly {
		t.Fatalf("expected biweekly cadence, got %s", income.Cadence)
	}
	if income.ReceivedDay != 5 {
		t.Fatalf("expected received day 5, got %d", income.ReceivedDay)
	}
	if income.Currency != "EUR" {
		t.Fatalf("expected currency folded to EUR, got %s", income.Currency)
	}
	if income.Note != "after tax" {
		t.Fatalf("expected note mapped, got %q", income.Note)
	}
	if income.CreatedAt != 1700000000000 || income.UpdatedAt != 1700000005000 {
		t.Fatalf("expected timestamps mapped, got %d %d", income.CreatedAt, income.UpdatedAt)
	}
}

func TestIncomeDefaults(t *testing.T) {
	income := Income(RawRecord{"id": "inc-2"}, testCtx)

	if income.Cadence != entities.CadenceMonthly {
		t.Fatalf("expected monthly cadence default, got %s", income.Cadence)
	}
	if income.CustomInterval != 1 || income.CustomUnit != "week" {
		t.Fatalf("expected custom schedule defaults, got %d %s", income.CustomInterval, income.CustomUnit)
	}
	if income.ReceivedDay != 0 {
		t.Fatalf("expected unknown pay day to stay zero, got %d", income.ReceivedDay)
	}
	if income.Currency != "USD" {
		t.Fatalf("expected base currency fallback, got %s", income.Currency)
	}
}

func TestIncomeCadenceAliases(t *testing.T) {
	if got := Income(RawRecord{"id": "a", "cadence": "fortnightly"}, testCtx).Cadence; got != entities.CadenceBiweekly {
		t.Fatalf("expected fortnightly to parse as biweekly, got %s", got)
	}
	if got := Income(RawRecord{"id": "b", "frequency": "annual"}, testCtx).Cadence; got != entities.CadenceYearly {
		t.Fatalf("expected annual to parse as yearly, got %s", got)
	}
}

func TestIncomeNormalizationIsAFixedPoint(t *testing.T) {
	first := Income(RawRecord{
		"id":        "inc-3",
		"source":    "Side gig",
		"value":     "350.50",
		"frequency": "fortnightly",
		"payDay":    float64(9),
		"currency":  "gbp",
		"createdAt": float64(1700000000000),
	}, testCtx)

	second := Income(RawRecord{
		"id":             first.ID,
		"name":           first.Name,
		"amount":         first.Amount,
		"cadence":        string(first.Cadence),
		"customInterval": first.CustomInterval,
		"customUnit":     first.CustomUnit,
		"receivedDay":    first.ReceivedDay,
		"currency":       first.Currency,
		"note":           first.Note,
		"createdAt":      first.CreatedAt,
		"updatedAt":      first.UpdatedAt,
	}, testCtx)

	if first != second {
		t.Fatalf("expected an already-normalized row to map to itself, got %+v then %+v", first, second)
	}
}

func TestBillDefaultsAndCategoryFolding(t *testing.T) {
	bill := Bill(RawRecord{"id": "bill-1", "name": "Rent", "category": "Housing", "amount": float64(1200)}, testCtx)

	if bill.DueDay != 1 {
		t.Fatalf("expected due day default 1, got %d", bill.DueDay)
	}
	if bill.Category != "housing" {
		t.Fatalf("expected category folded to lower case, got %s", bill.Category)
	}
	if bill.Cadence != entities.CadenceMonthly {
		t.Fatalf("expected monthly cadence default, got %s", bill.Cadence)
	}
}

func TestBillClampsDueDay(t *testing.T) {
	bill := Bill(RawRecord{"id": "bill-2", "dueDay": float64(45)}, testCtx)
	if bill.DueDay != 31 {
		t.Fatalf("expected due day clamped to 31, got %d", bill.DueDay)
	}
}

func TestTimestampsFallBackToCreatedAt(t *testing.T) {
	bill := Bill(RawRecord{"id": "bill-3", "createdAt": float64(1700000000000)}, testCtx)
	if bill.UpdatedAt != 1700000000000 {
		t.Fatalf("expected updatedAt to fall back to createdAt, got %d", bill.UpdatedAt)
	}
}
