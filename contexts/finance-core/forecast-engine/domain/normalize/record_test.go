package normalize

import (
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

var testCtx = Context{
	BaseCurrency: "USD",
	Now:          time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC),
}

func TestIsCycleKey(t *testing.T) {
	if !IsCycleKey("2026-08") {
		t.Fatalf("expected 2026-08 accepted")
	}
	if !IsCycleKey(" 2026-12 ") {
		t.Fatalf("expected surrounding whitespace tolerated")
	}
	if IsCycleKey("2026-13") {
		t.Fatalf("expected month 13 rejected")
	}
	if IsCycleKey("2026-00") {
		t.Fatalf("expected month 00 rejected")
	}
	if IsCycleKey("2026-1") {
		t.Fatalf("expected unpadded month rejected")
	}
	if IsCycleKey("") {
		t.Fatalf("expected empty string rejected")
	}
}

func TestRowAliasBeatsPayload(t *testing.T) {
	income := Income(RawRecord{
		"id":          "inc-1",
		"value":       float64(70),
		"payloadJson": `{"amount": 99, "name": "Legacy salary"}`,
	}, testCtx)

	if income.Amount != 70 {
		t.Fatalf("expected row alias to beat payload, got %v", income.Amount)
	}
	if income.Name != "Legacy salary" {
		t.Fatalf("expected payload to fill missing fields, got %q", income.Name)
	}
}

func TestMalformedPayloadDegradesToDefaults(t *testing.T) {
	income := Income(RawRecord{
		"id":          "inc-2",
		"amount":      "not-a-number",
		"payloadJson": "{broken",
	}, testCtx)

	if income.Amount != 0 {
		t.Fatalf("expected unparseable amount to fall back to zero, got %v", income.Amount)
	}
	if income.Currency != "USD" {
		t.Fatalf("expected base currency fallback, got %s", income.Currency)
	}
	if income.Cadence != entities.CadenceMonthly {
		t.Fatalf("expected monthly cadence default, got %s", income.Cadence)
	}
}

func TestNumericStringsCoerce(t *testing.T) {
	income := Income(RawRecord{"id": "inc-3", "amount": "2500.50", "receivedDay": "5"}, testCtx)

	if income.Amount != 2500.50 {
		t.Fatalf("expected string amount coerced, got %v", income.Amount)
	}
	if income.ReceivedDay != 5 {
		t.Fatalf("expected string day coerced, got %d", income.ReceivedDay)
	}
}

func TestBoolFlagsCoerce(t *testing.T) {
	envelope := Envelope(RawRecord{"id": "env-1", "cycleKey": "2026-08", "category": "groceries", "rollover": "yes"}, testCtx)
	if !envelope.Rollover {
		t.Fatalf("expected yes coerced to true")
	}

	envelope = Envelope(RawRecord{"id": "env-2", "cycleKey": "2026-08", "category": "dining", "rollover": float64(0)}, testCtx)
	if envelope.Rollover {
		t.Fatalf("expected numeric zero coerced to false")
	}

	envelope = Envelope(RawRecord{"id": "env-3", "cycleKey": "2026-08", "category": "transit", "rollover": "sometimes"}, testCtx)
	if envelope.Rollover {
		t.Fatalf("expected unrecognized string to keep the default")
	}
}
