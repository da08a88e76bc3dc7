package services

import (
	"testing"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestClassifySpendingBuckets(t *testing.T) {
	lens := ClassifySpending(SpendingInput{
		Bills: []entities.Bill{
			{Name: "Rent", Category: "Rent", Amount: 1200, Cadence: entities.CadenceMonthly},
			{Name: "Council tax", Category: "council tax", Amount: 150, Cadence: entities.CadenceMonthly},
			{Name: "Gym", Category: "subscriptions", Amount: 40, Cadence: entities.CadenceMonthly},
		},
		Cards: []entities.CardAccount{{Name: "Visa", MinimumPayment: 50}},
		Loans: []entities.LoanAccount{{Name: "Car", MinimumPayment: 150}},
		Envelopes: []entities.EnvelopeBudget{
			{CycleKey: "2026-03", Category: "groceries", PlannedAmount: 400},
			{CycleKey: "2026-03", Category: "dining", PlannedAmount: 150},
			{CycleKey: "2026-03", Category: "refund glitch", PlannedAmount: -100},
			{CycleKey: "2026-02", Category: "groceries", PlannedAmount: 999},
		},
		CycleKey: "2026-03",
	})

	if lens.Fixed != 1550 {
		t.Fatalf("expected fixed 1550, got %v", lens.Fixed)
	}
	if lens.Variable != 40 {
		t.Fatalf("expected variable 40, got %v", lens.Variable)
	}
	if lens.Controllable != 550 {
		t.Fatalf("expected controllable 550, got %v", lens.Controllable)
	}
	if lens.Total != 2140 {
		t.Fatalf("expected total 2140, got %v", lens.Total)
	}
	if !almostEqual(lens.FixedShare+lens.VariableShare+lens.ControllableShare, 1) {
		t.Fatalf("expected shares to sum to one, got %v", lens.FixedShare+lens.VariableShare+lens.ControllableShare)
	}
}

func TestClassifySpendingEmptyWorkspace(t *testing.T) {
	lens := ClassifySpending(SpendingInput{CycleKey: "2026-03"})

	if lens.Total != 0 {
		t.Fatalf("expected zero total, got %v", lens.Total)
	}
	if lens.FixedShare != 0 || lens.VariableShare != 0 || lens.ControllableShare != 0 {
		t.Fatalf("expected zero shares without spend, got %+v", lens)
	}
}

func TestClassifySpendingDebtMinimumsAreFixed(t *testing.T) {
	lens := ClassifySpending(SpendingInput{
		Cards:    []entities.CardAccount{{Name: "Visa", MinimumPayment: 60}},
		Loans:    []entities.LoanAccount{{Name: "Car", MinimumPayment: -10}},
		CycleKey: "2026-03",
	})

	if lens.Fixed != 60 {
		t.Fatalf("expected negative minimum ignored and card minimum fixed, got %v", lens.Fixed)
	}
	if lens.Variable != 0 || lens.Controllable != 0 {
		t.Fatalf("expected no other buckets, got %+v", lens)
	}
}
