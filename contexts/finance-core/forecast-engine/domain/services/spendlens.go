package services

import (
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// fixedCategoryKeywords mark a bill as structurally fixed. Matching is a
// case-insensitive substring test, so "Council Tax" and "home insurance"
// both classify as fixed.
var fixedCategoryKeywords = []string{"rent", "mortgage", "insurance", "tax", "council", "utilities"}

// SpendingInput carries the collections the classifier reads. Envelopes
// outside the selected cycle are ignored.
type SpendingInput struct {
	Bills     []entities.Bill
	Cards     []entities.CardAccount
	Loans     []entities.LoanAccount
	Envelopes []entities.EnvelopeBudget
	CycleKey  string
}

// ClassifySpending splits monthly spend into fixed, variable, and
// controllable buckets. Debt minimums always count as fixed; envelope
// allocations for the selected cycle are the controllable bucket.
func ClassifySpending(input SpendingInput) entities.SpendingLens {
	var lens entities.SpendingLens

	for _, bill := range input.Bills {
		monthly := BillMonthly(bill)
		if isFixedCategory(bill.Category) {
			lens.Fixed += monthly
		} else {
			lens.Variable += monthly
		}
	}
	for _, card := range input.Cards {
		lens.Fixed += nonNegative(card.MinimumPayment)
	}
	for _, loan := range input.Loans {
		lens.Fixed += nonNegative(loan.MinimumPayment)
	}
	for _, envelope := range input.Envelopes {
		if envelope.CycleKey != input.CycleKey {
			continue
		}
		lens.Controllable += nonNegative(envelope.PlannedAmount)
	}

	lens.Total = lens.Fixed + lens.Variable + lens.Controllable
	if lens.Total > 0 {
		lens.FixedShare = lens.Fixed / lens.Total
		lens.VariableShare = lens.Variable / lens.Total
		lens.ControllableShare = lens.Controllable / lens.Total
	}
	return lens
}

func isFixedCategory(category string) bool {
	lowered := strings.ToLower(category)
	for _, keyword := range fixedCategoryKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
