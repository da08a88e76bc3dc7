package entities

import "strings"

type EnvelopeStatus string

const (
	EnvelopeStatusDraft  EnvelopeStatus = "draft"
	EnvelopeStatusFunded EnvelopeStatus = "funded"
	EnvelopeStatusAtRisk EnvelopeStatus = "at_risk"
	EnvelopeStatusOver   EnvelopeStatus = "over"
)

// ParseEnvelopeStatus defaults unrecognized values to draft.
func ParseEnvelopeStatus(value string) EnvelopeStatus {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "funded":
		return EnvelopeStatusFunded
	case "at_risk", "at-risk":
		return EnvelopeStatusAtRisk
	case "over", "overspent":
		return EnvelopeStatusOver
	default:
		return EnvelopeStatusDraft
	}
}

// EnvelopeBudget tracks planned versus actual spend for one category within
// one cycle. CarryoverAmount keeps its sign; RemainingAmount and
// UtilizationPct are derived via RefreshDerived.
type EnvelopeBudget struct {
	ID              string
	CycleKey        string
	Category        string
	PlannedAmount   float64
	ActualAmount    float64
	CarryoverAmount float64
	RemainingAmount float64
	UtilizationPct  float64
	Ownership       Ownership
	Status          EnvelopeStatus
	Rollover        bool
	Currency        string
	CreatedAt       int64
	UpdatedAt       int64
}

// RefreshDerived recomputes remaining amount and utilization. A non-positive
// funding base (planned plus carryover) yields zero utilization.
func (e *EnvelopeBudget) RefreshDerived() {
	e.RemainingAmount = e.PlannedAmount + e.CarryoverAmount - e.ActualAmount
	base := e.PlannedAmount + e.CarryoverAmount
	if base > 0 {
		e.UtilizationPct = e.ActualAmount / base
	} else {
		e.UtilizationPct = 0
	}
}

// CurrencyInfo is one row of the currency catalog.
type CurrencyInfo struct {
	Code   string
	Symbol string
	Name   string
}
