package entities

import "strings"

type StateKind string

const (
	StateKindCurrent  StateKind = "current"
	StateKindTarget   StateKind = "target"
	StateKindScenario StateKind = "scenario"
)

// ParseStateKind defaults unrecognized values to scenario.
func ParseStateKind(value string) StateKind {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "current", "actual":
		return StateKindCurrent
	case "target", "goal":
		return StateKindTarget
	default:
		return StateKindScenario
	}
}

// FinanceState is a saved what-if snapshot of monthly flows and balances.
type FinanceState struct {
	ID                string
	Name              string
	Kind              StateKind
	HorizonMonths     int
	MonthlyIncome     float64
	MonthlyExpenses   float64
	LiquidCash        float64
	Assets            float64
	Liabilities       float64
	StartingNetWorth  float64
	ExpectedReturnPct float64
	InflationPct      float64
	Currency          string
	Note              string
	CreatedAt         int64
	UpdatedAt         int64
}
