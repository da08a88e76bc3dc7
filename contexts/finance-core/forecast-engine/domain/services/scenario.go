package services

import (
	"fmt"
	"math"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

const coreScenarioHorizon = 12

// CoreScenario is the synthetic projection computed straight from the
// baseline, always emitted as the "no plan selected" comparison point.
// Runway here divides the current liquid cash, not the projected figure.
func CoreScenario(baseline entities.CoreBaseline) entities.ForecastScenario {
	net := baseline.MonthlyNet
	projectedLiquid := nonNegative(baseline.LiquidCash + net*coreScenarioHorizon)
	return entities.ForecastScenario{
		ID:                  "core-live",
		Label:               "Live baseline",
		ScenarioLabel:       inferScenarioLabel(net, baseline.MonthlyExpenses),
		Source:              entities.ScenarioSourceCoreLive,
		HorizonMonths:       coreScenarioHorizon,
		MonthlyIncome:       baseline.MonthlyIncome,
		MonthlyExpenses:     baseline.MonthlyExpenses,
		MonthlyNet:          net,
		ProjectedNetWorth:   baseline.NetWorth + net*coreScenarioHorizon,
		ProjectedLiquidCash: projectedLiquid,
		RunwayMonths:        runwayMonths(baseline.LiquidCash, baseline.MonthlyExpenses),
		Note:                "Projected from current recurring schedules",
	}
}

// FromPlanningVersion projects a saved plan against the baseline. Planned
// figures fall back to the baseline only when zero, matching how partially
// filled plans behave: a plan that only sets expenses still inherits the
// live income.
func FromPlanningVersion(version entities.PlanningVersion, baseline entities.CoreBaseline) entities.ForecastScenario {
	horizon := version.HorizonMonths
	if horizon < 1 {
		horizon = 1
	}

	income := fallbackNonZero(version.PlannedIncome, baseline.MonthlyIncome)
	expenses := fallbackNonZero(version.PlannedExpenses, baseline.MonthlyExpenses)
	net := version.PlannedNet
	if net == 0 || math.IsNaN(net) || math.IsInf(net, 0) {
		net = income - expenses
	}

	projectedLiquid := nonNegative(baseline.LiquidCash + net*float64(horizon))
	label := version.Name
	if label == "" {
		label = version.VersionKey
	}
	if label == "" {
		label = "Plan"
	}
	note := version.Note
	if note == "" {
		note = fmt.Sprintf("%d open planning tasks", version.TaskCounts.Open)
	}

	return entities.ForecastScenario{
		ID:                  "plan-" + version.ID,
		Label:               label,
		ScenarioLabel:       scenarioTypeLabel(version.ScenarioType),
		Source:              entities.ScenarioSourcePlanning,
		HorizonMonths:       horizon,
		MonthlyIncome:       income,
		MonthlyExpenses:     expenses,
		MonthlyNet:          net,
		ProjectedNetWorth:   baseline.NetWorth + net*float64(horizon),
		ProjectedLiquidCash: projectedLiquid,
		RunwayMonths:        runwayMonths(projectedLiquid, expenses),
		Note:                note,
		LinkedID:            version.ID,
		RecurringSummary:    recurringSummary(version.Recurring),
	}
}

// FromFinanceState projects a saved what-if state against the baseline.
// Zero state figures inherit the live baseline the same way planned figures
// do, and a real-return growth term compounds the resolved assets over the
// horizon.
func FromFinanceState(state entities.FinanceState, baseline entities.CoreBaseline) entities.ForecastScenario {
	horizon := state.HorizonMonths
	if horizon < 1 {
		horizon = 1
	}

	income := fallbackNonZero(state.MonthlyIncome, baseline.MonthlyIncome)
	expenses := fallbackNonZero(state.MonthlyExpenses, baseline.MonthlyExpenses)
	liquid := fallbackNonZero(state.LiquidCash, baseline.LiquidCash)
	assets := fallbackNonZero(state.Assets, baseline.TotalAssets)
	liabilities := fallbackNonZero(state.Liabilities, baseline.Liabilities)
	net := income - expenses

	startingNetWorth := state.StartingNetWorth
	if startingNetWorth == 0 {
		startingNetWorth = assets - liabilities
	}
	growth := assets * ((state.ExpectedReturnPct - state.InflationPct) / 100.0) * (float64(horizon) / 12.0)
	projectedLiquid := nonNegative(liquid + net*float64(horizon))

	label := state.Name
	if label == "" {
		label = stateKindLabel(state.Kind)
	}

	return entities.ForecastScenario{
		ID:                  "state-" + state.ID,
		Label:               label,
		ScenarioLabel:       inferScenarioLabel(net, expenses),
		Source:              entities.ScenarioSourceFinanceState,
		HorizonMonths:       horizon,
		MonthlyIncome:       income,
		MonthlyExpenses:     expenses,
		MonthlyNet:          net,
		ProjectedNetWorth:   startingNetWorth + net*float64(horizon) + growth,
		ProjectedLiquidCash: projectedLiquid,
		RunwayMonths:        runwayMonths(projectedLiquid, expenses),
		ExpectedReturnPct:   state.ExpectedReturnPct,
		InflationPct:        state.InflationPct,
		Note:                state.Note,
		LinkedID:            state.ID,
	}
}

func fallbackNonZero(value, fallback float64) float64 {
	if value != 0 {
		return value
	}
	return fallback
}

func runwayMonths(liquid, expenses float64) *float64 {
	if expenses <= 0 {
		return nil
	}
	months := liquid / expenses
	return &months
}

// inferScenarioLabel classifies a projection by the sign and ratio of net
// to expenses. Float semantics are relied on at the zero-expense edge: a
// positive net over zero expenses reads as recovery.
func inferScenarioLabel(net, expenses float64) string {
	if net < 0 {
		return "Tight month"
	}
	if net/expenses >= 0.2 {
		return "Recovery month"
	}
	return "Normal month"
}

// scenarioTypeLabel maps the explicit plan scenario type to its display
// label. Finance states have no scenario type, so their label is inferred
// instead.
func scenarioTypeLabel(kind entities.ScenarioType) string {
	switch kind {
	case entities.ScenarioTypeDownside:
		return "Tight month"
	case entities.ScenarioTypeRecovery:
		return "Recovery month"
	case entities.ScenarioTypeStretch:
		return "Growth month"
	default:
		return "Normal month"
	}
}

func stateKindLabel(kind entities.StateKind) string {
	switch kind {
	case entities.StateKindCurrent:
		return "Current position"
	case entities.StateKindTarget:
		return "Target position"
	default:
		return "Scenario"
	}
}

func recurringSummary(recurring entities.RecurringScenario) string {
	if !recurring.Enabled {
		return ""
	}
	label := recurring.Name
	if label == "" {
		label = "Scenario"
	}
	summary := label + " repeats monthly"
	if recurring.IntervalMonths > 1 {
		summary = fmt.Sprintf("%s repeats every %d months", label, recurring.IntervalMonths)
	}
	if recurring.StartCycleKey != "" {
		summary += " from " + recurring.StartCycleKey
	}
	return summary
}
