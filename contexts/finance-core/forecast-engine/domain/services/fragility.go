package services

import (
	"fmt"
	"math"
	"sort"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

const (
	dueClusterWeight = 0.45
	lowBufferWeight  = 0.55
	earlyMonthCutoff = 10
	maxDueRows       = 12
)

// FragilityInput carries the collections the scorer reads. LiquidCash and
// MonthlyExpenses come from the baseline so the two risk axes stay
// consistent with the rest of the forecast.
type FragilityInput struct {
	Incomes         []entities.IncomeSource
	Bills           []entities.Bill
	Cards           []entities.CardAccount
	Loans           []entities.LoanAccount
	LiquidCash      float64
	MonthlyExpenses float64
}

// ScoreFragility composes a 0-100 short-term cash risk score from due-date
// clustering and liquidity-buffer depth. An income received in the first
// ten days discounts the clustering axis, since cash arrives before the
// obligations land.
func ScoreFragility(input FragilityInput) entities.FragilityResult {
	rows := dueRows(input)

	var clusterTotal, clusterEarly float64
	for _, row := range rows {
		clusterTotal += row.Amount
		if row.Day <= earlyMonthCutoff {
			clusterEarly += row.Amount
		}
	}
	clusterShare := 0.0
	if clusterTotal > 0 {
		clusterShare = clusterEarly / clusterTotal
	}
	if hasEarlyIncome(input.Incomes) {
		clusterShare *= 0.7
	}
	dueClusterScore := int(math.Round(math.Min(100, clusterShare*100)))

	dailyOutflow := 0.0
	if input.MonthlyExpenses > 0 {
		dailyOutflow = input.MonthlyExpenses / 30.0
	}
	bufferDays := 0.0
	if dailyOutflow > 0 {
		bufferDays = input.LiquidCash / dailyOutflow
	}
	lowBufferScore := bufferScore(dailyOutflow, bufferDays)

	score := int(math.Round(float64(dueClusterScore)*dueClusterWeight + float64(lowBufferScore)*lowBufferWeight))
	level := entities.FragilityLevelLow
	switch {
	case score >= 75:
		level = entities.FragilityLevelHigh
	case score >= 45:
		level = entities.FragilityLevelMedium
	}

	var insights []string
	if dueClusterScore >= 55 {
		insights = append(insights, "Most obligations land before the 10th; shifting a due date later would spread the load.")
	}
	if bufferDays > 0 && bufferDays < 14 {
		insights = append(insights, fmt.Sprintf("Cash buffer covers ~%d days of typical spending.", int(math.Round(bufferDays))))
	}
	if len(input.Incomes) == 0 {
		insights = append(insights, "No income schedule recorded; pay-date timing cannot be assessed.")
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	if len(rows) > maxDueRows {
		rows = rows[:maxDueRows]
	}

	return entities.FragilityResult{
		Score:           score,
		Level:           level,
		DueClusterScore: dueClusterScore,
		LowBufferScore:  lowBufferScore,
		LowBufferDays:   bufferDays,
		DueRows:         rows,
		Insights:        insights,
	}
}

func dueRows(input FragilityInput) []entities.DueRow {
	rows := make([]entities.DueRow, 0, len(input.Bills)+len(input.Cards)+len(input.Loans))
	for _, bill := range input.Bills {
		rows = append(rows, entities.DueRow{
			Name:   bill.Name,
			Kind:   "bill",
			Day:    clampDueDay(bill.DueDay, 1),
			Amount: BillMonthly(bill),
		})
	}
	for _, card := range input.Cards {
		rows = append(rows, entities.DueRow{
			Name:   card.Name,
			Kind:   "card",
			Day:    clampDueDay(card.DueDay, 20),
			Amount: nonNegative(card.MinimumPayment),
		})
	}
	for _, loan := range input.Loans {
		rows = append(rows, entities.DueRow{
			Name:   loan.Name,
			Kind:   "loan",
			Day:    clampDueDay(loan.DueDay, 15),
			Amount: nonNegative(loan.MinimumPayment),
		})
	}
	return rows
}

func clampDueDay(day, fallback int) int {
	if day < 1 {
		return fallback
	}
	if day > 31 {
		return 31
	}
	return day
}

// hasEarlyIncome reports whether any income lands in the first ten days.
// ReceivedDay 0 means the pay day is unknown and never counts as early.
func hasEarlyIncome(incomes []entities.IncomeSource) bool {
	for _, income := range incomes {
		if income.ReceivedDay >= 1 && income.ReceivedDay <= earlyMonthCutoff {
			return true
		}
	}
	return false
}

func bufferScore(dailyOutflow, bufferDays float64) int {
	if dailyOutflow <= 0 {
		return 0
	}
	switch {
	case bufferDays < 7:
		return 95
	case bufferDays < 14:
		return 70
	case bufferDays < 30:
		return 45
	default:
		return 20
	}
}
