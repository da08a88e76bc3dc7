package services

import (
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

const (
	weeksPerMonth = 4.34524
	daysPerMonth  = 30.4375
)

// MonthlyEquivalent converts an amount on the given cadence to its
// per-month figure. Custom cadences match the unit by prefix, so "days",
// "monthly", and "years" all resolve; anything unrecognized counts as
// weeks. The interval is clamped to at least one.
func MonthlyEquivalent(amount float64, cadence entities.Cadence, customInterval int, customUnit string) float64 {
	switch cadence {
	case entities.CadenceWeekly:
		return amount * 52.0 / 12.0
	case entities.CadenceBiweekly:
		return amount * 26.0 / 12.0
	case entities.CadenceQuarterly:
		return amount / 3.0
	case entities.CadenceYearly:
		return amount / 12.0
	case entities.CadenceCustom:
		interval := float64(customInterval)
		if interval < 1 {
			interval = 1
		}
		unit := strings.ToLower(strings.TrimSpace(customUnit))
		switch {
		case strings.HasPrefix(unit, "day"):
			return amount * daysPerMonth / interval
		case strings.HasPrefix(unit, "month"):
			return amount / interval
		case strings.HasPrefix(unit, "year"):
			return amount / (12.0 * interval)
		default:
			return amount * weeksPerMonth / interval
		}
	default:
		return amount
	}
}

// IncomeMonthly is the per-month equivalent of one income source.
func IncomeMonthly(income entities.IncomeSource) float64 {
	return MonthlyEquivalent(income.Amount, income.Cadence, income.CustomInterval, income.CustomUnit)
}

// BillMonthly is the per-month equivalent of one bill.
func BillMonthly(bill entities.Bill) float64 {
	return MonthlyEquivalent(bill.Amount, bill.Cadence, bill.CustomInterval, bill.CustomUnit)
}
