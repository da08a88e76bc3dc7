package services

import (
	"sort"
	"strings"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

// BaselineInput carries the normalized collections the baseline is built
// from. Snapshot order does not matter; the aggregator picks the most
// recently updated one itself.
type BaselineInput struct {
	BaseCurrency string
	Incomes      []entities.IncomeSource
	Bills        []entities.Bill
	Cards        []entities.CardAccount
	Loans        []entities.LoanAccount
	Accounts     []entities.Account
	Snapshots    []entities.MonthCloseSnapshot
}

func nonNegative(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}

func isLiquidAccount(account entities.Account) bool {
	if account.Liquid {
		return true
	}
	kind := strings.ToLower(account.Type)
	return strings.Contains(kind, "checking") || strings.Contains(kind, "savings")
}

func isAssetAccount(account entities.Account) bool {
	kind := strings.ToLower(account.Type)
	return kind != "debt" && kind != "credit"
}

// ComputeBaseline aggregates the live schedules into one monthly cashflow
// and net-worth snapshot.
//
// The override step is deliberately asymmetric: the most recently updated
// month-close snapshot replaces netWorth and liabilities only. Snapshots
// are authoritative for point-in-time balance-sheet reconciliation but not
// for live recurring schedules, so income, expenses, and assets always stay
// schedule-derived.
func ComputeBaseline(input BaselineInput) entities.CoreBaseline {
	baseline := entities.CoreBaseline{BaseCurrency: input.BaseCurrency}

	for _, income := range input.Incomes {
		baseline.MonthlyIncome += IncomeMonthly(income)
	}
	for _, bill := range input.Bills {
		baseline.MonthlyBills += BillMonthly(bill)
	}
	for _, card := range input.Cards {
		baseline.MonthlyCardMinimums += nonNegative(card.MinimumPayment)
		baseline.Liabilities += nonNegative(card.UsedLimit)
	}
	for _, loan := range input.Loans {
		baseline.MonthlyLoanMinimums += nonNegative(loan.MinimumPayment)
		baseline.Liabilities += nonNegative(loan.Balance)
	}
	for _, account := range input.Accounts {
		if isLiquidAccount(account) {
			baseline.LiquidCash += nonNegative(account.Balance)
		}
		if isAssetAccount(account) {
			baseline.TotalAssets += nonNegative(account.Balance)
		}
	}

	baseline.MonthlyExpenses = baseline.MonthlyBills + baseline.MonthlyCardMinimums + baseline.MonthlyLoanMinimums
	baseline.MonthlyNet = baseline.MonthlyIncome - baseline.MonthlyExpenses
	baseline.NetWorth = baseline.TotalAssets - baseline.Liabilities

	if snapshot, ok := latestSnapshot(input.Snapshots); ok {
		if snapshot.Summary.NetWorth != nil {
			baseline.NetWorth = *snapshot.Summary.NetWorth
		}
		if snapshot.Summary.TotalLiabilities != nil {
			baseline.Liabilities = *snapshot.Summary.TotalLiabilities
		}
	}

	return baseline
}

func latestSnapshot(snapshots []entities.MonthCloseSnapshot) (entities.MonthCloseSnapshot, bool) {
	if len(snapshots) == 0 {
		return entities.MonthCloseSnapshot{}, false
	}
	ordered := make([]entities.MonthCloseSnapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return recencyKey(ordered[i].UpdatedAt, ordered[i].CreatedAt) > recencyKey(ordered[j].UpdatedAt, ordered[j].CreatedAt)
	})
	return ordered[0], true
}
