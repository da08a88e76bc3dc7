package services

import (
	"testing"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestScoreFragilityEarlyClusterAndThinBuffer(t *testing.T) {
	result := ScoreFragility(FragilityInput{
		Bills: []entities.Bill{
			{Name: "Rent", Amount: 1200, Cadence: entities.CadenceMonthly, DueDay: 1},
			{Name: "Utilities", Amount: 100, Cadence: entities.CadenceMonthly, DueDay: 5},
		},
		Cards: []entities.CardAccount{
			{Name: "Visa", MinimumPayment: 50, DueDay: 25},
		},
		Loans: []entities.LoanAccount{
			{Name: "Car loan", MinimumPayment: 150, DueDay: 15},
		},
		LiquidCash:      500,
		MonthlyExpenses: 1500,
	})

	if result.DueClusterScore != 87 {
		t.Fatalf("expected due cluster score 87, got %d", result.DueClusterScore)
	}
	if result.LowBufferScore != 70 {
		t.Fatalf("expected low buffer score 70, got %d", result.LowBufferScore)
	}
	if !almostEqual(result.LowBufferDays, 10) {
		t.Fatalf("expected 10 buffer days, got %v", result.LowBufferDays)
	}
	if result.Score != 78 {
		t.Fatalf("expected composite score 78, got %d", result.Score)
	}
	if result.Level != entities.FragilityLevelHigh {
		t.Fatalf("expected high fragility, got %s", result.Level)
	}
	if len(result.DueRows) != 4 {
		t.Fatalf("expected 4 due rows, got %d", len(result.DueRows))
	}
	for i, day := range []int{1, 5, 15, 25} {
		if result.DueRows[i].Day != day {
			t.Fatalf("expected due row %d on day %d, got %d", i, day, result.DueRows[i].Day)
		}
	}
	if len(result.Insights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(result.Insights))
	}
}

func TestScoreFragilityEarlyIncomeDiscountsCluster(t *testing.T) {
	input := FragilityInput{
		Incomes: []entities.IncomeSource{
			{Name: "Salary", Amount: 4000, Cadence: entities.CadenceMonthly, ReceivedDay: 1},
		},
		Bills: []entities.Bill{
			{Name: "Rent", Amount: 1200, Cadence: entities.CadenceMonthly, DueDay: 1},
			{Name: "Utilities", Amount: 100, Cadence: entities.CadenceMonthly, DueDay: 5},
		},
		Cards: []entities.CardAccount{
			{Name: "Visa", MinimumPayment: 50, DueDay: 25},
		},
		Loans: []entities.LoanAccount{
			{Name: "Car loan", MinimumPayment: 150, DueDay: 15},
		},
		LiquidCash:      3000,
		MonthlyExpenses: 1500,
	}

	result := ScoreFragility(input)

	if result.DueClusterScore != 61 {
		t.Fatalf("expected discounted cluster score 61, got %d", result.DueClusterScore)
	}
	if result.Level != entities.FragilityLevelLow {
		t.Fatalf("expected low fragility, got %s", result.Level)
	}

	input.Incomes[0].ReceivedDay = 0
	result = ScoreFragility(input)
	if result.DueClusterScore != 87 {
		t.Fatalf("expected unknown pay day to skip the discount, got %d", result.DueClusterScore)
	}
}

func TestScoreFragilityMediumFromBufferAlone(t *testing.T) {
	result := ScoreFragility(FragilityInput{
		Bills:           []entities.Bill{{Name: "Rent", Amount: 900, Cadence: entities.CadenceMonthly, DueDay: 25}},
		LiquidCash:      100,
		MonthlyExpenses: 900,
	})

	if result.DueClusterScore != 0 {
		t.Fatalf("expected no early cluster, got %d", result.DueClusterScore)
	}
	if result.LowBufferScore != 95 {
		t.Fatalf("expected low buffer score 95, got %d", result.LowBufferScore)
	}
	if result.Score != 52 {
		t.Fatalf("expected composite score 52, got %d", result.Score)
	}
	if result.Level != entities.FragilityLevelMedium {
		t.Fatalf("expected medium fragility, got %s", result.Level)
	}
}

func TestScoreFragilityDueDayFallbacks(t *testing.T) {
	result := ScoreFragility(FragilityInput{
		Bills: []entities.Bill{{Name: "Water", Amount: 30, Cadence: entities.CadenceMonthly}},
		Cards: []entities.CardAccount{{Name: "Amex", MinimumPayment: 40}},
		Loans: []entities.LoanAccount{{Name: "Loan", MinimumPayment: 80}},
	})

	if len(result.DueRows) != 3 {
		t.Fatalf("expected 3 due rows, got %d", len(result.DueRows))
	}
	if result.DueRows[0].Day != 1 || result.DueRows[0].Kind != "bill" {
		t.Fatalf("expected bill fallback day 1, got %+v", result.DueRows[0])
	}
	if result.DueRows[1].Day != 15 || result.DueRows[1].Kind != "loan" {
		t.Fatalf("expected loan fallback day 15, got %+v", result.DueRows[1])
	}
	if result.DueRows[2].Day != 20 || result.DueRows[2].Kind != "card" {
		t.Fatalf("expected card fallback day 20, got %+v", result.DueRows[2])
	}
}

func TestScoreFragilityCapsDueRows(t *testing.T) {
	bills := make([]entities.Bill, 0, 15)
	for day := 1; day <= 15; day++ {
		bills = append(bills, entities.Bill{Name: "Bill", Amount: 10, Cadence: entities.CadenceMonthly, DueDay: day})
	}

	result := ScoreFragility(FragilityInput{Bills: bills})

	if len(result.DueRows) != 12 {
		t.Fatalf("expected due rows capped at 12, got %d", len(result.DueRows))
	}
	if result.LowBufferScore != 0 {
		t.Fatalf("expected zero buffer score without outflow, got %d", result.LowBufferScore)
	}
}

func TestScoreFragilityEmptyWorkspace(t *testing.T) {
	result := ScoreFragility(FragilityInput{})

	if result.Score != 0 {
		t.Fatalf("expected zero score, got %d", result.Score)
	}
	if result.Level != entities.FragilityLevelLow {
		t.Fatalf("expected low fragility, got %s", result.Level)
	}
	if len(result.DueRows) != 0 {
		t.Fatalf("expected no due rows, got %d", len(result.DueRows))
	}
}

func TestScoreFragilityMonotonicity(t *testing.T) {
	base := FragilityInput{
		Bills: []entities.Bill{
			{Name: "Rent", Amount: 800, Cadence: entities.CadenceMonthly, DueDay: 3},
			{Name: "Internet", Amount: 200, Cadence: entities.CadenceMonthly, DueDay: 20},
		},
		LiquidCash:      2000,
		MonthlyExpenses: 1000,
	}

	previous := ScoreFragility(base).LowBufferScore
	for _, liquid := range []float64{900, 400, 150, 0} {
		input := base
		input.LiquidCash = liquid
		score := ScoreFragility(input).LowBufferScore
		if score < previous {
			t.Fatalf("buffer score dropped from %d to %d at liquid %v", previous, score, liquid)
		}
		previous = score
	}

	spread := ScoreFragility(base).DueClusterScore
	shifted := base
	shifted.Bills = []entities.Bill{
		{Name: "Rent", Amount: 800, Cadence: entities.CadenceMonthly, DueDay: 3},
		{Name: "Internet", Amount: 200, Cadence: entities.CadenceMonthly, DueDay: 5},
	}
	if clustered := ScoreFragility(shifted).DueClusterScore; clustered < spread {
		t.Fatalf("cluster score dropped from %d to %d after pulling a bill early", spread, clustered)
	}
}
