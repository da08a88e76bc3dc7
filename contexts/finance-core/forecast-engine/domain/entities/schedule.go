package entities

import "strings"

// Cadence describes how often a recurring amount lands.
type Cadence string

const (
	CadenceMonthly   Cadence = "monthly"
	CadenceWeekly    Cadence = "weekly"
	CadenceBiweekly  Cadence = "biweekly"
	CadenceQuarterly Cadence = "quarterly"
	CadenceYearly    Cadence = "yearly"
	CadenceCustom    Cadence = "custom"
)

// ParseCadence coerces free-form cadence strings into the closed set.
// Unrecognized values fall back to monthly.
func ParseCadence(value string) Cadence {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "weekly", "week":
		return CadenceWeekly
	case "biweekly", "bi-weekly", "bi_weekly", "fortnightly":
		return CadenceBiweekly
	case "quarterly", "quarter":
		return CadenceQuarterly
	case "yearly", "annual", "annually", "year":
		return CadenceYearly
	case "custom":
		return CadenceCustom
	default:
		return CadenceMonthly
	}
}

// IncomeSource is one recurring income schedule row.
// ReceivedDay 0 means the pay day is unknown.
type IncomeSource struct {
	ID             string
	Name           string
	Amount         float64
	Cadence        Cadence
	CustomInterval int
	CustomUnit     string
	ReceivedDay    int
	Currency       string
	Note           string
	CreatedAt      int64
	UpdatedAt      int64
}

// Bill is one recurring obligation row.
type Bill struct {
	ID             string
	Name           string
	Category       string
	Amount         float64
	Cadence        Cadence
	CustomInterval int
	CustomUnit     string
	DueDay         int
	Currency       string
	Note           string
	CreatedAt      int64
	UpdatedAt      int64
}
