package entities

// CardAccount is a revolving credit line with a minimum payment schedule.
type CardAccount struct {
	ID             string
	Name           string
	MinimumPayment float64
	UsedLimit      float64
	CreditLimit    float64
	DueDay         int
	Currency       string
	CreatedAt      int64
	UpdatedAt      int64
}

// LoanAccount is an amortizing debt with a fixed minimum payment.
type LoanAccount struct {
	ID             string
	Name           string
	Balance        float64
	MinimumPayment float64
	DueDay         int
	Currency       string
	Note           string
	CreatedAt      int64
	UpdatedAt      int64
}

// Account is a cash or asset account. Balance keeps its sign; aggregation
// clamps where non-negativity is required.
type Account struct {
	ID        string
	Name      string
	Type      string
	Balance   float64
	Liquid    bool
	Currency  string
	CreatedAt int64
	UpdatedAt int64
}

// SnapshotSummary carries the reconciled balance-sheet figures of one
// month close. Nil fields were absent or non-finite in the source record.
type SnapshotSummary struct {
	NetWorth         *float64
	TotalAssets      *float64
	TotalLiabilities *float64
	MonthlyIncome    *float64
	MonthlyExpenses  *float64
}

// MonthCloseSnapshot is the authoritative point-in-time record written when
// a budgeting cycle closes.
type MonthCloseSnapshot struct {
	ID        string
	CycleKey  string
	Summary   SnapshotSummary
	Note      string
	CreatedAt int64
	UpdatedAt int64
}
