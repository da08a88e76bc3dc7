package entities

// CoreBaseline is the live, schedule-derived monthly cashflow and net-worth
// snapshot, independent of any saved plan. Never persisted.
type CoreBaseline struct {
	BaseCurrency        string
	MonthlyIncome       float64
	MonthlyExpenses     float64
	MonthlyBills        float64
	MonthlyCardMinimums float64
	MonthlyLoanMinimums float64
	MonthlyNet          float64
	LiquidCash          float64
	TotalAssets         float64
	Liabilities         float64
	NetWorth            float64
}

type ScenarioSource string

const (
	ScenarioSourceCoreLive     ScenarioSource = "core-live"
	ScenarioSourcePlanning     ScenarioSource = "planning_version"
	ScenarioSourceFinanceState ScenarioSource = "finance_state"
)

// ForecastScenario is a labeled projection of net worth and liquidity over a
// horizon. RunwayMonths is nil when monthly expenses are zero.
type ForecastScenario struct {
	ID                  string
	Label               string
	ScenarioLabel       string
	Source              ScenarioSource
	HorizonMonths       int
	MonthlyIncome       float64
	MonthlyExpenses     float64
	MonthlyNet          float64
	ProjectedNetWorth   float64
	ProjectedLiquidCash float64
	RunwayMonths        *float64
	ExpectedReturnPct   float64
	InflationPct        float64
	Note                string
	LinkedID            string
	RecurringSummary    string
}

const (
	FragilityLevelLow    = "low"
	FragilityLevelMedium = "medium"
	FragilityLevelHigh   = "high"
)

// DueRow pairs one obligation with its due day of month.
type DueRow struct {
	Name   string
	Kind   string
	Day    int
	Amount float64
}

// FragilityResult is the 0-100 composite short-term cash risk score.
type FragilityResult struct {
	Score           int
	Level           string
	DueClusterScore int
	LowBufferScore  int
	LowBufferDays   float64
	DueRows         []DueRow
	Insights        []string
}

// SpendingLens splits monthly spend into fixed, variable, and controllable
// buckets with their shares of the total.
type SpendingLens struct {
	Fixed             float64
	Variable          float64
	Controllable      float64
	Total             float64
	FixedShare        float64
	VariableShare     float64
	ControllableShare float64
}

// GoalForecast is the pacing projection for one goal.
// ProjectedCompletionAt is 0 when no contribution-derived estimate exists.
type GoalForecast struct {
	GoalID                string
	Title                 string
	TargetAmount          float64
	CurrentAmount         float64
	MonthlyContribution   float64
	RemainingAmount       float64
	ProgressPct           float64
	MonthsToTarget        *int
	ProjectedCompletionAt int64
	DueAt                 int64
	OnTrack               bool
}

// EnvelopeRollup totals the envelopes of the selected cycle.
type EnvelopeRollup struct {
	CycleKey       string
	Planned        float64
	Actual         float64
	Carryover      float64
	Remaining      float64
	UtilizationPct float64
	Count          int
}

// TaskTally counts planning tasks by status.
type TaskTally struct {
	Todo       int
	InProgress int
	Blocked    int
	Done       int
}

// AccountOption is the compact account shape used for pickers.
type AccountOption struct {
	ID       string
	Name     string
	Type     string
	Balance  float64
	Currency string
}

// WorkspaceView is the full forecast payload: normalized sorted collections,
// derived lists, and every engine output assembled for one user and cycle.
type WorkspaceView struct {
	BaseCurrency       string
	DisplayCurrency    string
	Locale             string
	SelectedCycleKey   string
	ActiveVersionID    string
	AvailableCycleKeys []string
	Categories         []string
	Currencies         []string
	AccountOptions     []AccountOption

	Incomes          []IncomeSource
	Bills            []Bill
	Cards            []CardAccount
	Loans            []LoanAccount
	Accounts         []Account
	MonthSnapshots   []MonthCloseSnapshot
	PlanningVersions []PlanningVersion
	PlanningTasks    []PlanningTask
	FinanceStates    []FinanceState
	Goals            []Goal
	Envelopes        []EnvelopeBudget
	CurrencyCatalog  []CurrencyInfo

	Baseline        CoreBaseline
	Scenarios       []ForecastScenario
	GoalForecasts   []GoalForecast
	EnvelopeSummary EnvelopeRollup
	TaskSummary     TaskTally
	Fragility       FragilityResult
	SpendingLens    SpendingLens

	GeneratedAt int64
}
