package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type WorkspaceForecastRequest struct {
	CycleKey        string `json:"cycle_key,omitempty"`
	DisplayCurrency string `json:"display_currency,omitempty"`
	Locale          string `json:"locale,omitempty"`
}

// WorkspaceViewResponse is the full forecast payload. Every collection is
// present and non-null so unauthenticated callers can render the same shape
// from the default payload.
type WorkspaceViewResponse struct {
	BaseCurrency       string              `json:"base_currency"`
	DisplayCurrency    string              `json:"display_currency"`
	Locale             string              `json:"locale"`
	SelectedCycleKey   string              `json:"selected_cycle_key"`
	ActiveVersionID    string              `json:"active_version_id"`
	AvailableCycleKeys []string            `json:"available_cycle_keys"`
	Categories         []string            `json:"categories"`
	Currencies         []string            `json:"currencies"`
	AccountOptions     []AccountOptionItem `json:"account_options"`

	Incomes          []IncomeItem          `json:"incomes"`
	Bills            []BillItem            `json:"bills"`
	Cards            []CardItem            `json:"cards"`
	Loans            []LoanItem            `json:"loans"`
	Accounts         []AccountItem         `json:"accounts"`
	MonthSnapshots   []MonthSnapshotItem   `json:"month_snapshots"`
	PlanningVersions []PlanningVersionItem `json:"planning_versions"`
	PlanningTasks    []PlanningTaskItem    `json:"planning_tasks"`
	FinanceStates    []FinanceStateItem    `json:"finance_states"`
	Goals            []GoalItem            `json:"goals"`
	Envelopes        []EnvelopeItem        `json:"envelopes"`
	CurrencyCatalog  []CurrencyItem        `json:"currency_catalog"`

	Baseline        BaselineView        `json:"baseline"`
	Scenarios       []ScenarioItem      `json:"scenarios"`
	GoalForecasts   []GoalForecastItem  `json:"goal_forecasts"`
	EnvelopeSummary EnvelopeSummaryView `json:"envelope_summary"`
	TaskSummary     TaskSummaryView     `json:"task_summary"`
	Fragility       FragilityView       `json:"fragility"`
	SpendingLens    SpendingLensView    `json:"spending_lens"`

	GeneratedAt int64 `json:"generated_at"`
}

type IncomeItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	Cadence        string  `json:"cadence"`
	CustomInterval int     `json:"custom_interval"`
	CustomUnit     string  `json:"custom_unit"`
	ReceivedDay    int     `json:"received_day"`
	Currency       string  `json:"currency"`
	Note           string  `json:"note"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

type BillItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	Cadence        string  `json:"cadence"`
	CustomInterval int     `json:"custom_interval"`
	CustomUnit     string  `json:"custom_unit"`
	DueDay         int     `json:"due_day"`
	Currency       string  `json:"currency"`
	Note           string  `json:"note"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

type CardItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MinimumPayment float64 `json:"minimum_payment"`
	UsedLimit      float64 `json:"used_limit"`
	CreditLimit    float64 `json:"credit_limit"`
	DueDay         int     `json:"due_day"`
	Currency       string  `json:"currency"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

type LoanItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	MinimumPayment float64 `json:"minimum_payment"`
	DueDay         int     `json:"due_day"`
	Currency       string  `json:"currency"`
	Note           string  `json:"note"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

type AccountItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Balance   float64 `json:"balance"`
	Liquid    bool    `json:"liquid"`
	Currency  string  `json:"currency"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

type SnapshotSummaryView struct {
	NetWorth         *float64 `json:"net_worth"`
	TotalAssets      *float64 `json:"total_assets"`
	TotalLiabilities *float64 `json:"total_liabilities"`
	MonthlyIncome    *float64 `json:"monthly_income"`
	MonthlyExpenses  *float64 `json:"monthly_expenses"`
}

type MonthSnapshotItem struct {
	ID        string              `json:"id"`
	CycleKey  string              `json:"cycle_key"`
	Summary   SnapshotSummaryView `json:"summary"`
	Note      string              `json:"note"`
	CreatedAt int64               `json:"created_at"`
	UpdatedAt int64               `json:"updated_at"`
}

type RecurringScenarioView struct {
	Enabled        bool     `json:"enabled"`
	Name           string   `json:"name"`
	IntervalMonths int      `json:"interval_months"`
	StartCycleKey  string   `json:"start_cycle_key"`
	Tags           []string `json:"tags"`
}

type TaskCountsView struct {
	Total int `json:"total"`
	Open  int `json:"open"`
	Done  int `json:"done"`
}

type PlanningVersionItem struct {
	ID              string                `json:"id"`
	CycleKey        string                `json:"cycle_key"`
	Name            string                `json:"name"`
	VersionKey      string                `json:"version_key"`
	Status          string                `json:"status"`
	ScenarioType    string                `json:"scenario_type"`
	PlannedIncome   float64               `json:"planned_income"`
	PlannedExpenses float64               `json:"planned_expenses"`
	PlannedSavings  float64               `json:"planned_savings"`
	PlannedNet      float64               `json:"planned_net"`
	HorizonMonths   int                   `json:"horizon_months"`
	LinkedStateID   string                `json:"linked_state_id"`
	Note            string                `json:"note"`
	Recurring       RecurringScenarioView `json:"recurring"`
	TaskCounts      TaskCountsView        `json:"task_counts"`
	CreatedAt       int64                 `json:"created_at"`
	UpdatedAt       int64                 `json:"updated_at"`
}

type PlanningTaskItem struct {
	ID                string  `json:"id"`
	PlanningVersionID string  `json:"planning_version_id"`
	Title             string  `json:"title"`
	Status            string  `json:"status"`
	Priority          string  `json:"priority"`
	OwnerScope        string  `json:"owner_scope"`
	DueAt             int64   `json:"due_at"`
	ImpactMonthly     float64 `json:"impact_monthly"`
	Note              string  `json:"note"`
	LinkedEntityType  string  `json:"linked_entity_type"`
	LinkedEntityID    string  `json:"linked_entity_id"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

type FinanceStateItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Kind              string  `json:"kind"`
	HorizonMonths     int     `json:"horizon_months"`
	MonthlyIncome     float64 `json:"monthly_income"`
	MonthlyExpenses   float64 `json:"monthly_expenses"`
	LiquidCash        float64 `json:"liquid_cash"`
	Assets            float64 `json:"assets"`
	Liabilities       float64 `json:"liabilities"`
	StartingNetWorth  float64 `json:"starting_net_worth"`
	ExpectedReturnPct float64 `json:"expected_return_pct"`
	InflationPct      float64 `json:"inflation_pct"`
	Currency          string  `json:"currency"`
	Note              string  `json:"note"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

type GoalEventItem struct {
	ID         string  `json:"id"`
	GoalID     string  `json:"goal_id"`
	EventType  string  `json:"event_type"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note"`
	OccurredAt int64   `json:"occurred_at"`
	CreatedAt  int64   `json:"created_at"`
	UpdatedAt  int64   `json:"updated_at"`
}

type GoalItem struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Category            string          `json:"category"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	Ownership           string          `json:"ownership"`
	TargetAmount        float64         `json:"target_amount"`
	CurrentAmount       float64         `json:"current_amount"`
	MonthlyContribution float64         `json:"monthly_contribution"`
	DueAt               int64           `json:"due_at"`
	DueLabel            string          `json:"due_label"`
	Currency            string          `json:"currency"`
	Note                string          `json:"note"`
	ProgressPct         float64         `json:"progress_pct"`
	RemainingAmount     float64         `json:"remaining_amount"`
	MonthsToTarget      *int            `json:"months_to_target"`
	LastEventAt         int64           `json:"last_event_at"`
	RecentEvents        []GoalEventItem `json:"recent_events"`
	CreatedAt           int64           `json:"created_at"`
	UpdatedAt           int64           `json:"updated_at"`
}

type EnvelopeItem struct {
	ID              string  `json:"id"`
	CycleKey        string  `json:"cycle_key"`
	Category        string  `json:"category"`
	PlannedAmount   float64 `json:"planned_amount"`
	ActualAmount    float64 `json:"actual_amount"`
	CarryoverAmount float64 `json:"carryover_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	UtilizationPct  float64 `json:"utilization_pct"`
	Ownership       string  `json:"ownership"`
	Status          string  `json:"status"`
	Rollover        bool    `json:"rollover"`
	Currency        string  `json:"currency"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

type CurrencyItem struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type AccountOptionItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type BaselineView struct {
	BaseCurrency        string  `json:"base_currency"`
	MonthlyIncome       float64 `json:"monthly_income"`
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	MonthlyBills        float64 `json:"monthly_bills"`
	MonthlyCardMinimums float64 `json:"monthly_card_minimums"`
	MonthlyLoanMinimums float64 `json:"monthly_loan_minimums"`
	MonthlyNet          float64 `json:"monthly_net"`
	LiquidCash          float64 `json:"liquid_cash"`
	TotalAssets         float64 `json:"total_assets"`
	Liabilities         float64 `json:"liabilities"`
	NetWorth            float64 `json:"net_worth"`
}

type ScenarioItem struct {
	ID                  string   `json:"id"`
	Label               string   `json:"label"`
	ScenarioLabel       string   `json:"scenario_label"`
	Source              string   `json:"source"`
	HorizonMonths       int      `json:"horizon_months"`
	MonthlyIncome       float64  `json:"monthly_income"`
	MonthlyExpenses     float64  `json:"monthly_expenses"`
	MonthlyNet          float64  `json:"monthly_net"`
	ProjectedNetWorth   float64  `json:"projected_net_worth"`
	ProjectedLiquidCash float64  `json:"projected_liquid_cash"`
	RunwayMonths        *float64 `json:"runway_months"`
	ExpectedReturnPct   float64  `json:"expected_return_pct"`
	InflationPct        float64  `json:"inflation_pct"`
	Note                string   `json:"note"`
	LinkedID            string   `json:"linked_id"`
	RecurringSummary    string   `json:"recurring_summary"`
}

type GoalForecastItem struct {
	GoalID                string  `json:"goal_id"`
	Title                 string  `json:"title"`
	TargetAmount          float64 `json:"target_amount"`
	CurrentAmount         float64 `json:"current_amount"`
	MonthlyContribution   float64 `json:"monthly_contribution"`
	RemainingAmount       float64 `json:"remaining_amount"`
	ProgressPct           float64 `json:"progress_pct"`
	MonthsToTarget        *int    `json:"months_to_target"`
	ProjectedCompletionAt int64   `json:"projected_completion_at"`
	DueAt                 int64   `json:"due_at"`
	OnTrack               bool    `json:"on_track"`
}

type EnvelopeSummaryView struct {
	CycleKey       string  `json:"cycle_key"`
	Planned        float64 `json:"planned"`
	Actual         float64 `json:"actual"`
	Carryover      float64 `json:"carryover"`
	Remaining      float64 `json:"remaining"`
	UtilizationPct float64 `json:"utilization_pct"`
	Count          int     `json:"count"`
}

type TaskSummaryView struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Blocked    int `json:"blocked"`
	Done       int `json:"done"`
}

type DueRowItem struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

type FragilityView struct {
	Score           int          `json:"score"`
	Level           string       `json:"level"`
	DueClusterScore int          `json:"due_cluster_score"`
	LowBufferScore  int          `json:"low_buffer_score"`
	LowBufferDays   float64      `json:"low_buffer_days"`
	DueRows         []DueRowItem `json:"due_rows"`
	Insights        []string     `json:"insights"`
}

type SpendingLensView struct {
	Fixed             float64 `json:"fixed"`
	Variable          float64 `json:"variable"`
	Controllable      float64 `json:"controllable"`
	Total             float64 `json:"total"`
	FixedShare        float64 `json:"fixed_share"`
	VariableShare     float64 `json:"variable_share"`
	ControllableShare float64 `json:"controllable_share"`
}

type RecurringScenarioRequest struct {
	Enabled        bool     `json:"enabled"`
	Name           string   `json:"name"`
	IntervalMonths int      `json:"interval_months"`
	StartCycleKey  string   `json:"start_cycle_key"`
	Tags           []string `json:"tags"`
}

type SavePlanningVersionRequest struct {
	VersionID       string                    `json:"version_id,omitempty"`
	CycleKey        string                    `json:"cycle_key,omitempty"`
	Name            string                    `json:"name"`
	VersionKey      string                    `json:"version_key,omitempty"`
	Status          string                    `json:"status,omitempty"`
	ScenarioType    string                    `json:"scenario_type,omitempty"`
	PlannedIncome   float64                   `json:"planned_income"`
	PlannedExpenses float64                   `json:"planned_expenses"`
	PlannedSavings  float64                   `json:"planned_savings"`
	PlannedNet      float64                   `json:"planned_net"`
	HorizonMonths   int                       `json:"horizon_months,omitempty"`
	LinkedStateID   string                    `json:"linked_state_id,omitempty"`
	Note            string                    `json:"note,omitempty"`
	Recurring       *RecurringScenarioRequest `json:"recurring,omitempty"`
}

type SavePlanningVersionResponse struct {
	Version PlanningVersionItem `json:"version"`
	Created bool                `json:"created"`
}

type RecordGoalEventRequest struct {
	EventType  string  `json:"event_type"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note,omitempty"`
	OccurredAt int64   `json:"occurred_at,omitempty"`
}

type RecordGoalEventResponse struct {
	Goal     GoalItem      `json:"goal"`
	Event    GoalEventItem `json:"event"`
	Replayed bool          `json:"replayed"`
}

type UpsertEnvelopeRequest struct {
	CycleKey        string  `json:"cycle_key,omitempty"`
	Category        string  `json:"category"`
	PlannedAmount   float64 `json:"planned_amount"`
	ActualAmount    float64 `json:"actual_amount"`
	CarryoverAmount float64 `json:"carryover_amount"`
	Ownership       string  `json:"ownership,omitempty"`
	Rollover        bool    `json:"rollover"`
	Currency        string  `json:"currency,omitempty"`
}

type UpsertEnvelopeResponse struct {
	Envelope EnvelopeItem `json:"envelope"`
	Created  bool         `json:"created"`
}

type SaveFinanceStateRequest struct {
	StateID           string  `json:"state_id,omitempty"`
	Name              string  `json:"name"`
	Kind              string  `json:"kind,omitempty"`
	HorizonMonths     int     `json:"horizon_months,omitempty"`
	MonthlyIncome     float64 `json:"monthly_income"`
	MonthlyExpenses   float64 `json:"monthly_expenses"`
	LiquidCash        float64 `json:"liquid_cash"`
	Assets            float64 `json:"assets"`
	Liabilities       float64 `json:"liabilities"`
	StartingNetWorth  float64 `json:"starting_net_worth"`
	ExpectedReturnPct float64 `json:"expected_return_pct"`
	InflationPct      float64 `json:"inflation_pct"`
	Currency          string  `json:"currency,omitempty"`
	Note              string  `json:"note,omitempty"`
}

type SaveFinanceStateResponse struct {
	State   FinanceStateItem `json:"state"`
	Created bool             `json:"created"`
}
