package postgresadapter

import (
	"encoding/json"
	"strings"
	"time"

	"financeos/contexts/finance-core/forecast-engine/ports"
)

// Domain tables carry millisecond timestamps so stored rows round-trip
// through the engine's loosely-typed record shape unchanged. Infra tables
// (idempotency, outbox) keep time.Time like the rest of the platform.

type workspaceSettingModel struct {
	UserID       string `gorm:"column:user_id;primaryKey"`
	BaseCurrency string `gorm:"column:base_currency"`
	CreatedAt    int64  `gorm:"column:created_at"`
	UpdatedAt    int64  `gorm:"column:updated_at"`
}

func (workspaceSettingModel) TableName() string {
	return "workspace_settings"
}

type incomeModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	UserID         string  `gorm:"column:user_id"`
	Name           string  `gorm:"column:name"`
	Amount         float64 `gorm:"column:amount"`
	Cadence        string  `gorm:"column:cadence"`
	CustomInterval int     `gorm:"column:custom_interval"`
	CustomUnit     string  `gorm:"column:custom_unit"`
	ReceivedDay    int     `gorm:"column:received_day"`
	Currency       string  `gorm:"column:currency"`
	Note           string  `gorm:"column:note"`
	PayloadJSON    string  `gorm:"column:payload_json"`
	CreatedAt      int64   `gorm:"column:created_at"`
	UpdatedAt      int64   `gorm:"column:updated_at"`
}

func (incomeModel) TableName() string {
	return "incomes"
}

func (m incomeModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":             m.ID,
		"name":           m.Name,
		"amount":         m.Amount,
		"cadence":        m.Cadence,
		"customInterval": m.CustomInterval,
		"customUnit":     m.CustomUnit,
		"receivedDay":    m.ReceivedDay,
		"currency":       m.Currency,
		"note":           m.Note,
		"createdAt":      m.CreatedAt,
		"updatedAt":      m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

type billModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	UserID         string  `gorm:"column:user_id"`
	Name           string  `gorm:"column:name"`
	Category       string  `gorm:"column:category"`
	Amount         float64 `gorm:"column:amount"`
	Cadence        string  `gorm:"column:cadence"`
	CustomInterval int     `gorm:"column:custom_interval"`
	CustomUnit     string  `gorm:"column:custom_unit"`
	DueDay         int     `gorm:"column:due_day"`
	Currency       string  `gorm:"column:currency"`
	Note           string  `gorm:"column:note"`
	PayloadJSON    string  `gorm:"column:payload_json"`
	CreatedAt      int64   `gorm:"column:created_at"`
	UpdatedAt      int64   `gorm:"column:updated_at"`
}

func (billModel) TableName() string {
	return "bills"
}

func (m billModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":             m.ID,
		"name":           m.Name,
		"category":       m.Category,
		"amount":         m.Amount,
		"cadence":        m.Cadence,
		"customInterval": m.CustomInterval,
		"customUnit":     m.CustomUnit,
		"dueDay":         m.DueDay,
		"currency":       m.Currency,
		"note":           m.Note,
		"createdAt":      m.CreatedAt,
		"updatedAt":      m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

type cardModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	UserID         string  `gorm:"column:user_id"`
	Name           string  `gorm:"column:name"`
	MinimumPayment float64 `gorm:"column:minimum_payment"`
	UsedLimit      float64 `gorm:"column:used_limit"`
	CreditLimit    float64 `gorm:"column:credit_limit"`
	DueDay         int     `gorm:"column:due_day"`
	Currency       string  `gorm:"column:currency"`
	Note           string  `gorm:"column:note"`
	PayloadJSON    string  `gorm:"column:payload_json"`
	CreatedAt      int64   `gorm:"column:created_at"`
	UpdatedAt      int64   `gorm:"column:updated_at"`
}

func (cardModel) TableName() string {
	return "credit_cards"
}

func (m cardModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":             m.ID,
		"name":           m.Name,
		"minimumPayment": m.MinimumPayment,
		"usedLimit":      m.UsedLimit,
		"creditLimit":    m.CreditLimit,
		"dueDay":         m.DueDay,
		"currency":       m.Currency,
		"note":           m.Note,
		"createdAt":      m.CreatedAt,
		"updatedAt":      m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

type loanModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	UserID         string  `gorm:"column:user_id"`
	Name           string  `gorm:"column:name"`
	Balance        float64 `gorm:"column:balance"`
	MinimumPayment float64 `gorm:"column:minimum_payment"`
	DueDay         int     `gorm:"column:due_day"`
	Currency       string  `gorm:"column:currency"`
	Note           string  `gorm:"column:note"`
	PayloadJSON    string  `gorm:"column:payload_json"`
	CreatedAt      int64   `gorm:"column:created_at"`
	UpdatedAt      int64   `gorm:"column:updated_at"`
}

func (loanModel) TableName() string {
	return "loans"
}

func (m loanModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":             m.ID,
		"name":           m.Name,
		"balance":        m.Balance,
		"minimumPayment": m.MinimumPayment,
		"dueDay":         m.DueDay,
		"currency":       m.Currency,
		"note":           m.Note,
		"createdAt":      m.CreatedAt,
		"updatedAt":      m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

type accountModel struct {
	ID          string  `gorm:"column:id;primaryKey"`
	UserID      string  `gorm:"column:user_id"`
	Name        string  `gorm:"column:name"`
	AccountType string  `gorm:"column:account_type"`
	Balance     float64 `gorm:"column:balance"`
	Liquid      bool    `gorm:"column:liquid"`
	Currency    string  `gorm:"column:currency"`
	PayloadJSON string  `gorm:"column:payload_json"`
	CreatedAt   int64   `gorm:"column:created_at"`
	UpdatedAt   int64   `gorm:"column:updated_at"`
}

func (accountModel) TableName() string {
	return "accounts"
}

func (m accountModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":        m.ID,
		"name":      m.Name,
		"type":      m.AccountType,
		"balance":   m.Balance,
		"liquid":    m.Liquid,
		"currency":  m.Currency,
		"createdAt": m.CreatedAt,
		"updatedAt": m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

type monthSnapshotModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	UserID      string `gorm:"column:user_id"`
	CycleKey    string `gorm:"column:cycle_key"`
	Summary     []byte `gorm:"column:summary"`
	Note        string `gorm:"column:note"`
	PayloadJSON string `gorm:"column:payload_json"`
	CreatedAt   int64  `gorm:"column:created_at"`
	UpdatedAt   int64  `gorm:"column:updated_at"`
}

func (monthSnapshotModel) TableName() string {
	return "month_snapshots"
}

func (m monthSnapshotModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":        m.ID,
		"cycleKey":  m.CycleKey,
		"note":      m.Note,
		"createdAt": m.CreatedAt,
		"updatedAt": m.UpdatedAt,
	}
	if summary := decodeObject(m.Summary); len(summary) > 0 {
		row["summary"] = summary
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

func monthSnapshotModelFromRow(userID string, row ports.RawRecord) monthSnapshotModel {
	return monthSnapshotModel{
		ID:        rowString(row, "id"),
		UserID:    strings.TrimSpace(userID),
		CycleKey:  rowString(row, "cycleKey"),
		Summary:   encodeObject(row["summary"]),
		Note:      rowString(row, "note"),
		CreatedAt: rowMillis(row, "createdAt"),
		UpdatedAt: rowMillis(row, "updatedAt"),
	}
}

type planningVersionModel struct {
	ID              string  `gorm:"column:id;primaryKey"`
	UserID          string  `gorm:"column:user_id"`
	CycleKey        string  `gorm:"column:cycle_key"`
	Name            string  `gorm:"column:name"`
	VersionKey      string  `gorm:"column:version_key"`
	Status          string  `gorm:"column:status"`
	ScenarioType    string  `gorm:"column:scenario_type"`
	PlannedIncome   float64 `gorm:"column:planned_income"`
	PlannedExpenses float64 `gorm:"column:planned_expenses"`
	PlannedSavings  float64 `gorm:"column:planned_savings"`
	PlannedNet      float64 `gorm:"column:planned_net"`
	HorizonMonths   int     `gorm:"column:horizon_months"`
	Recurring       []byte  `gorm:"column:recurring"`
	LinkedStateID   string  `gorm:"column:linked_state_id"`
	Note            string  `gorm:"column:note"`
	PayloadJSON     string  `gorm:"column:payload_json"`
	CreatedAt       int64   `gorm:"column:created_at"`
	UpdatedAt       int64   `gorm:"column:updated_at"`
}

func (planningVersionModel) TableName() string {
	return "planning_versions"
}

func (m planningVersionModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":              m.ID,
		"cycleKey":        m.CycleKey,
		"name":            m.Name,
		"versionKey":      m.VersionKey,
		"status":          m.Status,
		"scenarioType":    m.ScenarioType,
		"plannedIncome":   m.PlannedIncome,
		"plannedExpenses": m.PlannedExpenses,
		"plannedSavings":  m.PlannedSavings,
		"plannedNet":      m.PlannedNet,
		"linkedStateId":   m.LinkedStateID,
		"note":            m.Note,
		"createdAt":       m.CreatedAt,
		"updatedAt":       m.UpdatedAt,
	}
	if m.HorizonMonths > 0 {
		row["horizonMonths"] = m.HorizonMonths
	}
	if recurring := decodeObject(m.Recurring); len(recurring) > 0 {
		row["recurringScenario"] = recurring
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

func planningVersionModelFromRow(userID string, row ports.RawRecord) planningVersionModel {
	return planningVersionModel{
		ID:              rowString(row, "id"),
		UserID:          strings.TrimSpace(userID),
		CycleKey:        rowString(row, "cycleKey"),
		Name:            rowString(row, "name"),
		VersionKey:      rowString(row, "versionKey"),
		Status:          rowString(row, "status"),
		ScenarioType:    rowString(row, "scenarioType"),
		PlannedIncome:   rowFloat(row, "plannedIncome"),
		PlannedExpenses: rowFloat(row, "plannedExpenses"),
		PlannedSavings:  rowFloat(row, "plannedSavings"),
		PlannedNet:      rowFloat(row, "plannedNet"),
		HorizonMonths:   rowInt(row, "horizonMonths"),
		Recurring:       encodeObject(row["recurringScenario"]),
		LinkedStateID:   rowString(row, "linkedStateId"),
		Note:            rowString(row, "note"),
		CreatedAt:       rowMillis(row, "createdAt"),
		UpdatedAt:       rowMillis(row, "updatedAt"),
	}
}

type planningTaskModel struct {
	ID                string  `gorm:"column:id;primaryKey"`
	UserID            string  `gorm:"column:user_id"`
	PlanningVersionID string  `gorm:"column:planning_version_id"`
	Title             string  `gorm:"column:title"`
	Status            string  `gorm:"column:status"`
	Priority          string  `gorm:"column:priority"`
	OwnerScope        string  `gorm:"column:owner_scope"`
	DueAt             int64   `gorm:"column:due_at"`
	ImpactMonthly     float64 `gorm:"column:impact_monthly"`
	Note              string  `gorm:"column:note"`
	LinkedEntityType  string  `gorm:"column:linked_entity_type"`
	LinkedEntityID    string  `gorm:"column:linked_entity_id"`
	PayloadJSON       string  `gorm:"column:payload_json"`
	CreatedAt         int64   `gorm:"column:created_at"`
	UpdatedAt         int64   `gorm:"column:updated_at"`
}

func (planningTaskModel) TableName() string {
	return "planning_tasks"
}

func (m planningTaskModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":                m.ID,
		"planningVersionId": m.PlanningVersionID,
		"title":             m.Title,
		"status":            m.Status,
		"priority":          m.Priority,
		"ownerScope":        m.OwnerScope,
		"dueAt":             m.DueAt,
		"impactMonthly":     m.ImpactMonthly,
		"note":              m.Note,
		"linkedEntityType":  m.LinkedEntityType,
		"linkedEntityId":    m.LinkedEntityID,
		"createdAt":         m.CreatedAt,
		"updatedAt":         m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

type financeStateModel struct {
	ID                string  `gorm:"column:id;primaryKey"`
	UserID            string  `gorm:"column:user_id"`
	Name              string  `gorm:"column:name"`
	StateKind         string  `gorm:"column:state_kind"`
	HorizonMonths     int     `gorm:"column:horizon_months"`
	MonthlyIncome     float64 `gorm:"column:monthly_income"`
	MonthlyExpenses   float64 `gorm:"column:monthly_expenses"`
	LiquidCash        float64 `gorm:"column:liquid_cash"`
	Assets            float64 `gorm:"column:assets"`
	Liabilities       float64 `gorm:"column:liabilities"`
	StartingNetWorth  float64 `gorm:"column:starting_net_worth"`
	ExpectedReturnPct float64 `gorm:"column:expected_return_pct"`
	InflationPct      float64 `gorm:"column:inflation_pct"`
	Currency          string  `gorm:"column:currency"`
	Note              string  `gorm:"column:note"`
	PayloadJSON       string  `gorm:"column:payload_json"`
	CreatedAt         int64   `gorm:"column:created_at"`
	UpdatedAt         int64   `gorm:"column:updated_at"`
}

func (financeStateModel) TableName() string {
	return "finance_states"
}

func (m financeStateModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":                m.ID,
		"name":              m.Name,
		"stateKind":         m.StateKind,
		"monthlyIncome":     m.MonthlyIncome,
		"monthlyExpenses":   m.MonthlyExpenses,
		"liquidCash":        m.LiquidCash,
		"assets":            m.Assets,
		"liabilities":       m.Liabilities,
		"startingNetWorth":  m.StartingNetWorth,
		"expectedReturnPct": m.ExpectedReturnPct,
		"inflationPct":      m.InflationPct,
		"currency":          m.Currency,
		"note":              m.Note,
		"createdAt":         m.CreatedAt,
		"updatedAt":         m.UpdatedAt,
	}
	if m.HorizonMonths > 0 {
		row["horizonMonths"] = m.HorizonMonths
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

func financeStateModelFromRow(userID string, row ports.RawRecord) financeStateModel {
	return financeStateModel{
		ID:                rowString(row, "id"),
		UserID:            strings.TrimSpace(userID),
		Name:              rowString(row, "name"),
		StateKind:         rowString(row, "stateKind"),
		HorizonMonths:     rowInt(row, "horizonMonths"),
		MonthlyIncome:     rowFloat(row, "monthlyIncome"),
		MonthlyExpenses:   rowFloat(row, "monthlyExpenses"),
		LiquidCash:        rowFloat(row, "liquidCash"),
		Assets:            rowFloat(row, "assets"),
		Liabilities:       rowFloat(row, "liabilities"),
		StartingNetWorth:  rowFloat(row, "startingNetWorth"),
		ExpectedReturnPct: rowFloat(row, "expectedReturnPct"),
		InflationPct:      rowFloat(row, "inflationPct"),
		Currency:          rowString(row, "currency"),
		Note:              rowString(row, "note"),
		CreatedAt:         rowMillis(row, "createdAt"),
		UpdatedAt:         rowMillis(row, "updatedAt"),
	}
}

type goalModel struct {
	ID                  string  `gorm:"column:id;primaryKey"`
	UserID              string  `gorm:"column:user_id"`
	Title               string  `gorm:"column:title"`
	Category            string  `gorm:"column:category"`
	Status              string  `gorm:"column:status"`
	Priority            string  `gorm:"column:priority"`
	Ownership           string  `gorm:"column:ownership"`
	TargetAmount        float64 `gorm:"column:target_amount"`
	CurrentAmount       float64 `gorm:"column:current_amount"`
	MonthlyContribution float64 `gorm:"column:monthly_contribution"`
	DueAt               int64   `gorm:"column:due_at"`
	DueLabel            string  `gorm:"column:due_label"`
	Currency            string  `gorm:"column:currency"`
	Note                string  `gorm:"column:note"`
	LastEventAt         int64   `gorm:"column:last_event_at"`
	PayloadJSON         string  `gorm:"column:payload_json"`
	CreatedAt           int64   `gorm:"column:created_at"`
	UpdatedAt           int64   `gorm:"column:updated_at"`
}

func (goalModel) TableName() string {
	return "goals"
}

func (m goalModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":                  m.ID,
		"title":               m.Title,
		"category":            m.Category,
		"status":              m.Status,
		"priority":            m.Priority,
		"ownership":           m.Ownership,
		"targetAmount":        m.TargetAmount,
		"currentAmount":       m.CurrentAmount,
		"monthlyContribution": m.MonthlyContribution,
		"dueAt":               m.DueAt,
		"dueLabel":            m.DueLabel,
		"currency":            m.Currency,
		"note":                m.Note,
		"lastEventAt":         m.LastEventAt,
		"createdAt":           m.CreatedAt,
		"updatedAt":           m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

func goalModelFromRow(userID string, row ports.RawRecord) goalModel {
	return goalModel{
		ID:                  rowString(row, "id"),
		UserID:              strings.TrimSpace(userID),
		Title:               rowString(row, "title"),
		Category:            rowString(row, "category"),
		Status:              rowString(row, "status"),
		Priority:            rowString(row, "priority"),
		Ownership:           rowString(row, "ownership"),
		TargetAmount:        rowFloat(row, "targetAmount"),
		CurrentAmount:       rowFloat(row, "currentAmount"),
		MonthlyContribution: rowFloat(row, "monthlyContribution"),
		DueAt:               rowMillis(row, "dueAt"),
		DueLabel:            rowString(row, "dueLabel"),
		Currency:            rowString(row, "currency"),
		Note:                rowString(row, "note"),
		LastEventAt:         rowMillis(row, "lastEventAt"),
		CreatedAt:           rowMillis(row, "createdAt"),
		UpdatedAt:           rowMillis(row, "updatedAt"),
	}
}

type goalEventModel struct {
	ID         string  `gorm:"column:id;primaryKey"`
	UserID     string  `gorm:"column:user_id"`
	GoalID     string  `gorm:"column:goal_id"`
	EventType  string  `gorm:"column:event_type"`
	Amount     float64 `gorm:"column:amount"`
	Note       string  `gorm:"column:note"`
	OccurredAt int64   `gorm:"column:occurred_at"`
	CreatedAt  int64   `gorm:"column:created_at"`
	UpdatedAt  int64   `gorm:"column:updated_at"`
}

func (goalEventModel) TableName() string {
	return "goal_events"
}

func (m goalEventModel) toRow() ports.RawRecord {
	return ports.RawRecord{
		"id":         m.ID,
		"goalId":     m.GoalID,
		"eventType":  m.EventType,
		"amount":     m.Amount,
		"note":       m.Note,
		"occurredAt": m.OccurredAt,
		"createdAt":  m.CreatedAt,
		"updatedAt":  m.UpdatedAt,
	}
}

func goalEventModelFromRow(userID string, row ports.RawRecord) goalEventModel {
	return goalEventModel{
		ID:         rowString(row, "id"),
		UserID:     strings.TrimSpace(userID),
		GoalID:     rowString(row, "goalId"),
		EventType:  rowString(row, "eventType"),
		Amount:     rowFloat(row, "amount"),
		Note:       rowString(row, "note"),
		OccurredAt: rowMillis(row, "occurredAt"),
		CreatedAt:  rowMillis(row, "createdAt"),
		UpdatedAt:  rowMillis(row, "updatedAt"),
	}
}

type envelopeModel struct {
	ID              string  `gorm:"column:id;primaryKey"`
	UserID          string  `gorm:"column:user_id"`
	CycleKey        string  `gorm:"column:cycle_key"`
	Category        string  `gorm:"column:category"`
	PlannedAmount   float64 `gorm:"column:planned_amount"`
	ActualAmount    float64 `gorm:"column:actual_amount"`
	CarryoverAmount float64 `gorm:"column:carryover_amount"`
	Ownership       string  `gorm:"column:ownership"`
	Status          string  `gorm:"column:status"`
	Rollover        bool    `gorm:"column:rollover"`
	Currency        string  `gorm:"column:currency"`
	PayloadJSON     string  `gorm:"column:payload_json"`
	CreatedAt       int64   `gorm:"column:created_at"`
	UpdatedAt       int64   `gorm:"column:updated_at"`
}

func (envelopeModel) TableName() string {
	return "budget_envelopes"
}

func (m envelopeModel) toRow() ports.RawRecord {
	row := ports.RawRecord{
		"id":              m.ID,
		"cycleKey":        m.CycleKey,
		"category":        m.Category,
		"plannedAmount":   m.PlannedAmount,
		"actualAmount":    m.ActualAmount,
		"carryoverAmount": m.CarryoverAmount,
		"ownership":       m.Ownership,
		"status":          m.Status,
		"rollover":        m.Rollover,
		"currency":        m.Currency,
		"createdAt":       m.CreatedAt,
		"updatedAt":       m.UpdatedAt,
	}
	attachPayload(row, m.PayloadJSON)
	return row
}

func envelopeModelFromRow(userID string, row ports.RawRecord) envelopeModel {
	return envelopeModel{
		ID:              rowString(row, "id"),
		UserID:          strings.TrimSpace(userID),
		CycleKey:        rowString(row, "cycleKey"),
		Category:        rowString(row, "category"),
		PlannedAmount:   rowFloat(row, "plannedAmount"),
		ActualAmount:    rowFloat(row, "actualAmount"),
		CarryoverAmount: rowFloat(row, "carryoverAmount"),
		Ownership:       rowString(row, "ownership"),
		Status:          rowString(row, "status"),
		Rollover:        rowBool(row, "rollover"),
		Currency:        rowString(row, "currency"),
		CreatedAt:       rowMillis(row, "createdAt"),
		UpdatedAt:       rowMillis(row, "updatedAt"),
	}
}

type currencyModel struct {
	Code   string `gorm:"column:code;primaryKey"`
	Symbol string `gorm:"column:symbol"`
	Name   string `gorm:"column:name"`
}

func (currencyModel) TableName() string {
	return "currencies"
}

func (m currencyModel) toRow() ports.RawRecord {
	return ports.RawRecord{
		"code":   m.Code,
		"symbol": m.Symbol,
		"name":   m.Name,
	}
}

type idempotencyModel struct {
	Key             string    `gorm:"column:key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "forecast_engine_idempotency"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "forecast_outbox"
}

func attachPayload(row ports.RawRecord, payloadJSON string) {
	if strings.TrimSpace(payloadJSON) != "" {
		row["payloadJson"] = payloadJSON
	}
}

func decodeObject(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	return decoded
}

func encodeObject(value any) []byte {
	object, ok := value.(map[string]any)
	if !ok || len(object) == 0 {
		return nil
	}
	encoded, err := json.Marshal(object)
	if err != nil {
		return nil
	}
	return encoded
}

func rowString(row ports.RawRecord, key string) string {
	value, _ := row[key].(string)
	return strings.TrimSpace(value)
}

func rowFloat(row ports.RawRecord, key string) float64 {
	switch value := row[key].(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	default:
		return 0
	}
}

func rowInt(row ports.RawRecord, key string) int {
	switch value := row[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	default:
		return 0
	}
}

func rowBool(row ports.RawRecord, key string) bool {
	value, _ := row[key].(bool)
	return value
}

func rowMillis(row ports.RawRecord, key string) int64 {
	switch value := row[key].(type) {
	case int64:
		return value
	case int:
		return int64(value)
	case float64:
		return int64(value)
	default:
		return 0
	}
}
