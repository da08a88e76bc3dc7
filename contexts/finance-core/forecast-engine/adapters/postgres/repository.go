package postgresadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/ports"
	"financeos/internal/shared/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) LoadWorkspace(ctx context.Context, userID string) (ports.WorkspaceRecords, error) {
	userID = strings.TrimSpace(userID)
	records := ports.WorkspaceRecords{}

	var setting workspaceSettingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&setting).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.WorkspaceRecords{}, r.logError("forecast_repo_load_settings_failed", err, "user_id", userID)
	}
	records.BaseCurrency = setting.BaseCurrency

	var incomes []incomeModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_incomes_failed", &incomes); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Incomes = toRows(incomes)

	var bills []billModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_bills_failed", &bills); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Bills = toRows(bills)

	var cards []cardModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_cards_failed", &cards); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Cards = toRows(cards)

	var loans []loanModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_loans_failed", &loans); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Loans = toRows(loans)

	var accounts []accountModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_accounts_failed", &accounts); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Accounts = toRows(accounts)

	var snapshots []monthSnapshotModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_snapshots_failed", &snapshots); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.MonthSnapshots = toRows(snapshots)

	var versions []planningVersionModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_versions_failed", &versions); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.PlanningVersions = toRows(versions)

	var tasks []planningTaskModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_tasks_failed", &tasks); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.PlanningTasks = toRows(tasks)

	var states []financeStateModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_states_failed", &states); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.FinanceStates = toRows(states)

	var goals []goalModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_goals_failed", &goals); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Goals = toRows(goals)

	var goalEvents []goalEventModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&goalEvents).Error; err != nil {
		return ports.WorkspaceRecords{}, r.logError("forecast_repo_load_goal_events_failed", err, "user_id", userID)
	}
	records.GoalEvents = toRows(goalEvents)

	var envelopes []envelopeModel
	if err := r.loadRows(ctx, userID, "forecast_repo_load_envelopes_failed", &envelopes); err != nil {
		return ports.WorkspaceRecords{}, err
	}
	records.Envelopes = toRows(envelopes)

	var currencies []currencyModel
	if err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&currencies).Error; err != nil {
		if !isUndefinedTable(err) {
			return ports.WorkspaceRecords{}, r.logError("forecast_repo_load_currencies_failed", err, "user_id", userID)
		}
		// The shared currency catalog is optional in local development; the
		// engine falls back to the base currency alone.
	}
	records.Currencies = toRows(currencies)

	return records, nil
}

func (r *Repository) ListOwners(ctx context.Context) ([]string, error) {
	var rows []workspaceSettingModel
	if err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("forecast_repo_list_owners_failed", err)
	}
	items := make([]string, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.UserID) == "" {
			continue
		}
		items = append(items, row.UserID)
	}
	return items, nil
}

// SaveSettings registers a workspace owner and its base currency. Bootstrap
// seeds call it directly; command writes register owners via ensureSettings.
func (r *Repository) SaveSettings(ctx context.Context, userID string, baseCurrency string) error {
	now := time.Now().UTC().UnixMilli()
	row := workspaceSettingModel{
		UserID:       strings.TrimSpace(userID),
		BaseCurrency: strings.ToUpper(strings.TrimSpace(baseCurrency)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"base_currency": row.BaseCurrency,
			"updated_at":    row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("forecast_repo_save_settings_failed", create.Error, "user_id", row.UserID)
	}
	return nil
}

func (r *Repository) SaveVersion(ctx context.Context, userID string, row ports.RawRecord) error {
	model := planningVersionModelFromRow(userID, row)
	if model.CreatedAt == 0 {
		model.CreatedAt = model.UpdatedAt
	}
	if err := r.ensureSettings(ctx, model.UserID); err != nil {
		return err
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"cycle_key":        model.CycleKey,
			"name":             model.Name,
			"version_key":      model.VersionKey,
			"status":           model.Status,
			"scenario_type":    model.ScenarioType,
			"planned_income":   model.PlannedIncome,
			"planned_expenses": model.PlannedExpenses,
			"planned_savings":  model.PlannedSavings,
			"planned_net":      model.PlannedNet,
			"horizon_months":   model.HorizonMonths,
			"recurring":        model.Recurring,
			"linked_state_id":  model.LinkedStateID,
			"note":             model.Note,
			"updated_at":       model.UpdatedAt,
		}),
	}).Create(&model)
	if create.Error != nil {
		return r.logError("forecast_repo_save_version_failed", create.Error,
			"user_id", model.UserID,
			"version_id", model.ID,
		)
	}
	return nil
}

func (r *Repository) DemoteActiveVersions(ctx context.Context, userID string, exceptID string) error {
	result := r.db.WithContext(ctx).
		Model(&planningVersionModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("status = ?", "active").
		Where("id <> ?", strings.TrimSpace(exceptID)).
		Updates(map[string]any{
			"status":     "draft",
			"updated_at": time.Now().UTC().UnixMilli(),
		})
	if result.Error != nil {
		return r.logError("forecast_repo_demote_versions_failed", result.Error,
			"user_id", strings.TrimSpace(userID),
			"except_version_id", strings.TrimSpace(exceptID),
		)
	}
	return nil
}

func (r *Repository) GetGoal(ctx context.Context, userID string, goalID string) (ports.RawRecord, bool, error) {
	var row goalModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("id = ?", strings.TrimSpace(goalID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, r.logError("forecast_repo_get_goal_failed", err,
			"user_id", strings.TrimSpace(userID),
			"goal_id", strings.TrimSpace(goalID),
		)
	}
	return row.toRow(), true, nil
}

func (r *Repository) SaveGoal(ctx context.Context, userID string, row ports.RawRecord) error {
	model := goalModelFromRow(userID, row)
	if model.CreatedAt == 0 {
		model.CreatedAt = model.UpdatedAt
	}
	if err := r.ensureSettings(ctx, model.UserID); err != nil {
		return err
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"title":                model.Title,
			"category":             model.Category,
			"status":               model.Status,
			"priority":             model.Priority,
			"ownership":            model.Ownership,
			"target_amount":        model.TargetAmount,
			"current_amount":       model.CurrentAmount,
			"monthly_contribution": model.MonthlyContribution,
			"due_at":               model.DueAt,
			"due_label":            model.DueLabel,
			"currency":             model.Currency,
			"note":                 model.Note,
			"last_event_at":        model.LastEventAt,
			"updated_at":           model.UpdatedAt,
		}),
	}).Create(&model)
	if create.Error != nil {
		return r.logError("forecast_repo_save_goal_failed", create.Error,
			"user_id", model.UserID,
			"goal_id", model.ID,
		)
	}
	return nil
}

func (r *Repository) SaveGoalEvent(ctx context.Context, userID string, row ports.RawRecord) error {
	model := goalEventModelFromRow(userID, row)
	if model.CreatedAt == 0 {
		model.CreatedAt = model.UpdatedAt
	}
	if err := r.ensureSettings(ctx, model.UserID); err != nil {
		return err
	}
	// The event ledger is append-only; replaying the same event id is a no-op.
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&model)
	if create.Error != nil {
		return r.logError("forecast_repo_save_goal_event_failed", create.Error,
			"user_id", model.UserID,
			"goal_id", model.GoalID,
			"goal_event_id", model.ID,
		)
	}
	return nil
}

func (r *Repository) GetEnvelopeByCycleCategory(
	ctx context.Context,
	userID string,
	cycleKey string,
	category string,
) (ports.RawRecord, bool, error) {
	var row envelopeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("cycle_key = ?", strings.TrimSpace(cycleKey)).
		Where("category = ?", strings.TrimSpace(category)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, r.logError("forecast_repo_get_envelope_failed", err,
			"user_id", strings.TrimSpace(userID),
			"cycle_key", strings.TrimSpace(cycleKey),
			"category", strings.TrimSpace(category),
		)
	}
	return row.toRow(), true, nil
}

func (r *Repository) ListEnvelopesByCycle(ctx context.Context, userID string, cycleKey string) ([]ports.RawRecord, error) {
	var rows []envelopeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("cycle_key = ?", strings.TrimSpace(cycleKey)).
		Order("category ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("forecast_repo_list_envelopes_failed", err,
			"user_id", strings.TrimSpace(userID),
			"cycle_key", strings.TrimSpace(cycleKey),
		)
	}
	return toRows(rows), nil
}

func (r *Repository) SaveEnvelope(ctx context.Context, userID string, row ports.RawRecord) error {
	model := envelopeModelFromRow(userID, row)
	if model.CreatedAt == 0 {
		model.CreatedAt = model.UpdatedAt
	}
	if err := r.ensureSettings(ctx, model.UserID); err != nil {
		return err
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"cycle_key":        model.CycleKey,
			"category":         model.Category,
			"planned_amount":   model.PlannedAmount,
			"actual_amount":    model.ActualAmount,
			"carryover_amount": model.CarryoverAmount,
			"ownership":        model.Ownership,
			"status":           model.Status,
			"rollover":         model.Rollover,
			"currency":         model.Currency,
			"updated_at":       model.UpdatedAt,
		}),
	}).Create(&model)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrConflict
		}
		return r.logError("forecast_repo_save_envelope_failed", create.Error,
			"user_id", model.UserID,
			"cycle_key", model.CycleKey,
			"category", model.Category,
		)
	}
	return nil
}

func (r *Repository) SaveState(ctx context.Context, userID string, row ports.RawRecord) error {
	model := financeStateModelFromRow(userID, row)
	if model.CreatedAt == 0 {
		model.CreatedAt = model.UpdatedAt
	}
	if err := r.ensureSettings(ctx, model.UserID); err != nil {
		return err
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":                model.Name,
			"state_kind":          model.StateKind,
			"horizon_months":      model.HorizonMonths,
			"monthly_income":      model.MonthlyIncome,
			"monthly_expenses":    model.MonthlyExpenses,
			"liquid_cash":         model.LiquidCash,
			"assets":              model.Assets,
			"liabilities":         model.Liabilities,
			"starting_net_worth":  model.StartingNetWorth,
			"expected_return_pct": model.ExpectedReturnPct,
			"inflation_pct":       model.InflationPct,
			"currency":            model.Currency,
			"note":                model.Note,
			"updated_at":          model.UpdatedAt,
		}),
	}).Create(&model)
	if create.Error != nil {
		return r.logError("forecast_repo_save_state_failed", create.Error,
			"user_id", model.UserID,
			"state_id", model.ID,
		)
	}
	return nil
}

func (r *Repository) HasSnapshot(ctx context.Context, userID string, cycleKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&monthSnapshotModel{}).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("cycle_key = ?", strings.TrimSpace(cycleKey)).
		Count(&count).
		Error
	if err != nil {
		return false, r.logError("forecast_repo_has_snapshot_failed", err,
			"user_id", strings.TrimSpace(userID),
			"cycle_key", strings.TrimSpace(cycleKey),
		)
	}
	return count > 0, nil
}

func (r *Repository) SaveSnapshot(ctx context.Context, userID string, row ports.RawRecord) error {
	model := monthSnapshotModelFromRow(userID, row)
	if model.CreatedAt == 0 {
		model.CreatedAt = model.UpdatedAt
	}
	if err := r.ensureSettings(ctx, model.UserID); err != nil {
		return err
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&model)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			// A concurrent close already wrote this cycle.
			return nil
		}
		return r.logError("forecast_repo_save_snapshot_failed", create.Error,
			"user_id", model.UserID,
			"cycle_key", model.CycleKey,
		)
	}
	return nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, r.logError("forecast_repo_idempotency_get_failed", err,
			"idempotency_key", strings.TrimSpace(key),
		)
	}
	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", strings.TrimSpace(key)).
			Delete(&idempotencyModel{}).Error; err != nil {
			return ports.IdempotencyRecord{}, false, r.logError("forecast_repo_idempotency_expire_delete_failed", err,
				"idempotency_key", strings.TrimSpace(key),
			)
		}
		return ports.IdempotencyRecord{}, false, nil
	}
	return ports.IdempotencyRecord{
		Key:             row.Key,
		RequestHash:     row.RequestHash,
		ResponsePayload: append([]byte(nil), row.ResponsePayload...),
		ExpiresAt:       row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:             strings.TrimSpace(record.Key),
		RequestHash:     strings.TrimSpace(record.RequestHash),
		ResponsePayload: record.ResponsePayload,
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("forecast_repo_idempotency_put_failed", create.Error, "idempotency_key", row.Key)
	}
	if create.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", row.Key).
		First(&existing).Error; err != nil {
		return r.logError("forecast_repo_idempotency_load_existing_failed", err, "idempotency_key", row.Key)
	}
	if existing.RequestHash != row.RequestHash || !bytes.Equal(existing.ResponsePayload, row.ResponsePayload) {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return r.logError("forecast_repo_append_outbox_marshal_failed", err,
			"event_id", strings.TrimSpace(envelope.EventID),
			"event_type", strings.TrimSpace(envelope.EventType),
		)
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outbox.StatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("forecast_repo_append_outbox_insert_failed", create.Error,
			"outbox_id", row.OutboxID,
		)
	}
	if create.RowsAffected > 0 {
		return nil
	}

	var existing outboxModel
	if err := r.db.WithContext(ctx).
		Select("payload").
		Where("outbox_id = ?", row.OutboxID).
		First(&existing).Error; err != nil {
		return r.logError("forecast_repo_append_outbox_load_existing_failed", err,
			"outbox_id", row.OutboxID,
		)
	}
	if !bytes.Equal(existing.Payload, row.Payload) {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("forecast_repo_list_pending_outbox_failed", err, "limit", limit)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outbox.StatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("forecast_repo_mark_outbox_published_failed", result.Error,
			"outbox_id", strings.TrimSpace(outboxID),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

func (r *Repository) loadRows(ctx context.Context, userID string, event string, dest any) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(dest).Error; err != nil {
		return r.logError(event, err, "user_id", userID)
	}
	return nil
}

func (r *Repository) ensureSettings(ctx context.Context, userID string) error {
	now := time.Now().UTC().UnixMilli()
	row := workspaceSettingModel{
		UserID:    strings.TrimSpace(userID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("forecast_repo_ensure_settings_failed", create.Error, "user_id", row.UserID)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "finance-core/forecast-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("forecast repository operation failed", fields...)
	return err
}

func toRows[M interface{ toRow() ports.RawRecord }](models []M) []ports.RawRecord {
	items := make([]ports.RawRecord, 0, len(models))
	for _, model := range models {
		items = append(items, model.toRow())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

var _ ports.WorkspaceReader = (*Repository)(nil)
var _ ports.PlanningRepository = (*Repository)(nil)
var _ ports.GoalRepository = (*Repository)(nil)
var _ ports.EnvelopeRepository = (*Repository)(nil)
var _ ports.FinanceStateRepository = (*Repository)(nil)
var _ ports.SnapshotWriter = (*Repository)(nil)
var _ ports.IdempotencyStore = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
