package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
	"financeos/contexts/finance-core/forecast-engine/domain/services"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

// RecurringInput configures the repeat schedule of a planning version.
type RecurringInput struct {
	Enabled        bool
	Name           string
	IntervalMonths int
	StartCycleKey  string
	Tags           []string
}

// SavePlanningVersionCommand creates or updates one planning version.
// A blank VersionID creates; a blank CycleKey lands in the current cycle.
type SavePlanningVersionCommand struct {
	UserID          string
	VersionID       string
	CycleKey        string
	Name            string
	VersionKey      string
	Status          string
	ScenarioType    string
	PlannedIncome   float64
	PlannedExpenses float64
	PlannedSavings  float64
	PlannedNet      float64
	HorizonMonths   int
	LinkedStateID   string
	Note            string
	Recurring       *RecurringInput
}

type SavePlanningVersionResult struct {
	Version entities.PlanningVersion
	Created bool
}

// SavePlanningVersionUseCase persists planning versions and keeps the
// one-active-plan-per-user rule: activating a version demotes every other
// active version back to draft.
type SavePlanningVersionUseCase struct {
	Planning ports.PlanningRepository
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc SavePlanningVersionUseCase) Execute(ctx context.Context, cmd SavePlanningVersionCommand) (SavePlanningVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	userID := strings.TrimSpace(cmd.UserID)
	logger.Info("planning version save started",
		"event", "forecast_plan_save_started",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"version_id", strings.TrimSpace(cmd.VersionID),
		"cycle_key", strings.TrimSpace(cmd.CycleKey),
	)
	if userID == "" || strings.TrimSpace(cmd.Name) == "" {
		logger.Warn("planning version save validation failed",
			"event", "forecast_plan_save_validation_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
		)
		return SavePlanningVersionResult{}, domainerrors.ErrInvalidInput
	}

	now := uc.now()
	cycleKey := strings.TrimSpace(cmd.CycleKey)
	if cycleKey == "" {
		cycleKey = services.CurrentCycleKey(now)
	} else if !normalize.IsCycleKey(cycleKey) {
		logger.Warn("planning version save rejected malformed cycle key",
			"event", "forecast_plan_save_invalid_cycle",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"cycle_key", cycleKey,
		)
		return SavePlanningVersionResult{}, domainerrors.ErrInvalidCycleKey
	}

	versionID := strings.TrimSpace(cmd.VersionID)
	created := versionID == ""
	if created {
		newID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return SavePlanningVersionResult{}, err
		}
		versionID = newID
	}

	row := ports.RawRecord{
		"id":              versionID,
		"cycleKey":        cycleKey,
		"name":            strings.TrimSpace(cmd.Name),
		"versionKey":      strings.TrimSpace(cmd.VersionKey),
		"status":          string(entities.ParseVersionStatus(cmd.Status)),
		"scenarioType":    string(entities.ParseScenarioType(cmd.ScenarioType)),
		"plannedIncome":   cmd.PlannedIncome,
		"plannedExpenses": cmd.PlannedExpenses,
		"plannedSavings":  cmd.PlannedSavings,
		"plannedNet":      cmd.PlannedNet,
		"linkedStateId":   strings.TrimSpace(cmd.LinkedStateID),
		"note":            strings.TrimSpace(cmd.Note),
		"updatedAt":       now.UnixMilli(),
	}
	if cmd.HorizonMonths != 0 {
		row["horizonMonths"] = cmd.HorizonMonths
	}
	if created {
		row["createdAt"] = now.UnixMilli()
	}
	if cmd.Recurring != nil {
		row["recurringScenario"] = map[string]any{
			"enabled":        cmd.Recurring.Enabled,
			"name":           strings.TrimSpace(cmd.Recurring.Name),
			"intervalMonths": cmd.Recurring.IntervalMonths,
			"startCycleKey":  strings.TrimSpace(cmd.Recurring.StartCycleKey),
			"tags":           stringsToAny(cmd.Recurring.Tags),
		}
	}

	if err := uc.Planning.SaveVersion(ctx, userID, row); err != nil {
		logger.Error("planning version save failed",
			"event", "forecast_plan_save_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"version_id", versionID,
			"error", err.Error(),
		)
		return SavePlanningVersionResult{}, err
	}

	version := normalize.PlanningVersion(row, normalize.Context{Now: now})
	if version.Status == entities.VersionStatusActive {
		if err := uc.Planning.DemoteActiveVersions(ctx, userID, versionID); err != nil {
			return SavePlanningVersionResult{}, err
		}
	}

	if err := uc.appendVersionEvent(ctx, userID, version, now); err != nil {
		return SavePlanningVersionResult{}, err
	}

	logger.Info("planning version saved",
		"event", "forecast_plan_saved",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"version_id", version.ID,
		"cycle_key", version.CycleKey,
		"status", string(version.Status),
		"created", created,
	)
	return SavePlanningVersionResult{Version: version, Created: created}, nil
}

func (uc SavePlanningVersionUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc SavePlanningVersionUseCase) appendVersionEvent(
	ctx context.Context,
	userID string,
	version entities.PlanningVersion,
	occurredAt time.Time,
) error {
	// Outbox is optional for pure read/test wiring, so nil is treated as no-op.
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newWorkspaceEnvelope(eventID, "workspace.plan.version_saved", userID, occurredAt, map[string]any{
		"version_id":    version.ID,
		"user_id":       userID,
		"cycle_key":     version.CycleKey,
		"status":        string(version.Status),
		"scenario_type": string(version.ScenarioType),
		"planned_net":   version.PlannedNet,
		"occurred_at":   occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

func stringsToAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}
	return out
}
