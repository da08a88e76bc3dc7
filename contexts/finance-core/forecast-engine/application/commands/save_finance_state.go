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
	"financeos/contexts/finance-core/forecast-engine/ports"
)

// SaveFinanceStateCommand creates or updates one what-if state snapshot.
// A blank StateID creates.
type SaveFinanceStateCommand struct {
	UserID            string
	StateID           string
	Name              string
	Kind              string
	HorizonMonths     int
	MonthlyIncome     float64
	MonthlyExpenses   float64
	LiquidCash        float64
	Assets            float64
	Liabilities       float64
	StartingNetWorth  float64
	ExpectedReturnPct float64
	InflationPct      float64
	Currency          string
	Note              string
}

type SaveFinanceStateResult struct {
	State   entities.FinanceState
	Created bool
}

// SaveFinanceStateUseCase persists finance-state snapshots for scenario
// projection.
type SaveFinanceStateUseCase struct {
	States ports.FinanceStateRepository
	Outbox ports.OutboxWriter
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (uc SaveFinanceStateUseCase) Execute(ctx context.Context, cmd SaveFinanceStateCommand) (SaveFinanceStateResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	userID := strings.TrimSpace(cmd.UserID)
	logger.Info("finance state save started",
		"event", "forecast_state_save_started",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"state_id", strings.TrimSpace(cmd.StateID),
	)
	if userID == "" || strings.TrimSpace(cmd.Name) == "" {
		logger.Warn("finance state save validation failed",
			"event", "forecast_state_save_validation_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
		)
		return SaveFinanceStateResult{}, domainerrors.ErrInvalidInput
	}

	now := uc.now()
	stateID := strings.TrimSpace(cmd.StateID)
	created := stateID == ""
	if created {
		newID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return SaveFinanceStateResult{}, err
		}
		stateID = newID
	}

	row := ports.RawRecord{
		"id":                stateID,
		"name":              strings.TrimSpace(cmd.Name),
		"stateKind":         string(entities.ParseStateKind(cmd.Kind)),
		"monthlyIncome":     roundMoney(cmd.MonthlyIncome),
		"monthlyExpenses":   roundMoney(cmd.MonthlyExpenses),
		"liquidCash":        roundMoney(cmd.LiquidCash),
		"assets":            roundMoney(cmd.Assets),
		"liabilities":       roundMoney(cmd.Liabilities),
		"startingNetWorth":  roundMoney(cmd.StartingNetWorth),
		"expectedReturnPct": cmd.ExpectedReturnPct,
		"inflationPct":      cmd.InflationPct,
		"note":              strings.TrimSpace(cmd.Note),
		"updatedAt":         now.UnixMilli(),
	}
	if cmd.HorizonMonths != 0 {
		row["horizonMonths"] = cmd.HorizonMonths
	}
	if created {
		row["createdAt"] = now.UnixMilli()
	}
	if currency := strings.ToUpper(strings.TrimSpace(cmd.Currency)); currency != "" {
		row["currency"] = currency
	}

	if err := uc.States.SaveState(ctx, userID, row); err != nil {
		logger.Error("finance state save failed",
			"event", "forecast_state_save_failed",
			"module", "finance-core/forecast-engine",
			"layer", "application",
			"user_id", userID,
			"state_id", stateID,
			"error", err.Error(),
		)
		return SaveFinanceStateResult{}, err
	}

	state := normalize.FinanceState(row, normalize.Context{Now: now})
	if err := uc.appendStateEvent(ctx, userID, state, now); err != nil {
		return SaveFinanceStateResult{}, err
	}

	logger.Info("finance state saved",
		"event", "forecast_state_saved",
		"module", "finance-core/forecast-engine",
		"layer", "application",
		"user_id", userID,
		"state_id", state.ID,
		"state_kind", string(state.Kind),
		"created", created,
	)
	return SaveFinanceStateResult{State: state, Created: created}, nil
}

func (uc SaveFinanceStateUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc SaveFinanceStateUseCase) appendStateEvent(
	ctx context.Context,
	userID string,
	state entities.FinanceState,
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
	envelope, err := newWorkspaceEnvelope(eventID, "workspace.state.saved", userID, occurredAt, map[string]any{
		"state_id":    state.ID,
		"user_id":     userID,
		"state_kind":  string(state.Kind),
		"name":        state.Name,
		"occurred_at": occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}
