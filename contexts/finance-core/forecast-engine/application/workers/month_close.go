package workers

import (
	"context"
	"log/slog"
	"time"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
	"financeos/contexts/finance-core/forecast-engine/domain/services"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

// MonthCloseWorker writes the authoritative month-close snapshot for every
// workspace when a budgeting cycle ends. The snapshot records the baseline
// figures of the cycle that just closed; existing snapshots are never
// overwritten, so reruns are safe.
type MonthCloseWorker struct {
	Workspaces ports.WorkspaceReader
	Snapshots  ports.SnapshotWriter
	Outbox     ports.OutboxWriter
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// RunOnce closes the previous cycle for every owner. Per-owner failures are
// logged and skipped so one broken workspace cannot stall the rest.
func (w MonthCloseWorker) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(w.Logger)
	now := w.now()
	closingCycle := previousCycleKey(now)
	logger.Info("month close cycle started",
		"event", "forecast_month_close_started",
		"module", "finance-core/forecast-engine",
		"layer", "worker",
		"cycle_key", closingCycle,
	)

	owners, err := w.Workspaces.ListOwners(ctx)
	if err != nil {
		logger.Error("month close owner listing failed",
			"event", "forecast_month_close_list_failed",
			"module", "finance-core/forecast-engine",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	closed := 0
	for _, owner := range owners {
		ok, err := w.closeOwner(ctx, owner, closingCycle, now)
		if err != nil {
			logger.Error("month close failed for workspace",
				"event", "forecast_month_close_owner_failed",
				"module", "finance-core/forecast-engine",
				"layer", "worker",
				"user_id", owner,
				"cycle_key", closingCycle,
				"error", err.Error(),
			)
			continue
		}
		if ok {
			closed++
		}
	}

	logger.Info("month close cycle completed",
		"event", "forecast_month_close_completed",
		"module", "finance-core/forecast-engine",
		"layer", "worker",
		"cycle_key", closingCycle,
		"owner_count", len(owners),
		"closed_count", closed,
	)
	return nil
}

func (w MonthCloseWorker) closeOwner(ctx context.Context, owner, closingCycle string, now time.Time) (bool, error) {
	has, err := w.Snapshots.HasSnapshot(ctx, owner, closingCycle)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}

	records, err := w.Workspaces.LoadWorkspace(ctx, owner)
	if err != nil {
		return false, err
	}
	nctx := normalize.Context{BaseCurrency: records.BaseCurrency, Now: now}
	baseline := services.ComputeBaseline(services.BaselineInput{
		BaseCurrency: records.BaseCurrency,
		Incomes:      normalize.Incomes(records.Incomes, nctx),
		Bills:        normalize.Bills(records.Bills, nctx),
		Cards:        normalize.Cards(records.Cards, nctx),
		Loans:        normalize.Loans(records.Loans, nctx),
		Accounts:     normalize.Accounts(records.Accounts, nctx),
		Snapshots:    normalize.MonthSnapshots(records.MonthSnapshots, nctx),
	})

	snapshotID, err := w.IDGen.NewID(ctx)
	if err != nil {
		return false, err
	}
	row := ports.RawRecord{
		"id":       snapshotID,
		"cycleKey": closingCycle,
		"summary": map[string]any{
			"netWorth":         baseline.NetWorth,
			"totalAssets":      baseline.TotalAssets,
			"totalLiabilities": baseline.Liabilities,
			"monthlyIncome":    baseline.MonthlyIncome,
			"monthlyExpenses":  baseline.MonthlyExpenses,
		},
		"note":      "Closed automatically",
		"createdAt": now.UnixMilli(),
		"updatedAt": now.UnixMilli(),
	}
	if err := w.Snapshots.SaveSnapshot(ctx, owner, row); err != nil {
		return false, err
	}
	if err := w.appendMonthClosedEvent(ctx, owner, closingCycle, baseline.NetWorth, now); err != nil {
		return false, err
	}
	return true, nil
}

func (w MonthCloseWorker) appendMonthClosedEvent(ctx context.Context, owner, cycleKey string, netWorth float64, occurredAt time.Time) error {
	if w.Outbox == nil {
		return nil
	}
	eventID, err := w.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newWorkerEnvelope(eventID, "workspace.month.closed", owner, occurredAt, map[string]any{
		"user_id":     owner,
		"cycle_key":   cycleKey,
		"net_worth":   netWorth,
		"occurred_at": occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return w.Outbox.AppendOutbox(ctx, envelope)
}

func (w MonthCloseWorker) now() time.Time {
	now := time.Now().UTC()
	if w.Clock != nil {
		now = w.Clock.Now().UTC()
	}
	return now
}

// previousCycleKey is the cycle that ended immediately before now.
func previousCycleKey(now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -1, 0).Format("2006-01")
}
