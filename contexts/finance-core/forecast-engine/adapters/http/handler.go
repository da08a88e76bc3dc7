package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "financeos/contexts/finance-core/forecast-engine/application"
	"financeos/contexts/finance-core/forecast-engine/application/commands"
	"financeos/contexts/finance-core/forecast-engine/application/queries"
	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	httptransport "financeos/contexts/finance-core/forecast-engine/transport/http"
)

type Handler struct {
	Forecast   queries.WorkspaceForecastUseCase
	Plans      commands.SavePlanningVersionUseCase
	GoalEvents commands.RecordGoalEventUseCase
	Envelopes  commands.UpsertEnvelopeUseCase
	States     commands.SaveFinanceStateUseCase
	Logger     *slog.Logger
}

// WorkspaceForecastHandler godoc
// @Summary Get workspace forecast
// @Description Returns normalized workspace collections plus the baseline, scenario projections, goal forecasts, envelope rollup, and fragility scores for one cycle.
// @Tags forecast-engine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-User-Id header string true "Workspace owner id"
// @Param cycle_key query string false "Cycle key (YYYY-MM)"
// @Param display_currency query string false "Display currency override"
// @Param locale query string false "Locale override"
// @Success 200 {object} httptransport.WorkspaceViewResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/workspace/v1/forecast [get]
func (h Handler) WorkspaceForecastHandler(
	ctx context.Context,
	userID string,
	req httptransport.WorkspaceForecastRequest,
) (httptransport.WorkspaceViewResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("workspace forecast request received",
		"event", "http_workspace_forecast_received",
		"module", "finance-core/forecast-engine",
		"layer", "transport",
		"cycle_key", req.CycleKey,
	)

	view, err := h.Forecast.Execute(ctx, queries.ForecastRequest{
		UserID:          userID,
		CycleKey:        req.CycleKey,
		DisplayCurrency: req.DisplayCurrency,
		Locale:          req.Locale,
	})
	if err != nil {
		logger.Error("workspace forecast request failed",
			"event", "http_workspace_forecast_failed",
			"module", "finance-core/forecast-engine",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.WorkspaceViewResponse{}, err
	}

	return mapWorkspaceView(view), nil
}

// DefaultWorkspaceHandler serves the forecast route without a user header.
// The payload keeps the exact response shape with empty collections so
// pre-login clients can render the workspace skeleton.
func (h Handler) DefaultWorkspaceHandler(_ context.Context, baseCurrency string) httptransport.WorkspaceViewResponse {
	now := time.Now().UTC()
	if h.Forecast.Clock != nil {
		now = h.Forecast.Clock.Now().UTC()
	}
	return mapWorkspaceView(queries.DefaultWorkspaceView(baseCurrency, now))
}

// SavePlanningVersionHandler godoc
// @Summary Save planning version
// @Description Creates or updates a planning version. Activating a version demotes every other active version to draft.
// @Tags forecast-engine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-User-Id header string true "Workspace owner id"
// @Param request body httptransport.SavePlanningVersionRequest true "Planning version payload"
// @Success 200 {object} httptransport.SavePlanningVersionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/workspace/v1/planning-versions [post]
func (h Handler) SavePlanningVersionHandler(
	ctx context.Context,
	userID string,
	req httptransport.SavePlanningVersionRequest,
) (httptransport.SavePlanningVersionResponse, error) {
	cmd := commands.SavePlanningVersionCommand{
		UserID:          userID,
		VersionID:       req.VersionID,
		CycleKey:        req.CycleKey,
		Name:            req.Name,
		VersionKey:      req.VersionKey,
		Status:          req.Status,
		ScenarioType:    req.ScenarioType,
		PlannedIncome:   req.PlannedIncome,
		PlannedExpenses: req.PlannedExpenses,
		PlannedSavings:  req.PlannedSavings,
		PlannedNet:      req.PlannedNet,
		HorizonMonths:   req.HorizonMonths,
		LinkedStateID:   req.LinkedStateID,
		Note:            req.Note,
	}
	if req.Recurring != nil {
		cmd.Recurring = &commands.RecurringInput{
			Enabled:        req.Recurring.Enabled,
			Name:           req.Recurring.Name,
			IntervalMonths: req.Recurring.IntervalMonths,
			StartCycleKey:  req.Recurring.StartCycleKey,
			Tags:           req.Recurring.Tags,
		}
	}

	result, err := h.Plans.Execute(ctx, cmd)
	if err != nil {
		return httptransport.SavePlanningVersionResponse{}, err
	}
	return httptransport.SavePlanningVersionResponse{
		Version: mapPlanningVersion(result.Version),
		Created: result.Created,
	}, nil
}

// RecordGoalEventHandler godoc
// @Summary Record goal event
// @Description Appends a contribution, withdrawal, adjustment, or milestone entry to a goal's ledger and moves its current amount.
// @Tags forecast-engine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-User-Id header string true "Workspace owner id"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param goal_id path string true "Goal id"
// @Param request body httptransport.RecordGoalEventRequest true "Goal event payload"
// @Success 200 {object} httptransport.RecordGoalEventResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/workspace/v1/goals/{goal_id}/events [post]
func (h Handler) RecordGoalEventHandler(
	ctx context.Context,
	userID string,
	goalID string,
	idempotencyKey string,
	req httptransport.RecordGoalEventRequest,
) (httptransport.RecordGoalEventResponse, error) {
	result, err := h.GoalEvents.Execute(ctx, commands.RecordGoalEventCommand{
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
		GoalID:         goalID,
		EventType:      req.EventType,
		Amount:         req.Amount,
		Note:           req.Note,
		OccurredAt:     req.OccurredAt,
	})
	if err != nil {
		return httptransport.RecordGoalEventResponse{}, err
	}
	return httptransport.RecordGoalEventResponse{
		Goal:     mapGoal(result.Goal),
		Event:    mapGoalEvent(result.Event),
		Replayed: result.Replayed,
	}, nil
}

// UpsertEnvelopeHandler godoc
// @Summary Upsert budget envelope
// @Description Creates or updates the envelope keyed by cycle and category, rederiving remaining amount, utilization, and funding status.
// @Tags forecast-engine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-User-Id header string true "Workspace owner id"
// @Param request body httptransport.UpsertEnvelopeRequest true "Envelope payload"
// @Success 200 {object} httptransport.UpsertEnvelopeResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/workspace/v1/envelopes [put]
func (h Handler) UpsertEnvelopeHandler(
	ctx context.Context,
	userID string,
	req httptransport.UpsertEnvelopeRequest,
) (httptransport.UpsertEnvelopeResponse, error) {
	result, err := h.Envelopes.Execute(ctx, commands.UpsertEnvelopeCommand{
		UserID:          userID,
		CycleKey:        req.CycleKey,
		Category:        req.Category,
		PlannedAmount:   req.PlannedAmount,
		ActualAmount:    req.ActualAmount,
		CarryoverAmount: req.CarryoverAmount,
		Ownership:       req.Ownership,
		Rollover:        req.Rollover,
		Currency:        req.Currency,
	})
	if err != nil {
		return httptransport.UpsertEnvelopeResponse{}, err
	}
	return httptransport.UpsertEnvelopeResponse{
		Envelope: mapEnvelope(result.Envelope),
		Created:  result.Created,
	}, nil
}

// SaveFinanceStateHandler godoc
// @Summary Save finance state
// @Description Creates or updates a named finance state used for what-if scenario projection.
// @Tags forecast-engine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-User-Id header string true "Workspace owner id"
// @Param request body httptransport.SaveFinanceStateRequest true "Finance state payload"
// @Success 200 {object} httptransport.SaveFinanceStateResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /api/workspace/v1/finance-states [post]
func (h Handler) SaveFinanceStateHandler(
	ctx context.Context,
	userID string,
	req httptransport.SaveFinanceStateRequest,
) (httptransport.SaveFinanceStateResponse, error) {
	result, err := h.States.Execute(ctx, commands.SaveFinanceStateCommand{
		UserID:            userID,
		StateID:           req.StateID,
		Name:              req.Name,
		Kind:              req.Kind,
		HorizonMonths:     req.HorizonMonths,
		MonthlyIncome:     req.MonthlyIncome,
		MonthlyExpenses:   req.MonthlyExpenses,
		LiquidCash:        req.LiquidCash,
		Assets:            req.Assets,
		Liabilities:       req.Liabilities,
		StartingNetWorth:  req.StartingNetWorth,
		ExpectedReturnPct: req.ExpectedReturnPct,
		InflationPct:      req.InflationPct,
		Currency:          req.Currency,
		Note:              req.Note,
	})
	if err != nil {
		return httptransport.SaveFinanceStateResponse{}, err
	}
	return httptransport.SaveFinanceStateResponse{
		State:   mapFinanceState(result.State),
		Created: result.Created,
	}, nil
}

// mapWorkspaceView keeps every collection non-null so the default payload
// and the authenticated payload share one client-visible shape.
func mapWorkspaceView(view entities.WorkspaceView) httptransport.WorkspaceViewResponse {
	return httptransport.WorkspaceViewResponse{
		BaseCurrency:       view.BaseCurrency,
		DisplayCurrency:    view.DisplayCurrency,
		Locale:             view.Locale,
		SelectedCycleKey:   view.SelectedCycleKey,
		ActiveVersionID:    view.ActiveVersionID,
		AvailableCycleKeys: copyStrings(view.AvailableCycleKeys),
		Categories:         copyStrings(view.Categories),
		Currencies:         copyStrings(view.Currencies),
		AccountOptions:     mapAccountOptions(view.AccountOptions),
		Incomes:            mapIncomes(view.Incomes),
		Bills:              mapBills(view.Bills),
		Cards:              mapCards(view.Cards),
		Loans:              mapLoans(view.Loans),
		Accounts:           mapAccounts(view.Accounts),
		MonthSnapshots:     mapMonthSnapshots(view.MonthSnapshots),
		PlanningVersions:   mapPlanningVersions(view.PlanningVersions),
		PlanningTasks:      mapPlanningTasks(view.PlanningTasks),
		FinanceStates:      mapFinanceStates(view.FinanceStates),
		Goals:              mapGoals(view.Goals),
		Envelopes:          mapEnvelopes(view.Envelopes),
		CurrencyCatalog:    mapCurrencyCatalog(view.CurrencyCatalog),
		Baseline:           mapBaseline(view.Baseline),
		Scenarios:          mapScenarios(view.Scenarios),
		GoalForecasts:      mapGoalForecasts(view.GoalForecasts),
		EnvelopeSummary:    mapEnvelopeSummary(view.EnvelopeSummary),
		TaskSummary:        mapTaskSummary(view.TaskSummary),
		Fragility:          mapFragility(view.Fragility),
		SpendingLens:       mapSpendingLens(view.SpendingLens),
		GeneratedAt:        view.GeneratedAt,
	}
}

func mapIncomes(incomes []entities.IncomeSource) []httptransport.IncomeItem {
	items := make([]httptransport.IncomeItem, 0, len(incomes))
	for _, income := range incomes {
		items = append(items, httptransport.IncomeItem{
			ID:             income.ID,
			Name:           income.Name,
			Amount:         income.Amount,
			Cadence:        string(income.Cadence),
			CustomInterval: income.CustomInterval,
			CustomUnit:     income.CustomUnit,
			ReceivedDay:    income.ReceivedDay,
			Currency:       income.Currency,
			Note:           income.Note,
			CreatedAt:      income.CreatedAt,
			UpdatedAt:      income.UpdatedAt,
		})
	}
	return items
}

func mapBills(bills []entities.Bill) []httptransport.BillItem {
	items := make([]httptransport.BillItem, 0, len(bills))
	for _, bill := range bills {
		items = append(items, httptransport.BillItem{
			ID:             bill.ID,
			Name:           bill.Name,
			Category:       bill.Category,
			Amount:         bill.Amount,
			Cadence:        string(bill.Cadence),
			CustomInterval: bill.CustomInterval,
			CustomUnit:     bill.CustomUnit,
			DueDay:         bill.DueDay,
			Currency:       bill.Currency,
			Note:           bill.Note,
			CreatedAt:      bill.CreatedAt,
			UpdatedAt:      bill.UpdatedAt,
		})
	}
	return items
}

func mapCards(cards []entities.CardAccount) []httptransport.CardItem {
	items := make([]httptransport.CardItem, 0, len(cards))
	for _, card := range cards {
		items = append(items, httptransport.CardItem{
			ID:             card.ID,
			Name:           card.Name,
			MinimumPayment: card.MinimumPayment,
			UsedLimit:      card.UsedLimit,
			CreditLimit:    card.CreditLimit,
			DueDay:         card.DueDay,
			Currency:       card.Currency,
			CreatedAt:      card.CreatedAt,
			UpdatedAt:      card.UpdatedAt,
		})
	}
	return items
}

func mapLoans(loans []entities.LoanAccount) []httptransport.LoanItem {
	items := make([]httptransport.LoanItem, 0, len(loans))
	for _, loan := range loans {
		items = append(items, httptransport.LoanItem{
			ID:             loan.ID,
			Name:           loan.Name,
			Balance:        loan.Balance,
			MinimumPayment: loan.MinimumPayment,
			DueDay:         loan.DueDay,
			Currency:       loan.Currency,
			Note:           loan.Note,
			CreatedAt:      loan.CreatedAt,
			UpdatedAt:      loan.UpdatedAt,
		})
	}
	return items
}

func mapAccounts(accounts []entities.Account) []httptransport.AccountItem {
	items := make([]httptransport.AccountItem, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, httptransport.AccountItem{
			ID:        account.ID,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   account.Balance,
			Liquid:    account.Liquid,
			Currency:  account.Currency,
			CreatedAt: account.CreatedAt,
			UpdatedAt: account.UpdatedAt,
		})
	}
	return items
}

func mapMonthSnapshots(snapshots []entities.MonthCloseSnapshot) []httptransport.MonthSnapshotItem {
	items := make([]httptransport.MonthSnapshotItem, 0, len(snapshots))
	for _, snapshot := range snapshots {
		items = append(items, httptransport.MonthSnapshotItem{
			ID:       snapshot.ID,
			CycleKey: snapshot.CycleKey,
			Summary: httptransport.SnapshotSummaryView{
				NetWorth:         snapshot.Summary.NetWorth,
				TotalAssets:      snapshot.Summary.TotalAssets,
				TotalLiabilities: snapshot.Summary.TotalLiabilities,
				MonthlyIncome:    snapshot.Summary.MonthlyIncome,
				MonthlyExpenses:  snapshot.Summary.MonthlyExpenses,
			},
			Note:      snapshot.Note,
			CreatedAt: snapshot.CreatedAt,
			UpdatedAt: snapshot.UpdatedAt,
		})
	}
	return items
}

func mapPlanningVersions(versions []entities.PlanningVersion) []httptransport.PlanningVersionItem {
	items := make([]httptransport.PlanningVersionItem, 0, len(versions))
	for _, version := range versions {
		items = append(items, mapPlanningVersion(version))
	}
	return items
}

func mapPlanningVersion(version entities.PlanningVersion) httptransport.PlanningVersionItem {
	return httptransport.PlanningVersionItem{
		ID:              version.ID,
		CycleKey:        version.CycleKey,
		Name:            version.Name,
		VersionKey:      version.VersionKey,
		Status:          string(version.Status),
		ScenarioType:    string(version.ScenarioType),
		PlannedIncome:   version.PlannedIncome,
		PlannedExpenses: version.PlannedExpenses,
		PlannedSavings:  version.PlannedSavings,
		PlannedNet:      version.PlannedNet,
		HorizonMonths:   version.HorizonMonths,
		LinkedStateID:   version.LinkedStateID,
		Note:            version.Note,
		Recurring: httptransport.RecurringScenarioView{
			Enabled:        version.Recurring.Enabled,
			Name:           version.Recurring.Name,
			IntervalMonths: version.Recurring.IntervalMonths,
			StartCycleKey:  version.Recurring.StartCycleKey,
			Tags:           copyStrings(version.Recurring.Tags),
		},
		TaskCounts: httptransport.TaskCountsView{
			Total: version.TaskCounts.Total,
			Open:  version.TaskCounts.Open,
			Done:  version.TaskCounts.Done,
		},
		CreatedAt: version.CreatedAt,
		UpdatedAt: version.UpdatedAt,
	}
}

func mapPlanningTasks(tasks []entities.PlanningTask) []httptransport.PlanningTaskItem {
	items := make([]httptransport.PlanningTaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, httptransport.PlanningTaskItem{
			ID:                task.ID,
			PlanningVersionID: task.PlanningVersionID,
			Title:             task.Title,
			Status:            string(task.Status),
			Priority:          string(task.Priority),
			OwnerScope:        string(task.OwnerScope),
			DueAt:             task.DueAt,
			ImpactMonthly:     task.ImpactMonthly,
			Note:              task.Note,
			LinkedEntityType:  task.LinkedEntityType,
			LinkedEntityID:    task.LinkedEntityID,
			CreatedAt:         task.CreatedAt,
			UpdatedAt:         task.UpdatedAt,
		})
	}
	return items
}

func mapFinanceStates(states []entities.FinanceState) []httptransport.FinanceStateItem {
	items := make([]httptransport.FinanceStateItem, 0, len(states))
	for _, state := range states {
		items = append(items, mapFinanceState(state))
	}
	return items
}

func mapFinanceState(state entities.FinanceState) httptransport.FinanceStateItem {
	return httptransport.FinanceStateItem{
		ID:                state.ID,
		Name:              state.Name,
		Kind:              string(state.Kind),
		HorizonMonths:     state.HorizonMonths,
		MonthlyIncome:     state.MonthlyIncome,
		MonthlyExpenses:   state.MonthlyExpenses,
		LiquidCash:        state.LiquidCash,
		Assets:            state.Assets,
		Liabilities:       state.Liabilities,
		StartingNetWorth:  state.StartingNetWorth,
		ExpectedReturnPct: state.ExpectedReturnPct,
		InflationPct:      state.InflationPct,
		Currency:          state.Currency,
		Note:              state.Note,
		CreatedAt:         state.CreatedAt,
		UpdatedAt:         state.UpdatedAt,
	}
}

func mapGoals(goals []entities.Goal) []httptransport.GoalItem {
	items := make([]httptransport.GoalItem, 0, len(goals))
	for _, goal := range goals {
		items = append(items, mapGoal(goal))
	}
	return items
}

func mapGoal(goal entities.Goal) httptransport.GoalItem {
	return httptransport.GoalItem{
		ID:                  goal.ID,
		Title:               goal.Title,
		Category:            goal.Category,
		Status:              string(goal.Status),
		Priority:            string(goal.Priority),
		Ownership:           string(goal.Ownership),
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		MonthlyContribution: goal.MonthlyContribution,
		DueAt:               goal.DueAt,
		DueLabel:            goal.DueLabel,
		Currency:            goal.Currency,
		Note:                goal.Note,
		ProgressPct:         goal.ProgressPct,
		RemainingAmount:     goal.RemainingAmount,
		MonthsToTarget:      goal.MonthsToTarget,
		LastEventAt:         goal.LastEventAt,
		RecentEvents:        mapGoalEvents(goal.RecentEvents),
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}

func mapGoalEvents(events []entities.GoalEvent) []httptransport.GoalEventItem {
	items := make([]httptransport.GoalEventItem, 0, len(events))
	for _, event := range events {
		items = append(items, mapGoalEvent(event))
	}
	return items
}

func mapGoalEvent(event entities.GoalEvent) httptransport.GoalEventItem {
	return httptransport.GoalEventItem{
		ID:         event.ID,
		GoalID:     event.GoalID,
		EventType:  string(event.EventType),
		Amount:     event.Amount,
		Note:       event.Note,
		OccurredAt: event.OccurredAt,
		CreatedAt:  event.CreatedAt,
		UpdatedAt:  event.UpdatedAt,
	}
}

func mapEnvelopes(envelopes []entities.EnvelopeBudget) []httptransport.EnvelopeItem {
	items := make([]httptransport.EnvelopeItem, 0, len(envelopes))
	for _, envelope := range envelopes {
		items = append(items, mapEnvelope(envelope))
	}
	return items
}

func mapEnvelope(envelope entities.EnvelopeBudget) httptransport.EnvelopeItem {
	return httptransport.EnvelopeItem{
		ID:              envelope.ID,
		CycleKey:        envelope.CycleKey,
		Category:        envelope.Category,
		PlannedAmount:   envelope.PlannedAmount,
		ActualAmount:    envelope.ActualAmount,
		CarryoverAmount: envelope.CarryoverAmount,
		RemainingAmount: envelope.RemainingAmount,
		UtilizationPct:  envelope.UtilizationPct,
		Ownership:       string(envelope.Ownership),
		Status:          string(envelope.Status),
		Rollover:        envelope.Rollover,
		Currency:        envelope.Currency,
		CreatedAt:       envelope.CreatedAt,
		UpdatedAt:       envelope.UpdatedAt,
	}
}

func mapCurrencyCatalog(catalog []entities.CurrencyInfo) []httptransport.CurrencyItem {
	items := make([]httptransport.CurrencyItem, 0, len(catalog))
	for _, currency := range catalog {
		items = append(items, httptransport.CurrencyItem{
			Code:   currency.Code,
			Symbol: currency.Symbol,
			Name:   currency.Name,
		})
	}
	return items
}

func mapAccountOptions(options []entities.AccountOption) []httptransport.AccountOptionItem {
	items := make([]httptransport.AccountOptionItem, 0, len(options))
	for _, option := range options {
		items = append(items, httptransport.AccountOptionItem{
			ID:       option.ID,
			Name:     option.Name,
			Type:     option.Type,
			Balance:  option.Balance,
			Currency: option.Currency,
		})
	}
	return items
}

func mapBaseline(baseline entities.CoreBaseline) httptransport.BaselineView {
	return httptransport.BaselineView{
		BaseCurrency:        baseline.BaseCurrency,
		MonthlyIncome:       baseline.MonthlyIncome,
		MonthlyExpenses:     baseline.MonthlyExpenses,
		MonthlyBills:        baseline.MonthlyBills,
		MonthlyCardMinimums: baseline.MonthlyCardMinimums,
		MonthlyLoanMinimums: baseline.MonthlyLoanMinimums,
		MonthlyNet:          baseline.MonthlyNet,
		LiquidCash:          baseline.LiquidCash,
		TotalAssets:         baseline.TotalAssets,
		Liabilities:         baseline.Liabilities,
		NetWorth:            baseline.NetWorth,
	}
}

func mapScenarios(scenarios []entities.ForecastScenario) []httptransport.ScenarioItem {
	items := make([]httptransport.ScenarioItem, 0, len(scenarios))
	for _, scenario := range scenarios {
		items = append(items, httptransport.ScenarioItem{
			ID:                  scenario.ID,
			Label:               scenario.Label,
			ScenarioLabel:       scenario.ScenarioLabel,
			Source:              string(scenario.Source),
			HorizonMonths:       scenario.HorizonMonths,
			MonthlyIncome:       scenario.MonthlyIncome,
			MonthlyExpenses:     scenario.MonthlyExpenses,
			MonthlyNet:          scenario.MonthlyNet,
			ProjectedNetWorth:   scenario.ProjectedNetWorth,
			ProjectedLiquidCash: scenario.ProjectedLiquidCash,
			RunwayMonths:        scenario.RunwayMonths,
			ExpectedReturnPct:   scenario.ExpectedReturnPct,
			InflationPct:        scenario.InflationPct,
			Note:                scenario.Note,
			LinkedID:            scenario.LinkedID,
			RecurringSummary:    scenario.RecurringSummary,
		})
	}
	return items
}

func mapGoalForecasts(forecasts []entities.GoalForecast) []httptransport.GoalForecastItem {
	items := make([]httptransport.GoalForecastItem, 0, len(forecasts))
	for _, forecast := range forecasts {
		items = append(items, httptransport.GoalForecastItem{
			GoalID:                forecast.GoalID,
			Title:                 forecast.Title,
			TargetAmount:          forecast.TargetAmount,
			CurrentAmount:         forecast.CurrentAmount,
			MonthlyContribution:   forecast.MonthlyContribution,
			RemainingAmount:       forecast.RemainingAmount,
			ProgressPct:           forecast.ProgressPct,
			MonthsToTarget:        forecast.MonthsToTarget,
			ProjectedCompletionAt: forecast.ProjectedCompletionAt,
			DueAt:                 forecast.DueAt,
			OnTrack:               forecast.OnTrack,
		})
	}
	return items
}

func mapEnvelopeSummary(rollup entities.EnvelopeRollup) httptransport.EnvelopeSummaryView {
	return httptransport.EnvelopeSummaryView{
		CycleKey:       rollup.CycleKey,
		Planned:        rollup.Planned,
		Actual:         rollup.Actual,
		Carryover:      rollup.Carryover,
		Remaining:      rollup.Remaining,
		UtilizationPct: rollup.UtilizationPct,
		Count:          rollup.Count,
	}
}

func mapTaskSummary(tally entities.TaskTally) httptransport.TaskSummaryView {
	return httptransport.TaskSummaryView{
		Todo:       tally.Todo,
		InProgress: tally.InProgress,
		Blocked:    tally.Blocked,
		Done:       tally.Done,
	}
}

func mapFragility(fragility entities.FragilityResult) httptransport.FragilityView {
	rows := make([]httptransport.DueRowItem, 0, len(fragility.DueRows))
	for _, row := range fragility.DueRows {
		rows = append(rows, httptransport.DueRowItem{
			Name:   row.Name,
			Kind:   row.Kind,
			Day:    row.Day,
			Amount: row.Amount,
		})
	}
	return httptransport.FragilityView{
		Score:           fragility.Score,
		Level:           fragility.Level,
		DueClusterScore: fragility.DueClusterScore,
		LowBufferScore:  fragility.LowBufferScore,
		LowBufferDays:   fragility.LowBufferDays,
		DueRows:         rows,
		Insights:        copyStrings(fragility.Insights),
	}
}

func mapSpendingLens(lens entities.SpendingLens) httptransport.SpendingLensView {
	return httptransport.SpendingLensView{
		Fixed:             lens.Fixed,
		Variable:          lens.Variable,
		Controllable:      lens.Controllable,
		Total:             lens.Total,
		FixedShare:        lens.FixedShare,
		VariableShare:     lens.VariableShare,
		ControllableShare: lens.ControllableShare,
	}
}

func copyStrings(values []string) []string {
	out := make([]string, 0, len(values))
	return append(out, values...)
}
