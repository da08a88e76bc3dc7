package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
	"financeos/contexts/finance-core/forecast-engine/domain/services"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

const (
	defaultBaseCurrency   = "USD"
	defaultLocale         = "en-US"
	maxRecurringScenarios = 4
)

// WorkspaceForecastUseCase assembles the full workspace forecast payload for
// one user: normalized sorted collections, the baseline, every scenario
// projection, goal forecasts, the envelope rollup, and the risk scores.
type WorkspaceForecastUseCase struct {
	Workspaces ports.WorkspaceReader
	Clock      ports.Clock
}

// ForecastRequest carries the caller-resolved view parameters. CycleKey may
// be blank or malformed; the fallback chain picks the cycle in that case.
type ForecastRequest struct {
	UserID          string
	CycleKey        string
	DisplayCurrency string
	Locale          string
}

func (uc WorkspaceForecastUseCase) Execute(ctx context.Context, req ForecastRequest) (entities.WorkspaceView, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return entities.WorkspaceView{}, domainerrors.ErrInvalidInput
	}
	records, err := uc.Workspaces.LoadWorkspace(ctx, userID)
	if err != nil {
		return entities.WorkspaceView{}, err
	}
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return assembleView(records, req, now), nil
}

// assembleView is the pure assembly path shared by the authenticated
// forecast and the unauthenticated default payload.
func assembleView(records ports.WorkspaceRecords, req ForecastRequest, now time.Time) entities.WorkspaceView {
	baseCurrency := strings.ToUpper(strings.TrimSpace(records.BaseCurrency))
	if baseCurrency == "" {
		baseCurrency = defaultBaseCurrency
	}
	nctx := normalize.Context{BaseCurrency: baseCurrency, Now: now}

	incomes := normalize.Incomes(records.Incomes, nctx)
	bills := normalize.Bills(records.Bills, nctx)
	cards := normalize.Cards(records.Cards, nctx)
	loans := normalize.Loans(records.Loans, nctx)
	accounts := normalize.Accounts(records.Accounts, nctx)
	snapshots := normalize.MonthSnapshots(records.MonthSnapshots, nctx)
	versions := normalize.PlanningVersions(records.PlanningVersions, nctx)
	tasks := normalize.PlanningTasks(records.PlanningTasks, nctx)
	states := normalize.FinanceStates(records.FinanceStates, nctx)
	goalEvents := normalize.GoalEvents(records.GoalEvents, nctx)
	goals := normalize.Goals(records.Goals, goalEvents, nctx)
	envelopes := normalize.Envelopes(records.Envelopes, nctx)
	catalog := normalize.Currencies(records.Currencies, nctx)

	services.MostRecentFirst(incomes, func(item entities.IncomeSource) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(bills, func(item entities.Bill) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(cards, func(item entities.CardAccount) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(loans, func(item entities.LoanAccount) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(accounts, func(item entities.Account) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(snapshots, func(item entities.MonthCloseSnapshot) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(versions, func(item entities.PlanningVersion) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.MostRecentFirst(states, func(item entities.FinanceState) (int64, int64) { return item.UpdatedAt, item.CreatedAt })
	services.SortPlanningTasks(tasks)
	services.SortGoals(goals)
	services.SortEnvelopes(envelopes)

	attachTaskCounts(versions, tasks)

	selectedCycle := services.ResolveCycleKey(req.CycleKey, versions, now)
	activeVersion, hasActive := services.SelectActiveVersion(versions, selectedCycle)

	baseline := services.ComputeBaseline(services.BaselineInput{
		BaseCurrency: baseCurrency,
		Incomes:      incomes,
		Bills:        bills,
		Cards:        cards,
		Loans:        loans,
		Accounts:     accounts,
		Snapshots:    snapshots,
	})

	scenarios := []entities.ForecastScenario{services.CoreScenario(baseline)}
	if hasActive {
		scenarios = append(scenarios, services.FromPlanningVersion(activeVersion, baseline))
	}
	recurringCount := 0
	for _, version := range versions {
		if recurringCount == maxRecurringScenarios {
			break
		}
		if hasActive && version.ID == activeVersion.ID {
			continue
		}
		if !version.Recurring.Enabled {
			continue
		}
		scenarios = append(scenarios, services.FromPlanningVersion(version, baseline))
		recurringCount++
	}
	for _, state := range states {
		scenarios = append(scenarios, services.FromFinanceState(state, baseline))
	}

	view := entities.WorkspaceView{
		BaseCurrency:       baseCurrency,
		DisplayCurrency:    resolveDisplayCurrency(req.DisplayCurrency, baseCurrency),
		Locale:             resolveLocale(req.Locale),
		SelectedCycleKey:   selectedCycle,
		AvailableCycleKeys: services.AvailableCycleKeys(now, dataCycleKeys(versions, envelopes, snapshots)),
		Categories:         distinctCategories(bills, envelopes, goals),
		Currencies:         distinctCurrencies(baseCurrency, catalog, incomes, bills, accounts, goals, envelopes),
		AccountOptions:     accountOptions(accounts),

		Incomes:          incomes,
		Bills:            bills,
		Cards:            cards,
		Loans:            loans,
		Accounts:         accounts,
		MonthSnapshots:   snapshots,
		PlanningVersions: versions,
		PlanningTasks:    tasks,
		FinanceStates:    states,
		Goals:            goals,
		Envelopes:        envelopes,
		CurrencyCatalog:  catalog,

		Baseline:        baseline,
		Scenarios:       scenarios,
		GoalForecasts:   services.ForecastGoals(goals, now),
		EnvelopeSummary: envelopeRollup(envelopes, selectedCycle),
		TaskSummary:     taskTally(tasks),
		Fragility: services.ScoreFragility(services.FragilityInput{
			Incomes:         incomes,
			Bills:           bills,
			Cards:           cards,
			Loans:           loans,
			LiquidCash:      baseline.LiquidCash,
			MonthlyExpenses: baseline.MonthlyExpenses,
		}),
		SpendingLens: services.ClassifySpending(services.SpendingInput{
			Bills:     bills,
			Cards:     cards,
			Loans:     loans,
			Envelopes: envelopes,
			CycleKey:  selectedCycle,
		}),

		GeneratedAt: now.UnixMilli(),
	}
	if hasActive {
		view.ActiveVersionID = activeVersion.ID
	}
	return view
}

func resolveDisplayCurrency(requested, base string) string {
	display := strings.ToUpper(strings.TrimSpace(requested))
	if display == "" {
		return base
	}
	return display
}

func resolveLocale(requested string) string {
	locale := strings.TrimSpace(requested)
	if locale == "" {
		return defaultLocale
	}
	return locale
}

func attachTaskCounts(versions []entities.PlanningVersion, tasks []entities.PlanningTask) {
	counts := make(map[string]entities.TaskCounts, len(versions))
	for _, task := range tasks {
		current := counts[task.PlanningVersionID]
		current.Total++
		if task.Status.IsOpen() {
			current.Open++
		}
		if task.Status == entities.TaskStatusDone {
			current.Done++
		}
		counts[task.PlanningVersionID] = current
	}
	for i := range versions {
		versions[i].TaskCounts = counts[versions[i].ID]
	}
}

func envelopeRollup(envelopes []entities.EnvelopeBudget, cycleKey string) entities.EnvelopeRollup {
	rollup := entities.EnvelopeRollup{CycleKey: cycleKey}
	for _, envelope := range envelopes {
		if envelope.CycleKey != cycleKey {
			continue
		}
		rollup.Planned += envelope.PlannedAmount
		rollup.Actual += envelope.ActualAmount
		rollup.Carryover += envelope.CarryoverAmount
		rollup.Remaining += envelope.RemainingAmount
		rollup.Count++
	}
	if base := rollup.Planned + rollup.Carryover; base > 0 {
		rollup.UtilizationPct = rollup.Actual / base
	}
	return rollup
}

func taskTally(tasks []entities.PlanningTask) entities.TaskTally {
	var tally entities.TaskTally
	for _, task := range tasks {
		switch task.Status {
		case entities.TaskStatusTodo:
			tally.Todo++
		case entities.TaskStatusInProgress:
			tally.InProgress++
		case entities.TaskStatusBlocked:
			tally.Blocked++
		case entities.TaskStatusDone:
			tally.Done++
		}
	}
	return tally
}

func dataCycleKeys(versions []entities.PlanningVersion, envelopes []entities.EnvelopeBudget, snapshots []entities.MonthCloseSnapshot) []string {
	keys := make([]string, 0, len(versions)+len(envelopes)+len(snapshots))
	for _, version := range versions {
		keys = append(keys, version.CycleKey)
	}
	for _, envelope := range envelopes {
		keys = append(keys, envelope.CycleKey)
	}
	for _, snapshot := range snapshots {
		keys = append(keys, snapshot.CycleKey)
	}
	return keys
}

func distinctCategories(bills []entities.Bill, envelopes []entities.EnvelopeBudget, goals []entities.Goal) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	add := func(category string) {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			return
		}
		if _, ok := seen[category]; ok {
			return
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	for _, bill := range bills {
		add(bill.Category)
	}
	for _, envelope := range envelopes {
		add(envelope.Category)
	}
	for _, goal := range goals {
		add(goal.Category)
	}
	sort.Strings(categories)
	return categories
}

func distinctCurrencies(
	base string,
	catalog []entities.CurrencyInfo,
	incomes []entities.IncomeSource,
	bills []entities.Bill,
	accounts []entities.Account,
	goals []entities.Goal,
	envelopes []entities.EnvelopeBudget,
) []string {
	seen := make(map[string]struct{})
	currencies := make([]string, 0)
	add := func(code string) {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return
		}
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		currencies = append(currencies, code)
	}
	add(base)
	for _, info := range catalog {
		add(info.Code)
	}
	for _, income := range incomes {
		add(income.Currency)
	}
	for _, bill := range bills {
		add(bill.Currency)
	}
	for _, account := range accounts {
		add(account.Currency)
	}
	for _, goal := range goals {
		add(goal.Currency)
	}
	for _, envelope := range envelopes {
		add(envelope.Currency)
	}
	sort.Strings(currencies)
	return currencies
}

func accountOptions(accounts []entities.Account) []entities.AccountOption {
	options := make([]entities.AccountOption, 0, len(accounts))
	for _, account := range accounts {
		options = append(options, entities.AccountOption{
			ID:       account.ID,
			Name:     account.Name,
			Type:     account.Type,
			Balance:  account.Balance,
			Currency: account.Currency,
		})
	}
	return options
}
