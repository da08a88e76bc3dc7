package forecastengine

import (
	"log/slog"
	"time"

	httpadapter "financeos/contexts/finance-core/forecast-engine/adapters/http"
	"financeos/contexts/finance-core/forecast-engine/adapters/memory"
	"financeos/contexts/finance-core/forecast-engine/application/commands"
	"financeos/contexts/finance-core/forecast-engine/application/queries"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Workspaces     ports.WorkspaceReader
	Planning       ports.PlanningRepository
	Goals          ports.GoalRepository
	Envelopes      ports.EnvelopeRepository
	States         ports.FinanceStateRepository
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	forecastUseCase := queries.WorkspaceForecastUseCase{
		Workspaces: deps.Workspaces,
		Clock:      deps.Clock,
	}
	planUseCase := commands.SavePlanningVersionUseCase{
		Planning: deps.Planning,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	goalEventUseCase := commands.RecordGoalEventUseCase{
		Goals:          deps.Goals,
		Idempotency:    deps.Idempotency,
		Outbox:         deps.Outbox,
		Clock:          deps.Clock,
		IDGen:          deps.IDGen,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	envelopeUseCase := commands.UpsertEnvelopeUseCase{
		Envelopes: deps.Envelopes,
		Outbox:    deps.Outbox,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	stateUseCase := commands.SaveFinanceStateUseCase{
		States: deps.States,
		Outbox: deps.Outbox,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Forecast:   forecastUseCase,
			Plans:      planUseCase,
			GoalEvents: goalEventUseCase,
			Envelopes:  envelopeUseCase,
			States:     stateUseCase,
			Logger:     deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module onto a single in-memory store, seeding
// one workspace per map entry keyed by user id.
func NewInMemoryModule(seeds map[string]ports.WorkspaceRecords, logger *slog.Logger) Module {
	store := memory.NewStore()
	for userID, records := range seeds {
		store.SeedWorkspace(userID, records)
	}
	module := NewModule(Dependencies{
		Workspaces:     store,
		Planning:       store,
		Goals:          store,
		Envelopes:      store,
		States:         store,
		Idempotency:    store,
		Outbox:         store,
		Clock:          store,
		IDGen:          store,
		IdempotencyTTL: 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
