package ports

import (
	"context"
	"time"

	"financeos/internal/shared/events"
)

// RawRecord is the loosely-typed row shape storage hands to the engine.
// Primary fields sit at the top level; payloadJson may carry a JSON object
// with legacy field names from earlier schema phases.
type RawRecord = map[string]any

// WorkspaceRecords bundles every per-user collection the forecast reads,
// plus the caller-resolved base currency.
type WorkspaceRecords struct {
	BaseCurrency     string
	Incomes          []RawRecord
	Bills            []RawRecord
	Cards            []RawRecord
	Loans            []RawRecord
	Accounts         []RawRecord
	MonthSnapshots   []RawRecord
	PlanningVersions []RawRecord
	PlanningTasks    []RawRecord
	FinanceStates    []RawRecord
	Goals            []RawRecord
	GoalEvents       []RawRecord
	Envelopes        []RawRecord
	Currencies       []RawRecord
}

type WorkspaceReader interface {
	LoadWorkspace(ctx context.Context, userID string) (WorkspaceRecords, error)
	ListOwners(ctx context.Context) ([]string, error)
}

type PlanningRepository interface {
	SaveVersion(ctx context.Context, userID string, row RawRecord) error
	// DemoteActiveVersions moves every active version except exceptID back
	// to draft, keeping at most one active plan per user.
	DemoteActiveVersions(ctx context.Context, userID string, exceptID string) error
}

type GoalRepository interface {
	GetGoal(ctx context.Context, userID string, goalID string) (RawRecord, bool, error)
	SaveGoal(ctx context.Context, userID string, row RawRecord) error
	SaveGoalEvent(ctx context.Context, userID string, row RawRecord) error
}

type EnvelopeRepository interface {
	GetEnvelopeByCycleCategory(ctx context.Context, userID string, cycleKey string, category string) (RawRecord, bool, error)
	ListEnvelopesByCycle(ctx context.Context, userID string, cycleKey string) ([]RawRecord, error)
	SaveEnvelope(ctx context.Context, userID string, row RawRecord) error
}

type FinanceStateRepository interface {
	SaveState(ctx context.Context, userID string, row RawRecord) error
}

type SnapshotWriter interface {
	HasSnapshot(ctx context.Context, userID string, cycleKey string) (bool, error)
	SaveSnapshot(ctx context.Context, userID string, row RawRecord) error
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}
