package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/adapters/memory"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

type capturePublisher struct {
	topics []string
	events []ports.EventEnvelope
	err    error
}

func (p *capturePublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func appendRelayEvent(t *testing.T, store *memory.Store, eventID, eventType string, occurredAt time.Time) {
	t.Helper()
	envelope, err := newWorkerEnvelope(eventID, eventType, "user_1", occurredAt, map[string]any{"user_id": "user_1"})
	if err != nil {
		t.Fatalf("build envelope failed: %v", err)
	}
	if err := store.AppendOutbox(context.Background(), envelope); err != nil {
		t.Fatalf("append outbox failed: %v", err)
	}
}

func TestOutboxRelayPublishesOldestFirst(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	appendRelayEvent(t, store, "evt-2", "workspace.envelope.rolled_over", now.Add(time.Minute))
	appendRelayEvent(t, store, "evt-1", "workspace.month.closed", now)

	publisher := &capturePublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: fixedClock{now: now}, BatchSize: 10}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(publisher.topics) != 2 {
		t.Fatalf("expected two publishes, got %d", len(publisher.topics))
	}
	if publisher.topics[0] != "workspace.month.closed" || publisher.topics[1] != "workspace.envelope.rolled_over" {
		t.Fatalf("expected oldest first, got %v", publisher.topics)
	}
	if publisher.events[0].EventID != "evt-1" {
		t.Fatalf("unexpected first event %s", publisher.events[0].EventID)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending rows after relay, got %d", len(pending))
	}
}

func TestOutboxRelayHonorsBatchSize(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	appendRelayEvent(t, store, "evt-1", "workspace.month.closed", now)
	appendRelayEvent(t, store, "evt-2", "workspace.envelope.rolled_over", now.Add(time.Minute))

	publisher := &capturePublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: fixedClock{now: now}, BatchSize: 1}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(publisher.topics) != 1 {
		t.Fatalf("expected one publish, got %d", len(publisher.topics))
	}
	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 || pending[0].OutboxID != "evt-2" {
		t.Fatalf("expected evt-2 still pending, got %+v", pending)
	}
}

func TestOutboxRelayStopsOnPublishFailure(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	appendRelayEvent(t, store, "evt-1", "workspace.month.closed", now)

	publisher := &capturePublisher{err: errors.New("broker down")}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: fixedClock{now: now}, BatchSize: 10}

	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected publish failure surfaced")
	}
	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected row kept pending for retry, got %d", len(pending))
	}
}
