package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/adapters/memory"
	"financeos/contexts/finance-core/forecast-engine/ports"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func TestMonthCloseWritesSnapshotOnce(t *testing.T) {
	store := memory.NewStore()
	store.SeedWorkspace("user_1", ports.WorkspaceRecords{
		BaseCurrency: "USD",
		Accounts: []ports.RawRecord{
			{"id": "acc_1", "name": "Checking", "type": "checking", "balance": 3000},
		},
	})
	now := time.Date(2026, time.August, 3, 10, 0, 0, 0, time.UTC)
	worker := MonthCloseWorker{Workspaces: store, Snapshots: store, Outbox: store, Clock: fixedClock{now: now}, IDGen: store}

	if err := worker.RunOnce(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	has, err := store.HasSnapshot(context.Background(), "user_1", "2026-07")
	if err != nil {
		t.Fatalf("snapshot lookup failed: %v", err)
	}
	if !has {
		t.Fatalf("expected snapshot for the closed cycle 2026-07")
	}

	records, err := store.LoadWorkspace(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records.MonthSnapshots) != 1 {
		t.Fatalf("expected one snapshot, got %d", len(records.MonthSnapshots))
	}
	summary, ok := records.MonthSnapshots[0]["summary"].(map[string]any)
	if !ok {
		t.Fatalf("expected summary object, got %T", records.MonthSnapshots[0]["summary"])
	}
	if summary["netWorth"].(float64) != 3000 {
		t.Fatalf("expected net worth 3000 in summary, got %v", summary["netWorth"])
	}

	if err := worker.RunOnce(context.Background()); err != nil {
		t.Fatalf("rerun failed: %v", err)
	}
	records, err = store.LoadWorkspace(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records.MonthSnapshots) != 1 {
		t.Fatalf("expected rerun to keep one snapshot, got %d", len(records.MonthSnapshots))
	}
}

func TestMonthCloseEmitsClosedEvent(t *testing.T) {
	store := memory.NewStore()
	store.SeedWorkspace("user_1", ports.WorkspaceRecords{BaseCurrency: "USD"})
	now := time.Date(2026, time.August, 3, 10, 0, 0, 0, time.UTC)
	worker := MonthCloseWorker{Workspaces: store, Snapshots: store, Outbox: store, Clock: fixedClock{now: now}, IDGen: store}

	if err := worker.RunOnce(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row, got %d", len(pending))
	}
	if pending[0].EventType != "workspace.month.closed" {
		t.Fatalf("unexpected event type %s", pending[0].EventType)
	}
	if pending[0].PartitionKey != "user_1" {
		t.Fatalf("unexpected partition key %s", pending[0].PartitionKey)
	}

	var envelope ports.EventEnvelope
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	var data map[string]any
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if data["cycle_key"] != "2026-07" {
		t.Fatalf("expected closed cycle in payload, got %v", data["cycle_key"])
	}
}
