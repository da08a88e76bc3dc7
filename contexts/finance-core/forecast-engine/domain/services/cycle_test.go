package services

import (
	"testing"
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
)

func TestCurrentCycleKey(t *testing.T) {
	now := time.Date(2026, time.August, 25, 9, 30, 0, 0, time.UTC)
	if got := CurrentCycleKey(now); got != "2026-08" {
		t.Fatalf("expected 2026-08, got %s", got)
	}
}

func TestAvailableCycleKeysWindowAndDataUnion(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	keys := AvailableCycleKeys(now, []string{"2024-12", "2026-08", "not-a-cycle"})

	if len(keys) != 14 {
		t.Fatalf("expected 13 window keys plus one data key, got %d", len(keys))
	}
	if keys[0] != "2027-02" {
		t.Fatalf("expected newest window key first, got %s", keys[0])
	}
	if keys[len(keys)-1] != "2024-12" {
		t.Fatalf("expected oldest data key last, got %s", keys[len(keys)-1])
	}
	for _, key := range keys {
		if key == "not-a-cycle" {
			t.Fatalf("expected malformed data key dropped")
		}
	}
}

func TestResolveCycleKeyFallbackChain(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	versions := []entities.PlanningVersion{
		{ID: "v1", CycleKey: "2026-04", Status: entities.VersionStatusDraft},
		{ID: "v2", CycleKey: "2026-05", Status: entities.VersionStatusActive},
	}

	if got := ResolveCycleKey("2026-03", versions, now); got != "2026-03" {
		t.Fatalf("expected explicit key to win, got %s", got)
	}
	if got := ResolveCycleKey("bogus", versions, now); got != "2026-05" {
		t.Fatalf("expected active plan cycle, got %s", got)
	}
	if got := ResolveCycleKey("", nil, now); got != "2026-08" {
		t.Fatalf("expected current cycle fallback, got %s", got)
	}
}

func TestSelectActiveVersionPreference(t *testing.T) {
	versions := []entities.PlanningVersion{
		{ID: "v1", CycleKey: "2026-07", Status: entities.VersionStatusDraft},
		{ID: "v2", CycleKey: "2026-08", Status: entities.VersionStatusDraft},
		{ID: "v3", CycleKey: "2026-06", Status: entities.VersionStatusActive},
	}

	selected, ok := SelectActiveVersion(versions, "2026-08")
	if !ok || selected.ID != "v3" {
		t.Fatalf("expected active status to win, got %s", selected.ID)
	}

	versions[2].Status = entities.VersionStatusArchived
	selected, ok = SelectActiveVersion(versions, "2026-08")
	if !ok || selected.ID != "v2" {
		t.Fatalf("expected cycle match fallback, got %s", selected.ID)
	}

	selected, ok = SelectActiveVersion(versions, "2025-01")
	if !ok || selected.ID != "v1" {
		t.Fatalf("expected first version fallback, got %s", selected.ID)
	}

	if _, ok := SelectActiveVersion(nil, "2026-08"); ok {
		t.Fatalf("expected no selection from empty versions")
	}
}
