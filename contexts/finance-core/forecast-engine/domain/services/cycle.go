package services

import (
	"sort"
	"strings"
	"time"

	"financeos/contexts/finance-core/forecast-engine/domain/entities"
	"financeos/contexts/finance-core/forecast-engine/domain/normalize"
)

// cycleWindow is how many months the selectable cycle list extends on each
// side of the current one.
const cycleWindow = 6

// CurrentCycleKey formats the budgeting cycle containing now.
func CurrentCycleKey(now time.Time) string {
	return now.Format("2006-01")
}

// AvailableCycleKeys is the current cycle plus the rolling window on both
// sides, unioned with the keys present in data, deduplicated, descending.
func AvailableCycleKeys(now time.Time, dataKeys []string) []string {
	seen := make(map[string]struct{}, 2*cycleWindow+1+len(dataKeys))
	keys := make([]string, 0, 2*cycleWindow+1+len(dataKeys))
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for offset := -cycleWindow; offset <= cycleWindow; offset++ {
		key := base.AddDate(0, offset, 0).Format("2006-01")
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	for _, key := range dataKeys {
		if !normalize.IsCycleKey(key) {
			continue
		}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// ResolveCycleKey picks the workspace cycle: an explicitly requested valid
// key wins, else the cycle of the status-active plan, else the current one.
func ResolveCycleKey(requested string, versions []entities.PlanningVersion, now time.Time) string {
	trimmed := strings.TrimSpace(requested)
	if normalize.IsCycleKey(trimmed) {
		return trimmed
	}
	for _, version := range versions {
		if version.Status == entities.VersionStatusActive {
			return version.CycleKey
		}
	}
	return CurrentCycleKey(now)
}

// SelectActiveVersion picks the plan the forecast centers on: an explicit
// active status wins, else a plan for the given cycle, else the first
// version in the caller-supplied order. Callers sort most-recent-first
// before selecting so the fallback is deterministic.
func SelectActiveVersion(versions []entities.PlanningVersion, cycleKey string) (entities.PlanningVersion, bool) {
	for _, version := range versions {
		if version.Status == entities.VersionStatusActive {
			return version, true
		}
	}
	for _, version := range versions {
		if version.CycleKey == cycleKey {
			return version, true
		}
	}
	if len(versions) > 0 {
		return versions[0], true
	}
	return entities.PlanningVersion{}, false
}
