package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "financeos/contexts/finance-core/forecast-engine/domain/errors"
	"financeos/contexts/finance-core/forecast-engine/ports"

	"github.com/google/uuid"
)

type outboxRecord struct {
	message   ports.OutboxMessage
	published bool
}

// Store keeps one workspace per user in process memory. It backs tests and
// the demo wiring. Rows are cloned on the way in and out so callers never
// share map state with the store.
type Store struct {
	mu sync.RWMutex

	owners         map[string]struct{}
	baseCurrencies map[string]string

	incomes    map[string]map[string]ports.RawRecord
	bills      map[string]map[string]ports.RawRecord
	cards      map[string]map[string]ports.RawRecord
	loans      map[string]map[string]ports.RawRecord
	accounts   map[string]map[string]ports.RawRecord
	snapshots  map[string]map[string]ports.RawRecord
	versions   map[string]map[string]ports.RawRecord
	tasks      map[string]map[string]ports.RawRecord
	states     map[string]map[string]ports.RawRecord
	goals      map[string]map[string]ports.RawRecord
	goalEvents map[string]map[string]ports.RawRecord
	envelopes  map[string]map[string]ports.RawRecord
	currencies map[string]map[string]ports.RawRecord

	idempotency map[string]ports.IdempotencyRecord
	outbox      map[string]outboxRecord
}

func NewStore() *Store {
	return &Store{
		owners:         make(map[string]struct{}),
		baseCurrencies: make(map[string]string),
		incomes:        make(map[string]map[string]ports.RawRecord),
		bills:          make(map[string]map[string]ports.RawRecord),
		cards:          make(map[string]map[string]ports.RawRecord),
		loans:          make(map[string]map[string]ports.RawRecord),
		accounts:       make(map[string]map[string]ports.RawRecord),
		snapshots:      make(map[string]map[string]ports.RawRecord),
		versions:       make(map[string]map[string]ports.RawRecord),
		tasks:          make(map[string]map[string]ports.RawRecord),
		states:         make(map[string]map[string]ports.RawRecord),
		goals:          make(map[string]map[string]ports.RawRecord),
		goalEvents:     make(map[string]map[string]ports.RawRecord),
		envelopes:      make(map[string]map[string]ports.RawRecord),
		currencies:     make(map[string]map[string]ports.RawRecord),
		idempotency:    make(map[string]ports.IdempotencyRecord),
		outbox:         make(map[string]outboxRecord),
	}
}

// SeedWorkspace loads every collection for one user in a single call.
// Rows without an id are assigned one so later saves upsert cleanly.
func (s *Store) SeedWorkspace(userID string, records ports.WorkspaceRecords) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID = strings.TrimSpace(userID)
	s.owners[userID] = struct{}{}
	if code := strings.TrimSpace(records.BaseCurrency); code != "" {
		s.baseCurrencies[userID] = strings.ToUpper(code)
	}
	seed := func(collection map[string]map[string]ports.RawRecord, rows []ports.RawRecord) {
		for _, row := range rows {
			if row == nil {
				continue
			}
			s.putRow(collection, userID, row)
		}
	}
	seed(s.incomes, records.Incomes)
	seed(s.bills, records.Bills)
	seed(s.cards, records.Cards)
	seed(s.loans, records.Loans)
	seed(s.accounts, records.Accounts)
	seed(s.snapshots, records.MonthSnapshots)
	seed(s.versions, records.PlanningVersions)
	seed(s.tasks, records.PlanningTasks)
	seed(s.states, records.FinanceStates)
	seed(s.goals, records.Goals)
	seed(s.goalEvents, records.GoalEvents)
	seed(s.envelopes, records.Envelopes)
	seed(s.currencies, records.Currencies)
}

func (s *Store) SetBaseCurrency(userID string, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID = strings.TrimSpace(userID)
	s.owners[userID] = struct{}{}
	s.baseCurrencies[userID] = strings.ToUpper(strings.TrimSpace(code))
}

func (s *Store) LoadWorkspace(_ context.Context, userID string) (ports.WorkspaceRecords, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ports.WorkspaceRecords{
		BaseCurrency:     s.baseCurrencies[strings.TrimSpace(userID)],
		Incomes:          rowsOf(s.incomes, userID),
		Bills:            rowsOf(s.bills, userID),
		Cards:            rowsOf(s.cards, userID),
		Loans:            rowsOf(s.loans, userID),
		Accounts:         rowsOf(s.accounts, userID),
		MonthSnapshots:   rowsOf(s.snapshots, userID),
		PlanningVersions: rowsOf(s.versions, userID),
		PlanningTasks:    rowsOf(s.tasks, userID),
		FinanceStates:    rowsOf(s.states, userID),
		Goals:            rowsOf(s.goals, userID),
		GoalEvents:       rowsOf(s.goalEvents, userID),
		Envelopes:        rowsOf(s.envelopes, userID),
		Currencies:       rowsOf(s.currencies, userID),
	}, nil
}

func (s *Store) ListOwners(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]string, 0, len(s.owners))
	for owner := range s.owners {
		if owner == "" {
			continue
		}
		items = append(items, owner)
	}
	sort.Strings(items)
	return items, nil
}

func (s *Store) SaveVersion(_ context.Context, userID string, row ports.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putRow(s.versions, strings.TrimSpace(userID), row)
	return nil
}

func (s *Store) DemoteActiveVersions(_ context.Context, userID string, exceptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.versions[strings.TrimSpace(userID)]
	for id, row := range rows {
		if id == strings.TrimSpace(exceptID) {
			continue
		}
		if !strings.EqualFold(rowString(row, "status"), "active") {
			continue
		}
		updated := maps.Clone(row)
		updated["status"] = "draft"
		updated["updatedAt"] = time.Now().UTC().UnixMilli()
		rows[id] = updated
	}
	return nil
}

func (s *Store) GetGoal(_ context.Context, userID string, goalID string) (ports.RawRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.goals[strings.TrimSpace(userID)][strings.TrimSpace(goalID)]
	if !ok {
		return nil, false, nil
	}
	return maps.Clone(row), true, nil
}

func (s *Store) SaveGoal(_ context.Context, userID string, row ports.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putRow(s.goals, strings.TrimSpace(userID), row)
	return nil
}

func (s *Store) SaveGoalEvent(_ context.Context, userID string, row ports.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putRow(s.goalEvents, strings.TrimSpace(userID), row)
	return nil
}

func (s *Store) GetEnvelopeByCycleCategory(
	_ context.Context,
	userID string,
	cycleKey string,
	category string,
) (ports.RawRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycleKey = strings.TrimSpace(cycleKey)
	category = strings.TrimSpace(category)
	for _, row := range s.envelopes[strings.TrimSpace(userID)] {
		if rowString(row, "cycleKey") != cycleKey {
			continue
		}
		if !strings.EqualFold(rowString(row, "category"), category) {
			continue
		}
		return maps.Clone(row), true, nil
	}
	return nil, false, nil
}

func (s *Store) ListEnvelopesByCycle(_ context.Context, userID string, cycleKey string) ([]ports.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycleKey = strings.TrimSpace(cycleKey)
	items := make([]ports.RawRecord, 0)
	for _, row := range s.envelopes[strings.TrimSpace(userID)] {
		if rowString(row, "cycleKey") != cycleKey {
			continue
		}
		items = append(items, maps.Clone(row))
	}
	sort.Slice(items, func(i, j int) bool {
		return rowString(items[i], "category") < rowString(items[j], "category")
	})
	return items, nil
}

func (s *Store) SaveEnvelope(_ context.Context, userID string, row ports.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putRow(s.envelopes, strings.TrimSpace(userID), row)
	return nil
}

func (s *Store) SaveState(_ context.Context, userID string, row ports.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putRow(s.states, strings.TrimSpace(userID), row)
	return nil
}

func (s *Store) HasSnapshot(_ context.Context, userID string, cycleKey string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycleKey = strings.TrimSpace(cycleKey)
	for _, row := range s.snapshots[strings.TrimSpace(userID)] {
		if rowString(row, "cycleKey") == cycleKey {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SaveSnapshot(_ context.Context, userID string, row ports.RawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putRow(s.snapshots, strings.TrimSpace(userID), row)
	return nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key = strings.TrimSpace(key)
	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.After(now.UTC()) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(record.Key)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	if existing, ok := s.idempotency[key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		if !bytes.Equal(existing.ResponsePayload, record.ResponsePayload) {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.idempotency[key] = ports.IdempotencyRecord{
		Key:             key,
		RequestHash:     strings.TrimSpace(record.RequestHash),
		ResponsePayload: append([]byte(nil), record.ResponsePayload...),
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	outboxID := strings.TrimSpace(envelope.EventID)
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	if existing, ok := s.outbox[outboxID]; ok {
		if !bytes.Equal(existing.message.Payload, payload) {
			return domainerrors.ErrConflict
		}
		return nil
	}
	createdAt := envelope.OccurredAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	s.outbox[outboxID] = outboxRecord{
		message: ports.OutboxMessage{
			OutboxID:     outboxID,
			EventType:    strings.TrimSpace(envelope.EventType),
			PartitionKey: strings.TrimSpace(envelope.PartitionKey),
			Payload:      payload,
			CreatedAt:    createdAt,
		},
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0, len(s.outbox))
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		items = append(items, row.message)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.outbox[strings.TrimSpace(outboxID)]
	if !ok {
		return domainerrors.ErrConflict
	}
	row.published = true
	s.outbox[strings.TrimSpace(outboxID)] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// putRow upserts a clone of row into the user's collection. Updates that
// omit createdAt keep the stored value so creation stamps survive edits.
// Callers hold the write lock.
func (s *Store) putRow(collection map[string]map[string]ports.RawRecord, userID string, row ports.RawRecord) {
	rows, ok := collection[userID]
	if !ok {
		rows = make(map[string]ports.RawRecord)
		collection[userID] = rows
	}
	stored := maps.Clone(row)
	id := rowID(stored)
	if id == "" {
		id = uuid.NewString()
		stored["id"] = id
	}
	if existing, ok := rows[id]; ok {
		if _, has := stored["createdAt"]; !has {
			if createdAt, hadPrev := existing["createdAt"]; hadPrev {
				stored["createdAt"] = createdAt
			}
		}
	}
	rows[id] = stored
	s.owners[userID] = struct{}{}
}

func rowID(row ports.RawRecord) string {
	for _, key := range []string{"id", "_id", "recordId"} {
		if value, ok := row[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func rowString(row ports.RawRecord, key string) string {
	value, _ := row[key].(string)
	return strings.TrimSpace(value)
}

func rowsOf(collection map[string]map[string]ports.RawRecord, userID string) []ports.RawRecord {
	rows := collection[strings.TrimSpace(userID)]
	items := make([]ports.RawRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, maps.Clone(row))
	}
	return items
}

var (
	_ ports.WorkspaceReader        = (*Store)(nil)
	_ ports.PlanningRepository     = (*Store)(nil)
	_ ports.GoalRepository         = (*Store)(nil)
	_ ports.EnvelopeRepository     = (*Store)(nil)
	_ ports.FinanceStateRepository = (*Store)(nil)
	_ ports.SnapshotWriter         = (*Store)(nil)
	_ ports.IdempotencyStore       = (*Store)(nil)
	_ ports.OutboxWriter           = (*Store)(nil)
	_ ports.OutboxRepository       = (*Store)(nil)
	_ ports.Clock                  = (*Store)(nil)
	_ ports.IDGenerator            = (*Store)(nil)
)
