package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemoryGateway is a complete in-process implementation used in tests. It
// assigns uuid ids, counts every call per operation, and can be told to fail
// specific operations.
type MemoryGateway struct {
	mu    sync.Mutex
	data  map[string][]Record
	calls map[string]int
	fail  map[string]error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		data:  make(map[string][]Record),
		calls: make(map[string]int),
		fail:  make(map[string]error),
	}
}

// FailNext makes every following call of op on collection return err until
// cleared with a nil err. op is the method name, e.g. "CreateOne".
func (m *MemoryGateway) FailNext(op, collection string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := op + ":" + collection
	if err == nil {
		delete(m.fail, key)
		return
	}
	m.fail[key] = err
}

// Calls returns how many times op was invoked on collection.
func (m *MemoryGateway) Calls(op, collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op+":"+collection]
}

// TotalCalls returns the number of gateway invocations across all
// operations and collections.
func (m *MemoryGateway) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

// Seed places records directly into a collection without counting a call.
func (m *MemoryGateway) Seed(collection string, recs ...Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range recs {
		m.data[collection] = append(m.data[collection], cloneRecord(rec))
	}
}

func (m *MemoryGateway) enter(op, collection string) error {
	key := op + ":" + collection
	m.calls[key]++
	if err := m.fail[key]; err != nil {
		return err
	}
	return checkCollection(collection)
}

func (m *MemoryGateway) ListAll(_ context.Context, collection string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListAll", collection); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(m.data[collection]))
	for _, rec := range m.data[collection] {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func (m *MemoryGateway) CreateOne(_ context.Context, collection string, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("CreateOne", collection); err != nil {
		return nil, err
	}
	return m.insert(collection, rec), nil
}

func (m *MemoryGateway) CreateMany(_ context.Context, collection string, recs []Record) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("CreateMany", collection); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, m.insert(collection, rec))
	}
	return out, nil
}

func (m *MemoryGateway) UpdateOne(_ context.Context, collection string, id string, patch Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpdateOne", collection); err != nil {
		return nil, err
	}
	for i, rec := range m.data[collection] {
		if rec["id"] == id {
			next := cloneRecord(rec)
			for k, v := range patch {
				if k == "id" {
					continue
				}
				next[k] = v
			}
			m.data[collection][i] = next
			return cloneRecord(next), nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "%s %s", collection, id)
}

func (m *MemoryGateway) DeleteOne(_ context.Context, collection string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteOne", collection); err != nil {
		return err
	}
	for i, rec := range m.data[collection] {
		if rec["id"] == id {
			m.data[collection] = append(m.data[collection][:i:i], m.data[collection][i+1:]...)
			m.cascade(collection, id)
			return nil
		}
	}
	return errors.Wrapf(ErrNotFound, "%s %s", collection, id)
}

func (m *MemoryGateway) DeleteWhere(_ context.Context, collection string, field string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("DeleteWhere", collection); err != nil {
		return err
	}
	kept := m.data[collection][:0:0]
	for _, rec := range m.data[collection] {
		if rec[field] != value {
			kept = append(kept, rec)
		}
	}
	m.data[collection] = kept
	return nil
}

func (m *MemoryGateway) GetSingleton(_ context.Context, collection string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("GetSingleton", collection); err != nil {
		return nil, err
	}
	if len(m.data[collection]) == 0 {
		return nil, nil
	}
	return cloneRecord(m.data[collection][0]), nil
}

func (m *MemoryGateway) UpsertSingleton(_ context.Context, collection string, rec Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("UpsertSingleton", collection); err != nil {
		return nil, err
	}
	if len(m.data[collection]) == 0 {
		return cloneRecord(m.insert(collection, rec)), nil
	}
	next := cloneRecord(m.data[collection][0])
	for k, v := range rec {
		if k == "id" {
			continue
		}
		next[k] = v
	}
	m.data[collection][0] = next
	return cloneRecord(next), nil
}

func (m *MemoryGateway) insert(collection string, rec Record) Record {
	stored := cloneRecord(rec)
	if _, ok := stored["id"]; !ok {
		stored["id"] = uuid.New().String()
	}
	m.data[collection] = append(m.data[collection], stored)
	return cloneRecord(stored)
}

// cascade mirrors the store's foreign-key cascades on owned child rows.
func (m *MemoryGateway) cascade(collection, id string) {
	switch collection {
	case Teams:
		m.removeBy(TeamMembers, "team_id", id)
	case Workflows:
		m.removeBy(WorkflowSteps, "workflow_id", id)
	case CompanyNumbers:
		m.removeBy(NumberAllocations, "company_number_id", id)
	}
}

func (m *MemoryGateway) removeBy(collection, field, id string) {
	kept := m.data[collection][:0:0]
	for _, rec := range m.data[collection] {
		if rec[field] != id {
			kept = append(kept, rec)
		}
	}
	m.data[collection] = kept
}

func cloneRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
