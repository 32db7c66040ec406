package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store"
)

// MockStore is an in-memory implementation of the TableStore interface
// used for testing and development. Tables are cloned on the way in and out.
type MockStore struct {
	tables map[string]*reflection.Table

	// Mutex for safe concurrent access
	mutex sync.RWMutex
}

// NewMockStore creates a new instance of the MockStore.
func NewMockStore() *MockStore {
	log.Debug("Initialized mock table store adapter")
	return &MockStore{tables: make(map[string]*reflection.Table)}
}

// Save implements the TableStore interface.
func (m *MockStore) Save(ctx context.Context, name string, table *reflection.Table) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.tables[name] = table.Clone()
	log.DebugContext(ctx, "Saved reflection table", "name", name, "rows", table.Size())
	return nil
}

// Load implements the TableStore interface.
func (m *MockStore) Load(ctx context.Context, name string) (*reflection.Table, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	table, ok := m.tables[name]
	if !ok {
		return nil, store.NotFound(name)
	}
	return table.Clone(), nil
}

// Delete implements the TableStore interface.
func (m *MockStore) Delete(ctx context.Context, name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.tables[name]; !ok {
		return store.NotFound(name)
	}
	delete(m.tables, name)
	return nil
}

// List implements the TableStore interface.
func (m *MockStore) List(ctx context.Context) ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
