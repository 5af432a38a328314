package service

import (
	"context"
	"sync"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"

	"github.com/google/uuid"
)

type TableStore struct {
	mu        sync.Mutex
	tables    state.Tables
	snapshots SnapshotStore
}

func NewTableStore(ctx context.Context, snapshots SnapshotStore, seed []domain.Table) *TableStore {
	s := &TableStore{
		tables:    state.Tables{Tables: append([]domain.Table{}, seed...)},
		snapshots: snapshots,
	}
	var saved state.Tables
	if restore(ctx, snapshots, TableKey, &saved) {
		s.tables = saved
	}
	return s
}

// Add appends the table, generating an id when none is given. Numbers must be
// unique across the plan.
func (s *TableStore) Add(ctx context.Context, table domain.Table) (domain.Table, error) {
	if table.ID == "" {
		table.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.tables.Add(table)
	if err != nil {
		return domain.Table{}, err
	}
	s.tables = next
	added, _ := next.Find(table.ID)
	return added, persist(ctx, s.snapshots, TableKey, s.tables)
}

func (s *TableStore) Update(ctx context.Context, id string, patch domain.TablePatch) error {
	return s.apply(ctx, func(t state.Tables) (state.Tables, error) { return t.Update(id, patch) })
}

func (s *TableStore) Delete(ctx context.Context, id string) error {
	return s.apply(ctx, func(t state.Tables) (state.Tables, error) { return t.Delete(id), nil })
}

func (s *TableStore) Reserve(ctx context.Context, id, name, time, phone string) error {
	return s.apply(ctx, func(t state.Tables) (state.Tables, error) { return t.Reserve(id, name, time, phone) })
}

func (s *TableStore) Close(ctx context.Context, id string) error {
	return s.apply(ctx, func(t state.Tables) (state.Tables, error) { return t.Close(id), nil })
}

// Select replaces the session selection; nil clears it.
func (s *TableStore) Select(ctx context.Context, table *domain.Table) error {
	return s.apply(ctx, func(t state.Tables) (state.Tables, error) { return t.Select(table), nil })
}

func (s *TableStore) SelectByID(ctx context.Context, id string) error {
	return s.apply(ctx, func(t state.Tables) (state.Tables, error) {
		table, ok := t.Find(id)
		if !ok {
			return t, domain.ErrTableNotFound
		}
		return t.Select(&table), nil
	})
}

func (s *TableStore) Selected() *domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables.Clone().Selected
}

func (s *TableStore) List() []domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables.Clone().Tables
}

func (s *TableStore) GetByID(id string) (domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table, ok := s.tables.Find(id)
	if !ok {
		return domain.Table{}, domain.ErrTableNotFound
	}
	return table, nil
}

func (s *TableStore) apply(ctx context.Context, fn func(state.Tables) (state.Tables, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.tables)
	if err != nil {
		return err
	}
	s.tables = next
	return persist(ctx, s.snapshots, TableKey, s.tables)
}
