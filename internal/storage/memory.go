package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemorySnapshotStore keeps snapshots as encoded JSON so loads never alias
// the saved value.
type MemorySnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{data: map[string][]byte{}}
}

func (s *MemorySnapshotStore) Load(ctx context.Context, key string, v any) (bool, error) {
	s.mu.RLock()
	payload, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemorySnapshotStore) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = payload
	s.mu.Unlock()
	return nil
}
