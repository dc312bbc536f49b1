package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps encoded cart snapshots in process memory. It goes
// through the same JSON codec as RedisStore, so rehydration behaves
// identically; it is the dev/test stand-in when no Redis is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	s.mu.RLock()
	data, ok := s.snapshots[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeItems(data), nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshots[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.snapshots, sessionID)
	s.mu.Unlock()
	return nil
}
