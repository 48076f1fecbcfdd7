package attempts

import (
	"context"
	"sync"
)

// InMemoryStore keeps failure counters in process memory.
type InMemoryStore struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{counts: make(map[string]int)}
}

func (s *InMemoryStore) RecordFailure(_ context.Context, identity string) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.counts[identity]
	after := before + 1
	s.counts[identity] = after
	return before, after, nil
}

func (s *InMemoryStore) Clear(_ context.Context, identity string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before, existed := s.counts[identity]
	delete(s.counts, identity)
	return before, existed, nil
}
