package store

import (
	"context"
	"sort"
	"sync"

	"github.com/finsim/loan-recast/internal/config"
)

// MemoryStore is an in-memory implementation of Store, used for tests and
// for serving without external storage.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]config.Plan
}

// NewMemoryStore creates a new in-memory plan store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]config.Plan)}
}

// Save stores the plan under the given name, replacing any existing plan.
func (s *MemoryStore) Save(_ context.Context, name string, plan config.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[name] = plan
	return nil
}

// Load retrieves the plan stored under the given name.
func (s *MemoryStore) Load(_ context.Context, name string) (config.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[name]
	if !ok {
		return config.Plan{}, ErrNotFound
	}
	return plan, nil
}

// List returns stored plan names in ascending order.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.plans))
	for name := range s.plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the plan stored under the given name.
func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[name]; !ok {
		return ErrNotFound
	}
	delete(s.plans, name)
	return nil
}
