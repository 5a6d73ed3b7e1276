// Package store provides the in-memory dao.Service used by default for run
// records.
package store

import (
	"context"
	"sync"

	"github.com/viant/simsched/service/dao"
)

// Memory keeps entities of type *T mapped by a comparable key K obtained
// from the supplied key selector. Insertion order is preserved for List so
// that run histories read back chronologically.
type Memory[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	order       []K
	keySelector func(*T) K
}

// New creates a Memory store; keySelector extracts the entity key (usually
// the ID field) from a value.
func New[K comparable, T any](keySelector func(*T) K) *Memory[K, T] {
	return &Memory[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
	}
}

// Save stores or overwrites a record.
func (s *Memory[K, T]) Save(_ context.Context, value *T) error {
	if value == nil {
		return nil
	}
	key := s.keySelector(value)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[key]; !exists {
		s.order = append(s.order, key)
	}
	s.records[key] = value
	return nil
}

// Load returns the record stored under key or dao.ErrNotFound.
func (s *Memory[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return value, nil
}

// Delete removes the record stored under key, if any.
func (s *Memory[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return nil
	}
	delete(s.records, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all records in insertion order.
func (s *Memory[K, T]) List(_ context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.records))
	for _, key := range s.order {
		out = append(out, s.records[key])
	}
	return out, nil
}
