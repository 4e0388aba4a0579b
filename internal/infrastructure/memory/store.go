// Package memory implements the domain repositories on top of a volatile,
// process-lifetime keyed store.
package memory

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oksasatya/go-ddd-usergroup/internal/domain/repository"
)

// Store is a concurrent keyed container for one entity type.
//
// Values live in an arena (a slice plus an id -> slot index) behind a single
// RWMutex; no per-entry locks exist, so no operation ever holds two locks.
// T must be a plain value type: values are copied in and out, and callers
// never see store-internal state.
//
// A panic inside a critical section poisons the store. From then on every
// call fails with an error wrapping repository.ErrLock.
type Store[T any] struct {
	kind string
	key  func(T) string

	mu       sync.RWMutex
	entries  []T
	index    map[string]int
	poisoned atomic.Bool
}

// NewStore returns an empty store. kind labels errors, e.g. "user".
func NewStore[T any](kind string, key func(T) string) *Store[T] {
	return &Store[T]{
		kind:  kind,
		key:   key,
		index: make(map[string]int),
	}
}

func (s *Store[T]) Create(v T) (T, error) {
	err := s.write(func() error {
		id := s.key(v)
		if _, ok := s.index[id]; ok {
			return fmt.Errorf("%s %s: %w", s.kind, id, repository.ErrAlreadyExists)
		}
		s.index[id] = len(s.entries)
		s.entries = append(s.entries, v)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (s *Store[T]) Get(id string) (T, error) {
	var out T
	err := s.read(func() error {
		i, ok := s.index[id]
		if !ok {
			return fmt.Errorf("%s %s: %w", s.kind, id, repository.ErrNotFound)
		}
		out = s.entries[i]
		return nil
	})
	return out, err
}

// Find returns the first entry matching pred in iteration order. The order is
// an implementation detail; pred should identify at most one entry.
func (s *Store[T]) Find(pred func(T) bool) (T, error) {
	var out T
	err := s.read(func() error {
		for _, v := range s.entries {
			if pred(v) {
				out = v
				return nil
			}
		}
		return fmt.Errorf("%s: %w", s.kind, repository.ErrNotFound)
	})
	return out, err
}

// Filter returns every entry matching pred, never nil.
func (s *Store[T]) Filter(pred func(T) bool) ([]T, error) {
	out := []T{}
	err := s.read(func() error {
		for _, v := range s.entries {
			if pred(v) {
				out = append(out, v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns a snapshot of all entries at call time.
func (s *Store[T]) List() ([]T, error) {
	var out []T
	err := s.read(func() error {
		out = make([]T, len(s.entries))
		copy(out, s.entries)
		return nil
	})
	return out, err
}

// Update replaces the whole entry with the same key.
func (s *Store[T]) Update(v T) (T, error) {
	err := s.write(func() error {
		id := s.key(v)
		i, ok := s.index[id]
		if !ok {
			return fmt.Errorf("%s %s: %w", s.kind, id, repository.ErrNotFound)
		}
		s.entries[i] = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (s *Store[T]) Delete(id string) error {
	return s.write(func() error {
		i, ok := s.index[id]
		if !ok {
			return fmt.Errorf("%s %s: %w", s.kind, id, repository.ErrNotFound)
		}
		// move the last entry into the freed slot
		last := len(s.entries) - 1
		if i != last {
			s.entries[i] = s.entries[last]
			s.index[s.key(s.entries[i])] = i
		}
		var zero T
		s.entries[last] = zero
		s.entries = s.entries[:last]
		delete(s.index, id)
		return nil
	})
}

func (s *Store[T]) Len() (int, error) {
	var n int
	err := s.read(func() error {
		n = len(s.entries)
		return nil
	})
	return n, err
}

func (s *Store[T]) read(fn func() error) (err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.poisoned.Load() {
		return s.lockErr()
	}
	defer s.recoverPoison(&err)
	return fn()
}

func (s *Store[T]) write(fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.poisoned.Load() {
		return s.lockErr()
	}
	defer s.recoverPoison(&err)
	return fn()
}

func (s *Store[T]) recoverPoison(err *error) {
	if r := recover(); r != nil {
		s.poisoned.Store(true)
		*err = fmt.Errorf("%s store poisoned by panic (%v): %w", s.kind, r, repository.ErrLock)
	}
}

func (s *Store[T]) lockErr() error {
	return fmt.Errorf("%s store: %w", s.kind, repository.ErrLock)
}
