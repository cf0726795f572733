package reducer

import (
	"sort"
	"sync"
)

// Store holds the current state of one slice and applies actions to it
// through a Reducer. Subscribers are notified after every dispatch.
type Store[S any] struct {
	reducer *Reducer[S]

	mu          sync.RWMutex
	state       S
	subscribers map[int]func(S)
	nextID      int
}

// NewStore creates a store starting from the reducer's initial state.
func NewStore[S any](r *Reducer[S]) *Store[S] {
	return &Store[S]{
		reducer:     r,
		state:       r.Initial(),
		subscribers: make(map[int]func(S)),
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the action and returns the resulting state.
// Subscribers are called in subscription order, outside the lock, so they
// may dispatch again.
func (s *Store[S]) Dispatch(action Action) S {
	s.mu.Lock()
	current := s.state
	s.state = s.reducer.Reduce(&current, action)
	next := s.state
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(S), len(ids))
	for i, id := range ids {
		subs[i] = s.subscribers[id]
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn to be called with the new state after each dispatch.
// The returned function removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
