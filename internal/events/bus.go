package events

import (
	"sort"
	"sync"
)

// Listener receives dispatched events.
type Listener func(e Event)

// Bus is an in-process Dispatcher keyed by event name.
type Bus struct {
	mu        sync.RWMutex
	listeners map[Name]map[int]Listener
	nextID    int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[Name]map[int]Listener),
	}
}

// Subscribe registers l for events named name.
// The returned function removes the listener.
func (b *Bus) Subscribe(name Name, l Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.listeners[name] == nil {
		b.listeners[name] = make(map[int]Listener)
	}
	b.listeners[name][id] = l

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners[name], id)
		if len(b.listeners[name]) == 0 {
			delete(b.listeners, name)
		}
	}
}

// Dispatch delivers e to every listener registered for its name, in
// subscription order. Events nobody listens to are dropped.
func (b *Bus) Dispatch(e Event) {
	if e == nil {
		return
	}

	b.mu.RLock()
	byID := b.listeners[e.EventName()]
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	targets := make([]Listener, len(ids))
	for i, id := range ids {
		targets[i] = byID[id]
	}
	b.mu.RUnlock()

	for _, l := range targets {
		l(e)
	}
}

// ListenerCount returns the number of listeners registered for name.
func (b *Bus) ListenerCount(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[name])
}
