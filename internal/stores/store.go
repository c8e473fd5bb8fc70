// Package stores holds the client-side entity caches. Each store wraps
// a resource service, keeps the last server-confirmed collection in
// memory, and publishes state snapshots to subscribers so a UI layer
// can observe changes without the store depending on any UI framework.
//
// Mutation semantics are deliberately conservative: nothing is written
// to the local cache until the server confirms it. A failed operation
// records a display message and leaves the previous collection intact,
// so stale data stays available while the user retries.
package stores

import "sync"

// Snapshot is an immutable view of a store at one point in time. Items
// and Selected are copies; mutating them does not affect the store.
type Snapshot[T, S any] struct {
	Items     []T
	Selected  *S
	IsLoading bool
	Error     string
}

// state carries the shared observable machinery: the cached collection,
// the selected slot, the loading/error pair, and the subscriber set.
// Concrete stores embed it and mutate through apply so every change
// produces exactly one notification.
type state[T, S any] struct {
	mu        sync.Mutex
	items     []T
	selected  *S
	isLoading bool
	lastError string

	subMu   sync.Mutex
	subs    map[int]func(Snapshot[T, S])
	nextSub int
}

func newState[T, S any]() state[T, S] {
	return state[T, S]{subs: make(map[int]func(Snapshot[T, S]))}
}

// Snapshot returns a copy of the current state.
func (s *state[T, S]) Snapshot() Snapshot[T, S] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked on every state change and
// returns a function that removes it. The callback runs synchronously
// on the mutating goroutine; it must not call back into the store.
func (s *state[T, S]) Subscribe(fn func(Snapshot[T, S])) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// apply runs fn under the state lock, then notifies subscribers with
// the resulting snapshot.
func (s *state[T, S]) apply(fn func()) {
	s.mu.Lock()
	fn()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *state[T, S]) snapshotLocked() Snapshot[T, S] {
	snapshot := Snapshot[T, S]{
		IsLoading: s.isLoading,
		Error:     s.lastError,
	}
	if s.items != nil {
		snapshot.Items = make([]T, len(s.items))
		copy(snapshot.Items, s.items)
	}
	if s.selected != nil {
		selected := *s.selected
		snapshot.Selected = &selected
	}
	return snapshot
}

func (s *state[T, S]) notify(snapshot Snapshot[T, S]) {
	s.subMu.Lock()
	subs := make([]func(Snapshot[T, S]), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
