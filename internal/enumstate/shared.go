package enumstate

import "sync/atomic"

// Shared publishes State snapshots to readers on other goroutines.
// Every Store swaps in a fresh State, so a Load never sees a value
// paired with stale flags. The zero Shared holds the domain default.
type Shared[E Enum] struct {
	snapshot atomic.Pointer[State[E]]
}

// NewShared returns a Shared holding v.
func NewShared[E Enum](v E) *Shared[E] {
	s := &Shared[E]{}
	s.Store(v)
	return s
}

// Store publishes a new snapshot holding v.
func (s *Shared[E]) Store(v E) {
	next := Of(v)
	s.snapshot.Store(&next)
}

// Swap publishes a snapshot holding v and returns the one it replaced.
func (s *Shared[E]) Swap(v E) State[E] {
	next := Of(v)
	prev := s.snapshot.Swap(&next)
	if prev == nil {
		return New[E]()
	}
	return *prev
}

// Load returns the current snapshot.
func (s *Shared[E]) Load() State[E] {
	if p := s.snapshot.Load(); p != nil {
		return *p
	}
	return New[E]()
}
