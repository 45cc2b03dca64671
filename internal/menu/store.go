package menu

import "sync"

// Store owns the menu state and serialises dispatches.
type Store struct {
	mu     sync.RWMutex
	state  State
	nextID int
	subs   map[int]func(State)
}

// NewStore returns a store holding Initial().
func NewStore() *Store {
	return &Store{state: Initial(), subs: make(map[int]func(State))}
}

// Dispatch applies a and notifies subscribers when the state changed.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	prev := s.state
	s.state = Reduce(s.state, a)
	next := s.state
	var notify []func(State)
	if next != prev {
		notify = make([]func(State), 0, len(s.subs))
		for _, fn := range s.subs {
			notify = append(notify, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(next)
	}
	return next
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after each state change. The returned
// func removes the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(State))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
