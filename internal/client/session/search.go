package session

import "sync"

// SearchState is the explicit container for the user's search term and sort
// selection, replacing app-wide mutable context. Writers go through the
// setters; OnChange observers are notified after each write.
type SearchState struct {
	mu        sync.RWMutex
	term      string
	sortOrder string
	onChange  []func()
}

// NewSearchState starts with an empty term and number ordering.
func NewSearchState() *SearchState {
	return &SearchState{sortOrder: "number"}
}

func (s *SearchState) Term() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

func (s *SearchState) SetTerm(term string) {
	s.mu.Lock()
	s.term = term
	observers := append([]func(){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

func (s *SearchState) SortOrder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOrder
}

func (s *SearchState) SetSortOrder(order string) {
	s.mu.Lock()
	s.sortOrder = order
	observers := append([]func(){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// OnChange registers an observer called after every state write.
func (s *SearchState) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}
