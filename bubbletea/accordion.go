package bubbletea

import "sort"

// OpenSet tracks which FAQ items are expanded. It only ever holds indices
// in [0, n).
type OpenSet struct {
	n    int
	open map[int]struct{}
}

// NewOpenSet returns an empty set for n items.
func NewOpenSet(n int) OpenSet {
	return OpenSet{n: max(n, 0), open: make(map[int]struct{})}
}

// IsOpen reports whether item i is expanded.
func (s OpenSet) IsOpen(i int) bool {
	_, ok := s.open[i]
	return ok
}

// Toggle flips item i and returns its new state. Out-of-range indices are
// ignored and report false.
func (s OpenSet) Toggle(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	if s.IsOpen(i) {
		delete(s.open, i)
		return false
	}
	s.open[i] = struct{}{}
	return true
}

// OpenAll expands every item.
func (s OpenSet) OpenAll() {
	for i := range s.n {
		s.open[i] = struct{}{}
	}
}

// CloseAll collapses every item.
func (s OpenSet) CloseAll() {
	clear(s.open)
}

// Len returns the number of expanded items.
func (s OpenSet) Len() int { return len(s.open) }

// Indices returns the expanded items in ascending order.
func (s OpenSet) Indices() []int {
	out := make([]int, 0, len(s.open))
	for i := range s.open {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
