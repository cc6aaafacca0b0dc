package ordered

// Set is an insertion-ordered set. Values keeps the order in which
// elements were first added; re-adding an element does not move it.
type Set[T comparable] struct {
	index  map[T]int
	values []T
}

// NewSet creates a Set seeded with vals in order.
func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]int, len(vals))}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add inserts v. Returns true if v was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.values)
	s.values = append(s.values, v)
	return true
}

// Contains reports whether v is in the set
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements
func (s *Set[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the elements in insertion order
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}
