package hashtable

// Set is a membership-only view over HashTable. Add drops duplicates, so
// Len counts distinct elements.
type Set[E Hashable[E]] struct {
	table *HashTable[E]
}

// NewSet creates a new Set with initSize buckets.
func NewSet[E Hashable[E]](initSize int) *Set[E] {
	return &Set[E]{
		table: NewWithSize[E](initSize),
	}
}

// Add inserts an element unless an equal one is already stored.
func (s *Set[E]) Add(elem E) {
	if s.table.Contains(elem) {
		return
	}
	s.table.Add(elem)
}

// Contains checks if an element is in the set.
func (s *Set[E]) Contains(elem E) bool {
	return s.table.Contains(elem)
}

// Len returns the number of distinct elements.
func (s *Set[E]) Len() int {
	return s.table.TotalNodes()
}
