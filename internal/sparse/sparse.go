// Package sparse provides a sparse integer set with O(1) insert, membership
// and clear. The automaton code uses it as the visited set while computing
// epsilon closures and moves, where the universe (the NFA state count) is
// known up front; each closure or move allocates a fresh set.
package sparse

import "sort"

// Set is a set of uint32 values below a fixed capacity. It keeps a sparse
// index array for membership tests and a dense array for iteration, so
// clearing does not require touching the whole universe.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set; inserting an existing value is a no-op.
// Values outside the capacity are ignored.
func (s *Set) Insert(value uint32) {
	if value >= uint32(len(s.sparse)) || s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the elements in insertion order. The slice aliases the
// set's storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Sorted returns a fresh slice of the elements in ascending order.
func (s *Set) Sorted() []uint32 {
	out := make([]uint32, len(s.dense))
	copy(out, s.dense)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
