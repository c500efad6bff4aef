package nfa

import "sort"

// StateSet is a sorted, duplicate-free collection of state ids. It is the
// working representation of "a set of NFA states" during closure computation
// and subset construction; keeping it sorted makes the set's identity
// canonical, so the DFA built from an NFA is deterministic in the NFA's
// state numbering.
type StateSet []StateID

// Contains reports whether id is in the set.
func (s StateSet) Contains(id StateID) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= id })
	return i < len(s) && s[i] == id
}

// Key packs the set into a string usable as a map key. Two sets have equal
// keys exactly when they contain the same states.
func (s StateSet) Key() string {
	buf := make([]byte, 0, len(s)*4)
	for _, id := range s {
		buf = append(buf, byte(id>>24), byte(id>>16), byte(id>>8), byte(id))
	}
	return string(buf)
}

// setFromSorted converts a sorted []uint32 into a StateSet.
func setFromSorted(vals []uint32) StateSet {
	out := make(StateSet, len(vals))
	for i, v := range vals {
		out[i] = StateID(v)
	}
	return out
}
