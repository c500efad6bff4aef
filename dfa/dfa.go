// Package dfa implements the deterministic stage of the engine: subset
// construction from an epsilon-NFA, minimization, and the transition table
// the matcher walks.
//
// The dead state is never materialized: a missing transition means Reject,
// and Reject is absorbing under every input. A DFA is immutable once built.
package dfa

import (
	"sort"

	"github.com/CitrusSin/regex-engine/internal/conv"
)

// StateID identifies a DFA state.
type StateID uint32

// Reject is the sentinel id of the implicit dead state. Every character
// without an explicit transition leads to Reject, and Reject stays Reject.
const Reject StateID = 0xFFFFFFFF

// DFA is a deterministic finite automaton over the printable byte range.
type DFA struct {
	states  []map[byte]StateID
	start   StateID
	accepts map[StateID]struct{}

	// marks holds the pattern-id set of each accept state in multi-pattern
	// mode; sorted and duplicate-free, defined only for accept states.
	marks map[StateID][]int
}

// New creates a DFA with a single start state and no transitions.
func New() *DFA {
	return &DFA{
		states:  []map[byte]StateID{{}},
		start:   0,
		accepts: make(map[StateID]struct{}),
		marks:   make(map[StateID][]int),
	}
}

// StateCount returns the number of materialized states.
func (d *DFA) StateCount() int {
	return len(d.states)
}

// Start returns the start state.
func (d *DFA) Start() StateID {
	return d.start
}

// AddState appends a fresh state and returns its id.
func (d *DFA) AddState() StateID {
	d.states = append(d.states, map[byte]StateID{})
	return StateID(conv.IntToUint32(len(d.states) - 1))
}

// SetJump sets the transition from -> to on ch.
func (d *DFA) SetJump(from StateID, ch byte, to StateID) {
	d.states[from][ch] = to
}

// NextState returns the successor of from on ch, or Reject when no
// transition exists. Reject is absorbing.
func (d *DFA) NextState(from StateID, ch byte) StateID {
	if from == Reject {
		return Reject
	}
	if to, ok := d.states[from][ch]; ok {
		return to
	}
	return Reject
}

// SetAccept adds or removes s from the accept set.
func (d *DFA) SetAccept(s StateID, accept bool) {
	if accept {
		d.accepts[s] = struct{}{}
	} else {
		delete(d.accepts, s)
		delete(d.marks, s)
	}
}

// IsAccept reports whether s is an accept state. Reject never accepts.
func (d *DFA) IsAccept(s StateID) bool {
	if s == Reject {
		return false
	}
	_, ok := d.accepts[s]
	return ok
}

// AcceptStates returns the accept set in ascending order.
func (d *DFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(d.accepts))
	for s := range d.accepts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions returns a copy of the transition table of s. Reject and
// out-of-range states have no transitions.
func (d *DFA) Transitions(s StateID) map[byte]StateID {
	if s == Reject || int(s) >= len(d.states) {
		return nil
	}
	out := make(map[byte]StateID, len(d.states[s]))
	for ch, to := range d.states[s] {
		out[ch] = to
	}
	return out
}

// setMarks attaches a pattern-id set to an accept state. The slice is
// stored as-is and must already be sorted and duplicate-free.
func (d *DFA) setMarks(s StateID, ids []int) {
	if len(ids) > 0 {
		d.marks[s] = ids
	}
}

// Marks returns a copy of the pattern-id set of s, nil for states without
// marks and for Reject.
func (d *DFA) Marks(s StateID) []int {
	if s == Reject {
		return nil
	}
	ids := d.marks[s]
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// MatchString walks the DFA over input and reports whether it ends in an
// accept state. Matching is infallible and linear in the input length.
func (d *DFA) MatchString(input string) bool {
	s := d.start
	for i := 0; i < len(input); i++ {
		s = d.NextState(s, input[i])
		if s == Reject {
			return false
		}
	}
	return d.IsAccept(s)
}

// Match is MatchString for a byte slice.
func (d *DFA) Match(input []byte) bool {
	s := d.start
	for _, c := range input {
		s = d.NextState(s, c)
		if s == Reject {
			return false
		}
	}
	return d.IsAccept(s)
}

// marksKey returns a canonical string for a state's mark set combined with
// its acceptance, used to group states during minimization.
func (d *DFA) marksKey(s StateID) string {
	if !d.IsAccept(s) {
		return ""
	}
	key := []byte{'A'}
	for _, id := range d.marks[s] {
		key = append(key,
			byte(id>>24), byte(id>>16), byte(id>>8), byte(id))
	}
	return string(key)
}
