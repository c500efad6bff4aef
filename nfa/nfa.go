// Package nfa implements the epsilon-NFA stage of the engine: the automaton
// data structure, the fragment algebra used to assemble it, and the
// operator-precedence builder that evaluates a token stream into a single
// fragment.
//
// States are addressed by dense integer ids. Joining two automata is done
// purely by id translation (splicing), never by pointer rewriting, so each
// NFA remains one contiguous, exclusively-owned structure. After Build
// returns, the NFA is read-only and safe to share.
package nfa

import (
	"sort"

	"github.com/CitrusSin/regex-engine/internal/conv"
	"github.com/CitrusSin/regex-engine/internal/sparse"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState is an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// stateNode holds the outgoing edges of one state: a character multi-map
// (several successors per character are permitted) and an epsilon set.
type stateNode struct {
	next    map[byte][]StateID
	epsNext map[StateID]struct{}
}

// NFA is a nondeterministic finite automaton with epsilon transitions.
// A fresh NFA has exactly one state, the start, and no transitions.
type NFA struct {
	states  []stateNode
	start   StateID
	accepts map[StateID]struct{}

	// marks carries the pattern ids attached to accept states in
	// multi-pattern mode; each slice is sorted and duplicate-free.
	marks map[StateID][]int
}

// New creates an empty NFA: a single start state accepting nothing.
func New() *NFA {
	n := &NFA{
		accepts: make(map[StateID]struct{}),
		marks:   make(map[StateID][]int),
	}
	n.start = n.AddState()
	return n
}

// StateCount returns the number of states.
func (n *NFA) StateCount() int {
	return len(n.states)
}

// Start returns the start state id.
func (n *NFA) Start() StateID {
	return n.start
}

// AddState appends a fresh state with no transitions and returns its id.
func (n *NFA) AddState() StateID {
	id := StateID(conv.IntToUint32(len(n.states)))
	n.states = append(n.states, stateNode{
		next:    make(map[byte][]StateID),
		epsNext: make(map[StateID]struct{}),
	})
	return id
}

// AddJump adds a character transition from -> to on ch. Multiple targets per
// character are permitted.
func (n *NFA) AddJump(from StateID, ch byte, to StateID) {
	node := &n.states[from]
	node.next[ch] = append(node.next[ch], to)
}

// AddEpsilonJump adds an epsilon transition from -> to.
func (n *NFA) AddEpsilonJump(from, to StateID) {
	n.states[from].epsNext[to] = struct{}{}
}

// ContainsEpsilonJump reports whether an epsilon transition from -> to exists.
func (n *NFA) ContainsEpsilonJump(from, to StateID) bool {
	_, ok := n.states[from].epsNext[to]
	return ok
}

// SetAccept adds or removes s from the accept set.
func (n *NFA) SetAccept(s StateID, accept bool) {
	if accept {
		n.accepts[s] = struct{}{}
	} else {
		delete(n.accepts, s)
	}
}

// IsAccept reports whether s is an accept state.
func (n *NFA) IsAccept(s StateID) bool {
	_, ok := n.accepts[s]
	return ok
}

// AcceptStates returns the accept set in ascending order.
func (n *NFA) AcceptStates() StateSet {
	out := make(StateSet, 0, len(n.accepts))
	for s := range n.accepts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarkAccepts attaches the pattern id to every current accept state. In the
// multi-pattern mode each expression's fragment is marked with its id before
// being branched onto the shared root, and subset construction unions the
// marks into the DFA's accept states.
func (n *NFA) MarkAccepts(id int) {
	for s := range n.accepts {
		n.marks[s] = insertMark(n.marks[s], id)
	}
}

// Marks returns the union of pattern ids attached to the members of set,
// sorted ascending. The result is nil when no member carries a mark.
func (n *NFA) Marks(set StateSet) []int {
	var out []int
	for _, s := range set {
		for _, id := range n.marks[s] {
			out = insertMark(out, id)
		}
	}
	return out
}

// insertMark inserts id into the sorted duplicate-free slice marks.
func insertMark(marks []int, id int) []int {
	i := sort.SearchInts(marks, id)
	if i < len(marks) && marks[i] == id {
		return marks
	}
	marks = append(marks, 0)
	copy(marks[i+1:], marks[i:])
	marks[i] = id
	return marks
}

// EpsilonClosure expands set with everything reachable over epsilon
// transitions. The result is a fresh sorted set; closure is idempotent.
func (n *NFA) EpsilonClosure(set StateSet) StateSet {
	visited := sparse.NewSet(len(n.states))
	stack := make([]StateID, 0, len(set))
	for _, s := range set {
		visited.Insert(uint32(s))
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range n.states[s].epsNext {
			if !visited.Contains(uint32(next)) {
				visited.Insert(uint32(next))
				stack = append(stack, next)
			}
		}
	}
	return setFromSorted(visited.Sorted())
}

// StartSet returns the epsilon closure of the start state.
func (n *NFA) StartSet() StateSet {
	return n.EpsilonClosure(StateSet{n.start})
}

// NextSet returns the epsilon closure of the states reachable from set on ch.
func (n *NFA) NextSet(set StateSet, ch byte) StateSet {
	moved := sparse.NewSet(len(n.states))
	for _, s := range set {
		for _, to := range n.states[s].next[ch] {
			moved.Insert(uint32(to))
		}
	}
	return n.EpsilonClosure(setFromSorted(moved.Sorted()))
}

// CharTransitions returns, in ascending order, every character labelling a
// transition out of any member of set.
func (n *NFA) CharTransitions(set StateSet) []byte {
	var present [256]bool
	for _, s := range set {
		for ch := range n.states[s].next {
			present[ch] = true
		}
	}
	var out []byte
	for ch := 0; ch < 256; ch++ {
		if present[ch] {
			out = append(out, byte(ch))
		}
	}
	return out
}

// AnyAccept reports whether set contains an accept state.
func (n *NFA) AnyAccept(set StateSet) bool {
	for _, s := range set {
		if n.IsAccept(s) {
			return true
		}
	}
	return false
}

// Match runs the NFA directly over input by iterated closure-and-move.
// The production matcher always walks the DFA; this walk exists so the two
// stages can be checked against each other.
func (n *NFA) Match(input string) bool {
	set := n.StartSet()
	for i := 0; i < len(input); i++ {
		set = n.NextSet(set, input[i])
		if len(set) == 0 {
			return false
		}
	}
	return n.AnyAccept(set)
}
