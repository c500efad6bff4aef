package dfa

import (
	"github.com/CitrusSin/regex-engine/nfa"
)

// FromNFA runs subset construction: each DFA state corresponds to the
// epsilon closure of a set of NFA states, discovered breadth-first from the
// closure of the NFA start. Closure sets are kept in canonical sorted form,
// so the resulting DFA is deterministic in the NFA's state numbering, and
// only reachable states are ever allocated.
//
// A DFA state accepts iff its closure contains an NFA accept state; its
// mark set is the union of the marks of the NFA accepts it contains.
func FromNFA(n *nfa.NFA) *DFA {
	d := New()

	startSet := n.StartSet()
	translate := map[string]StateID{startSet.Key(): d.start}
	if n.AnyAccept(startSet) {
		d.SetAccept(d.start, true)
		d.setMarks(d.start, n.Marks(startSet))
	}

	queue := []nfa.StateSet{startSet}
	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		from := translate[set.Key()]

		for _, ch := range n.CharTransitions(set) {
			next := n.NextSet(set, ch)
			key := next.Key()
			to, ok := translate[key]
			if !ok {
				to = d.AddState()
				translate[key] = to
				if n.AnyAccept(next) {
					d.SetAccept(to, true)
					d.setMarks(to, n.Marks(next))
				}
				queue = append(queue, next)
			}
			d.SetJump(from, ch, to)
		}
	}

	return d
}
