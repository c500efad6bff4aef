package dfa

import "sort"

// Minimize returns an equivalent DFA in which no two distinct live states
// are behaviorally equivalent.
//
// The algorithm is partition refinement over a representative forest
// (parent[s] is the representative of s's partition):
//
//  1. Initially, accept states with the same mark set share one partition
//     (distinct mark sets stay separate) and all non-accept states share
//     another, so refinement can never merge states that must stay apart.
//  2. Each pass compares every state's transition table with its
//     representative's, modulo the current partition: two transitions agree
//     iff their targets have the same representative, with a missing entry
//     standing for Reject. States that disagree are split off, grouped by
//     their transition signature so states that behave alike stay together.
//  3. Passes repeat until a full pass changes nothing.
//  4. Surviving representatives are renumbered densely in id order;
//     transitions, start and accepts are remapped onto them.
//
// The Reject sink stays implicit throughout. Unreachable states cannot
// occur because subset construction only allocates reachable states.
func (d *DFA) Minimize() *DFA {
	m := len(d.states)
	parent := make([]StateID, m)

	// Step 1: initial partition.
	initial := make(map[string]StateID, 4) // marks key -> representative
	for s := 0; s < m; s++ {
		key := d.marksKey(StateID(s))
		rep, ok := initial[key]
		if !ok {
			rep = StateID(s)
			initial[key] = rep
		}
		parent[s] = rep
	}

	root := func(s StateID) StateID {
		if s == Reject {
			return Reject
		}
		return parent[s]
	}

	// signature renders a transition table modulo the current partition.
	signature := func(s StateID) string {
		table := d.states[s]
		chars := make([]int, 0, len(table))
		for ch := range table {
			chars = append(chars, int(ch))
		}
		sort.Ints(chars)
		buf := make([]byte, 0, len(chars)*5)
		for _, ch := range chars {
			to := root(table[byte(ch)])
			buf = append(buf, byte(ch),
				byte(to>>24), byte(to>>16), byte(to>>8), byte(to))
		}
		return string(buf)
	}

	// Steps 2-3: refine until stable.
	for changed := true; changed; {
		changed = false

		members := make(map[StateID][]StateID, m)
		for s := 0; s < m; s++ {
			r := parent[s]
			members[r] = append(members[r], StateID(s))
		}

		for r, group := range members {
			if len(group) == 1 {
				continue
			}
			repSig := signature(r)
			split := make(map[string][]StateID)
			for _, s := range group {
				if s == r {
					continue
				}
				sig := signature(s)
				if sig == repSig {
					continue
				}
				split[sig] = append(split[sig], s)
			}
			// Each signature bucket becomes its own partition, led by
			// its lowest member (groups are built in ascending order).
			for _, bucket := range split {
				lead := bucket[0]
				for _, s := range bucket {
					parent[s] = lead
				}
				changed = true
			}
		}
	}

	// Step 4: collapse onto densely renumbered representatives.
	newID := make(map[StateID]StateID, m)
	var count StateID
	for s := 0; s < m; s++ {
		if parent[s] == StateID(s) {
			newID[StateID(s)] = count
			count++
		}
	}

	out := &DFA{
		states:  make([]map[byte]StateID, count),
		start:   newID[parent[d.start]],
		accepts: make(map[StateID]struct{}),
		marks:   make(map[StateID][]int),
	}
	for rep, id := range newID {
		table := make(map[byte]StateID, len(d.states[rep]))
		for ch, to := range d.states[rep] {
			table[ch] = newID[root(to)]
		}
		out.states[id] = table
		if d.IsAccept(rep) {
			out.accepts[id] = struct{}{}
			out.setMarks(id, d.Marks(rep))
		}
	}
	return out
}
