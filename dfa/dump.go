package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders the transition table as text, one line per state:
//
//	STATE0: {a -> 1, b -> 2}
//	STOP_STATES = 2
//
// Like the NFA dump, this exists for inspection only.
func (d *DFA) Dump() string {
	var b strings.Builder
	for s := range d.states {
		fmt.Fprintf(&b, "STATE%d: {", s)
		chars := make([]int, 0, len(d.states[s]))
		for ch := range d.states[s] {
			chars = append(chars, int(ch))
		}
		sort.Ints(chars)
		for i, ch := range chars {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%c -> %d", ch, d.states[s][byte(ch)])
		}
		b.WriteString("}\n")
	}
	b.WriteString("STOP_STATES =")
	for _, s := range d.AcceptStates() {
		fmt.Fprintf(&b, " %d", s)
	}
	b.WriteByte('\n')
	return b.String()
}
