package nfa

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders the automaton as human-readable text, one line per state:
//
//	STATE0: {EPS -> {1,2},a -> 3}
//	FINISH_STATES = {4,5}
//
// Singleton sets print as a bare id. The format exists for test inspection
// and the diagnostic driver; it is not a stable contract.
func (n *NFA) Dump() string {
	var b strings.Builder
	for s := range n.states {
		node := &n.states[s]
		fmt.Fprintf(&b, "STATE%d: {", s)

		wrote := false
		if len(node.epsNext) > 0 {
			eps := make([]StateID, 0, len(node.epsNext))
			for to := range node.epsNext {
				eps = append(eps, to)
			}
			b.WriteString("EPS -> ")
			b.WriteString(formatIDSet(eps))
			wrote = true
		}

		chars := make([]int, 0, len(node.next))
		for ch := range node.next {
			chars = append(chars, int(ch))
		}
		sort.Ints(chars)
		for _, ch := range chars {
			if wrote {
				b.WriteByte(',')
			}
			wrote = true
			fmt.Fprintf(&b, "%c -> %s", ch, formatIDSet(node.next[byte(ch)]))
		}
		b.WriteString("}\n")
	}
	b.WriteString("FINISH_STATES = ")
	b.WriteString(formatIDSet(n.AcceptStates()))
	b.WriteByte('\n')
	return b.String()
}

// formatIDSet prints a set of ids: "{}" when empty, a bare id for a
// singleton, "{a,b,c}" otherwise (ascending).
func formatIDSet[S ~[]StateID](ids S) string {
	sorted := make([]StateID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	// Duplicates can occur in a character multi-map; collapse them.
	uniq := sorted[:0]
	for i, id := range sorted {
		if i == 0 || uniq[len(uniq)-1] != id {
			uniq = append(uniq, id)
		}
	}

	switch len(uniq) {
	case 0:
		return "{}"
	case 1:
		return fmt.Sprintf("%d", uniq[0])
	}
	parts := make([]string, len(uniq))
	for i, id := range uniq {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
