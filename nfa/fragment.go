package nfa

// The fragment algebra. Every NFA built here is a fragment: one start state
// and a non-empty accept set. The binary operations consume their right
// operand by splicing its state table into the receiver; the spliced-from
// automaton must not be used afterwards.

// Printable character range; the engine's alphabet.
const (
	minChar byte = 0x20
	maxChar byte = 0x7E
)

// NewLiteral builds a fragment matching exactly the string s: a chain with
// one transition per character. The empty string yields the one-state
// fragment whose start accepts.
func NewLiteral(s string) *NFA {
	n := New()
	state := n.start
	for i := 0; i < len(s); i++ {
		next := n.AddState()
		n.AddJump(state, s[i], next)
		state = next
	}
	n.SetAccept(state, true)
	return n
}

// NewClass builds a fragment matching any single character selected by the
// raw class body (the text between '[' and ']'). A leading '^' negates the
// selection, "a-z" denotes an inclusive range, and a backslash makes the
// following character literal. Only printable characters are emitted, so a
// negated class never matches outside [0x20, 0x7E].
func NewClass(body string) *NFA {
	sel := expandClass(body)

	n := New()
	accept := n.AddState()
	n.SetAccept(accept, true)
	for ch := minChar; ch <= maxChar; ch++ {
		if sel[ch] {
			n.AddJump(n.start, ch, accept)
		}
	}
	return n
}

// expandClass evaluates a class body into a selection table over the 7-bit
// range. Escape handling mirrors the range syntax: "\-" selects '-' itself,
// while any other "\x" contributes the literal x, including as a range
// endpoint ("a-\]" is the range a..]).
func expandClass(body string) [128]bool {
	var sel [128]bool
	negate := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if i == 0 && c == '^' {
			negate = true
			continue
		}
		if c == '\\' && i+1 < len(body) {
			i++
			c = body[i]
			if c == '-' {
				sel['-'] = true
				continue
			}
		}
		if i+2 < len(body) && body[i+1] == '-' {
			from, to := c, body[i+2]
			if to == '\\' && i+3 < len(body) {
				to = body[i+3]
				i += 3
			} else {
				i += 2
			}
			for ch := from; ch <= to && ch < 128; ch++ {
				sel[ch] = true
			}
			continue
		}
		if c < 128 {
			sel[c] = true
		}
	}
	if negate {
		for i := range sel {
			sel[i] = !sel[i]
		}
	}
	return sel
}

// splice copies other's whole state table into n, translating every state id
// by the current state count. It returns other's translated start state and
// accept set; accept marks are carried over. This is the sole mechanism by
// which two automata are joined.
func (n *NFA) splice(other *NFA) (start StateID, accepts []StateID) {
	offset := StateID(len(n.states))
	for src := range other.states {
		node := &other.states[src]
		id := n.AddState()
		for ch, targets := range node.next {
			for _, to := range targets {
				n.AddJump(id, ch, to+offset)
			}
		}
		for to := range node.epsNext {
			n.AddEpsilonJump(id, to+offset)
		}
	}

	start = other.start + offset
	for s := range other.accepts {
		accepts = append(accepts, s+offset)
	}
	for s, marks := range other.marks {
		for _, id := range marks {
			n.marks[s+offset] = insertMark(n.marks[s+offset], id)
		}
	}
	return start, accepts
}

// unifyAccepts collapses the accept set to a single state by routing epsilon
// transitions from each former accept to a fresh state. It is a no-op when
// the set has at most one element. Marks of the former accepts move to the
// fresh state.
func (n *NFA) unifyAccepts() {
	if len(n.accepts) <= 1 {
		return
	}
	unified := n.AddState()
	for s := range n.accepts {
		n.AddEpsilonJump(s, unified)
		for _, id := range n.marks[s] {
			n.marks[unified] = insertMark(n.marks[unified], id)
		}
		delete(n.marks, s)
	}
	n.accepts = map[StateID]struct{}{unified: {}}
}

// soleAccept returns the single accept state after unifyAccepts.
func (n *NFA) soleAccept() (StateID, bool) {
	for s := range n.accepts {
		return s, true
	}
	return InvalidState, false
}

// Concat appends other to the receiver: the receiver's (unified) accept
// state gains an epsilon edge to other's start, and other's accepts become
// the receiver's. Consumes other.
func (n *NFA) Concat(other *NFA) {
	n.unifyAccepts()
	sole, ok := n.soleAccept()
	if !ok {
		return
	}
	n.accepts = make(map[StateID]struct{})
	delete(n.marks, sole)

	start, accepts := n.splice(other)
	n.AddEpsilonJump(sole, start)
	for _, s := range accepts {
		n.accepts[s] = struct{}{}
	}
}

// Branch alternates other with the receiver: other's graph is spliced in
// with an epsilon edge from the receiver's start to other's start, and the
// accept sets are unioned. Consumes other.
func (n *NFA) Branch(other *NFA) {
	start, accepts := n.splice(other)
	n.AddEpsilonJump(n.start, start)
	for _, s := range accepts {
		n.accepts[s] = struct{}{}
	}
}

// Repeat makes the fragment match one or more occurrences of itself by
// adding an epsilon edge from the unified accept back to the start.
func (n *NFA) Repeat() {
	n.unifyAccepts()
	sole, ok := n.soleAccept()
	if !ok {
		return
	}
	if !n.ContainsEpsilonJump(sole, n.start) {
		n.AddEpsilonJump(sole, n.start)
	}
}

// Skip makes the fragment match the empty string as well by adding an
// epsilon edge from the start to the unified accept.
func (n *NFA) Skip() {
	n.unifyAccepts()
	sole, ok := n.soleAccept()
	if !ok {
		return
	}
	if !n.ContainsEpsilonJump(n.start, sole) {
		n.AddEpsilonJump(n.start, sole)
	}
}

// Star is Repeat followed by Skip: zero or more occurrences.
func (n *NFA) Star() {
	n.Repeat()
	n.Skip()
}
