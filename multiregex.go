package regexengine

import (
	"github.com/coregx/ahocorasick"

	"github.com/CitrusSin/regex-engine/dfa"
	"github.com/CitrusSin/regex-engine/nfa"
	"github.com/CitrusSin/regex-engine/syntax"
)

// Pattern pairs a caller-chosen id with an expression for multi-pattern
// compilation. Ids need not be unique or contiguous; duplicate ids simply
// end up unioned in the mark sets.
type Pattern struct {
	ID   int
	Expr string
}

// MultiRegex recognizes several patterns with a single DFA walk. Each
// pattern's NFA is branched off a shared start state with its accepts
// tagged by the pattern id; subset construction and minimization preserve
// those tags as per-state mark sets.
//
// When every pattern contains a literal that must occur in any of its
// matches, an Aho-Corasick automaton over those literals acts as a
// quick-reject prefilter: input containing none of them cannot match any
// pattern, so classification returns without touching the DFA.
type MultiRegex struct {
	patterns  []Pattern
	dfa       *dfa.DFA
	prefilter *ahocorasick.Automaton
}

// CompileSet compiles all patterns into one recognizer. Unlike the
// single-pattern path the DFA is built eagerly: the classifier use case
// compiles once and matches many times.
func CompileSet(patterns []Pattern) (*MultiRegex, error) {
	root := nfa.New()
	required := make([]string, 0, len(patterns))
	allRequired := true

	for _, p := range patterns {
		tokens, err := syntax.Tokenize(p.Expr)
		if err != nil {
			return nil, err
		}
		frag, err := nfa.Build(tokens)
		if err != nil {
			return nil, withPattern(err, p.Expr)
		}
		frag.MarkAccepts(p.ID)
		root.Branch(frag)

		if lit, ok := requiredLiteral(tokens); ok {
			required = append(required, lit)
		} else {
			allRequired = false
		}
	}

	m := &MultiRegex{
		patterns: patterns,
		dfa:      dfa.FromNFA(root).Minimize(),
	}
	if allRequired && len(required) > 0 {
		m.prefilter = buildPrefilter(required)
	}
	return m, nil
}

// Classify returns the ids of every pattern whose language contains input,
// sorted ascending; nil when no pattern matches.
func (m *MultiRegex) Classify(input string) []int {
	return m.ClassifyBytes([]byte(input))
}

// ClassifyBytes is Classify for a byte slice.
func (m *MultiRegex) ClassifyBytes(input []byte) []int {
	if m.prefilter != nil && !m.prefilter.IsMatch(input) {
		return nil
	}
	s := m.dfa.Start()
	for _, c := range input {
		s = m.dfa.NextState(s, c)
		if s == dfa.Reject {
			return nil
		}
	}
	if !m.dfa.IsAccept(s) {
		return nil
	}
	return m.dfa.Marks(s)
}

// DFA returns the combined minimized automaton; read-only.
func (m *MultiRegex) DFA() *dfa.DFA {
	return m.dfa
}

// Patterns returns the compiled pattern set as given.
func (m *MultiRegex) Patterns() []Pattern {
	return m.patterns
}

// buildPrefilter assembles the Aho-Corasick automaton; a build failure just
// disables the fast path.
func buildPrefilter(literals []string) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// requiredLiteral extracts, from a tokenized pattern, a literal that every
// matching input must contain, when one can be established cheaply. The
// scan is conservative: any alternation disqualifies the pattern, and only
// top-level literal runs not governed by '*' or '?' count. '+' keeps a run
// required since it demands at least one occurrence. The longest qualifying
// run wins.
func requiredLiteral(tokens []syntax.Token) (string, bool) {
	for _, tk := range tokens {
		if tk.Kind == syntax.TokenOperator && tk.Op == syntax.OpAlternate {
			return "", false
		}
	}

	best := ""
	depth := 0
	for i, tk := range tokens {
		switch tk.Kind {
		case syntax.TokenLParen:
			depth++
		case syntax.TokenRParen:
			depth--
		case syntax.TokenLiteral:
			if depth != 0 {
				continue
			}
			if i+1 < len(tokens) && isErasingOp(tokens[i+1]) {
				continue
			}
			if len(tk.Text) > len(best) {
				best = tk.Text
			}
		}
	}
	return best, best != ""
}

// isErasingOp reports whether the token is a postfix operator under which
// its operand may occur zero times.
func isErasingOp(tk syntax.Token) bool {
	return tk.Kind == syntax.TokenOperator &&
		(tk.Op == syntax.OpStar || tk.Op == syntax.OpOptional)
}
