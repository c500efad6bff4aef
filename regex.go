// Package regexengine compiles regular expressions into minimal
// deterministic finite automata and decides full-string membership.
//
// The pipeline is classical: the pattern is tokenized with implicit
// concatenation made explicit, evaluated into a Thompson epsilon-NFA by an
// operator-precedence builder, determinized by subset construction, and
// minimized. Matching is then a single table lookup per input byte with no
// backtracking.
//
// Basic usage:
//
//	re, err := regexengine.Compile("a(b|c)*d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("abccd") // true
//
// A second mode compiles several expressions into one recognizer that
// reports which of them matched, lexer style:
//
//	mr, err := regexengine.CompileSet([]regexengine.Pattern{
//	    {ID: 0, Expr: "if"},
//	    {ID: 1, Expr: "[a-z]+"},
//	})
//	mr.Classify("if") // [0 1]
//
// Supported syntax: literals, character classes ("[a-z0-9]", "[^abc]",
// escapes and ranges inside classes), grouping, alternation '|' and the
// postfix quantifiers '*', '+', '?'. Patterns are over the printable 7-bit
// range; there are no capture groups, anchors or backreferences, and a
// match always spans the whole input.
//
// A compiled Regex is immutable and safe for concurrent use; the minimized
// DFA is materialized lazily on first use behind a one-shot barrier.
package regexengine

import (
	"errors"
	"sync"

	"github.com/CitrusSin/regex-engine/dfa"
	"github.com/CitrusSin/regex-engine/nfa"
	"github.com/CitrusSin/regex-engine/syntax"
)

// Regex is a compiled single-pattern expression.
type Regex struct {
	pattern string
	tokens  []syntax.Token
	nfa     *nfa.NFA

	dfaOnce sync.Once
	dfa     *dfa.DFA
}

// Compile parses a pattern and builds its NFA. The DFA is built lazily on
// first match. Compile errors are *syntax.Error values carrying the error
// kind and the offending source offset.
func Compile(pattern string) (*Regex, error) {
	tokens, err := syntax.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	n, err := nfa.Build(tokens)
	if err != nil {
		return nil, withPattern(err, pattern)
	}
	return &Regex{
		pattern: pattern,
		tokens:  tokens,
		nfa:     n,
	}, nil
}

// MustCompile is Compile panicking on error, for patterns known to be valid
// at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexengine: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// MatchString reports whether the whole input belongs to the pattern's
// language. Matching never fails and is linear in the input length.
func (r *Regex) MatchString(input string) bool {
	return r.DFA().MatchString(input)
}

// Match is MatchString for a byte slice.
func (r *Regex) Match(input []byte) bool {
	return r.DFA().Match(input)
}

// Tokens returns the rendered token stream, a debug view.
func (r *Regex) Tokens() []string {
	out := make([]string, len(r.tokens))
	for i, tk := range r.tokens {
		out[i] = tk.String()
	}
	return out
}

// NFA returns the built automaton. It is shared, not copied; treat it as
// read-only.
func (r *Regex) NFA() *nfa.NFA {
	return r.nfa
}

// DFA returns the minimized automaton, building it on first use. The
// sync.Once barrier makes the lazy materialization safe under concurrent
// matching.
func (r *Regex) DFA() *dfa.DFA {
	r.dfaOnce.Do(func() {
		r.dfa = dfa.FromNFA(r.nfa).Minimize()
	})
	return r.dfa
}

// withPattern fills the pattern into a *syntax.Error that was produced
// below the facade, where only token offsets are known.
func withPattern(err error, pattern string) error {
	var serr *syntax.Error
	if errors.As(err, &serr) && serr.Pattern == "" {
		serr.Pattern = pattern
	}
	return err
}
