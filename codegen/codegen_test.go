package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CitrusSin/regex-engine/dfa"
	"github.com/CitrusSin/regex-engine/nfa"
	"github.com/CitrusSin/regex-engine/syntax"
)

func compileDFA(t *testing.T, pattern string) *dfa.DFA {
	t.Helper()
	tokens, err := syntax.Tokenize(pattern)
	require.NoError(t, err)
	n, err := nfa.Build(tokens)
	require.NoError(t, err)
	return dfa.FromNFA(n).Minimize()
}

func TestGenerate_Literal(t *testing.T) {
	src, err := Generate(compileDFA(t, "ab"), Config{
		Package: "demo",
		Func:    "MatchAB",
		Pattern: "ab",
	})
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "package demo")
	assert.Contains(t, code, `Code generated from pattern "ab". DO NOT EDIT.`)
	assert.Contains(t, code, "func MatchAB(input string) bool")
	assert.Contains(t, code, "case 'a':")
	assert.Contains(t, code, "case 'b':")
	assert.Contains(t, code, "return true")
	assert.Contains(t, code, "for i := 0; i < len(input); i++")
}

func TestGenerate_GroupsSharedTargets(t *testing.T) {
	// All three class members lead to the same accept state; the emitted
	// switch should carry them in a single case arm.
	src, err := Generate(compileDFA(t, "[abc]"), Config{
		Package: "demo",
		Func:    "MatchClass",
	})
	require.NoError(t, err)

	assert.Contains(t, string(src), "case 'a', 'b', 'c':")
}

func TestGenerate_StarAcceptsAtStart(t *testing.T) {
	// a*: state 0 both starts and accepts.
	src, err := Generate(compileDFA(t, "a*"), Config{
		Package: "demo",
		Func:    "MatchStar",
	})
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "case 0:")
	assert.True(t, strings.Count(code, "return true") >= 1)
}

func TestGenerate_RequiresNames(t *testing.T) {
	d := compileDFA(t, "a")
	_, err := Generate(d, Config{Func: "M"})
	assert.Error(t, err)
	_, err = Generate(d, Config{Package: "p"})
	assert.Error(t, err)
}
