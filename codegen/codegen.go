// Package codegen turns a minimized DFA into standalone Go source: a single
// dependency-free function that hard-codes the transition table as nested
// switches. The emitted matcher decides full-string membership exactly like
// the interpreted DFA walk, with the compiler free to turn the switches
// into jump tables.
package codegen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/CitrusSin/regex-engine/dfa"
)

// Config controls the emitted source.
type Config struct {
	// Package is the package clause of the generated file.
	Package string

	// Func is the name of the generated matcher function.
	Func string

	// Pattern, when set, is quoted in the generated header comment.
	Pattern string
}

// Generate renders Go source for the automaton. The generated function has
// the signature `func <Func>(input string) bool`.
func Generate(d *dfa.DFA, cfg Config) ([]byte, error) {
	if cfg.Package == "" || cfg.Func == "" {
		return nil, fmt.Errorf("codegen: package and function names are required")
	}

	f := jen.NewFile(cfg.Package)
	if cfg.Pattern != "" {
		f.Comment(fmt.Sprintf("Code generated from pattern %q. DO NOT EDIT.", cfg.Pattern))
	} else {
		f.Comment("Code generated from a compiled automaton. DO NOT EDIT.")
	}

	f.Func().Id(cfg.Func).
		Params(jen.Id("input").String()).
		Params(jen.Bool()).
		Block(generateBody(d)...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	return buf.Bytes(), nil
}

func generateBody(d *dfa.DFA) []jen.Code {
	var stateCases []jen.Code
	for s := dfa.StateID(0); int(s) < d.StateCount(); s++ {
		table := d.Transitions(s)
		if len(table) == 0 {
			// A state with no outgoing edges rejects on any further
			// input; folding it into the default arm keeps the
			// generated switch small.
			continue
		}
		stateCases = append(stateCases,
			jen.Case(jen.Lit(int(s))).Block(transitionSwitch(table)))
	}
	stateCases = append(stateCases, jen.Default().Block(jen.Return(jen.False())))

	body := []jen.Code{
		jen.Id("state").Op(":=").Lit(0),
		jen.For(
			jen.Id("i").Op(":=").Lit(0),
			jen.Id("i").Op("<").Len(jen.Id("input")),
			jen.Id("i").Op("++"),
		).Block(
			jen.Switch(jen.Id("state")).Block(stateCases...),
		),
	}

	accepts := d.AcceptStates()
	if len(accepts) > 0 {
		lits := make([]jen.Code, len(accepts))
		for i, s := range accepts {
			lits[i] = jen.Lit(int(s))
		}
		body = append(body,
			jen.Switch(jen.Id("state")).Block(
				jen.Case(lits...).Block(jen.Return(jen.True())),
			),
		)
	}
	body = append(body, jen.Return(jen.False()))
	return body
}

// transitionSwitch renders one state's table as a switch over the current
// input byte, grouping characters that share a target.
func transitionSwitch(table map[byte]dfa.StateID) jen.Code {
	chars := make([]int, 0, len(table))
	for ch := range table {
		chars = append(chars, int(ch))
	}
	sort.Ints(chars)

	// Group by target in order of first appearance.
	var targets []dfa.StateID
	grouped := make(map[dfa.StateID][]jen.Code)
	for _, ch := range chars {
		to := table[byte(ch)]
		if _, ok := grouped[to]; !ok {
			targets = append(targets, to)
		}
		grouped[to] = append(grouped[to], jen.LitRune(rune(ch)))
	}

	var cases []jen.Code
	for _, to := range targets {
		cases = append(cases,
			jen.Case(grouped[to]...).Block(jen.Id("state").Op("=").Lit(int(to))))
	}
	cases = append(cases, jen.Default().Block(jen.Return(jen.False())))

	return jen.Switch(jen.Id("input").Index(jen.Id("i"))).Block(cases...)
}
