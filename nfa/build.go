package nfa

import (
	"github.com/CitrusSin/regex-engine/syntax"
)

// Build evaluates a token stream into a single NFA fragment using two
// stacks: operand fragments and pending operator tokens. An operator pops
// and applies every stacked operator of strictly higher precedence before
// being pushed. Under the strict comparison an equal-precedence operator is
// stacked rather than applied, so a chain such as a·b·c is reduced right to
// left, as a·(b·c); concatenation and alternation are associative, so the
// accepted language is the same either way. Parentheses act as stack
// sentinels.
//
// User errors are returned as *syntax.Error values: unbalanced parentheses,
// an operator with too few operands, and a pattern with no tokens. An
// operand stack that ends up with more than one fragment without any of
// those being detected is a programming error and panics.
func Build(tokens []syntax.Token) (*NFA, error) {
	if len(tokens) == 0 {
		return nil, &syntax.Error{Err: syntax.ErrEmptyPattern}
	}

	var operands []*NFA
	var opers []syntax.Token

	apply := func(op syntax.Token) error {
		if len(operands) < op.Op.Arity() {
			return &syntax.Error{Err: syntax.ErrOperatorArity, Pos: op.Pos}
		}
		switch op.Op {
		case syntax.OpRepeat:
			operands[len(operands)-1].Repeat()
		case syntax.OpOptional:
			operands[len(operands)-1].Skip()
		case syntax.OpStar:
			operands[len(operands)-1].Star()
		case syntax.OpConcat:
			operands[len(operands)-2].Concat(operands[len(operands)-1])
			operands = operands[:len(operands)-1]
		case syntax.OpAlternate:
			operands[len(operands)-2].Branch(operands[len(operands)-1])
			operands = operands[:len(operands)-1]
		}
		return nil
	}

	for _, tk := range tokens {
		switch tk.Kind {
		case syntax.TokenLiteral:
			operands = append(operands, NewLiteral(tk.Text))

		case syntax.TokenClass:
			operands = append(operands, NewClass(tk.Text))

		case syntax.TokenOperator:
			for len(opers) > 0 {
				top := opers[len(opers)-1]
				if top.Kind != syntax.TokenOperator || top.Op.Precedence() <= tk.Op.Precedence() {
					break
				}
				opers = opers[:len(opers)-1]
				if err := apply(top); err != nil {
					return nil, err
				}
			}
			opers = append(opers, tk)

		case syntax.TokenLParen:
			opers = append(opers, tk)

		case syntax.TokenRParen:
			for len(opers) > 0 && opers[len(opers)-1].Kind == syntax.TokenOperator {
				top := opers[len(opers)-1]
				opers = opers[:len(opers)-1]
				if err := apply(top); err != nil {
					return nil, err
				}
			}
			if len(opers) == 0 || opers[len(opers)-1].Kind != syntax.TokenLParen {
				return nil, &syntax.Error{Err: syntax.ErrUnbalancedParens, Pos: tk.Pos}
			}
			opers = opers[:len(opers)-1]
		}
	}

	for len(opers) > 0 {
		top := opers[len(opers)-1]
		opers = opers[:len(opers)-1]
		if top.Kind != syntax.TokenOperator {
			return nil, &syntax.Error{Err: syntax.ErrUnbalancedParens, Pos: top.Pos}
		}
		if err := apply(top); err != nil {
			return nil, err
		}
	}

	switch len(operands) {
	case 1:
		return operands[0], nil
	case 0:
		// Only parentheses around nothing reach here, e.g. "()".
		return nil, &syntax.Error{Err: syntax.ErrEmptyPattern, Pos: tokens[0].Pos}
	default:
		panic("nfa: operand stack not reduced to a single fragment")
	}
}
