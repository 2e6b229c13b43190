package calcbrain

import "strings"

// rendered is the text of an expression and the precedence of its outermost
// operator.
type rendered struct {
	text string
	prec int
}

// renderer folds a stack to infix text with minimal parentheses.
type renderer struct{}

func (renderer) missing() rendered {
	return rendered{"?", maxPrec}
}

func (renderer) leaf(t *token) rendered {
	return rendered{t.String(), maxPrec}
}

func (renderer) apply(t *token, args []rendered) rendered {
	switch t.kind {
	case tokenNullary:
		return rendered{t.name, maxPrec}
	case tokenUnary:
		return rendered{t.name + "(" + args[0].text + ")", maxPrec}
	case tokenBinary:
		return rendered{args[0].group(t.prec) + " " + t.name + " " + args[1].group(t.prec), t.prec}
	default:
		panic("calcbrain: cannot render " + t.kind.String())
	}
}

// group parenthesizes r if it binds less tightly than an operator of
// precedence prec.
func (r rendered) group(prec int) string {
	if r.prec < prec {
		return "(" + r.text + ")"
	}
	return r.text
}

// describe renders every complete expression on the stack, oldest first,
// separated by commas. An empty stack renders as a single placeholder.
func describe(stack []*token) string {
	var exprs []string
	for {
		r, rest := fold[rendered](renderer{}, stack)
		exprs = append(exprs, r.text)
		if len(rest) == 0 {
			break
		}
		stack = rest
	}
	for i, j := 0, len(exprs)-1; i < j; i, j = i+1, j-1 {
		exprs[i], exprs[j] = exprs[j], exprs[i]
	}
	return strings.Join(exprs, ", ")
}
