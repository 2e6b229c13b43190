package calcbrain

import (
	"io"

	"fortio.org/log"
)

// Expression grammar accepted by PushInfix:
//
// List = Expr { ',' Expr }
// Expr = Term { binop Term }
// Term = num | '-' num | name | nullop | unop Term | '(' Expr ')'
//
// binop is any binary operator symbol or alias, binding by its precedence
// and associating to the left. unop and nullop are unary and nullary
// operator symbols or aliases.

// PushInfix parses a comma-separated list of infix expressions and pushes
// each one onto the stack as the sequence of operands and operators that
// would have been entered to build it. The syntax is the one Description
// produces, so a description with no missing operands can be entered again.
// Unknown names are variables. If the input does not parse, the stack is
// unchanged and the error is an InputError.
func (b *Brain) PushInfix(src io.RuneScanner) error {
	p := infix{scan: lex(src), ops: b.ops}
	var out []*token
list:
	for {
		e, err := p.expr(0)
		if err != nil {
			return err
		}
		out = append(out, e...)
		tok, err := p.scan.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case lexEOF:
			break list
		case lexSep:
			// Next expression.
		default:
			return &SyntaxError{Col: tok.pos, Text: tok.text, Want: "operator"}
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	log.LogVf("push %d infix tokens", len(out))
	b.stack = append(b.stack, out...)
	return nil
}

// infix holds the state of parsing an infix expression.
type infix struct {
	scan *lexer
	ops  map[string]*token
}

// op gets the operator named by a token, or nil if it names none.
func (p *infix) op(tok lexToken) *token {
	if tok.kind != lexIdent && tok.kind != lexOp {
		return nil
	}
	return p.ops[symbol(tok.text)]
}

// expr parses a sequence of terms joined by binary operators of precedence at
// least prec and returns it in stack order. The token following the
// expression is pushed back to the lexer.
func (p *infix) expr(prec int) ([]*token, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		op := p.op(tok)
		if op == nil || op.kind != tokenBinary || op.prec < prec {
			p.scan.push(tok)
			return lhs, nil
		}
		rhs, err := p.expr(op.prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = append(append(lhs, rhs...), op)
	}
}

// term parses a single operand, possibly a unary operator applied to a term.
func (p *infix) term() ([]*token, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case lexNum:
		v, err := number(tok)
		if err != nil {
			return nil, err
		}
		return []*token{{kind: tokenOperand, val: v}}, nil
	case lexOpen:
		e, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if end.kind != lexClose {
			return nil, &SyntaxError{Col: end.pos, Text: end.text, Want: "close bracket"}
		}
		return e, nil
	case lexIdent, lexOp:
		op := p.op(tok)
		if op == nil {
			if tok.kind == lexOp {
				return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Want: "operand"}
			}
			return []*token{{kind: tokenVariable, name: tok.text}}, nil
		}
		switch op.kind {
		case tokenNullary:
			return []*token{op}, nil
		case tokenUnary:
			x, err := p.term()
			if err != nil {
				return nil, err
			}
			return append(x, op), nil
		case tokenBinary:
			v, ok, err := negative(p.scan, tok)
			if err != nil {
				return nil, err
			}
			if ok {
				return []*token{{kind: tokenOperand, val: v}}, nil
			}
		}
		return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Want: "operand"}
	default:
		return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Want: "operand"}
	}
}
