package calcbrain

import (
	"math"
	"strconv"
	"strings"
)

// token is one entry of a Brain's stack.
type token struct {
	kind tokenKind

	// name is the variable name or operator symbol.
	name string
	// val is the value of an operand.
	val float64
	// prec is the precedence of a binary operator. Higher binds tighter.
	prec int
	// fn implements an operator.
	fn opfunc
}

type tokenKind int8

const (
	tokenNone tokenKind = iota

	tokenOperand  // literal value
	tokenVariable // lookup(name) at evaluation time
	tokenUnary    // fn applied to one operand
	tokenBinary   // fn applied to two operands, prec decides grouping
	tokenNullary  // fn with no operands, e.g. π
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind,lexKind -output=kind_string.go

// arity is the number of operands the token consumes from beneath it.
func (t *token) arity() int {
	switch t.kind {
	case tokenUnary:
		return 1
	case tokenBinary:
		return 2
	default:
		return 0
	}
}

// String returns the text the token contributes to a description.
func (t *token) String() string {
	switch t.kind {
	case tokenOperand:
		return formatOperand(t.val)
	case tokenVariable, tokenUnary, tokenBinary, tokenNullary:
		return t.name
	default:
		panic("calcbrain: invalid token kind " + t.kind.String())
	}
}

// formatOperand formats a value so that integral values keep a fractional
// part and very large or small magnitudes use exponent notation, e.g. 3.0,
// 23.5, 1e+16, 1e-05.
func formatOperand(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(v); a < 1e-4 || a >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
