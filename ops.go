package calcbrain

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Precedences of the binary operators. Operands, variables, nullary and unary
// operators render with maxPrec, so they never need grouping.
const (
	multiplicativePrec = 150
	additivePrec       = 140

	maxPrec = math.MaxInt
)

// opfunc implements an operator in both float64 and extended precision.
type opfunc interface {
	// call evaluates the operator on args, which are in textual order: for a
	// binary operator, args[0] is the left-hand operand. The result is an
	// error if the args are outside the operator's domain.
	call(args []float64) (float64, error)
	// callBig is like call, but sets r to the result. The precision of r
	// is already set.
	callBig(r *big.Float, args []*big.Float) error
}

type niladic struct {
	f   func() float64
	big func(out *big.Float) *big.Float
}

func (n niladic) call(args []float64) (float64, error) {
	return n.f(), nil
}

func (n niladic) callBig(r *big.Float, args []*big.Float) error {
	n.big(r)
	return nil
}

type monadic struct {
	f     func(x float64) float64
	big   func(out, in *big.Float) *big.Float
	check func(x float64) error
}

func (m monadic) call(args []float64) (float64, error) {
	x := args[0]
	if m.check != nil {
		if err := m.check(x); err != nil {
			return 0, err
		}
	}
	return m.f(x), nil
}

func (m monadic) callBig(r *big.Float, args []*big.Float) error {
	x := args[0]
	if m.check != nil {
		if err := m.check(checkable(x)); err != nil {
			return err
		}
	}
	if m.big == nil {
		f, _ := x.Float64()
		r.SetFloat64(m.f(f))
		return nil
	}
	m.big(r, x)
	return nil
}

type dyadic struct {
	f     func(x, y float64) float64
	big   func(out, x, y *big.Float) *big.Float
	check func(x, y float64) error
}

func (d dyadic) call(args []float64) (float64, error) {
	x, y := args[0], args[1]
	if d.check != nil {
		if err := d.check(x, y); err != nil {
			return 0, err
		}
	}
	return d.f(x, y), nil
}

func (d dyadic) callBig(r *big.Float, args []*big.Float) error {
	x, y := args[0], args[1]
	if d.check != nil {
		if err := d.check(checkable(x), checkable(y)); err != nil {
			return err
		}
	}
	d.big(r, x, y)
	return nil
}

// checkable converts x for a domain check. The checks depend on the sign of
// their operands, so a value too small for float64 becomes the smallest
// float64 of the same sign rather than zero.
func checkable(x *big.Float) float64 {
	f, _ := x.Float64()
	if f == 0 && x.Sign() != 0 {
		return math.Copysign(math.SmallestNonzeroFloat64, float64(x.Sign()))
	}
	return f
}

// learnOps builds the operator table. Neither the table nor its tokens are
// modified afterward, so clones share them.
func learnOps() map[string]*token {
	ops := make(map[string]*token, 9)
	learn := func(t *token) {
		ops[t.name] = t
	}
	learn(&token{kind: tokenBinary, name: "×", prec: multiplicativePrec, fn: dyadic{
		f:   func(x, y float64) float64 { return x * y },
		big: (*big.Float).Mul,
	}})
	learn(&token{kind: tokenBinary, name: "÷", prec: multiplicativePrec, fn: dyadic{
		f:   func(x, y float64) float64 { return x / y },
		big: (*big.Float).Quo,
		check: func(x, y float64) error {
			if y == 0 {
				return &DomainError{Func: "÷", X: y, Arg: 2, Err: ErrDivideByZero}
			}
			return nil
		},
	}})
	learn(&token{kind: tokenBinary, name: "+", prec: additivePrec, fn: dyadic{
		f:   func(x, y float64) float64 { return x + y },
		big: (*big.Float).Add,
	}})
	learn(&token{kind: tokenBinary, name: "−", prec: additivePrec, fn: dyadic{
		f:   func(x, y float64) float64 { return x - y },
		big: (*big.Float).Sub,
	}})
	learn(&token{kind: tokenUnary, name: "√", fn: monadic{
		f:   math.Sqrt,
		big: (*big.Float).Sqrt,
		check: func(x float64) error {
			if x < 0 {
				return &DomainError{Func: "√", X: x, Arg: 1, Err: ErrNegativeSqrt}
			}
			return nil
		},
	}})
	// No big implementations of the trig functions in our dependencies.
	learn(&token{kind: tokenUnary, name: "sin", fn: monadic{f: math.Sin}})
	learn(&token{kind: tokenUnary, name: "cos", fn: monadic{f: math.Cos}})
	learn(&token{kind: tokenUnary, name: "±", fn: monadic{
		f:   func(x float64) float64 { return -x },
		big: (*big.Float).Neg,
	}})
	learn(&token{kind: tokenNullary, name: "π", fn: niladic{
		f:   func() float64 { return math.Pi },
		big: bigfloat.Pi,
	}})
	return ops
}

// sortedKeys returns the keys of m in increasing order.
func sortedKeys[V any](m map[string]V) []string {
	r := make([]string, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

var (
	// ErrNotEnoughOperands is the error for an operator whose operands could
	// not all be evaluated.
	ErrNotEnoughOperands = errors.New("Not enough operands")
	// ErrDivideByZero is wrapped by the DomainError for a zero divisor.
	ErrDivideByZero = errors.New("Divide by zero")
	// ErrNegativeSqrt is wrapped by the DomainError for the square root of a
	// negative number.
	ErrNegativeSqrt = errors.New("Sqrt of negative number")
	// ErrNaN is wrapped by the DomainError for an extended precision
	// operation whose result would be NaN, e.g. inf − inf.
	ErrNaN = errors.New("Not a number")
)

// DomainError is an error returned when an operator is applied to an operand
// outside its domain. It unwraps to ErrDivideByZero or ErrNegativeSqrt.
type DomainError struct {
	// Func is the operator symbol.
	Func string
	// X is the out-of-domain operand.
	X float64
	// Arg is the 1-based index of the operand in textual order.
	Arg int
	// Err describes the violation.
	Err error
}

// Error returns the message of the wrapped error, which is suitable for
// showing in place of a result.
func (err *DomainError) Error() string {
	return err.Err.Error()
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

// Detail describes the error along with the operator and operand.
func (err *DomainError) Detail() string {
	r := err.Err.Error() + ": " + strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
