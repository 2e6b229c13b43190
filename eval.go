package calcbrain

import (
	"math"
	"math/big"
)

// folder combines the values produced while traversing a stack.
type folder[T any] interface {
	// missing is the value of an operand for which the stack is exhausted.
	missing() T
	// leaf is the value of an operand or variable token.
	leaf(t *token) T
	// apply combines the operand values of an operator token. args are in
	// textual order, so args[0] is the left-hand operand of a binary operator.
	apply(t *token, args []T) T
}

// fold consumes one complete expression from the tail of stack and returns
// its value along with the remainder of the stack beneath it. The stack is
// never modified.
func fold[T any](f folder[T], stack []*token) (T, []*token) {
	if len(stack) == 0 {
		return f.missing(), stack
	}
	t := stack[len(stack)-1]
	rest := stack[:len(stack)-1]
	switch t.kind {
	case tokenOperand, tokenVariable:
		return f.leaf(t), rest
	case tokenUnary, tokenBinary, tokenNullary:
		args := make([]T, t.arity())
		// The operand nearest the top was entered last, so it is rightmost.
		for i := len(args) - 1; i >= 0; i-- {
			args[i], rest = fold(f, rest)
		}
		return f.apply(t, args), rest
	default:
		panic("calcbrain: invalid token on stack: " + t.kind.String())
	}
}

// operands checks that every operand of an operator has a value. An error in
// the last operand, which is the first one consumed from the stack, is
// returned as is. Any other missing operand, including one whose evaluation
// failed with its own error, is ErrNotEnoughOperands.
func operands[T any](args []T, get func(T) (bool, error)) error {
	for i := len(args) - 1; i >= 0; i-- {
		ok, err := get(args[i])
		if ok {
			continue
		}
		if err != nil && i == len(args)-1 {
			return err
		}
		return ErrNotEnoughOperands
	}
	return nil
}

// Result is the outcome of evaluating a Brain's stack. Valid and Err are
// mutually exclusive. If neither is set, there was nothing to evaluate.
type Result struct {
	// Value is the result of evaluation if Valid is true.
	Value float64
	// Valid indicates that Value holds the result.
	Valid bool
	// Err is the reason evaluation failed.
	Err error
}

func (r Result) get() (bool, error) {
	return r.Valid, r.Err
}

// evaluator folds a stack to its float64 value.
type evaluator struct {
	vars map[string]float64
}

func (evaluator) missing() Result {
	return Result{}
}

func (e evaluator) leaf(t *token) Result {
	if t.kind == tokenOperand {
		return Result{Value: t.val, Valid: true}
	}
	v, ok := e.vars[t.name]
	if !ok {
		return Result{Err: &NameError{Name: t.name}}
	}
	return Result{Value: v, Valid: true}
}

func (evaluator) apply(t *token, args []Result) Result {
	if err := operands(args, Result.get); err != nil {
		return Result{Err: err}
	}
	x := make([]float64, len(args))
	for i, a := range args {
		x[i] = a.Value
	}
	v, err := t.fn.call(x)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Value: v, Valid: true}
}

// bigResult is the extended precision counterpart of Result. A nil v with a
// nil err means there was nothing to evaluate.
type bigResult struct {
	v   *big.Float
	err error
}

func (r bigResult) get() (bool, error) {
	return r.v != nil, r.err
}

// bigEvaluator folds a stack to its value at a given precision.
type bigEvaluator struct {
	vars map[string]float64
	prec uint
}

func (bigEvaluator) missing() bigResult {
	return bigResult{}
}

func (e bigEvaluator) leaf(t *token) bigResult {
	v := t.val
	if t.kind == tokenVariable {
		var ok bool
		v, ok = e.vars[t.name]
		if !ok {
			return bigResult{err: &NameError{Name: t.name}}
		}
	}
	if math.IsNaN(v) {
		return bigResult{err: &DomainError{Func: t.String(), X: v, Err: ErrNaN}}
	}
	return bigResult{v: new(big.Float).SetPrec(e.prec).SetFloat64(v)}
}

func (e bigEvaluator) apply(t *token, args []bigResult) (r bigResult) {
	if err := operands(args, bigResult.get); err != nil {
		return bigResult{err: err}
	}
	x := make([]*big.Float, len(args))
	for i, a := range args {
		x[i] = a.v
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		r = bigResult{err: &DomainError{Func: t.name, X: math.NaN(), Err: ErrNaN}}
	}()
	z := new(big.Float).SetPrec(e.prec)
	if err := t.fn.callBig(z, x); err != nil {
		return bigResult{err: err}
	}
	return bigResult{v: z}
}

// NameError is an error from a lookup for a variable that has no binding at
// the time of evaluation.
type NameError struct {
	// Name is the variable that was unset.
	Name string
}

func (err *NameError) Error() string {
	return "Variable " + err.Name + " is unset"
}
