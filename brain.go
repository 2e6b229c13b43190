package calcbrain

import (
	"math/big"
	"sync"

	"fortio.org/log"
)

// Brain is a calculator engine. It holds a stack of entered operands,
// variables, and operators, the fixed table of operators it knows, and the
// current variable bindings. A Brain is safe for concurrent use; each method
// runs to completion under the Brain's lock.
type Brain struct {
	mu    sync.Mutex
	stack []*token
	ops   map[string]*token
	vars  map[string]float64
	prec  uint
}

// Option is an option used when creating a Brain.
type Option interface {
	brainOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	precopt uint
)

func (varopt) brainOption()  {}
func (varsopt) brainOption() {}
func (precopt) brainOption() {}

// SetVar binds a variable in the new Brain.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars binds any number of variables in the new Brain.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// Prec sets the precision in bits used by EvaluateBig. Zero selects the
// default of 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

const defaultPrec = 64

// New creates a Brain with an empty stack.
func New(opts ...Option) *Brain {
	b := &Brain{
		ops:  learnOps(),
		vars: make(map[string]float64),
		prec: defaultPrec,
	}
	b.apply(opts)
	return b
}

func (b *Brain) apply(opts []Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			b.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				b.vars[k] = v
			}
		case precopt:
			b.prec = uint(opt)
			if b.prec == 0 {
				b.prec = defaultPrec
			}
		default:
			panic("calcbrain: unknown option type")
		}
	}
}

// Clone creates an independent copy of the Brain's stack and bindings, then
// applies opts to the copy.
func (b *Brain) Clone(opts ...Option) *Brain {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := &Brain{
		stack: make([]*token, len(b.stack)),
		ops:   b.ops,
		vars:  make(map[string]float64, len(b.vars)),
		prec:  b.prec,
	}
	// Operator tokens are immutable, so sharing them and the table is fine.
	copy(n.stack, b.stack)
	for k, v := range b.vars {
		n.vars[k] = v
	}
	n.apply(opts)
	return n
}

// PushOperand pushes a value and returns the evaluation of the whole stack.
func (b *Brain) PushOperand(v float64) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	log.LogVf("push operand %g", v)
	b.stack = append(b.stack, &token{kind: tokenOperand, val: v})
	return b.evaluate()
}

// PushVariable pushes a reference to a variable and returns the evaluation of
// the whole stack. The variable need not be bound; it is looked up each time
// the stack is evaluated.
func (b *Brain) PushVariable(name string) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	log.LogVf("push variable %s", name)
	b.stack = append(b.stack, &token{kind: tokenVariable, name: name})
	return b.evaluate()
}

// ApplyOperator pushes the operator with the given symbol and returns the
// evaluation of the whole stack.
//
// If the Brain does not know the symbol, the stack is left unchanged. This is
// not an error: the result is still the evaluation of the whole stack. Use
// Known to check a symbol first.
func (b *Brain) ApplyOperator(symbol string) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if op := b.ops[symbol]; op != nil {
		log.LogVf("apply operator %s", symbol)
		b.stack = append(b.stack, op)
	} else {
		log.LogVf("ignoring unknown operator %q", symbol)
	}
	return b.evaluate()
}

// Undo removes the last entered token, if any, and returns the evaluation of
// the remaining stack.
func (b *Brain) Undo() (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.stack) > 0 {
		log.LogVf("undo %v", b.stack[len(b.stack)-1])
		b.stack[len(b.stack)-1] = nil
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b.evaluate()
}

// Clear empties the stack. Variable bindings are kept.
func (b *Brain) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	log.LogVf("clear %d tokens", len(b.stack))
	b.stack = nil
}

// Bind sets the value of a variable. It does not evaluate the stack.
func (b *Brain) Bind(name string, v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	log.LogVf("bind %s = %g", name, v)
	b.vars[name] = v
}

// Unbind removes the binding of a variable. It does not evaluate the stack.
func (b *Brain) Unbind(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	log.LogVf("unbind %s", name)
	delete(b.vars, name)
}

// Lookup returns the value bound to a variable.
func (b *Brain) Lookup(name string) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.vars[name]
	return v, ok
}

// Vars returns the names of the bound variables in sorted order.
func (b *Brain) Vars() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return sortedKeys(b.vars)
}

// Known returns whether the Brain has an operator with the given symbol.
func (b *Brain) Known(symbol string) bool {
	return b.ops[symbol] != nil
}

// Symbols returns the symbols of all known operators in sorted order.
func (b *Brain) Symbols() []string {
	return sortedKeys(b.ops)
}

// Len returns the number of tokens on the stack.
func (b *Brain) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stack)
}

// Evaluate evaluates the whole stack. The second result is false if the stack
// is empty or evaluation failed; use Err or Result to tell which.
func (b *Brain) Evaluate() (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evaluate()
}

func (b *Brain) evaluate() (float64, bool) {
	r := b.result()
	return r.Value, r.Valid
}

// Result evaluates the whole stack and reports the value or the error.
func (b *Brain) Result() Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result()
}

func (b *Brain) result() Result {
	r, _ := fold[Result](evaluator{b.vars}, b.stack)
	return r
}

// Err returns the error from evaluating the whole stack, if any. An empty
// stack is not an error.
func (b *Brain) Err() error {
	return b.Result().Err
}

// EvaluateBig evaluates the whole stack with the Brain's precision. The
// result is nil with a nil error if the stack is empty. Errors are the same
// as for Result, except that operations producing NaN fail with a
// DomainError wrapping ErrNaN.
func (b *Brain) EvaluateBig() (*big.Float, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, _ := fold[bigResult](bigEvaluator{vars: b.vars, prec: b.prec}, b.stack)
	return r.v, r.err
}

// Description renders every complete expression on the stack in infix form,
// oldest first, separated by ", ". Missing operands render as "?".
func (b *Brain) Description() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return describe(b.stack)
}

// String returns the Brain's description.
func (b *Brain) String() string {
	return b.Description()
}
