// Package calcbrain implements the engine of a stack-based calculator.
//
// Operands, variables, and operators are entered one at a time, as on a
// reverse Polish calculator: "3 5 4 + ×" is three times the sum of five and
// four. Every entry re-evaluates the whole stack. The stack can hold several
// complete expressions at once, and Description renders all of them in infix
// form with only the parentheses precedence requires, e.g.
// "3.0 × (5.0 + 4.0), cos(π)".
//
// Variables are bound late. Pushing a variable records only its name, so the
// same stack can be evaluated again after binding it to different values.
//
// Evaluation never changes the stack. Failures such as a missing operand,
// division by zero, or an unset variable are reported as errors in a Result,
// and entry can continue from there.
package calcbrain
