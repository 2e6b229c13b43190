package calcbrain

import (
	"io"
	"strconv"

	"fortio.org/log"
)

// aliases maps ASCII spellings to operator symbols.
var aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"sqrt": "√",
	"pi":   "π",
	"neg":  "±",
}

// symbol resolves an alias to the operator symbol it names.
func symbol(text string) string {
	if s, ok := aliases[text]; ok {
		return s
	}
	return text
}

// Exec executes a script of whitespace-separated words in the order they
// appear:
//
//   - a number pushes an operand, and a minus sign written directly before a
//     number, as in -4, makes it negative;
//   - an operator symbol, or an ASCII alias for one (* / - sqrt pi neg),
//     applies the operator;
//   - undo and clear undo the last entry and clear the stack;
//   - →name binds name to the current value of the stack, or unbinds it if
//     the stack has no value;
//   - any other identifier pushes a variable.
//
// Exec stops at the first invalid word and returns an InputError describing
// it; words before it remain applied. Evaluation errors are not returned by
// Exec; check Err or Result afterward.
func (b *Brain) Exec(src io.RuneScanner) error {
	scan := lex(src)
	for {
		tok, err := scan.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case lexEOF:
			return nil
		case lexNum:
			v, err := number(tok)
			if err != nil {
				return err
			}
			b.PushOperand(v)
		case lexIdent, lexOp:
			v, neg, err := negative(scan, tok)
			switch {
			case err != nil:
				return err
			case neg:
				b.PushOperand(v)
			default:
				if err := b.word(scan, tok); err != nil {
					return err
				}
			}
		default:
			return &SyntaxError{Col: tok.pos, Text: tok.text, Want: "RPN word"}
		}
	}
}

// word executes one operator, command, or variable word.
func (b *Brain) word(scan *lexer, tok lexToken) error {
	if sym := symbol(tok.text); b.Known(sym) {
		b.ApplyOperator(sym)
		return nil
	}
	switch tok.text {
	case "undo":
		b.Undo()
	case "clear":
		b.Clear()
	case "→":
		name, err := scan.next()
		if err != nil {
			return err
		}
		if name.kind != lexIdent {
			return &SyntaxError{Col: name.pos, Text: name.text, Want: "variable name after →"}
		}
		b.store(name.text)
	default:
		if tok.kind == lexOp {
			return &SyntaxError{Col: tok.pos, Text: tok.text, Want: "RPN word"}
		}
		b.PushVariable(tok.text)
	}
	return nil
}

// store binds name to the value of the stack, or removes its binding if the
// stack has no value.
func (b *Brain) store(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.evaluate(); ok {
		log.LogVf("store %s = %g", name, v)
		b.vars[name] = v
		return
	}
	log.LogVf("store %s with no value", name)
	delete(b.vars, name)
}

// SyntaxError is an error indicating a token that is valid on its own but
// not where it appears. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token.
	Col int
	// Text is the token that was not understood. It is empty at the end of
	// the input.
	Text string
	// Want describes what was expected instead.
	Want string
}

func (err *SyntaxError) Error() string {
	got := strconv.Quote(err.Text)
	if err.Text == "" {
		got = "end of input"
	}
	return errpos(err.Col, "expected "+err.Want+", got "+got)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
