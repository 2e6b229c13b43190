package calcbrain

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

type lexToken struct {
	text string
	kind lexKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type lexKind int

const (
	lexNone lexKind = iota
	// lexEOF indicates the end of the input.
	lexEOF
	// lexNum is a number.
	lexNum
	// lexIdent is a variable, operator, or command name.
	lexIdent
	// lexOp is a single-rune operator.
	lexOp
	// lexOpen is an open bracket.
	lexOpen
	// lexClose is a close bracket.
	lexClose
	// lexSep separates infix expressions.
	lexSep
)

// Operators contains the runes which are lexed as operators on their own.
// Operators with letter names, like sin and π, are lexed as identifiers.
const Operators = "+-*/×÷−√±→"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// start is the position of the token being scanned.
	start int
	p     lexToken
	eof   bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != lexNone {
		panic("calcbrain: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, if the EOF
// token is not pushed, the result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != lexNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = lexEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		if unicode.IsSpace(r) {
			tok.pos++
			continue
		}
		l.start = tok.pos
		switch {
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = lexNum
			return tok, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			// inf looks like an identifier, so check for it here.
			switch tok.text {
			case "inf", "Inf":
				tok.kind = lexNum
			default:
				tok.kind = lexIdent
			}
			return tok, nil
		case r == '∞':
			tok.text = "∞"
			tok.kind = lexNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = lexOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = lexClose
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = lexSep
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.text = string(r)
				tok.kind = lexOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans digits with at most one point, then an optional exponent.
// The number must end at a space, an operator, a bracket, or a comma.
func (l *lexer) scanNum() error {
	n, err := l.scanDigits(true)
	if err != nil || n == 0 {
		return l.numErr(err)
	}
	r, err := l.readRune()
	if err == nil && (r == 'e' || r == 'E') {
		l.buf.WriteRune(r)
		if r, err = l.readRune(); err == nil {
			if r == '+' || r == '-' {
				l.buf.WriteRune(r)
			} else {
				l.unreadRune()
			}
		}
		if n, err = l.scanDigits(false); err != nil || n == 0 {
			return l.numErr(err)
		}
		r, err = l.readRune()
	}
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	case unicode.IsSpace(r), strings.ContainsRune(Operators+"(),", r):
		l.unreadRune()
		return nil
	}
	l.buf.WriteRune(r)
	return l.error("number")
}

// scanDigits scans a run of decimal digits, allowing one point among them if
// point is true. It returns the number of digits.
func (l *lexer) scanDigits(point bool) (int, error) {
	n := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		switch {
		case '0' <= r && r <= '9':
			n++
		case r == '.' && point:
			point = false
		default:
			l.unreadRune()
			return n, nil
		}
		l.buf.WriteRune(r)
	}
}

// numErr is err if reading failed, otherwise a malformed number.
func (l *lexer) numErr(err error) error {
	if err != nil {
		return err
	}
	return l.error("number")
}

// scanIdent scans letters, digits, underscores, and dots. next has already
// decided that the first rune starts an identifier.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{Text: l.buf.String(), Kind: kind, Col: l.start}
}

// Literals whose decimal exponent is outside these bounds overflow to
// infinity or underflow to zero as float64. Checking first keeps conversion
// from building a power of ten as large as the exponent.
const (
	maxDecimalExp = 309
	minDecimalExp = -324
)

// number converts the text of a number token to its value.
func number(tok lexToken) (float64, error) {
	switch tok.text {
	case "inf", "Inf", "∞":
		return math.Inf(1), nil
	}
	d, err := decimal.NewFromString(tok.text)
	if err != nil {
		return 0, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	if d.IsZero() {
		return 0, nil
	}
	c := d.Coefficient()
	// d is in [10^(mag-1), 10^mag).
	mag := int64(d.Exponent()) + int64(len(c.Abs(c).Text(10)))
	switch {
	case mag-1 >= maxDecimalExp:
		return math.Inf(d.Sign()), nil
	case mag < minDecimalExp:
		return math.Copysign(0, float64(d.Sign())), nil
	}
	return d.InexactFloat64(), nil
}

// negative reads the number directly following a minus sign, if there is
// one, so that -4 is an operand rather than a subtraction followed by 4. If
// the token after the sign is anything else, it is pushed back and the
// result is false.
func negative(scan *lexer, minus lexToken) (float64, bool, error) {
	if minus.kind != lexOp || symbol(minus.text) != "−" {
		return 0, false, nil
	}
	tok, err := scan.next()
	if err != nil {
		return 0, false, err
	}
	if tok.kind != lexNum || tok.pos != minus.pos+1 {
		scan.push(tok)
		return 0, false, nil
	}
	v, err := number(tok)
	if err != nil {
		return 0, false, err
	}
	return -v, true, nil
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the position of the start of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	what := "invalid input "
	if err.Kind != "" {
		what = "invalid " + err.Kind + " "
	}
	return errpos(err.Col, what+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
