package calcbrain

import (
	"io"
	"math"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: lexNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: lexNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: lexNum, pos: 1}, {text: "0", kind: lexNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: lexNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: lexOp, pos: 1}, {text: "1", kind: lexNum, pos: 2}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: lexNum, pos: 1}}, 0},
		{"1e", []lexToken{{pos: 1}}, 1},
		{"1e+16", []lexToken{{text: "1e+16", kind: lexNum, pos: 1}}, 0},
		{"1e-05", []lexToken{{text: "1e-05", kind: lexNum, pos: 1}}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: lexNum, pos: 5}}, 1},
		{"1e5e", []lexToken{{pos: 1}}, 1},
		{"1e+", []lexToken{{pos: 1}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{".5", []lexToken{{text: ".5", kind: lexNum, pos: 1}}, 0},
		{"inf", []lexToken{{text: "inf", kind: lexNum, pos: 1}}, 0},
		{"∞", []lexToken{{text: "∞", kind: lexNum, pos: 1}}, 0},
		{"1+0", []lexToken{{text: "1", kind: lexNum, pos: 1}, {text: "+", kind: lexOp, pos: 2}, {text: "0", kind: lexNum, pos: 3}}, 0},
		{"3÷0", []lexToken{{text: "3", kind: lexNum, pos: 1}, {text: "÷", kind: lexOp, pos: 2}, {text: "0", kind: lexNum, pos: 3}}, 0},
		{"1a", []lexToken{{pos: 1}}, 1},
		// identifiers
		{"m", []lexToken{{text: "m", kind: lexIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "π", kind: lexIdent, pos: 1}}, 0},
		{"cos", []lexToken{{text: "cos", kind: lexIdent, pos: 1}}, 0},
		{"x_1.y", []lexToken{{text: "x_1.y", kind: lexIdent, pos: 1}}, 0},
		{"cos(π)", []lexToken{{text: "cos", kind: lexIdent, pos: 1}, {text: "(", kind: lexOpen, pos: 4}, {text: "π", kind: lexIdent, pos: 5}, {text: ")", kind: lexClose, pos: 6}}, 0},
		// operators
		{"√", []lexToken{{text: "√", kind: lexOp, pos: 1}}, 0},
		{"±×", []lexToken{{text: "±", kind: lexOp, pos: 1}, {text: "×", kind: lexOp, pos: 2}}, 0},
		{"→m", []lexToken{{text: "→", kind: lexOp, pos: 1}, {text: "m", kind: lexIdent, pos: 2}}, 0},
		// separators
		{"1, 2", []lexToken{{text: "1", kind: lexNum, pos: 1}, {text: ",", kind: lexSep, pos: 2}, {text: "2", kind: lexNum, pos: 4}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"?", []lexToken{{pos: 1}}, 1},
		{"a$", []lexToken{{text: "a", kind: lexIdent, pos: 1}, {pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: lexIdent, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		got, err := scan.next()
		if err != nil || got.kind != lexEOF {
			t.Errorf("scanning %q: want EOF, got %v with error %v", c.src, got, err)
		}
		if _, err := scan.next(); err != io.EOF {
			t.Errorf("scanning %q: want io.EOF after EOF token, got %v", c.src, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("1 2"))
	one, _ := scan.next()
	scan.push(one)
	if got, _ := scan.next(); got != one {
		t.Errorf("want pushed token %v, got %v", one, got)
	}
	if got, _ := scan.next(); got.text != "2" {
		t.Errorf("want 2 after pushed token, got %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("double push didn't panic")
		}
	}()
	scan.push(one)
	scan.push(one)
}

func TestNumber(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"0", 0},
		{"1.5", 1.5},
		{".5", 0.5},
		{"1e3", 1000},
		{"1e+16", 1e16},
		{"1e-05", 1e-05},
		{"0.1", 0.1},
		{"123456789.125", 123456789.125},
		{"1e400", math.Inf(1)},
		{"1e309", math.Inf(1)},
		{"1e2000000000", math.Inf(1)},
		{"1e-2000000000", 0},
		{"0e2000000000", 0},
		{"5e-324", math.SmallestNonzeroFloat64},
		{"1.7976931348623157e308", math.MaxFloat64},
		{"inf", math.Inf(1)},
		{"Inf", math.Inf(1)},
		{"∞", math.Inf(1)},
	}
	for _, c := range cases {
		got, err := number(lexToken{text: c.text, kind: lexNum, pos: 1})
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.text, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %g, got %g", c.text, c.want, got)
		}
	}
}

func TestFormatOperand(t *testing.T) {
	// Every formatted finite operand lexes back to the same value.
	for _, v := range []float64{0, 1, -1, 0.1, 1.0 / 3, 1e15, 1e16, 2.5e-7, 123.456, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		s := formatOperand(math.Abs(v))
		scan := lex(strings.NewReader(s))
		tok, err := scan.next()
		if err != nil || tok.kind != lexNum {
			t.Errorf("%g formatted as %q, which lexes as %v with error %v", v, s, tok, err)
			continue
		}
		got, err := number(tok)
		if err != nil || got != math.Abs(v) {
			t.Errorf("%g formatted as %q, which reads back as %g with error %v", v, s, got, err)
		}
	}
}
