package main

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calcbrain"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		s    settings
		in   string
		want string
	}{
		{
			"rpn",
			settings{},
			"3 5 4 + ×\n\nclear\n1 0 ÷\n",
			"3.0 × (5.0 + 4.0) = 27\n? =\n1.0 ÷ 0.0 = Divide by zero\n",
		},
		{
			"infix",
			settings{infix: true},
			"1 + 2\n(1 + 2) × 3\n",
			"1.0 + 2.0 = 3\n1.0 + 2.0, (1.0 + 2.0) × 3.0 = 9\n",
		},
		{
			"infix-error",
			settings{infix: true},
			"2 × 3\n1 +\n",
			"2.0 × 3.0 = 6\n2.0 × 3.0 = 6\n",
		},
		{
			"store",
			settings{},
			"3 →m\nm m ×\n",
			"3.0 = 3\n3.0, m × m = 9\n",
		},
		{
			"negative",
			settings{},
			"-4 √\n",
			"√(-4.0) = Sqrt of negative number\n",
		},
		{
			"unset",
			settings{},
			"x 1 +\n",
			"x + 1.0 = Variable x is unset\n",
		},
		{
			"big",
			settings{big: true, prec: 64},
			"1 4 ÷\n",
			"1.0 ÷ 4.0 = 0.25\n",
		},
		{
			"big-error",
			settings{big: true, prec: 64},
			"4 ± √\n",
			"√(±(4.0)) = Sqrt of negative number\n",
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			var out strings.Builder
			b := calcbrain.New(calcbrain.Prec(c.s.prec))
			if err := run(b, strings.NewReader(c.in), &out, c.s); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != c.want {
				t.Errorf("want\n%s\ngot\n%s", c.want, got)
			}
		})
	}
}

func TestGiven(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
		ok   bool
	}{
		{"number", "3", 3, true},
		{"expr", "(1 + 2) × 4", 12, true},
		{"syntax", "1 +", 0, false},
		{"domain", "1 ÷ 0", 0, false},
		{"variable", "x", 0, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := given1(c.src)
			if (err == nil) != c.ok {
				t.Fatalf("want ok=%t, got error %v", c.ok, err)
			}
			if got != c.want {
				t.Errorf("want %g, got %g", c.want, got)
			}
		})
	}
}
