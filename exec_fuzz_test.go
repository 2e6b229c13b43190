//go:build go1.18
// +build go1.18

package calcbrain_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calcbrain"
)

func FuzzExec(f *testing.F) {
	f.Add("3 5 4 + ×")
	f.Add("m →m undo clear")
	f.Add("1 0 ÷ √ ±")
	f.Add("-4 √ 1e999999 -∞")
	f.Fuzz(func(t *testing.T, s string) {
		b := calcbrain.New(calcbrain.SetVar("x", 1))
		b.Exec(strings.NewReader(s))
		r := b.Result()
		if r.Valid && r.Err != nil {
			t.Errorf("%q gave both value %g and error %v", s, r.Value, r.Err)
		}
		b.Description()
		b.EvaluateBig()
	})
}

func FuzzPushInfix(f *testing.F) {
	f.Add("3 × (5 + 4)")
	f.Add("√(3.0 + 5.0), cos(π)")
	f.Add("3 − -4")
	f.Fuzz(func(t *testing.T, s string) {
		b := calcbrain.New()
		if err := b.PushInfix(strings.NewReader(s)); err != nil {
			if b.Len() != 0 {
				t.Errorf("%q failed with %v but left %d tokens", s, err, b.Len())
			}
			return
		}
		b.Description()
		b.Result()
		b.EvaluateBig()
	})
}
