package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want config
	}{
		{"empty", "", config{}},
		{
			"full",
			"prec: 128\nbig: true\ninfix: true\nloglevel: verbose\nvars:\n  m: 3\n  x: -1.5\n",
			config{Prec: 128, Big: true, Infix: true, LogLevel: "verbose", Vars: map[string]float64{"m": 3, "x": -1.5}},
		},
		{"partial", "infix: true\n", config{Infix: true}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := decodeConfig(strings.NewReader(c.src), c.name)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(*got, c.want) {
				t.Errorf("want %+v, got %+v", c.want, *got)
			}
		})
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unknown-field", "precision: 128\n"},
		{"bad-type", "prec: lots\n"},
		{"bad-var", "vars:\n  m: three\n"},
		{"not-a-map", "- prec\n"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := decodeConfig(strings.NewReader(c.src), c.name)
			if err == nil {
				t.Fatalf("no error, got %+v", *got)
			}
			if !strings.Contains(err.Error(), "decoding config "+c.name) {
				t.Errorf("error %q lacks context", err)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := loadConfig("testdata/does-not-exist.yaml"); err == nil {
		t.Error("no error")
	}
}

func TestMerge(t *testing.T) {
	c := config{Prec: 256, Big: true, Infix: true, LogLevel: "debug"}
	s := settings{prec: 100, level: "info"}
	c.merge(&s, map[string]bool{"p": true, "infix": true})
	want := settings{prec: 100, big: true, infix: false, level: "debug"}
	if s != want {
		t.Errorf("want %+v, got %+v", want, s)
	}
}
