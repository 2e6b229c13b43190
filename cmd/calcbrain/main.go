package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/calcbrain"
)

type settings struct {
	prec       uint
	big, infix bool
	level      string
}

func main() {
	log.SetDefaultsForClientTools()
	var (
		cfgname string
		given   [][2]string
		s       settings
	)
	addgiven := func(v string) error {
		d := strings.SplitN(v, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, v)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&cfgname, "config", "", "YAML configuration file")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.UintVar(&s.prec, "p", 64, "precision of extended calculations in bits")
	flag.BoolVar(&s.big, "big", false, "print results calculated with extended precision")
	flag.BoolVar(&s.infix, "infix", false, "read infix expressions instead of RPN words")
	flag.StringVar(&s.level, "loglevel", "info", "log level (debug, verbose, info, warning, error)")
	flag.Parse()

	var vars map[string]float64
	if cfgname != "" {
		cfg, err := loadConfig(cfgname)
		if err != nil {
			log.Fatalf("%v", err)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		cfg.merge(&s, explicit)
		vars = cfg.Vars
	}
	lv, err := log.ValidateLevel(s.level)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.SetLogLevel(lv)

	b := calcbrain.New(calcbrain.Prec(s.prec), calcbrain.SetVars(vars))
	for _, d := range given {
		v, err := given1(d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		b.Bind(d[0], v)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() != 0 {
		in = strings.NewReader(strings.Join(flag.Args(), "\n"))
	}
	if err := run(b, in, os.Stdout, s); err != nil {
		log.Fatalf("%v", err)
	}
}

// given1 evaluates an infix expression for a -given definition.
func given1(src string) (float64, error) {
	b := calcbrain.New()
	if err := b.PushInfix(strings.NewReader(src)); err != nil {
		return 0, err
	}
	r := b.Result()
	if r.Err != nil {
		return 0, r.Err
	}
	return r.Value, nil
}

// run feeds each line of in to b and reports the result after each.
// Input errors are logged and skipped.
func run(b *calcbrain.Brain, in io.Reader, out io.Writer, s settings) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var err error
		if s.infix {
			err = b.PushInfix(strings.NewReader(line))
		} else {
			err = b.Exec(strings.NewReader(line))
		}
		if err != nil {
			log.Errf("%q: %v", line, err)
		}
		if err := report(out, b, s.big); err != nil {
			return errors.Wrap(err, "writing result")
		}
	}
	return errors.Wrap(sc.Err(), "reading input")
}

// report writes the description and the value or error of b's stack.
func report(w io.Writer, b *calcbrain.Brain, big bool) error {
	desc := b.Description()
	var err error
	if big {
		r, e := b.EvaluateBig()
		switch {
		case e != nil:
			_, err = fmt.Fprintf(w, "%s = %v\n", desc, e)
		case r != nil:
			_, err = fmt.Fprintf(w, "%s = %g\n", desc, r)
		default:
			_, err = fmt.Fprintf(w, "%s =\n", desc)
		}
		return err
	}
	r := b.Result()
	switch {
	case r.Err != nil:
		_, err = fmt.Fprintf(w, "%s = %v\n", desc, r.Err)
	case r.Valid:
		_, err = fmt.Fprintf(w, "%s = %g\n", desc, r.Value)
	default:
		_, err = fmt.Fprintf(w, "%s =\n", desc)
	}
	return err
}
