package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config is the optional YAML configuration. Zero fields leave the
// corresponding flag defaults alone.
type config struct {
	Prec     uint               `yaml:"prec"`
	Big      bool               `yaml:"big"`
	Infix    bool               `yaml:"infix"`
	LogLevel string             `yaml:"loglevel"`
	Vars     map[string]float64 `yaml:"vars"`
}

func loadConfig(name string) (*config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return decodeConfig(f, name)
}

func decodeConfig(r io.Reader, name string) (*config, error) {
	var c config
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil {
		if err == io.EOF {
			// Empty document.
			return &c, nil
		}
		return nil, errors.Wrapf(err, "decoding config %s", name)
	}
	return &c, nil
}

// merge applies c to the settings whose flags were not given explicitly.
func (c *config) merge(s *settings, explicit map[string]bool) {
	if !explicit["p"] && c.Prec != 0 {
		s.prec = c.Prec
	}
	if !explicit["big"] && c.Big {
		s.big = true
	}
	if !explicit["infix"] && c.Infix {
		s.infix = true
	}
	if !explicit["loglevel"] && c.LogLevel != "" {
		s.level = c.LogLevel
	}
}
