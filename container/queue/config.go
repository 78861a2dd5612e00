// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

import (
	"bytes"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
)

const (
	// MinArity is the smallest branching factor supported by an array heap.
	MinArity = 2
	// DefaultArity is the branching factor used when none is specified.
	DefaultArity = 4
)

// Config describes the polarity and branching factor (arity) of an
// array backed heap. It may be parsed from yaml, for example:
//
//	polarity: min
//	arity: 3
type Config struct {
	Polarity Polarity `yaml:"polarity"`
	Arity    int      `yaml:"arity"`
}

// DefaultConfig returns a max-first configuration with DefaultArity.
func DefaultConfig() Config {
	return Config{Polarity: MaxFirst, Arity: DefaultArity}
}

// Validate returns an error describing every problem with the config.
func (c Config) Validate() error {
	errs := errors.M{}
	if c.Arity < MinArity {
		errs.Append(fmt.Errorf("arity %v is less than the minimum of %v", c.Arity, MinArity))
	}
	if c.Polarity != MaxFirst && c.Polarity != MinFirst {
		errs.Append(fmt.Errorf("unknown polarity: %d", int(c.Polarity)))
	}
	return errs.Err()
}

// ParseConfig parses a yaml specification of a Config. Fields that are not
// specified take their values from DefaultConfig and unknown fields are
// reported as errors.
func ParseConfig(spec []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(spec)) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
