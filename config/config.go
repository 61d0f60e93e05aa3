// Package config defines the tunable parameters a trie is constructed
// with and validates them before they reach package hamt.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Params holds the construction parameters for a hamt.Root. The bounds
// on W and T mirror hamt.New's own validation; Params exists so callers
// can validate configuration (e.g. read from the environment or a file)
// before ever touching package hamt.
type Params struct {
	W uint8 `validate:"gte=2,lte=6"`
	T uint8 `validate:"gte=2,lte=64"`
}

// DefaultValidator returns a validator configured for Params and any
// future config struct this package grows.
func DefaultValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Validate checks p against its struct tags, returning a
// validator.ValidationErrors on failure.
func (p Params) Validate() error {
	return DefaultValidator().Struct(p)
}

const (
	envW = "HAMT_W"
	envT = "HAMT_T"
)

// Load reads HAMT_W and HAMT_T from the environment, falling back to
// defaultW and defaultT for either variable that is unset, and
// validates the result.
func Load(defaultW, defaultT uint8) (Params, error) {
	p := Params{W: defaultW, T: defaultT}

	if v, ok := os.LookupEnv(envW); ok {
		w, err := parseUint8(v)
		if err != nil {
			return Params{}, fmt.Errorf("config: %s: %w", envW, err)
		}
		p.W = w
	}
	if v, ok := os.LookupEnv(envT); ok {
		t, err := parseUint8(v)
		if err != nil {
			return Params{}, fmt.Errorf("config: %s: %w", envT, err)
		}
		p.T = t
	}

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

func parseUint8(v string) (uint8, error) {
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}
