// SPDX-License-Identifier: MIT

// Package config holds the sweep parameters of a mergebench run: scale
// values, generator bounds, seed, trials and the fitting policy.
//
// Sources, lowest precedence first: a named preset (Default is "sizes"),
// an optional YAML file loaded over it, then command-line flags applied by
// the caller.
//
// Example file:
//
//	variant: sequences
//	n_values: [100, 200, 400, 800]
//	max_len: 100
//	max_value: 1000
//	seed: 7
//	fit:
//	  policy: midpoint-ratio
//	  ref_index: -1
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmerge/bench"
	"github.com/katalvlaran/kmerge/fit"
)

var (
	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrBadBound indicates a generator bound below 1.
	ErrBadBound = errors.New("config: bounds must be at least 1")

	// ErrBadRefIndex indicates a fit reference index outside the sweep.
	ErrBadRefIndex = errors.New("config: fit ref_index outside the sweep")
)

// Fit configures the complexity fitter.
type Fit struct {
	Policy   string `yaml:"policy"`
	RefIndex int    `yaml:"ref_index"`
}

// Config is the full parameter set of one run.
type Config struct {
	NValues  []int  `yaml:"n_values"`
	Variant  string `yaml:"variant"`
	MaxSize  int    `yaml:"max_size"`
	MaxLen   int    `yaml:"max_len"`
	MaxValue int    `yaml:"max_value"`
	Seed     int64  `yaml:"seed"`
	Trials   int    `yaml:"trials"`
	Fit      Fit    `yaml:"fit"`

	// CSV is an optional output path for the series; empty disables it.
	CSV string `yaml:"csv"`

	// Chart enables the text chart on stdout.
	Chart bool `yaml:"chart"`
}

// stepRange returns from, from+step, …, up to and including to.
func stepRange(from, to, step int) []int {
	var out []int
	for n := from; n <= to; n += step {
		out = append(out, n)
	}

	return out
}

var presets = map[string]func() Config{
	// The 1 000 … 50 000 size-only sweep, least squares.
	"sizes": func() Config {
		return Config{
			NValues: append([]int{1000}, stepRange(5000, 50000, 5000)...),
			Variant: "sizes",
			MaxSize: 1000,
			Trials:  1,
			Fit:     Fit{Policy: "least-squares", RefIndex: fit.MiddleIndex},
			Chart:   true,
		}
	},
	// Size-only at 100 000 … 1 000 000 lists.
	"sizes-large": func() Config {
		return Config{
			NValues: stepRange(100000, 1000000, 100000),
			Variant: "sizes",
			MaxSize: 1000,
			Trials:  1,
			Fit:     Fit{Policy: "least-squares", RefIndex: fit.MiddleIndex},
			Chart:   true,
		}
	},
	// Full element-level merge with a midpoint reference.
	"sequences": func() Config {
		return Config{
			NValues:  stepRange(100, 1000, 100),
			Variant:  "sequences",
			MaxLen:   100,
			MaxValue: 1000,
			Trials:   1,
			Fit:      Fit{Policy: "midpoint-ratio", RefIndex: fit.MiddleIndex},
			Chart:    true,
		}
	},
}

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "sizes"

// Default returns the DefaultPreset configuration.
func Default() Config {
	return presets[DefaultPreset]()
}

// Preset returns the named preset.
func Preset(name string) (Config, error) {
	mk, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return mk(), nil
}

// PresetNames lists presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Load reads a YAML file over base. Fields missing from the file keep their
// base values.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, base)
}

// Parse decodes YAML data over base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	bc, err := c.BenchConfig()
	if err != nil {
		return err
	}
	if err = bc.Validate(); err != nil {
		return err
	}

	switch bc.Variant {
	case bench.VariantSequences:
		if c.MaxLen < 1 || c.MaxValue < 1 {
			return fmt.Errorf("%w: max_len=%d max_value=%d", ErrBadBound, c.MaxLen, c.MaxValue)
		}
	default:
		if c.MaxSize < 1 {
			return fmt.Errorf("%w: max_size=%d", ErrBadBound, c.MaxSize)
		}
	}

	fo, err := c.FitOptions()
	if err != nil {
		return err
	}
	if fo.Policy == fit.MidpointRatio && fo.RefIndex != fit.MiddleIndex &&
		(fo.RefIndex < 0 || fo.RefIndex >= len(c.NValues)) {
		return fmt.Errorf("%w: %d", ErrBadRefIndex, fo.RefIndex)
	}

	return nil
}

// BenchConfig converts c into a harness configuration.
func (c Config) BenchConfig() (bench.Config, error) {
	v, err := bench.ParseVariant(c.Variant)
	if err != nil {
		return bench.Config{}, err
	}

	return bench.Config{
		NValues:  append([]int(nil), c.NValues...),
		Variant:  v,
		MaxSize:  c.MaxSize,
		MaxLen:   c.MaxLen,
		MaxValue: c.MaxValue,
		Seed:     c.Seed,
		Trials:   c.Trials,
	}, nil
}

// FitOptions converts c into fitter options against n·log₂n.
func (c Config) FitOptions() (fit.Options, error) {
	p, err := fit.ParsePolicy(c.Fit.Policy)
	if err != nil {
		return fit.Options{}, err
	}
	opts := fit.DefaultOptions()
	opts.Policy = p
	opts.RefIndex = c.Fit.RefIndex

	return opts, nil
}
