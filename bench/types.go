// SPDX-License-Identifier: MIT

// Package bench sweeps the k-way merge engine over a list of scale values
// and records how long each run took and how much work it did.
//
// For every scale value n the harness:
//
//  1. obtains a pre-generated batch of n inputs (generation is never timed),
//  2. starts the clock, runs the engine to completion, stops the clock,
//  3. records a RunRecord (n, elapsed, cost, steps, merged length).
//
// All batches for the whole sweep are generated before the first timing
// window opens. With Trials > 1 each trial gets a freshly generated copy of
// the same batch and the fastest trial is kept.
//
// A scale point whose generation or merge fails is skipped and reported in
// Report.Skipped; the sweep continues with the next point.
package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptySweep indicates a configuration without scale values.
	ErrEmptySweep = errors.New("bench: sweep has no scale values")

	// ErrScaleTooSmall indicates a scale value below 2; n·log₂n is zero at n=1.
	ErrScaleTooSmall = errors.New("bench: scale values must be at least 2")

	// ErrBadTrials indicates Trials < 1.
	ErrBadTrials = errors.New("bench: trials must be at least 1")

	// ErrUnknownVariant indicates an unrecognized variant.
	ErrUnknownVariant = errors.New("bench: unknown variant")
)

// MinScale is the smallest accepted scale value.
const MinScale = 2

// Variant selects which engine flavor is measured.
type Variant int

const (
	// VariantSizes measures the size-only cost simulation.
	VariantSizes Variant = iota

	// VariantSequences measures the full element-level merge.
	VariantSequences
)

// String returns the canonical variant name.
func (v Variant) String() string {
	switch v {
	case VariantSizes:
		return "sizes"
	case VariantSequences:
		return "sequences"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps a name (case-insensitive) to a Variant.
// Accepted: sizes, size-only, sequences, full.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sizes", "size-only":
		return VariantSizes, nil
	case "sequences", "full":
		return VariantSequences, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Config describes one sweep.
//
// Fields:
//   - NValues  - scale values, swept in order; each must be ≥ MinScale.
//   - Variant  - engine flavor.
//   - MaxSize  - upper bound of generated sizes (VariantSizes).
//   - MaxLen   - upper bound of generated sequence lengths (VariantSequences).
//   - MaxValue - upper bound of generated element values (VariantSequences).
//   - Seed     - generator seed; 0 selects gen.DefaultSeed.
//   - Trials   - timed repetitions per scale value; the minimum is kept.
type Config struct {
	NValues  []int
	Variant  Variant
	MaxSize  int
	MaxLen   int
	MaxValue int
	Seed     int64
	Trials   int
}

// Validate checks the fields the harness depends on. Generator bounds are
// checked by the generator itself and surface as skipped points.
func (c Config) Validate() error {
	if len(c.NValues) == 0 {
		return ErrEmptySweep
	}
	for i, n := range c.NValues {
		if n < MinScale {
			return fmt.Errorf("%w: n_values[%d]=%d", ErrScaleTooSmall, i, n)
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: %d", ErrBadTrials, c.Trials)
	}
	if c.Variant != VariantSizes && c.Variant != VariantSequences {
		return fmt.Errorf("%w: %v", ErrUnknownVariant, c.Variant)
	}

	return nil
}

// RunRecord is the measurement for one scale value.
type RunRecord struct {
	N         int
	Elapsed   time.Duration
	Cost      int64
	Steps     int
	MergedLen int // 0 for VariantSizes
}

// Skipped is a scale value that produced no record.
type Skipped struct {
	N   int
	Err error
}

// Report is the outcome of a sweep.
type Report struct {
	Variant Variant
	Records []RunRecord
	Skipped []Skipped

	// CoarseClock is set when a timing window read as zero, i.e. the clock
	// resolution is too low for the workload. Measurements are still usable
	// but less precise.
	CoarseClock bool
}

// Series returns the index-aligned scale values, elapsed nanoseconds and
// costs of the recorded points.
func (r Report) Series() (ns []int, times []float64, costs []int64) {
	ns = make([]int, len(r.Records))
	times = make([]float64, len(r.Records))
	costs = make([]int64, len(r.Records))
	for i, rec := range r.Records {
		ns[i] = rec.N
		times[i] = float64(rec.Elapsed.Nanoseconds())
		costs[i] = rec.Cost
	}

	return ns, times, costs
}
