// SPDX-License-Identifier: MIT

// Package report renders a finished sweep: measured times next to the
// scaled theoretical curve.
//
// The core hands over one Series (three index-aligned sequences plus the
// scaling constant) and each Sink renders it its own way:
//
//   - Console - styled table, scaling constant, raw and scaled curves.
//   - Chart   - text plot of both curves on a fixed grid.
//   - CSV     - machine-readable rows for external plotting tools.
package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kmerge/bench"
	"github.com/katalvlaran/kmerge/fit"
)

// Title heads the console report and the chart.
const Title = "Experimental vs Theoretical Complexity for Merging Sorted Lists (O(n log n))"

// ErrMisaligned indicates series of different lengths.
var ErrMisaligned = errors.New("report: series are not index-aligned")

// Series is everything a Sink needs. All slices share one length and index.
type Series struct {
	N           []int
	Costs       []int64
	Measured    []float64 // nanoseconds
	Raw         []float64 // n·log₂n
	Theoretical []float64 // C·Raw

	C       float64
	R2      float64
	Policy  string
	Variant string
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.N) }

// Validate checks alignment.
func (s Series) Validate() error {
	n := len(s.N)
	if len(s.Costs) != n || len(s.Measured) != n || len(s.Raw) != n || len(s.Theoretical) != n {
		return fmt.Errorf("%w: n=%d costs=%d measured=%d raw=%d theoretical=%d",
			ErrMisaligned, n, len(s.Costs), len(s.Measured), len(s.Raw), len(s.Theoretical))
	}

	return nil
}

// NewSeries joins a sweep report and the fit computed from it.
func NewSeries(rep bench.Report, res fit.Result) (Series, error) {
	ns, times, costs := rep.Series()
	s := Series{
		N:           ns,
		Costs:       costs,
		Measured:    times,
		Raw:         res.Raw,
		Theoretical: res.Scaled,
		C:           res.C,
		R2:          res.R2,
		Policy:      res.Policy.String(),
		Variant:     rep.Variant.String(),
	}
	if err := s.Validate(); err != nil {
		return Series{}, err
	}

	return s, nil
}

// Sink renders a Series.
type Sink interface {
	Render(s Series) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Series) error

// Render calls f.
func (f SinkFunc) Render(s Series) error { return f(s) }

// Multi renders to every sink in order and stops at the first error.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(s Series) error {
		for _, sk := range sinks {
			if err := sk.Render(s); err != nil {
				return err
			}
		}

		return nil
	})
}
