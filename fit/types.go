// SPDX-License-Identifier: MIT

// Package fit relates measured runtimes to a theoretical growth shape.
//
// Given swept scale values nᵢ, measured times tᵢ and a shape f (n·log₂n by
// default), Fit computes one scaling constant c so that c·f(nᵢ) approximates
// tᵢ, and returns the raw and scaled theoretical curves.
//
// Policies:
//
//	LeastSquares   c = Σ tᵢ·fᵢ / Σ fᵢ²        (all points)
//	MidpointRatio  c = t_ref / f_ref         (single reference point)
//
// The reference point defaults to the middle index len/2.
//
// Errors (sentinel):
//
//   - ErrEmptySeries    if no points are given.
//   - ErrLengthMismatch if len(ns) != len(times).
//   - ErrBadRefIndex    if the reference index lies outside the sweep.
//   - ErrDegenerateFit  if the shape is zero where it is divided by
//     (every fᵢ for LeastSquares, f_ref for MidpointRatio). With the default
//     shape this happens for n ≤ 1; sweeps should start at n ≥ 2.
package fit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySeries indicates that no (n, t) points were supplied.
	ErrEmptySeries = errors.New("fit: empty series")

	// ErrLengthMismatch indicates that ns and times differ in length.
	ErrLengthMismatch = errors.New("fit: ns and times length mismatch")

	// ErrBadRefIndex indicates a midpoint reference index out of range.
	ErrBadRefIndex = errors.New("fit: reference index out of range")

	// ErrDegenerateFit indicates a zero theoretical value in a denominator.
	ErrDegenerateFit = errors.New("fit: theoretical curve is zero at the reference point")

	// ErrUnknownPolicy indicates an unrecognized policy name.
	ErrUnknownPolicy = errors.New("fit: unknown policy")
)

// Policy selects how the scaling constant is computed.
type Policy int

const (
	// LeastSquares minimizes Σ(tᵢ − c·fᵢ)² over all points.
	LeastSquares Policy = iota

	// MidpointRatio uses t/f at a single reference index.
	MidpointRatio
)

// String returns the canonical policy name.
func (p Policy) String() string {
	switch p {
	case LeastSquares:
		return "least-squares"
	case MidpointRatio:
		return "midpoint-ratio"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a name (case-insensitive) to a Policy.
// Accepted: least-squares, lsq, midpoint-ratio, midpoint.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "least-squares", "lsq":
		return LeastSquares, nil
	case "midpoint-ratio", "midpoint":
		return MidpointRatio, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// MiddleIndex selects len/2 as the MidpointRatio reference.
const MiddleIndex = -1

// Options configures Fit.
//
// Fields:
//   - Policy   - LeastSquares (default) or MidpointRatio.
//   - RefIndex - MidpointRatio reference index; MiddleIndex means len/2.
//   - Shape    - theoretical growth shape; nil means NLogN.
type Options struct {
	Policy   Policy
	RefIndex int
	Shape    func(n int) float64
}

// DefaultOptions returns least-squares against n·log₂n.
func DefaultOptions() Options {
	return Options{
		Policy:   LeastSquares,
		RefIndex: MiddleIndex,
		Shape:    NLogN,
	}
}

// Result is the outcome of Fit. Raw and Scaled are index-aligned with the
// input ns.
type Result struct {
	Policy Policy

	// C is the fitted scaling constant.
	C float64

	// RefIndex is the reference point used by MidpointRatio, or -1 for
	// LeastSquares.
	RefIndex int

	// Raw[i] = shape(ns[i]); Scaled[i] = C·Raw[i].
	Raw    []float64
	Scaled []float64

	// R2 is the coefficient of determination of Scaled against the measured
	// times.
	R2 float64
}
