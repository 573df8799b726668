// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"
)

// NLogN is the n·log₂(n) shape. It is 0 for n ≤ 1.
func NLogN(n int) float64 {
	if n <= 1 {
		return 0
	}
	x := float64(n)

	return x * math.Log2(x)
}

// Linear is the n shape.
func Linear(n int) float64 { return float64(n) }

// Fit computes the scaling constant between times and opts.Shape over ns.
//
// Implementation:
//   - Stage 1: validate lengths and the reference index.
//   - Stage 2: evaluate the raw theoretical curve.
//   - Stage 3: compute c with the active policy.
//   - Stage 4: scale the curve and score it (R²).
//
// Complexity: O(len(ns)).
func Fit(ns []int, times []float64, opts Options) (Result, error) {
	// Stage 1 (Validate).
	if len(ns) == 0 {
		return Result{}, ErrEmptySeries
	}
	if len(ns) != len(times) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(ns), len(times))
	}
	shape := opts.Shape
	if shape == nil {
		shape = NLogN
	}

	// Stage 2 (Raw curve).
	raw := make([]float64, len(ns))
	for i, n := range ns {
		raw[i] = shape(n)
	}

	// Stage 3 (Constant).
	res := Result{Policy: opts.Policy, RefIndex: -1, Raw: raw}
	switch opts.Policy {
	case LeastSquares:
		var num, den float64
		for i := range raw {
			num += times[i] * raw[i]
			den += raw[i] * raw[i]
		}
		if den == 0 {
			return Result{}, fmt.Errorf("%w: Σf²=0", ErrDegenerateFit)
		}
		res.C = num / den

	case MidpointRatio:
		ref := opts.RefIndex
		if ref == MiddleIndex {
			ref = len(ns) / 2
		}
		if ref < 0 || ref >= len(ns) {
			return Result{}, fmt.Errorf("%w: %d not in [0,%d)", ErrBadRefIndex, ref, len(ns))
		}
		if raw[ref] == 0 {
			return Result{}, fmt.Errorf("%w: n=%d", ErrDegenerateFit, ns[ref])
		}
		res.RefIndex = ref
		res.C = times[ref] / raw[ref]

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownPolicy, opts.Policy)
	}

	// Stage 4 (Scale and score).
	res.Scaled = make([]float64, len(raw))
	for i, f := range raw {
		res.Scaled[i] = res.C * f
	}
	res.R2 = rSquared(times, res.Scaled)

	return res, nil
}

// rSquared returns 1 − SSres/SStot. When the measurements have no variance
// it returns 1 for an exact fit and 0 otherwise.
func rSquared(measured, predicted []float64) float64 {
	var mean float64
	for _, v := range measured {
		mean += v
	}
	mean /= float64(len(measured))

	var ssRes, ssTot float64
	for i, v := range measured {
		d := v - predicted[i]
		ssRes += d * d
		m := v - mean
		ssTot += m * m
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1 - ssRes/ssTot
}
