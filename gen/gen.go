// SPDX-License-Identifier: MIT

// Package gen produces the synthetic inputs swept by the benchmark harness:
// batches of positive list sizes, or batches of sorted integer sequences.
//
// Goals:
//   - Determinism: same seed ⇒ identical batches on every platform.
//   - Encapsulation: one RNG per Generator; no time-based sources anywhere.
//   - Substreams: Derive gives every (scale, trial) an independent stream, so
//     adding a scale value does not shift the inputs of the others.
//
// Concurrency:
//   - A Generator wraps math/rand.Rand and is NOT goroutine-safe. Derive a
//     separate Generator per worker instead of sharing one.
package gen

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// DefaultSeed is used when a caller passes seed==0.
const DefaultSeed int64 = 1

var (
	// ErrBadCount indicates a negative item count.
	ErrBadCount = errors.New("gen: count must be non-negative")

	// ErrBadBound indicates an upper bound below 1.
	ErrBadBound = errors.New("gen: bound must be at least 1")
)

// Generator is a seeded source of synthetic merge inputs.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Generator for seed. Policy: seed==0 ⇒ DefaultSeed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Generator{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed reports the effective seed.
func (g *Generator) Seed() int64 { return g.seed }

// Derive returns an independent Generator for stream. The child depends only
// on the parent seed and the stream id, never on how much of the parent
// stream has been consumed.
func (g *Generator) Derive(stream uint64) *Generator {
	return New(deriveSeed(g.seed, stream))
}

// Sizes returns n sizes drawn uniformly from [1, maxSize].
//
// Complexity: O(n).
func (g *Generator) Sizes(n, maxSize int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	if maxSize < 1 {
		return nil, fmt.Errorf("%w: max size=%d", ErrBadBound, maxSize)
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = int64(1 + g.rng.Intn(maxSize))
	}

	return out, nil
}

// Sequences returns n ascending sequences. Each length is uniform in
// [1, maxLen] and each value uniform in [1, maxValue].
//
// Complexity: O(T log L) for T total elements and longest length L.
func (g *Generator) Sequences(n, maxLen, maxValue int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	if maxLen < 1 {
		return nil, fmt.Errorf("%w: max length=%d", ErrBadBound, maxLen)
	}
	if maxValue < 1 {
		return nil, fmt.Errorf("%w: max value=%d", ErrBadBound, maxValue)
	}

	out := make([][]int, n)
	for i := range out {
		s := make([]int, 1+g.rng.Intn(maxLen))
		for j := range s {
			s[j] = 1 + g.rng.Intn(maxValue)
		}
		slices.Sort(s)
		out[i] = s
	}

	return out, nil
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer. Never returns 0, which New would otherwise remap.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 1
	}

	return int64(x)
}
