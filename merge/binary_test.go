// SPDX-License-Identifier: MIT

package merge_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerge/merge"
)

// TestTwo_Basic checks a simple interleave.
func TestTwo_Basic(t *testing.T) {
	got := merge.Two([]int{1, 3, 5}, []int{2, 4, 6, 8})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 8}, got)
}

// TestTwo_EmptySides verifies that an empty side yields a copy of the other.
func TestTwo_EmptySides(t *testing.T) {
	assert.Equal(t, []int{1, 2}, merge.Two([]int{}, []int{1, 2}))
	assert.Equal(t, []int{1, 2}, merge.Two([]int{1, 2}, nil))
	assert.Empty(t, merge.Two[int](nil, nil))
}

// TestTwo_TiesFavorFirst observes tie order through signed zeros:
// -0.0 == +0.0 under <=, but math.Signbit tells them apart.
func TestTwo_TiesFavorFirst(t *testing.T) {
	neg, pos := math.Copysign(0, -1), 0.0

	got := merge.Two([]float64{neg, 1}, []float64{pos, 1})
	require.Len(t, got, 4)
	assert.True(t, math.Signbit(got[0]), "equal head must come from the first input")
	assert.False(t, math.Signbit(got[1]))

	got = merge.Two([]float64{pos}, []float64{neg})
	assert.False(t, math.Signbit(got[0]), "equal head must come from the first input")
	assert.True(t, math.Signbit(got[1]))
}

// TestTwo_DoesNotMutateInputs ensures both inputs are unchanged.
func TestTwo_DoesNotMutateInputs(t *testing.T) {
	a := []int{1, 4, 9}
	b := []int{2, 3, 10}
	ac, bc := slices.Clone(a), slices.Clone(b)

	out := merge.Two(a, b)
	out[0] = 100 // writing to the result must not leak into inputs

	assert.Equal(t, ac, a)
	assert.Equal(t, bc, b)
}

// TestTwo_RandomProperty checks sortedness, length and multiset union
// against a concatenate-then-sort reference.
func TestTwo_RandomProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		a := randomSorted(rng, rng.Intn(30), 20)
		b := randomSorted(rng, rng.Intn(30), 20)

		got := merge.Two(a, b)
		require.Len(t, got, len(a)+len(b))
		assert.True(t, slices.IsSorted(got), "trial %d not sorted: %v", trial, got)

		want := append(slices.Clone(a), b...)
		slices.Sort(want)
		assert.Equal(t, want, got, "trial %d multiset mismatch", trial)
	}
}

// randomSorted returns n values in [0, maxV) sorted ascending.
func randomSorted(rng *rand.Rand, n, maxV int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(maxV)
	}
	slices.Sort(s)

	return s
}
