// SPDX-License-Identifier: MIT

package merge_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerge/merge"
)

// step captures one OnCombine call.
type step struct {
	n    int
	a, b int64
}

// recorder returns a hook and a pointer to the captured steps.
func recorder() (merge.CombineFunc, *[]step) {
	var got []step
	return func(n int, a, b int64) { got = append(got, step{n, a, b}) }, &got
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestKWay_EmptyInput(t *testing.T) {
	_, err := merge.KWay[int](nil)
	assert.ErrorIs(t, err, merge.ErrEmptyInput)

	_, _, err = merge.Sequences([][]int{})
	assert.ErrorIs(t, err, merge.ErrEmptyInput)

	_, err = merge.Sizes(nil)
	assert.ErrorIs(t, err, merge.ErrEmptyInput)

	_, err = merge.OptimalCost([]int64{})
	assert.ErrorIs(t, err, merge.ErrEmptyInput)
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

// TestSizes_FourOnes: 1+1=2, 1+1=2, 2+2=4 → cost 8 in 3 steps.
func TestSizes_FourOnes(t *testing.T) {
	hook, got := recorder()
	st, err := merge.Sizes([]int64{1, 1, 1, 1}, merge.WithOnCombine(hook))
	require.NoError(t, err)

	assert.Equal(t, int64(8), st.Cost)
	assert.Equal(t, 3, st.Steps)
	assert.Equal(t, int64(4), st.FinalSize)
	assert.Equal(t, []step{{1, 1, 1}, {2, 1, 1}, {3, 2, 2}}, *got)
}

// TestSequences_ThreeLists merges [[1,3],[2,4],[5]]: the size-1 list and the
// earliest size-2 list go first (cost 3), then 2+3 (cost 5).
func TestSequences_ThreeLists(t *testing.T) {
	hook, got := recorder()
	out, st, err := merge.Sequences([][]int{{1, 3}, {2, 4}, {5}}, merge.WithOnCombine(hook))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, out)
	assert.Equal(t, int64(8), st.Cost)
	assert.Equal(t, 2, st.Steps)
	assert.Equal(t, int64(5), st.FinalSize)
	assert.Equal(t, []step{{1, 1, 2}, {2, 2, 3}}, *got)
}

// TestSizes_TieBreakIsInsertionOrder: equal sizes pop oldest first, so the
// combined 4 is popped after the last original 2.
func TestSizes_TieBreakIsInsertionOrder(t *testing.T) {
	hook, got := recorder()
	st, err := merge.Sizes([]int64{2, 2, 2}, merge.WithOnCombine(hook))
	require.NoError(t, err)

	assert.Equal(t, int64(4+6), st.Cost)
	assert.Equal(t, []step{{1, 2, 2}, {2, 2, 4}}, *got)
}

// TestKWay_SingleInput returns the lone input unchanged with zero cost.
func TestKWay_SingleInput(t *testing.T) {
	in := [][]int{{3, 7, 9}}
	res, err := merge.KWay(in)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7, 9}, res.Merged)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Steps)
	assert.Equal(t, int64(3), res.FinalSize)

	// The result must not alias the caller's slice.
	res.Merged[0] = -1
	assert.Equal(t, 3, in[0][0])

	st, err := merge.Sizes([]int64{42})
	require.NoError(t, err)
	assert.Equal(t, merge.Stats{Cost: 0, Steps: 0, FinalSize: 42}, st)
}

// TestKWay_SizeOnlyMode leaves Merged nil but still reports cost.
func TestKWay_SizeOnlyMode(t *testing.T) {
	res, err := merge.KWay([][]int{{1}, {2}, {3, 4}}, merge.WithData(false))
	require.NoError(t, err)

	assert.Nil(t, res.Merged)
	assert.Equal(t, int64(2+4), res.Cost)
	assert.Equal(t, 2, res.Steps)
}

// TestKWay_EmptySequences treats zero-length inputs as size-0 items.
func TestKWay_EmptySequences(t *testing.T) {
	out, st, err := merge.Sequences([][]int{{}, {1}, {}})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, out)
	assert.Equal(t, 2, st.Steps)
	assert.Equal(t, int64(0+1), st.Cost)
}

// ------------------------------------------------------------------------
// 3. Properties over random inputs
// ------------------------------------------------------------------------

// TestKWay_StepsAreInputCountMinusOne for k in 1..64.
func TestKWay_StepsAreInputCountMinusOne(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 1; k <= 64; k++ {
		calls := 0
		st, err := merge.Sizes(randomSizes(rng, k, 50), merge.WithOnCombine(func(int, int64, int64) { calls++ }))
		require.NoError(t, err)

		assert.Equal(t, k-1, st.Steps, "k=%d", k)
		assert.Equal(t, k-1, calls, "k=%d", k)
	}
}

// TestSequences_MatchesSortedUnion compares against concatenate-then-sort.
func TestSequences_MatchesSortedUnion(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 50; trial++ {
		k := 1 + rng.Intn(40)
		seqs := make([][]int, k)
		var want []int
		for i := range seqs {
			seqs[i] = randomSorted(rng, rng.Intn(25), 100)
			want = append(want, seqs[i]...)
		}
		slices.Sort(want)

		out, st, err := merge.Sequences(seqs)
		require.NoError(t, err)
		if len(want) == 0 {
			assert.Empty(t, out)
		} else {
			assert.Equal(t, want, out, "trial %d", trial)
		}
		assert.Equal(t, int64(len(want)), st.FinalSize)
	}
}

// TestVariants_SameCost: size-only, full merge and the bare size heap agree
// on the cost for the same multiset of sizes.
func TestVariants_SameCost(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		k := 1 + rng.Intn(60)
		seqs := make([][]int, k)
		sizes := make([]int64, k)
		for i := range seqs {
			seqs[i] = randomSorted(rng, 1+rng.Intn(20), 1000)
			sizes[i] = int64(len(seqs[i]))
		}

		_, full, err := merge.Sequences(seqs)
		require.NoError(t, err)
		sim, err := merge.Sizes(sizes)
		require.NoError(t, err)
		ref, err := merge.OptimalCost(sizes)
		require.NoError(t, err)

		assert.Equal(t, full, sim, "trial %d", trial)
		assert.Equal(t, ref, sim.Cost, "trial %d", trial)
	}
}

// TestSizes_InputReusable: the engine owns its heap, so the caller's slice is
// untouched and a second run on it gives the same answer.
func TestSizes_InputReusable(t *testing.T) {
	sizes := []int64{5, 1, 9, 3, 3, 7}
	orig := slices.Clone(sizes)

	first, err := merge.Sizes(sizes)
	require.NoError(t, err)
	assert.Equal(t, orig, sizes, "input must not be reordered or drained")

	second, err := merge.Sizes(sizes)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSequences_InputReusable mirrors the size-only check for full merges.
func TestSequences_InputReusable(t *testing.T) {
	seqs := [][]int{{1, 5}, {2}, {0, 3, 4}}
	snapshot := [][]int{{1, 5}, {2}, {0, 3, 4}}

	out1, st1, err := merge.Sequences(seqs)
	require.NoError(t, err)
	out2, st2, err := merge.Sequences(seqs)
	require.NoError(t, err)

	assert.Equal(t, snapshot, seqs)
	assert.Equal(t, out1, out2)
	assert.Equal(t, st1, st2)
}

// TestCostAccumulator exercises the accumulator directly.
func TestCostAccumulator(t *testing.T) {
	var acc merge.CostAccumulator
	assert.Equal(t, int64(3), acc.Add(1, 2))
	assert.Equal(t, int64(7), acc.Add(3, 4))
	assert.Equal(t, int64(10), acc.Total())
	assert.Equal(t, 2, acc.Steps())
}

// randomSizes returns k sizes in [1, maxSize].
func randomSizes(rng *rand.Rand, k, maxSize int) []int64 {
	s := make([]int64, k)
	for i := range s {
		s[i] = int64(1 + rng.Intn(maxSize))
	}

	return s
}
