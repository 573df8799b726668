// SPDX-License-Identifier: MIT

package merge

import (
	"cmp"
	"container/heap"
	"slices"
)

// KWay merges seqs by repeatedly combining the two smallest pending sequences.
//
// With the default options (WithData(true)) every combine runs Two and the
// returned Result carries the final merged sequence. With WithData(false)
// only len(seqs[i]) is fed to the heap and Result.Merged is nil; Stats are
// identical in both modes.
//
// Contract:
//   - len(seqs) >= 1, otherwise ErrEmptyInput.
//   - Each seqs[i] must be sorted ascending. seqs and its elements are never
//     modified, so the same input may be merged again.
//   - Exactly len(seqs)-1 combine steps are performed.
//   - A single input is returned as a copy with zero cost.
//
// Complexity:
//   - Heap: O(k log k) for k inputs.
//   - Data: O(Stats.Cost) element moves in full-merge mode.
func KWay[T cmp.Ordered](seqs [][]T, opts ...Option) (Result[T], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if len(seqs) == 0 {
		return Result[T]{}, ErrEmptyInput
	}

	// 3) Seed the heap in index order so seq numbers follow input order.
	r := newRunner[T](cfg, len(seqs))
	for _, s := range seqs {
		if cfg.WithData {
			r.add(int64(len(s)), s)
		} else {
			r.add(int64(len(s)), nil)
		}
	}

	// 4) Run and collect.
	last := r.run()
	res := Result[T]{Stats: r.stats(last)}
	if cfg.WithData {
		// A lone input was never copied by Two; clone it so the caller's
		// slice is not aliased by the result.
		if len(seqs) == 1 {
			res.Merged = slices.Clone(last.data)
		} else {
			res.Merged = last.data
		}
	}

	return res, nil
}

// Sequences is the full-merge variant: it returns the merged sequence
// together with the run Stats. WithData is forced on.
func Sequences[T cmp.Ordered](seqs [][]T, opts ...Option) ([]T, Stats, error) {
	res, err := KWay(seqs, append(opts, WithData(true))...)
	if err != nil {
		return nil, Stats{}, err
	}

	return res.Merged, res.Stats, nil
}

// Sizes is the size-only variant: every entry of sizes is a virtual sequence
// with that many elements. sizes is not modified. WithData is ignored.
//
// Example: sizes [1,1,1,1] combine as 1+1, 1+1, 2+2 for Cost=8, Steps=3.
func Sizes(sizes []int64, opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.WithData = false

	if len(sizes) == 0 {
		return Stats{}, ErrEmptyInput
	}

	r := newRunner[int](cfg, len(sizes))
	for _, s := range sizes {
		r.add(s, nil)
	}
	last := r.run()

	return r.stats(last), nil
}

// runner holds the mutable state of one engine call. Nothing in it outlives
// the call.
type runner[T cmp.Ordered] struct {
	opts Options
	pq   itemPQ[T]
	acc  CostAccumulator
	next uint64 // next insertion sequence number
}

func newRunner[T cmp.Ordered](opts Options, capacity int) *runner[T] {
	return &runner[T]{
		opts: opts,
		pq:   make(itemPQ[T], 0, capacity),
	}
}

// add appends an item without restoring heap order; run calls heap.Init.
func (r *runner[T]) add(size int64, data []T) {
	r.pq = append(r.pq, &item[T]{size: size, seq: r.next, data: data})
	r.next++
}

// run drains the heap down to one item and returns it.
func (r *runner[T]) run() *item[T] {
	heap.Init(&r.pq)

	for r.pq.Len() > 1 {
		// 1) Pop the two smallest items; first is the smaller (or earlier).
		first := heap.Pop(&r.pq).(*item[T])
		second := heap.Pop(&r.pq).(*item[T])

		// 2) Combine. Cost is magnitude-based in both modes.
		combined := &item[T]{
			size: r.acc.Add(first.size, second.size),
			seq:  r.next,
		}
		r.next++
		if r.opts.WithData {
			combined.data = Two(first.data, second.data)
		}

		// 3) Notify and reinsert.
		if r.opts.OnCombine != nil {
			r.opts.OnCombine(r.acc.Steps(), first.size, second.size)
		}
		heap.Push(&r.pq, combined)
	}

	return heap.Pop(&r.pq).(*item[T])
}

func (r *runner[T]) stats(last *item[T]) Stats {
	return Stats{
		Cost:      r.acc.Total(),
		Steps:     r.acc.Steps(),
		FinalSize: last.size,
	}
}
