// SPDX-License-Identifier: MIT

package merge

import "container/heap"

// CostAccumulator sums the weighted-merge cost of a run.
// The zero value is ready to use.
type CostAccumulator struct {
	total int64
	steps int
}

// Add records one combine step of operands with sizes a and b and returns
// the size of the combined item.
func (c *CostAccumulator) Add(a, b int64) int64 {
	combined := a + b
	c.total += combined
	c.steps++

	return combined
}

// Total returns the accumulated cost.
func (c *CostAccumulator) Total() int64 { return c.total }

// Steps returns the number of combine steps recorded.
func (c *CostAccumulator) Steps() int { return c.steps }

// OptimalCost returns the weighted-merge cost of sizes using a bare size heap.
// It must agree with Sizes(...).Cost and serves as an independent reference.
// sizes is not modified. Returns ErrEmptyInput for an empty slice.
//
// Complexity: O(k log k).
func OptimalCost(sizes []int64) (int64, error) {
	if len(sizes) == 0 {
		return 0, ErrEmptyInput
	}

	pq := make(sizePQ, len(sizes))
	copy(pq, sizes)
	heap.Init(&pq)

	var acc CostAccumulator
	for pq.Len() > 1 {
		a := heap.Pop(&pq).(int64)
		b := heap.Pop(&pq).(int64)
		heap.Push(&pq, acc.Add(a, b))
	}

	return acc.Total(), nil
}
