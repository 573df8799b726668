// SPDX-License-Identifier: MIT

package merge

// item is one pending sequence inside the engine heap.
// In size-only mode data stays nil and size is the only meaningful field.
type item[T any] struct {
	size int64  // number of elements (real or virtual)
	seq  uint64 // insertion order, used to break ties between equal sizes
	data []T    // sorted payload, full-merge mode only
}

// itemPQ is a min-heap of *item ordered by (size, seq) ascending.
// It implements heap.Interface and is owned by a single engine call.
type itemPQ[T any] []*item[T]

// Len returns the number of pending items.
func (pq itemPQ[T]) Len() int { return len(pq) }

// Less orders by size, then by insertion order.
func (pq itemPQ[T]) Less(i, j int) bool {
	if pq[i].size != pq[j].size {
		return pq[i].size < pq[j].size
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two items.
func (pq itemPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push. x must be *item[T].
func (pq *itemPQ[T]) Push(x any) { *pq = append(*pq, x.(*item[T])) }

// Pop removes the last element; called by heap.Pop.
func (pq *itemPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // drop the reference so merged payloads can be collected
	*pq = old[:n-1]

	return it
}

// sizePQ is a plain min-heap of sizes used by OptimalCost.
type sizePQ []int64

func (pq sizePQ) Len() int           { return len(pq) }
func (pq sizePQ) Less(i, j int) bool { return pq[i] < pq[j] }
func (pq sizePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *sizePQ) Push(x any)        { *pq = append(*pq, x.(int64)) }
func (pq *sizePQ) Pop() any {
	old := *pq
	n := len(old)
	v := old[n-1]
	*pq = old[:n-1]

	return v
}
