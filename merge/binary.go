// SPDX-License-Identifier: MIT

package merge

import "cmp"

// Two merges two ascending sequences into a fresh ascending sequence.
//
// Contract:
//   - a and b must each be sorted ascending; neither is modified.
//   - Equal elements are taken from a first (a[i] <= b[j]), so the merge is
//     stable with respect to argument order.
//   - len(result) == len(a)+len(b); the result is the multiset union.
//
// Complexity: O(len(a)+len(b)) time and space.
func Two[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))

	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}

	// One side is exhausted; copy the other tail in bulk.
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
