// SPDX-License-Identifier: MIT

// Package merge implements heap-based k-way merging of sorted sequences.
//
// The engine repeatedly takes the two smallest pending sequences (by size)
// from a min-heap, combines them and pushes the result back until a single
// sequence remains. This is the Huffman-style merge order: it minimizes the
// total number of element moves across the whole merge.
//
// Two variants share one engine, selected by the with-data flag:
//
//   - Size-only (WithData(false), Sizes): pending items are virtual sequences
//     that carry a magnitude only. Combining two of them yields a new size
//     equal to the sum. Useful for simulating cost at large scale.
//   - Full merge (WithData(true), Sequences): pending items carry sorted data,
//     and combining them runs the Two primitive. The final item is the sorted
//     multiset union of all inputs.
//
// Cost model:
//
//	cost = Σ (size(first) + size(second)) over every combine step
//
// The cost depends only on magnitudes, never on element values, so both
// variants report identical Stats for the same multiset of sizes.
//
// Tie-breaking:
//
//	Items with equal size are popped in insertion order. Inputs are inserted
//	in index order, combined results get increasing sequence numbers. The
//	order is deterministic; the total cost does not depend on it.
//
// Complexity:
//
//   - Steps: exactly k-1 combines for k inputs.
//   - Heap work: O(k log k).
//   - Full merge data movement: O(N log k) for N total elements in the
//     balanced case, bounded by Stats.Cost in general.
//
// Errors:
//
//   - ErrEmptyInput if no inputs are supplied.
package merge
