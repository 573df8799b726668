// Package kmerge is a small laboratory for checking, by measurement, that
// heap-based k-way merging of sorted sequences costs O(n log n).
//
// 🚀 What is inside?
//
//	• merge/  - binary merge primitive, min-heap k-way engine (size-only or
//	            full data), weighted-merge cost model
//	• gen/    - seeded generator of list sizes and sorted sequences
//	• bench/  - sweep harness: pre-generates inputs, times only the engine
//	• fit/    - scaling constant against n·log₂(n) (least squares or
//	            midpoint ratio), scaled theoretical curve, R²
//	• report/ - console table, text chart and CSV sinks
//	• config/ - presets, YAML sweep files, validation
//
// ✨ Properties worth knowing
//
//   - Deterministic - same seed ⇒ same inputs ⇒ same costs.
//   - One engine - WithData(false) simulates cost, WithData(true) merges.
//   - No hidden state - the engine owns its heap per call; inputs are never
//     mutated, so a batch can be merged again.
//
// Quick example:
//
//	st, _ := merge.Sizes([]int64{1, 1, 1, 1})
//	// st.Cost == 8, st.Steps == 3
//
// Command line:
//
//	go run ./cmd/mergebench --preset sequences --csv series.csv
package kmerge
