// SPDX-License-Identifier: MIT

package merge

import "errors"

// ErrEmptyInput indicates that the engine was called with zero inputs;
// a merge of nothing has no defined final item.
var ErrEmptyInput = errors.New("merge: at least one input is required")

// CombineFunc observes a single combine step. step is 1-based; a and b are
// the sizes of the first and second popped operands.
type CombineFunc func(step int, a, b int64)

// Options configures a k-way merge run.
//
// Fields:
//   - WithData  - if true, sequence payloads are merged (full merge);
//     otherwise only their lengths are fed to the heap (cost simulation).
//   - OnCombine - optional hook invoked after every combine step.
type Options struct {
	WithData  bool
	OnCombine CombineFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options for a full merge without hooks.
func DefaultOptions() Options {
	return Options{WithData: true}
}

// WithData selects full merge (true) or size-only simulation (false).
func WithData(on bool) Option {
	return func(o *Options) { o.WithData = on }
}

// WithOnCombine installs a hook called after each combine step.
func WithOnCombine(fn CombineFunc) Option {
	return func(o *Options) { o.OnCombine = fn }
}

// Stats is the cost record of one engine run.
type Stats struct {
	// Cost is the sum of both operand sizes over all combine steps.
	Cost int64

	// Steps is the number of combine steps; always len(inputs)-1.
	Steps int

	// FinalSize is the size of the single surviving item.
	FinalSize int64
}

// Result is the outcome of KWay.
type Result[T any] struct {
	// Merged is the final sorted sequence. Nil in size-only mode.
	Merged []T

	Stats
}
