// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/kmerge/merge"
)

// Option customizes a Harness.
type Option func(*Harness)

// WithClock replaces the SystemClock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.log = l }
}

// WithProgress installs a hook called after each recorded scale value.
func WithProgress(fn func(RunRecord)) Option {
	return func(h *Harness) { h.progress = fn }
}

// WithSource replaces the generator-backed Source.
func WithSource(s Source) Option {
	return func(h *Harness) { h.source = s }
}

// Harness runs one sweep. It is single-threaded and not safe for concurrent
// use; build one Harness per sweep.
type Harness struct {
	cfg      Config
	clock    Clock
	log      *slog.Logger
	progress func(RunRecord)
	source   Source
}

// New validates cfg and returns a Harness.
func New(cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Harness{
		cfg:   cfg,
		clock: SystemClock{},
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.source == nil {
		h.source = NewGenSource(cfg)
	}

	return h, nil
}

// point holds the pre-generated batches of one scale value.
type point struct {
	n       int
	batches []Batch
	err     error
}

// Run executes the sweep and returns its Report.
func (h *Harness) Run() Report {
	rep := Report{Variant: h.cfg.Variant}

	// 1) Generate every batch up front; nothing below this loop is generation.
	points := h.prepare()
	h.log.Info("sweep prepared",
		"variant", h.cfg.Variant.String(),
		"scales", len(points),
		"trials", h.cfg.Trials)

	// 2) Time each scale value.
	warned := false
	for _, p := range points {
		if p.err != nil {
			h.skip(&rep, p.n, p.err)
			continue
		}

		rec, coarse, err := h.measure(p)
		if err != nil {
			h.skip(&rep, p.n, err)
			continue
		}
		if coarse {
			rep.CoarseClock = true
			if !warned {
				h.log.Warn("clock resolution too coarse; timings degraded", "n", p.n)
				warned = true
			}
		}

		rep.Records = append(rep.Records, rec)
		h.log.Debug("scale measured",
			"n", rec.N,
			"elapsed", rec.Elapsed,
			"cost", rec.Cost,
			"steps", rec.Steps)
		if h.progress != nil {
			h.progress(rec)
		}
	}

	h.log.Info("sweep finished", "recorded", len(rep.Records), "skipped", len(rep.Skipped))

	return rep
}

func (h *Harness) prepare() []point {
	points := make([]point, len(h.cfg.NValues))
	for i, n := range h.cfg.NValues {
		points[i].n = n
		points[i].batches = make([]Batch, 0, h.cfg.Trials)
		for t := 0; t < h.cfg.Trials; t++ {
			b, err := h.source.Batch(n, t)
			if err != nil {
				points[i].err = fmt.Errorf("generate n=%d trial=%d: %w", n, t, err)
				points[i].batches = nil
				break
			}
			points[i].batches = append(points[i].batches, b)
		}
	}

	return points
}

// measure times every trial of p and keeps the fastest. The batch of a trial
// is released as soon as the trial completes.
func (h *Harness) measure(p point) (RunRecord, bool, error) {
	best := RunRecord{N: p.n, Elapsed: -1}
	coarse := false

	for t := range p.batches {
		b := p.batches[t]
		p.batches[t] = Batch{}

		var (
			st        merge.Stats
			mergedLen int
			err       error
		)

		start := h.clock.Now()
		switch h.cfg.Variant {
		case VariantSequences:
			var out []int
			out, st, err = merge.Sequences(b.Seqs)
			mergedLen = len(out)
		default:
			st, err = merge.Sizes(b.Sizes)
		}
		elapsed := h.clock.Since(start)

		if err != nil {
			return RunRecord{}, false, fmt.Errorf("merge n=%d trial=%d: %w", p.n, t, err)
		}
		if elapsed <= 0 {
			coarse = true
			elapsed = 0
		}
		if best.Elapsed < 0 || elapsed < best.Elapsed {
			best = RunRecord{
				N:         p.n,
				Elapsed:   elapsed,
				Cost:      st.Cost,
				Steps:     st.Steps,
				MergedLen: mergedLen,
			}
		}
	}

	return best, coarse, nil
}

func (h *Harness) skip(rep *Report, n int, err error) {
	h.log.Warn("scale skipped", "n", n, "error", err)
	rep.Skipped = append(rep.Skipped, Skipped{N: n, Err: err})
}

