// SPDX-License-Identifier: MIT

package bench

import "github.com/katalvlaran/kmerge/gen"

// Batch is one engine input. Exactly one field is populated, matching the
// sweep variant.
type Batch struct {
	Sizes []int64
	Seqs  [][]int
}

// Len returns the number of items in the batch.
func (b Batch) Len() int {
	if b.Seqs != nil {
		return len(b.Seqs)
	}

	return len(b.Sizes)
}

// Source supplies batches to the harness. Batch is called once per
// (scale, trial), always before any timing starts, and the harness never
// hands the same Batch to the engine twice.
type Source interface {
	Batch(n, trial int) (Batch, error)
}

// genSource produces batches with package gen. The stream depends on n only,
// so every trial of a scale receives a fresh copy of identical data.
type genSource struct {
	cfg  Config
	root *gen.Generator
}

// NewGenSource returns the default Source for cfg.
func NewGenSource(cfg Config) Source {
	return &genSource{cfg: cfg, root: gen.New(cfg.Seed)}
}

func (s *genSource) Batch(n, _ int) (Batch, error) {
	g := s.root.Derive(uint64(n))
	switch s.cfg.Variant {
	case VariantSequences:
		seqs, err := g.Sequences(n, s.cfg.MaxLen, s.cfg.MaxValue)
		if err != nil {
			return Batch{}, err
		}

		return Batch{Seqs: seqs}, nil
	default:
		sizes, err := g.Sizes(n, s.cfg.MaxSize)
		if err != nil {
			return Batch{}, err
		}

		return Batch{Sizes: sizes}, nil
	}
}
