package assoc

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// StatisticMatrix computes the association statistic for every unordered
// pair of rows, mirrored into a symmetric matrix. Each pair is evaluated
// exactly once (triangular evaluation).
//
// Diagonal entries hold the method's self-statistic: 1 for correlation
// methods, 0 for dissimilarity methods.
//
// Errors:
//   - ErrEmptyInput        — empty row set or zero-length rows.
//   - ErrDimensionMismatch — ragged rows.
//   - ErrUnsupportedMethod — undefined method.
//
// Complexity: O(t²·n log n) time for t rows of n samples.
func StatisticMatrix(rows [][]float64, m Method) (*mat.SymDense, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}
	if !m.valid() {
		return nil, ErrUnsupportedMethod
	}

	t := len(rows)
	out := mat.NewSymDense(t, nil)
	self := 1.0 // correlation of a row with itself
	if m.dissimilarity() {
		self = 0 // divergence of a row from itself
	}
	for i := 0; i < t; i++ {
		out.SetSym(i, i, self)
		for j := i + 1; j < t; j++ {
			s, err := Statistic(m, rows[i], rows[j])
			if err != nil {
				return nil, err
			}
			out.SetSym(i, j, s) // SetSym mirrors into (j, i)
		}
	}

	return out, nil
}

// PValueMatrix estimates a permutation p-value for every unordered pair of
// rows, mirrored into a symmetric matrix. Diagonal entries are fixed at
// zero; self-pairs are not tested.
//
// Independent pairs are evaluated on up to Options.Workers goroutines.
// Every pair draws from its own PCG stream derived from Options.Seed and
// the pair's indices, so the numbers are identical for any worker count
// and any scheduling order. With Seed == 0 a fresh base seed is drawn once
// per call (the matrix is then internally consistent but differs between
// runs). Options.Rand is ignored here: a single shared generator would
// reintroduce the scheduling dependence this driver exists to avoid.
//
// Errors: as for PairPValue, surfaced before any goroutine starts where
// possible.
//
// Complexity: t·(t−1)/2 PairPValue evaluations, parallel up to Workers.
func PValueMatrix(rows [][]float64, opts *Options) (*mat.SymDense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if err := validateRows(rows); err != nil {
		return nil, err
	}
	if !o.Method.valid() {
		return nil, ErrUnsupportedMethod
	}
	if o.Permutations < 1 {
		return nil, ErrBadPermutations
	}

	base := o.Seed
	if base == 0 {
		base = rand.Uint64()
	}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}

	t := len(rows)
	out := mat.NewSymDense(t, nil)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < t; i++ {
		for j := i + 1; j < t; j++ {
			g.Go(func() error {
				pairOpts := o
				pairOpts.Rand = rand.New(rand.NewPCG(base, pairStream(i, j)))
				p, err := PairPValue(rows, i, j, &pairOpts)
				if err != nil {
					return err
				}
				// Disjoint cells per goroutine: pair (i,j) writes only its
				// own mirrored entry, the diagonal is never touched.
				out.SetSym(i, j, p)

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// pairStream packs a pair of row indices into one PCG stream selector.
func pairStream(i, j int) uint64 {
	return (uint64(i)<<32 | uint64(j)) ^ pcgStreamSalt
}

// validateRows checks that the row set is non-empty, every row is
// non-empty, and all rows share one length.
func validateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return ErrEmptyInput
	}
	n := len(rows[0])
	if n == 0 {
		return ErrEmptyInput
	}
	for _, row := range rows[1:] {
		if len(row) != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}
