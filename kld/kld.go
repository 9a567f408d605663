package kld

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Divergence computes the symmetric Kullback-Leibler divergence between two
// equal-length count vectors.
//
// Algorithm outline:
//  1. Validate: equal, non-zero lengths; positive pseudocount.
//  2. Substitute: entries equal to zero become opts.Pseudocount.
//  3. Normalize: divide each vector element-wise by its own sum, turning it
//     into a probability distribution over samples.
//  4. Accumulate: for each index i add
//     p[i]·ln(p[i]/q[i]) + q[i]·ln(q[i]/p[i]),
//     skipping any term that evaluates to NaN (degenerate input such as a
//     negative count produces an undefined logarithm; the term contributes
//     zero instead of failing the whole call).
//
// Guarantees:
//   - Divergence(x, x) == 0 exactly.
//   - Divergence(x, y) == Divergence(y, x) exactly.
//   - Proportional vectors diverge by exactly zero (scale invariance).
//
// Errors:
//   - ErrDimensionMismatch — len(x) != len(y).
//   - ErrEmptyInput        — either vector is empty.
//   - ErrBadPseudocount    — opts.Pseudocount <= 0.
//
// Complexity: O(n) time, O(n) scratch memory for the normalized copies.
func Divergence(x, y []float64, opts *Options) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrDimensionMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	pc := DefaultPseudocount
	if opts != nil {
		pc = opts.Pseudocount
	}
	if pc <= 0 {
		return 0, ErrBadPseudocount
	}

	p := normalize(x, pc)
	q := normalize(y, pc)

	var sum float64
	for i := range p {
		term := p[i]*math.Log(p[i]/q[i]) + q[i]*math.Log(q[i]/p[i])
		if math.IsNaN(term) {
			// Degenerate ratio (undefined logarithm): tolerated as a zero
			// contribution rather than surfaced as an error.
			continue
		}
		sum += term
	}

	return sum, nil
}

// DivergenceMatrix computes the full symmetric divergence matrix over a set
// of equal-length count vectors (one row per taxon).
//
// Each unordered pair (i, j), i < j, is evaluated exactly once and mirrored
// into both cells; diagonal entries are fixed at zero regardless of the row
// contents (a taxon's divergence from itself is zero by definition).
//
// Errors:
//   - ErrEmptyInput        — rows is empty.
//   - ErrDimensionMismatch — rows are ragged (propagated from Divergence).
//   - ErrBadPseudocount    — invalid pseudocount (propagated).
//
// Complexity: O(t²·n) time for t rows of n samples, O(t²) result memory.
func DivergenceMatrix(rows [][]float64, opts *Options) (*mat.SymDense, error) {
	t := len(rows)
	if t == 0 {
		return nil, ErrEmptyInput
	}

	m := mat.NewSymDense(t, nil)
	for i := 0; i < t; i++ {
		// Diagonal stays zero: SymDense is zero-initialized.
		for j := i + 1; j < t; j++ {
			d, err := Divergence(rows[i], rows[j], opts)
			if err != nil {
				return nil, err
			}
			m.SetSym(i, j, d) // SetSym mirrors into (j, i)
		}
	}

	return m, nil
}

// normalize returns a strictly positive probability vector: zero entries are
// replaced by pc, then every entry is divided by the new total.
func normalize(v []float64, pc float64) []float64 {
	out := make([]float64, len(v))
	var sum float64
	for i, val := range v {
		if val == 0 {
			val = pc
		}
		out[i] = val
		sum += val
	}
	for i := range out {
		out[i] /= sum
	}

	return out
}
