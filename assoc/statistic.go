package assoc

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/taxonet/kld"
)

// Statistic computes the association statistic between two equal-length
// rows using the selected method.
//
// Degenerate inputs (constant rows, all-zero rows) yield NaN rather than an
// error: the permutation machinery treats non-finite statistics as missing
// null samples, and callers comparing raw statistics can test for NaN.
//
// Errors:
//   - ErrDimensionMismatch — len(x) != len(y).
//   - ErrEmptyInput        — zero-length rows.
//   - ErrUnsupportedMethod — m is not a defined Method.
//
// Complexity: O(n log n) for Spearman (rank sort), O(n) otherwise.
func Statistic(m Method, x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrDimensionMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	switch m {
	case Spearman:
		return stat.Correlation(ranks(x), ranks(y), nil), nil
	case Pearson:
		return stat.Correlation(x, y, nil), nil
	case BrayCurtis:
		return brayCurtis(x, y), nil
	case KullbackLeibler:
		return kld.Divergence(x, y, nil)
	default:
		return 0, ErrUnsupportedMethod
	}
}

// ranks returns 1-based fractional ranks of v, assigning tied values the
// average of the positions they span (the convention Spearman requires).
func ranks(v []float64) []float64 {
	n := len(v)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	r := make([]float64, n)
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && v[idx[hi]] == v[idx[lo]] {
			hi++
		}
		avg := (float64(lo+1) + float64(hi)) / 2 // mean of ranks lo+1..hi
		for k := lo; k < hi; k++ {
			r[idx[k]] = avg
		}
		lo = hi
	}

	return r
}

// brayCurtis computes the Bray-Curtis dissimilarity Σ|x−y| / Σ(x+y).
// Two all-zero rows produce 0/0 = NaN, which downstream code treats as an
// undefined (missing) sample.
func brayCurtis(x, y []float64) float64 {
	var num, den float64
	for i := range x {
		num += math.Abs(x[i] - y[i])
		den += x[i] + y[i]
	}

	return num / den
}
