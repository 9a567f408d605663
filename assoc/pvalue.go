package assoc

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PairPValue estimates a one-sided empirical p-value for the association
// between rows i and j via label permutation, optionally combined with
// bootstrap resampling. The result always lies in [0, 0.5].
//
// Algorithm outline:
//  1. Compute the observed statistic between rows i and j.
//  2. Build the null distribution: Permutations full-length shuffles of a
//     copy of row i (sampling without replacement), each scored against the
//     unmodified row j; only finite values are kept.
//  3. If fewer than one third of the requested permutations are finite,
//     return NeutralPValue — "no evidence either way", not a failure.
//  4. Locate the observed value in the null: upper tail for dissimilarity
//     methods (larger = less association), lower tail for correlations.
//  5. Bootstrap mode: draw Permutations resamples-with-replacement of the
//     sample positions shared by both rows, score each resampled pair, and
//     — provided the bootstrap distribution also clears the one-third
//     threshold — take the p-value as the tail probability of the null
//     distribution's mean under Normal(bootstrap mean, bootstrap stddev)
//     instead of the direct rank-based comparison.
//  6. Fold: the test is one-sided but the association may run in either
//     direction, so any p > 0.5 becomes 1−p. Non-finite p-values (and a
//     non-finite observed statistic) map to NeutralPValue.
//
// Randomness is drawn from Options.Rand if set, else from a PCG stream
// seeded by Options.Seed (0 = fresh seed, results differ between runs).
// The call itself is stateless: each invocation is independent and carries
// no memory of prior calls.
//
// Errors:
//   - ErrEmptyInput        — empty row set or zero-length rows.
//   - ErrIndexOutOfRange   — i or j outside rows.
//   - ErrDimensionMismatch — rows i and j differ in length.
//   - ErrUnsupportedMethod — undefined Options.Method.
//   - ErrBadPermutations   — Options.Permutations < 1.
//
// Complexity: O(R·n log n) time for R permutations of n samples (the
// log n factor applies to Spearman only), O(R + n) memory.
func PairPValue(rows [][]float64, i, j int, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(rows) == 0 {
		return 0, ErrEmptyInput
	}
	if i < 0 || i >= len(rows) || j < 0 || j >= len(rows) {
		return 0, ErrIndexOutOfRange
	}
	if !o.Method.valid() {
		return 0, ErrUnsupportedMethod
	}
	if o.Permutations < 1 {
		return 0, ErrBadPermutations
	}

	x, y := rows[i], rows[j]
	if len(x) != len(y) {
		return 0, ErrDimensionMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	obs, err := Statistic(o.Method, x, y)
	if err != nil {
		return 0, err
	}

	r := o.rng()

	// Null distribution: permute row i, keep row j fixed.
	null := make([]float64, 0, o.Permutations)
	buf := append([]float64(nil), x...)
	for k := 0; k < o.Permutations; k++ {
		r.Shuffle(len(buf), func(a, b int) { buf[a], buf[b] = buf[b], buf[a] })
		s, _ := Statistic(o.Method, buf, y) // dimensions already validated
		if isFinite(s) {
			null = append(null, s)
		}
	}
	if 3*len(null) < o.Permutations {
		return NeutralPValue, nil
	}

	upper := o.Method.dissimilarity()

	if o.Bootstrap {
		boot := bootstrapDistribution(o.Method, x, y, o.Permutations, r)
		if 3*len(boot) < o.Permutations {
			return NeutralPValue, nil
		}
		model := distuv.Normal{
			Mu:    stat.Mean(boot, nil),
			Sigma: stat.StdDev(boot, nil),
		}
		nullMean := stat.Mean(null, nil)
		if upper {
			return foldPValue(model.Survival(nullMean)), nil
		}

		return foldPValue(model.CDF(nullMean)), nil
	}

	if !isFinite(obs) {
		// Undefined observed statistic with a usable null: neutral rather
		// than a spurious extreme rank.
		return NeutralPValue, nil
	}

	var extreme int
	for _, s := range null {
		if (upper && s >= obs) || (!upper && s <= obs) {
			extreme++
		}
	}
	p := float64(extreme) / float64(len(null))

	return foldPValue(p), nil
}

// bootstrapDistribution draws n resamples-with-replacement of the sample
// positions shared by x and y, scoring the statistic on each resampled
// pair. Non-finite results are discarded.
func bootstrapDistribution(m Method, x, y []float64, n int, r *rand.Rand) []float64 {
	boot := make([]float64, 0, n)
	bx := make([]float64, len(x))
	by := make([]float64, len(y))
	for k := 0; k < n; k++ {
		for p := range bx {
			idx := r.IntN(len(x))
			bx[p] = x[idx]
			by[p] = y[idx] // same position in both rows keeps pairing intact
		}
		s, _ := Statistic(m, bx, by)
		if isFinite(s) {
			boot = append(boot, s)
		}
	}

	return boot
}

// foldPValue maps a raw one-sided p-value onto [0, 0.5]: non-finite values
// become NeutralPValue, values above 0.5 fold to 1−p, and tiny negative
// rounding artifacts clamp to 0.
func foldPValue(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return NeutralPValue
	}
	if p > 0.5 {
		p = 1 - p
	}
	if p < 0 {
		p = 0
	}

	return p
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
