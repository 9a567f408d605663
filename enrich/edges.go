// File: edges.go
// Role: Binomial edge enrichment over unordered label pairs.
// Policy:
//   - The null model draws both endpoints independently from the
//     empirical label frequencies, so an edge joins labels {a, b} with
//     probability f(a)² when a = b and 2·f(a)·f(b) otherwise.
//   - Tails are sums of the binomial mass (gonum distuv.Binomial.Prob).
package enrich

import (
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Edges tests each observed unordered label pair for over- and
// under-representation among the given edges.
//
// Implementation:
//   - Stage 1: Validate the label map, options, and endpoint membership.
//   - Stage 2: Tally observed label pairs (canonical order LabelA ≤ LabelB)
//     and label frequencies over the labeled universe.
//   - Stage 3: For each observed pair, compare the count against
//     Binomial(len(pairs), pairProbability).
//
// Behavior highlights:
//   - Only label pairs with at least one observed edge are reported;
//     absent pairs carry no evidence the caller could not derive.
//   - Expected = len(pairs) · pairProbability.
//
// Inputs:
//   - labels: taxon → label for the whole universe.
//   - pairs:  undirected edges as endpoint pairs (order within a pair is
//     irrelevant).
//   - opts:   nil means DefaultOptions.
//
// Returns:
//   - []PairResult sorted by (LabelA, LabelB).
//
// Errors:
//   - ErrNoLabels        — labels is empty.
//   - ErrNoPairs         — pairs is empty.
//   - ErrUnknownTaxon    — an endpoint is missing from labels.
//   - ErrBadMinLabelSize — MinLabelSize < 1.
//
// Complexity: O(U + E log E) for universe U and edge count E.
func Edges(labels map[string]string, pairs [][2]string, opts *Options) ([]PairResult, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MinLabelSize < 1 {
		return nil, ErrBadMinLabelSize
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	universe := float64(len(labels))
	labelTotal := make(map[string]int, 8)
	for _, lb := range labels {
		labelTotal[lb]++
	}

	type labelPair struct{ a, b string }
	observed := make(map[labelPair]int, len(pairs))
	for _, pr := range pairs {
		la, ok := labels[pr[0]]
		if !ok {
			return nil, ErrUnknownTaxon
		}
		lb, ok := labels[pr[1]]
		if !ok {
			return nil, ErrUnknownTaxon
		}
		if lb < la {
			la, lb = lb, la
		}
		observed[labelPair{la, lb}]++
	}

	m := len(pairs)
	out := make([]PairResult, 0, len(observed))
	for lp, count := range observed {
		if labelTotal[lp.a] < o.MinLabelSize || labelTotal[lp.b] < o.MinLabelSize {
			continue
		}
		fa := float64(labelTotal[lp.a]) / universe
		fb := float64(labelTotal[lp.b]) / universe
		q := fa * fb
		if lp.a != lp.b {
			q = 2 * fa * fb
		}
		out = append(out, PairResult{
			LabelA:   lp.a,
			LabelB:   lp.b,
			Observed: count,
			Expected: float64(m) * q,
			POver:    binomUpperTail(m, q, count),
			PUnder:   binomLowerTail(m, q, count),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].LabelA != out[b].LabelA {
			return out[a].LabelA < out[b].LabelA
		}

		return out[a].LabelB < out[b].LabelB
	})

	return out, nil
}

// binomUpperTail returns P(X ≥ k) for X ~ Binomial(m, q).
func binomUpperTail(m int, q float64, k int) float64 {
	dist := distuv.Binomial{N: float64(m), P: q}
	p := 0.0
	for x := k; x <= m; x++ {
		p += dist.Prob(float64(x))
	}

	return clampUnit(p)
}

// binomLowerTail returns P(X ≤ k) for X ~ Binomial(m, q).
func binomLowerTail(m int, q float64, k int) float64 {
	dist := distuv.Binomial{N: float64(m), P: q}
	p := 0.0
	for x := 0; x <= k; x++ {
		p += dist.Prob(float64(x))
	}

	return clampUnit(p)
}
