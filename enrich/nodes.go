// File: nodes.go
// Role: Hypergeometric node enrichment.
// Policy:
//   - Tails are exact sums of the hypergeometric mass, assembled from
//     log-binomial coefficients so large universes do not overflow.
//   - Output is sorted by label; the caller can diff runs directly.
package enrich

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// Nodes tests every taxonomic label for over- and under-representation
// among the selected taxa.
//
// Implementation:
//   - Stage 1: Validate the label map, options, and selection membership.
//   - Stage 2: Count each label in the universe and in the selection
//     (duplicate selected taxa are counted once — set semantics).
//   - Stage 3: For each label, sum the hypergeometric tails around the
//     observed count.
//
// Behavior highlights:
//   - The universe is exactly the key set of labels; unlabeled taxa must
//     not appear in selected (ErrUnknownTaxon).
//   - POver and PUnder both include the observed count, so they overlap
//     at the point mass and each lies in [0, 1].
//
// Inputs:
//   - labels:   taxon → label for the whole universe.
//   - selected: the taxa under test (order and duplicates ignored).
//   - opts:     nil means DefaultOptions.
//
// Returns:
//   - []Result sorted by Label, one row per reported label.
//
// Errors:
//   - ErrNoLabels        — labels is empty.
//   - ErrUnknownTaxon    — a selected taxon is missing from labels.
//   - ErrBadMinLabelSize — MinLabelSize < 1.
//
// Complexity: O(U + L·n) for universe U, labels L, selection n.
func Nodes(labels map[string]string, selected []string, opts *Options) ([]Result, error) {
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

	universe := len(labels)
	labelTotal := make(map[string]int, 8)
	for _, lb := range labels {
		labelTotal[lb]++
	}

	picked := make(map[string]struct{}, len(selected))
	labelSelected := make(map[string]int, len(labelTotal))
	for _, id := range selected {
		lb, ok := labels[id]
		if !ok {
			return nil, ErrUnknownTaxon
		}
		if _, dup := picked[id]; dup {
			continue
		}
		picked[id] = struct{}{}
		labelSelected[lb]++
	}
	n := len(picked)

	out := make([]Result, 0, len(labelTotal))
	for lb, total := range labelTotal {
		if total < o.MinLabelSize {
			continue
		}
		k := labelSelected[lb]
		out = append(out, Result{
			Label:         lb,
			Selected:      k,
			LabelTotal:    total,
			SelectionSize: n,
			UniverseSize:  universe,
			Expected:      float64(n) * float64(total) / float64(universe),
			POver:         hyperUpperTail(universe, total, n, k),
			PUnder:        hyperLowerTail(universe, total, n, k),
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Label < out[b].Label })

	return out, nil
}

// hyperUpperTail returns P(X ≥ k) for X ~ Hypergeometric(N, K, n).
func hyperUpperTail(N, K, n, k int) float64 {
	hi := n
	if K < hi {
		hi = K
	}
	p := 0.0
	for x := k; x <= hi; x++ {
		p += hyperProb(N, K, n, x)
	}

	return clampUnit(p)
}

// hyperLowerTail returns P(X ≤ k) for X ~ Hypergeometric(N, K, n).
func hyperLowerTail(N, K, n, k int) float64 {
	lo := n - (N - K)
	if lo < 0 {
		lo = 0
	}
	p := 0.0
	for x := lo; x <= k; x++ {
		p += hyperProb(N, K, n, x)
	}

	return clampUnit(p)
}

// hyperProb returns P(X = x) = C(K,x)·C(N−K,n−x)/C(N,n), evaluated in log
// space. Out-of-support x yields 0; the support guard also keeps every
// coefficient inside combin's k ≤ n domain.
func hyperProb(N, K, n, x int) float64 {
	if x < 0 || x > n || x > K || n-x > N-K {
		return 0
	}

	return math.Exp(combin.LogGeneralizedBinomial(float64(K), float64(x)) +
		combin.LogGeneralizedBinomial(float64(N-K), float64(n-x)) -
		combin.LogGeneralizedBinomial(float64(N), float64(n)))
}

// clampUnit folds accumulated rounding error back into [0, 1].
func clampUnit(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}

	return p
}
