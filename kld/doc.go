// Package kld computes symmetric Kullback-Leibler (KL) divergences between
// per-taxon count vectors, the dissimilarity measure used by co-occurrence
// analyses of amplicon data.
//
// 🚀 What is symmetric KL divergence?
//
//	KL divergence measures how one probability distribution differs from
//	another.  The symmetric form used here sums both directions:
//
//	  D(x, y) = Σᵢ  x[i]·ln(x[i]/y[i]) + y[i]·ln(y[i]/x[i])
//
//	Each raw count vector is first made strictly positive (zero entries are
//	replaced by a small pseudocount) and normalized by its own sum, so the
//	inputs are compared as probability distributions over samples.  Raw
//	magnitude therefore never matters: D(2·x, x) == 0 exactly.
//
// ✨ Key guarantees:
//   - D(x, x) == 0 exactly (not merely near zero)
//   - D(x, y) == D(y, x) exactly (both directions summed once)
//   - scale invariance: vectors proportional after pseudocount substitution
//     diverge by exactly zero
//   - degenerate terms (NaN ratios from pathological input) contribute zero
//     instead of poisoning the sum — availability over strictness
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxonet/kld"
//
//	opts := kld.DefaultOptions()          // Pseudocount: 1e-8
//	d, err := kld.Divergence(x, y, &opts) // one pair
//	M, err := kld.DivergenceMatrix(rows, &opts) // all pairs, symmetric
//
// Performance:
//
//   - Divergence:       O(n) time, O(n) scratch memory
//   - DivergenceMatrix: O(t²·n) time for t taxa of n samples each,
//     triangular evaluation (each unordered pair computed once)
//
// See examples in example_test.go for concrete walkthroughs.
package kld
