// SPDX-License-Identifier: MIT
//
// Package cooccur builds significance-filtered co-occurrence networks from
// association and p-value matrices, and provides thread-safe primitives
// for querying them.
//
// 🚀 What is a co-occurrence network?
//
//	Each taxon becomes a vertex; an undirected edge joins two taxa when
//	their association survived the significance screen:
//
//	  keep (i, j)  ⇔  p(i,j) ≤ Alpha  ∧  |stat(i,j)| ≥ MinAbsWeight
//
//	Edges carry the association statistic as a float64 weight together
//	with the p-value that admitted them, so downstream steps (enrichment,
//	reporting) never need the original matrices again.
//
// ✨ Key features:
//   - deterministic construction from symmetric gonum matrices
//   - R/W-locked queries: Degree, Neighbors, Edges, Components, Density
//     are safe to call from concurrent readers
//   - canonical edge identity: endpoints are stored in lexicographic
//     order, so (A,B) and (B,A) are one edge
//   - sorted outputs everywhere — results are reproducible run to run
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxonet/cooccur"
//
//	opts := cooccur.DefaultOptions() // Alpha: 0.05
//	net, err := cooccur.Build(taxa, stats, pvals, &opts)
//	for _, e := range net.Edges() {
//	    fmt.Println(e.A, e.B, e.Weight, e.PValue)
//	}
//
// Complexity: Build is O(t²) over the matrix cells; queries are O(1) to
// O(V+E) as documented per method.
package cooccur
