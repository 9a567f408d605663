// Package enrich tests taxonomic labels for over- and under-representation
// among selected taxa and among network edges.
//
// 🚀 What is label enrichment?
//
//	After a co-occurrence screen selects a subset of taxa (say, the members
//	of a network module), a natural question is whether some taxonomic
//	label — a phylum, a genus — appears in that subset more or less often
//	than chance predicts:
//
//	  Nodes: the label count among selected taxa follows a hypergeometric
//	         distribution under random selection from the labeled universe.
//	  Edges: the count of edges joining a given label pair follows a
//	         binomial distribution under independent endpoint label draws.
//
//	Both directions are reported: POver (at least the observed count) and
//	PUnder (at most the observed count), so callers pick the tail that
//	matches their hypothesis.
//
// ✨ Key features:
//   - exact hypergeometric tails from log-binomial coefficients, stable
//     for large universes
//   - binomial edge tails with expectations from empirical label frequencies
//   - deterministic, label-sorted output — results diff cleanly run to run
//   - sentinel-error validation: unknown taxa and empty inputs fail fast
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/taxonet/enrich"
//
//	results, err := enrich.Nodes(labels, net.Taxa(), nil)
//	for _, r := range results {
//	    fmt.Println(r.Label, r.Selected, r.POver, r.PUnder)
//	}
//
// Complexity: Nodes is O(U + L·n) over universe size U, label count L and
// selection size n; Edges is O(E + L²·E) in the worst case.
package enrich
