// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Deterministic construction of a Network from symmetric matrices.
// Policy:
//   - Validation first, allocation second; a returned Network is complete.
//   - Only the upper triangle is read: symmetry is the matrices' contract.
package cooccur

import (
	"gonum.org/v1/gonum/mat"
)

// Build assembles a co-occurrence Network from a taxon list and two
// symmetric matrices indexed consistently with it: pairwise association
// statistics and their p-values.
//
// Implementation:
//   - Stage 1: Validate options, taxon list and matrix orders.
//   - Stage 2: Register nodes (all taxa when KeepIsolated, else lazily).
//   - Stage 3: Scan unordered pairs (i < j) once; admit an edge when
//     pvals(i,j) ≤ Alpha and |weights(i,j)| ≥ MinAbsWeight.
//
// Behavior highlights:
//   - Diagonal cells are never read: self-association is not an edge.
//   - The same *Edge is shared by both adjacency directions, so weight
//     and p-value lookups agree for (a,b) and (b,a) by construction.
//
// Inputs:
//   - taxa:    row/column identifiers, order matching both matrices.
//   - weights: t×t symmetric association statistics.
//   - pvals:   t×t symmetric p-values (raw or BH-adjusted — the caller
//     chooses what "significant" means by adjusting first).
//   - opts:    nil means DefaultOptions.
//
// Returns:
//   - *Network: fully formed, concurrent read-safe.
//
// Errors:
//   - ErrNoTaxa / ErrDuplicateTaxon — bad taxon list.
//   - ErrNilMatrix                  — either matrix is nil.
//   - ErrDimensionMismatch          — matrix order ≠ len(taxa).
//   - ErrBadAlpha / ErrBadWeightFloor — bad thresholds.
//
// Complexity:
//   - Time O(t²), Space O(V+E) for the resulting network.
func Build(taxa []string, weights, pvals *mat.SymDense, opts *Options) (*Network, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if o.Alpha <= 0 || o.Alpha > 1 {
		return nil, ErrBadAlpha
	}
	if o.MinAbsWeight < 0 {
		return nil, ErrBadWeightFloor
	}
	if len(taxa) == 0 {
		return nil, ErrNoTaxa
	}
	if weights == nil || pvals == nil {
		return nil, ErrNilMatrix
	}
	t := len(taxa)
	if wn, _ := weights.Dims(); wn != t {
		return nil, ErrDimensionMismatch
	}
	if pn, _ := pvals.Dims(); pn != t {
		return nil, ErrDimensionMismatch
	}
	seen := make(map[string]struct{}, t)
	for _, id := range taxa {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateTaxon
		}
		seen[id] = struct{}{}
	}

	n := &Network{
		nodes: make(map[string]struct{}, t),
		adj:   make(map[string]map[string]*Edge, t),
	}
	if o.KeepIsolated {
		for _, id := range taxa {
			n.nodes[id] = struct{}{}
		}
	}

	for i := 0; i < t; i++ {
		for j := i + 1; j < t; j++ {
			w := weights.At(i, j)
			p := pvals.At(i, j)
			if p > o.Alpha || abs(w) < o.MinAbsWeight {
				continue
			}
			a, b := taxa[i], taxa[j]
			if b < a {
				a, b = b, a // canonical endpoint order
			}
			e := &Edge{A: a, B: b, Weight: w, PValue: p}
			n.nodes[a] = struct{}{}
			n.nodes[b] = struct{}{}
			n.link(a, b, e)
			n.link(b, a, e)
			n.edgeCount++
		}
	}

	return n, nil
}

// link inserts the shared edge pointer into one adjacency direction.
func (n *Network) link(from, to string, e *Edge) {
	bucket, ok := n.adj[from]
	if !ok {
		bucket = make(map[string]*Edge)
		n.adj[from] = bucket
	}
	bucket[to] = e
}

// abs returns the absolute value of a float64.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
