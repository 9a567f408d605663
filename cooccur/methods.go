// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a built Network.
// Policy:
//   - Every method takes the read lock; Build is the only writer and has
//     already returned, so readers never block each other.
//   - Every slice result is freshly allocated and sorted: callers can
//     mutate results freely and diff runs byte for byte.
package cooccur

import "sort"

// Order returns the number of member taxa.
// Complexity: O(1).
func (n *Network) Order() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// Size returns the number of undirected edges.
// Complexity: O(1).
func (n *Network) Size() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edgeCount
}

// Taxa returns the member taxa in lexicographic order.
// Complexity: O(V log V).
func (n *Network) Taxa() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Has reports whether the taxon is a member of the network.
// Complexity: O(1).
func (n *Network) Has(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.nodes[id]

	return ok
}

// HasEdge reports whether an edge joins the two taxa, in either order.
// Complexity: O(1).
func (n *Network) HasEdge(a, b string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.adj[a][b]

	return ok
}

// EdgeBetween returns the edge joining two taxa, in either order.
//
// Errors:
//   - ErrTaxonNotFound — either endpoint is not a member.
//
// A (zero Edge, nil) result means both taxa are members but not joined.
// Complexity: O(1).
func (n *Network) EdgeBetween(a, b string) (Edge, bool, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.nodes[a]; !ok {
		return Edge{}, false, ErrTaxonNotFound
	}
	if _, ok := n.nodes[b]; !ok {
		return Edge{}, false, ErrTaxonNotFound
	}
	e, ok := n.adj[a][b]
	if !ok {
		return Edge{}, false, nil
	}

	return *e, true, nil
}

// Degree returns the number of edges incident to the taxon.
//
// Errors:
//   - ErrTaxonNotFound — id is not a member.
//
// Complexity: O(1).
func (n *Network) Degree(id string) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.nodes[id]; !ok {
		return 0, ErrTaxonNotFound
	}

	return len(n.adj[id]), nil
}

// Neighbors returns the taxa adjacent to id, lexicographically sorted.
//
// Errors:
//   - ErrTaxonNotFound — id is not a member.
//
// Complexity: O(d log d) for degree d.
func (n *Network) Neighbors(id string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.nodes[id]; !ok {
		return nil, ErrTaxonNotFound
	}
	out := make([]string, 0, len(n.adj[id]))
	for nb := range n.adj[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Edges returns every undirected edge once, sorted by endpoints (A, B).
// Complexity: O(E log E).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Edge, 0, n.edgeCount)
	for from, bucket := range n.adj {
		for to, e := range bucket {
			if from < to { // emit each shared edge exactly once
				out = append(out, *e)
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].A != out[b].A {
			return out[a].A < out[b].A
		}

		return out[a].B < out[b].B
	})

	return out
}

// EndpointPairs returns the edge endpoints as [2]string pairs in the same
// order as Edges — the shape the enrichment tests consume.
// Complexity: O(E log E).
func (n *Network) EndpointPairs() [][2]string {
	edges := n.Edges()
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{e.A, e.B}
	}

	return out
}

// Density returns 2E / (V·(V−1)), the fraction of possible edges present.
// Networks with fewer than two nodes have density 0.
// Complexity: O(1).
func (n *Network) Density() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	v := len(n.nodes)
	if v < 2 {
		return 0
	}

	return 2 * float64(n.edgeCount) / (float64(v) * float64(v-1))
}

// Components returns the connected components as sorted taxon slices,
// ordered by each component's first member. Isolated members form
// singleton components.
// Complexity: O(V + E) traversal plus sorting.
func (n *Network) Components() [][]string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	visited := make(map[string]struct{}, len(n.nodes))
	var comps [][]string
	for id := range n.nodes {
		if _, done := visited[id]; done {
			continue
		}
		// Breadth-first sweep from id.
		comp := []string{}
		queue := []string{id}
		visited[id] = struct{}{}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for nb := range n.adj[cur] {
				if _, done := visited[nb]; !done {
					visited[nb] = struct{}{}
					queue = append(queue, nb)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(a, b int) bool { return comps[a][0] < comps[b][0] })

	return comps
}
