// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/UpdateEdge/HasEdge/
//       EdgesBetween/Connections/FindConnection/ConnectionCount.
// Determinism:
//   - Connections() walks nodes in key order and each adjacency list in insertion order.
// Policy:
//   - Missing endpoints turn every mutator into a no-op (never an error).
//   - Mutators touch both directions before returning; no caller ever observes
//     a half-applied update.

package core

import (
	"cmp"
	"iter"
)

// AddEdge appends mirrored adjacency records between from and to.
// It is a no-op if either endpoint is missing.
//
// Steps:
//  1. Lookup both endpoints.
//  2. Append from→to on from, then to→from on to.
//
// Parallel edges are kept (no dedup). A self-loop (from == to) stores both
// records on the same node; callers that do not want loops must reject them.
//
// Complexity: O(log V) amortized.
func (g *Graph[K, V, E, W]) AddEdge(from, to K, label E, w W) {
	src, ok := g.nodes.Find(from)
	if !ok {
		return
	}
	dst, ok := g.nodes.Find(to)
	if !ok {
		return
	}

	src.edges = append(src.edges, Edge[K, E, W]{To: to, Label: label, Weight: w})
	dst.edges = append(dst.edges, Edge[K, E, W]{To: from, Label: label, Weight: w})
}

// RemoveEdge deletes every record a→b and every record b→a.
// It reports whether anything was removed; unknown endpoints or a missing
// connection leave the graph untouched.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph[K, V, E, W]) RemoveEdge(a, b K) bool {
	na, ok := g.nodes.Find(a)
	if !ok {
		return false
	}
	nb, ok := g.nodes.Find(b)
	if !ok {
		return false
	}

	removed := na.dropTargets(b)
	if a != b {
		removed = nb.dropTargets(a) || removed
	}

	return removed
}

// dropTargets filters out every record pointing at key, in place.
func (n *Node[K, V, E, W]) dropTargets(key K) bool {
	kept := n.edges[:0]
	for _, e := range n.edges {
		if e.To != key {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(n.edges)
	// zero the tail so dropped labels can be collected
	clear(n.edges[len(kept):])
	n.edges = kept

	return removed
}

// UpdateEdge rewrites label and weight of the first a↔b connection, in both directions.
// It reports false (and changes nothing) when either endpoint or the connection is missing.
//
// The first a→b record and the first b→a record always form a mirrored pair,
// so this keeps the symmetry invariant. For a self-loop the first two records
// on the node are that pair.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph[K, V, E, W]) UpdateEdge(a, b K, label E, w W) bool {
	na, ok := g.nodes.Find(a)
	if !ok {
		return false
	}
	nb, ok := g.nodes.Find(b)
	if !ok {
		return false
	}

	i := na.indexOf(b, 0)
	if i < 0 {
		return false
	}
	var j int
	if a == b {
		j = na.indexOf(a, i+1)
	} else {
		j = nb.indexOf(a, 0)
	}
	if j < 0 {
		return false // unreachable while the symmetry invariant holds
	}

	na.edges[i].Label, na.edges[i].Weight = label, w
	nb.edges[j].Label, nb.edges[j].Weight = label, w

	return true
}

// indexOf returns the position of the first record at or after from pointing at key, or -1.
func (n *Node[K, V, E, W]) indexOf(key K, from int) int {
	for i := from; i < len(n.edges); i++ {
		if n.edges[i].To == key {
			return i
		}
	}

	return -1
}

// HasEdge reports whether at least one a↔b connection exists.
func (g *Graph[K, V, E, W]) HasEdge(a, b K) bool {
	na, ok := g.nodes.Find(a)

	return ok && na.indexOf(b, 0) >= 0
}

// EdgesBetween returns copies of the records a→b, in insertion order.
// For a self-loop each loop contributes two records.
func (g *Graph[K, V, E, W]) EdgesBetween(a, b K) []Edge[K, E, W] {
	na, ok := g.nodes.Find(a)
	if !ok {
		return nil
	}
	var out []Edge[K, E, W]
	for _, e := range na.edges {
		if e.To == b {
			out = append(out, e)
		}
	}

	return out
}

// Connections yields every undirected connection exactly once, smaller key first.
//
// Order: nodes ascending by key, then adjacency insertion order on the
// smaller endpoint. Self-loops yield once per record pair.
//
// Complexity: O(V + E) per full enumeration.
func (g *Graph[K, V, E, W]) Connections() iter.Seq[Connection[K, E, W]] {
	return func(yield func(Connection[K, E, W]) bool) {
		for n := range g.nodes.Values() {
			loops := 0
			for _, e := range n.edges {
				c := cmp.Compare(n.key, e.To)
				if c > 0 {
					continue
				}
				if c == 0 {
					loops++
					if loops%2 == 0 {
						continue // mirror record of the previous loop
					}
				}
				if !yield(Connection[K, E, W]{A: n.key, B: e.To, Label: e.Label, Weight: e.Weight}) {
					return
				}
			}
		}
	}
}

// ConnectionCount returns the number of undirected connections.
func (g *Graph[K, V, E, W]) ConnectionCount() int {
	count := 0
	for range g.Connections() {
		count++
	}

	return count
}

// FindConnection returns the first connection, in Connections() order, accepted by match.
func (g *Graph[K, V, E, W]) FindConnection(match func(Connection[K, E, W]) bool) (Connection[K, E, W], bool) {
	for c := range g.Connections() {
		if match(c) {
			return c, true
		}
	}

	return Connection[K, E, W]{}, false
}
