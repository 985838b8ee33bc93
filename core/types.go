// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Connection and Graph declarations plus the NewGraph constructor.
// Invariants:
//   - Every adjacency record a→b has a mirror b→a with identical label and weight.
//   - The i-th a→b record mirrors the i-th b→a record (records are appended and
//     removed in pairs). A self-loop keeps both of its records on the same node.
//   - Node payloads are fixed at creation.

package core

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/roadnet/weight"
)

// Edge is one directed adjacency record stored on its source node.
// A logical connection between A and B is two records: one on A (To=B) and one on B (To=A).
type Edge[K cmp.Ordered, E, W any] struct {
	// To is the key of the node this record points at.
	To K

	// Label is opaque caller data (e.g. a road name).
	Label E

	// Weight is the traversal cost in the graph's weight algebra.
	Weight W
}

// Node is a keyed location with an opaque payload and its adjacency list.
type Node[K cmp.Ordered, V, E, W any] struct {
	key   K
	data  V
	edges []Edge[K, E, W]
}

// Key returns the node's unique key.
func (n *Node[K, V, E, W]) Key() K { return n.key }

// Data returns the payload supplied to AddNode.
func (n *Node[K, V, E, W]) Data() V { return n.data }

// Degree returns the number of adjacency records on the node.
func (n *Node[K, V, E, W]) Degree() int { return len(n.edges) }

// Edges returns a copy of the adjacency list in insertion order.
func (n *Node[K, V, E, W]) Edges() []Edge[K, E, W] {
	out := make([]Edge[K, E, W], len(n.edges))
	copy(out, n.edges)

	return out
}

// Adjacent yields the adjacency records in insertion order without copying the list.
func (n *Node[K, V, E, W]) Adjacent() iter.Seq[Edge[K, E, W]] {
	return func(yield func(Edge[K, E, W]) bool) {
		for _, e := range n.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Connection is one undirected link as seen from outside the adjacency lists.
// A is never greater than B.
type Connection[K cmp.Ordered, E, W any] struct {
	A, B   K
	Label  E
	Weight W
}

// Graph is an undirected, weighted multigraph keyed by K.
//
// V is the node payload, E the edge label and W the weight domain
// described by the Algebra passed to NewGraph.
//
// Graph performs no internal locking: it is a single-writer structure.
// Concurrent searches are safe only while no mutation runs.
type Graph[K cmp.Ordered, V, E, W any] struct {
	alg   weight.Algebra[W]
	nodes *OrderedStore[K, *Node[K, V, E, W]]
}

// NewGraph creates an empty graph whose weights follow alg.
// Complexity: O(1)
func NewGraph[K cmp.Ordered, V, E, W any](alg weight.Algebra[W]) *Graph[K, V, E, W] {
	return &Graph[K, V, E, W]{
		alg:   alg,
		nodes: NewOrderedStore[K, *Node[K, V, E, W]](),
	}
}

// Algebra returns the weight algebra the graph was built with.
func (g *Graph[K, V, E, W]) Algebra() weight.Algebra[W] { return g.alg }
