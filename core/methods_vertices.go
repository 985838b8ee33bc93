// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle and queries: AddNode/HasNode/GetNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() yields nodes sorted by key ascending, for any insertion order.
// Policy:
//   - Duplicate keys are ignored (first payload is kept).
//   - There is no node removal.

package core

import "iter"

// AddNode inserts a node with an empty adjacency list.
// If key is already present the graph is unchanged and AddNode returns false.
//
// Complexity: O(log V).
func (g *Graph[K, V, E, W]) AddNode(key K, data V) bool {
	return g.nodes.Insert(key, &Node[K, V, E, W]{key: key, data: data})
}

// HasNode reports whether key is present.
// Complexity: O(log V).
func (g *Graph[K, V, E, W]) HasNode(key K) bool {
	_, ok := g.nodes.Find(key)

	return ok
}

// GetNode returns the node stored under key.
// The returned node is owned by the graph; its adjacency can only change through Graph methods.
// Complexity: O(log V).
func (g *Graph[K, V, E, W]) GetNode(key K) (*Node[K, V, E, W], bool) {
	return g.nodes.Find(key)
}

// Nodes yields all nodes in ascending key order.
// Complexity: O(V) per full enumeration.
func (g *Graph[K, V, E, W]) Nodes() iter.Seq[*Node[K, V, E, W]] {
	return g.nodes.Values()
}

// NodeCount returns the number of nodes.
func (g *Graph[K, V, E, W]) NodeCount() int { return g.nodes.Len() }
