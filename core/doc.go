// Package core provides the in-memory road graph: an ordered node catalog,
// mirrored adjacency lists, and the exclusion set that searches honor.
//
// The Graph G = (V,E) is:
//
//   - Undirected by construction – every AddEdge writes a→b and b→a records.
//   - A multigraph – parallel connections between the same pair are kept.
//   - Loop-tolerant – self-loops are stored; callers reject them if undesired.
//   - Generic – Graph[K, V, E, W] over key, payload, label and weight types,
//     with the weight domain described by a weight.Algebra.
//   - Deterministic – Nodes() is ascending by key (a tidwall/btree B-tree),
//     adjacency lists keep insertion order.
//
// Core Methods:
//
//	// Node lifecycle (no removal)
//	AddNode(key K, data V) bool           // O(log V), first write wins
//	HasNode(key K) bool                   // O(log V)
//	GetNode(key K) (*Node, bool)          // O(log V)
//	Nodes() iter.Seq[*Node]               // O(V), ascending keys
//
//	// Edge lifecycle
//	AddEdge(a, b K, label E, w W)         // no-op on unknown endpoint
//	RemoveEdge(a, b K) bool               // drops all a↔b records
//	UpdateEdge(a, b K, label E, w W) bool // rewrites the first a↔b pair
//
//	// Queries
//	HasEdge, EdgesBetween, Connections, ConnectionCount, FindConnection
//
// Exclusions:
//
//	ExclusionSet[K] is a set of unordered pairs owned by the caller and passed
//	into each search call; Contains(a,b) == Contains(b,a).
//
// Not-found conditions are plain "absent" results: mutators silently no-op,
// queries return false/empty. There are no error returns in this package.
//
// Concurrency: none internally. A Graph is a single-writer structure; searches
// only read it and may run in parallel while nothing mutates the graph.
package core
