// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (hops) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Skips connections listed in an exclusion set (WithExclusions).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Answer "what is still reachable with these roads closed" in O(V + E).
//   - Fewest-hop routes, independent of the weight algebra.
//
// Determinism
//
//	Adjacency lists keep insertion order and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |adjacency records|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "depot", bfs.WithExclusions(closed))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	if res.Reached("station") { ... }
package bfs
