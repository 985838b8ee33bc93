// Package dijkstra provides single-source, single-target shortest paths over a
// core.Graph whose weights follow any weight.Algebra (km, minutes, hop counts,
// lexicographic costs, ...).
//
// Overview:
//
//   - Dijkstra(g, start, end, opts...) returns a Result holding the predecessor
//     chain and the full distance table.
//   - Result.Path() walks the chain back from end to start; an unreachable end
//     is a normal result, not an error.
//   - WithExclusions(set) closes connections for one call without touching the graph,
//     so the same network can be queried under different closure scenarios.
//
// Algorithm:
//
//	dist[n] = Unreachable for every node; dist[start] = Zero
//	push (start, Zero)
//	while heap not empty:
//	    u = pop-min            // ties pop in push order
//	    if u == end: stop
//	    for each record u→v not excluded:
//	        c = Add(dist[u], w)
//	        if c < dist[v]: dist[v] = c; prev[v] = u; push (v, c)
//
// The heap never performs decrease-key; improved nodes are pushed again.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Concurrency: a search only reads the graph and the exclusion set. Several
// searches may run at once provided nothing mutates the graph meanwhile.
package dijkstra
