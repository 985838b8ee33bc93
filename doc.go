// SPDX-License-Identifier: MIT

// Package roadnet is an in-memory road network engine: places connected by
// named, weighted, undirected roads, shortest and alternative routes that
// avoid closed roads, and a plain-text file format to keep it all in.
//
// The module is organized in small packages:
//
//	weight/       — the weight algebra (zero, unreachable, add, compare) and numeric instances
//	core/         — ordered key store, generic Graph with mirrored adjacency records, ExclusionSet
//	dijkstra/     — single-pair shortest path honoring an exclusion set
//	alternatives/ — a handful of distinct detours by removing one route edge at a time
//	bfs/          — hop-count reachability under closures
//	network/      — the concrete road network (orb.Point positions, float64 costs) and its text codec
//	cmd/roadnet/  — command-line editor over a network file
//
// Quick start:
//
//	net := network.New()
//	net.AddNode("a", orb.Point{0, 0})
//	net.AddNode("b", orb.Point{1, 0})
//	net.AddNode("c", orb.Point{1, 1})
//	net.AddEdge("a", "b", "Main St", 5)
//	net.AddEdge("b", "c", "Quay", 3)
//	net.AddEdge("a", "c", "Bypass", 10)
//
//	blocked := network.NewBlocked()
//	route, ok, err := network.ShortestRoute(net, "a", "c", blocked) // [a b c], 8
//
// Graphs are single-writer: no operation locks, and searches only read.
// Callers that share a Graph between goroutines serialize access themselves.
package roadnet
