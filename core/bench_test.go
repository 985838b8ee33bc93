// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/weight"
)

// star returns a hub "root" connected to n leaves.
func star(n int) *testGraph {
	g := core.NewGraph[string, pos, string, float64](weight.Float64())
	g.AddNode("root", pos{})
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("n%d", i)
		g.AddNode(key, pos{X: float64(i)})
		g.AddEdge("root", key, key, float64(i))
	}

	return g
}

// BenchmarkAddNode measures ordered insertion into the key store.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph[string, pos, string, float64](weight.Float64())
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = fmt.Sprintf("n%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddNode(keys[i], pos{})
	}
}

// BenchmarkAddEdge_Parallel measures appending mirrored records between one pair.
func BenchmarkAddEdge_Parallel(b *testing.B) {
	g := core.NewGraph[string, pos, string, float64](weight.Float64())
	g.AddNode(NodeA, pos{})
	g.AddNode(NodeB, pos{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(NodeA, NodeB, "ab", float64(i))
	}
}

// BenchmarkAdjacent measures iterating a 1000-record adjacency list.
func BenchmarkAdjacent(b *testing.B) {
	root, _ := star(1000).GetNode("root")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range root.Adjacent() {
		}
	}
}

// BenchmarkConnections measures one full enumeration of a 1000-leaf star.
func BenchmarkConnections(b *testing.B) {
	g := star(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.Connections() {
		}
	}
}

// BenchmarkRemoveEdge measures dropping and restoring one connection on a busy hub.
func BenchmarkRemoveEdge(b *testing.B) {
	g := star(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RemoveEdge("root", "n500")
		g.AddEdge("root", "n500", "n500", 500)
	}
}
