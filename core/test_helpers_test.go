// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for roadnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Centralize the mirror-symmetry check every mutation test ends with.

package core_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/weight"
)

// Common node keys used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"

	NodeMissing = "zz"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight3  = 3.0
	Weight5  = 5.0
	Weight7  = 7.0
	Weight10 = 10.0
)

// pos is the payload type used by the fixtures.
type pos struct{ X, Y float64 }

// testGraph is the concrete instantiation exercised by most tests.
type testGraph = core.Graph[string, pos, string, float64]

// NewTriangle RETURNS the a–b(5), b–c(3), a–c(10) fixture.
func NewTriangle() *testGraph {
	g := core.NewGraph[string, pos, string, float64](weight.Float64())
	g.AddNode(NodeA, pos{0, 0})
	g.AddNode(NodeB, pos{1, 0})
	g.AddNode(NodeC, pos{1, 1})
	g.AddEdge(NodeA, NodeB, "ab", Weight5)
	g.AddEdge(NodeB, NodeC, "bc", Weight3)
	g.AddEdge(NodeA, NodeC, "ac", Weight10)

	return g
}

// record is a comparable flattening of an adjacency record.
type record struct {
	From, To string
	Label    string
	Weight   float64
}

// MustBeSymmetric FAILS the test unless every a→b record has a b→a twin.
//
// Implementation:
//   - Stage 1: Collect all records as (from,to,label,weight), count multiplicities.
//   - Stage 2: For every record, require the same multiplicity for its mirror.
//
// Self-loops are their own mirror; their count must be even.
func MustBeSymmetric(t *testing.T, g *testGraph) {
	t.Helper()

	counts := map[record]int{}
	for n := range g.Nodes() {
		for e := range n.Adjacent() {
			counts[record{n.Key(), e.To, e.Label, e.Weight}]++
		}
	}
	for r, c := range counts {
		if r.From == r.To {
			if c%2 != 0 {
				t.Fatalf("self-loop %v has odd record count %d", r, c)
			}
			continue
		}
		m := record{r.To, r.From, r.Label, r.Weight}
		if counts[m] != c {
			t.Fatalf("record %v x%d has mirror x%d", r, c, counts[m])
		}
	}
}

// Keys RETURNS the node keys in enumeration order.
func Keys(g *testGraph) []string {
	var out []string
	for n := range g.Nodes() {
		out = append(out, n.Key())
	}

	return out
}

// Targets RETURNS the sorted targets of key's adjacency list.
func Targets(t *testing.T, g *testGraph, key string) []string {
	t.Helper()

	n, ok := g.GetNode(key)
	if !ok {
		t.Fatalf("GetNode(%q): missing", key)
	}
	var out []string
	for e := range n.Adjacent() {
		out = append(out, e.To)
	}
	sort.Strings(out)

	return out
}
