package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/weight"
)

// TestDijkstra_AgreesWithGonum cross-checks path lengths against gonum's
// independent Dijkstra on seeded random sparse graphs with random closures.
func TestDijkstra_AgreesWithGonum(t *testing.T) {
	r := rand.New(rand.NewSource(2024))

	for round := 0; round < 25; round++ {
		n := 5 + r.Intn(25)
		ours := core.NewGraph[string, struct{}, string, float64](weight.Float64())
		oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			ours.AddNode(key(i), struct{}{})
			oracle.AddNode(simple.Node(i))
		}

		closed := core.NewExclusionSet[string]()
		used := map[core.Pair[string]]bool{}
		for e := 0; e < 2*n; e++ {
			u, v := r.Intn(n), r.Intn(n)
			pair := core.MakePair(key(u), key(v))
			if u == v || used[pair] {
				continue // gonum's simple graph keeps one edge per pair
			}
			used[pair] = true
			w := float64(1 + r.Intn(20))
			ours.AddEdge(key(u), key(v), "", w)
			if r.Intn(6) == 0 {
				closed.Add(key(u), key(v))
				continue
			}
			oracle.SetWeightedEdge(oracle.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
		}

		shortest := path.DijkstraFrom(simple.Node(0), oracle)
		for target := 0; target < n; target++ {
			res, err := dijkstra.Dijkstra(ours, key(0), key(target), dijkstra.WithExclusions(closed))
			require.NoError(t, err)

			_, want := shortest.To(int64(target))
			got, ok := res.Length()
			if math.IsInf(want, 1) {
				require.False(t, ok, "round %d target %d: expected no path", round, target)
				continue
			}
			require.True(t, ok, "round %d target %d: expected a path", round, target)
			require.InDelta(t, want, got, 1e-9, "round %d target %d", round, target)

			// the reported path must be walkable and respect the closures
			p, _ := res.Path()
			require.Equal(t, key(0), p[0])
			require.Equal(t, key(target), p[len(p)-1])
			for i := 1; i < len(p); i++ {
				require.True(t, ours.HasEdge(p[i-1], p[i]))
				require.False(t, closed.Contains(p[i-1], p[i]))
			}
		}
	}
}

func key(i int) string { return "n" + strconv.Itoa(i) }
