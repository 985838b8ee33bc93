package alternatives_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadnet/alternatives"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/weight"
)

// ExampleAlternatives lists travel-time detours between two stops.
func ExampleAlternatives() {
	g := core.NewGraph[int, struct{}, string, time.Duration](weight.Duration())
	for k := 1; k <= 4; k++ {
		g.AddNode(k, struct{}{})
	}
	g.AddEdge(1, 2, "tram", 4*time.Minute)
	g.AddEdge(2, 4, "tram", 3*time.Minute)
	g.AddEdge(1, 3, "bus", 5*time.Minute)
	g.AddEdge(3, 4, "bus", 5*time.Minute)
	g.AddEdge(1, 4, "walk", 25*time.Minute)

	routes, _ := alternatives.Alternatives(g, 1, 4)
	for _, r := range routes {
		fmt.Println(r.Path, r.Length)
	}

	closed := core.NewExclusionSet(core.MakePair(3, 4))
	routes, _ = alternatives.Alternatives(g, 1, 4, alternatives.WithExclusions(closed), alternatives.WithLimit[int](3))
	for _, r := range routes {
		fmt.Println(r.Path, r.Length)
	}

	// Output:
	// [1 2 4] 7m0s
	// [1 3 4] 10m0s
	// [1 2 4] 7m0s
	// [1 4] 25m0s
}
