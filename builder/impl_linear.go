// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/network"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor for a single road through n places laid out
// on the x axis, one unit apart. Segments are named "Road i".
func Path(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			place(net, cfg.idFn(i), float64(i), 0)
		}
		for i := 0; i+1 < n; i++ {
			connect(net, cfg, cfg.idFn(i), cfg.idFn(i+1), fmt.Sprintf("Road %d", i))
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring road: n places on a circle whose
// circumference is n, so neighbours sit roughly one unit apart.
// Segments are named "Ring i"; the last one closes the loop.
func Cycle(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		radius := float64(n) / (2 * math.Pi)
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			place(net, cfg.idFn(i), radius*math.Cos(angle), radius*math.Sin(angle))
		}
		for i := 0; i < n; i++ {
			connect(net, cfg, cfg.idFn(i), cfg.idFn((i+1)%n), fmt.Sprintf("Ring %d", i))
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0, at the origin) with n-1
// spokes to places on the unit circle. Spokes are named "Spoke i".
func Star(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		place(net, hub, 0, 0)
		spokes := n - 1
		for i := 1; i < n; i++ {
			angle := 2 * math.Pi * float64(i-1) / float64(spokes)
			place(net, cfg.idFn(i), math.Cos(angle), math.Sin(angle))
			connect(net, cfg, hub, cfg.idFn(i), fmt.Sprintf("Spoke %d", i))
		}

		return nil
	}
}
