// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/network"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor for n places scattered uniformly over
// an n×n square, with each unordered pair joined by a road with probability p.
// Roads are named "Link i-j".
//
// Requires an RNG (WithSeed or WithRand). Pair order is i<j ascending, so
// the result is reproducible for a fixed seed.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := float64(n)
		for i := 0; i < n; i++ {
			place(net, cfg.idFn(i), cfg.rng.Float64()*side, cfg.rng.Float64()*side)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					connect(net, cfg, cfg.idFn(i), cfg.idFn(j), fmt.Sprintf("Link %d-%d", i, j))
				}
			}
		}

		return nil
	}
}
