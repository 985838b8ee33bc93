// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/network"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// Grid returns a Constructor for a rows×cols city block layout.
//
// Keys are "r,c" regardless of WithIDScheme; place (r,c) sits at x=c, y=r.
// Streets run right and down from each crossing: horizontal ones are named
// "Row r", vertical ones "Col c".
//
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				place(net, fmt.Sprintf(gridIDFmt, r, c), float64(c), float64(r))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					connect(net, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1), fmt.Sprintf("Row %d", r))
				}
				if r+1 < rows {
					connect(net, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c), fmt.Sprintf("Col %d", c))
				}
			}
		}

		return nil
	}
}
