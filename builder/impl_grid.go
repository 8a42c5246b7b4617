// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_grid.go: Grid(rows, cols): 4-neighbourhood lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices row-major; (r,c) at origin + (c·spacing, r·spacing).
//   • Edges row-major: for each (r,c) emit right then down.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		pts := make([]orb.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, cfg.at(float64(c)*cfg.spacing, float64(r)*cfg.spacing))
			}
		}
		ids, err := addPoints(g, MethodGrid, pts)
		if err != nil {
			return err
		}

		idx := func(r, c int) int { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = connect(g, MethodGrid, idx(r, c), idx(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(g, MethodGrid, idx(r, c), idx(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
