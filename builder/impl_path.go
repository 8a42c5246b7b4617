// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_path.go: Path(n): n vertices on a horizontal line.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex i at origin + (i·spacing, 0).
//   • Edges i-i+1 in ascending i.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = cfg.at(float64(i)*cfg.spacing, 0)
		}
		ids, err := addPoints(g, MethodPath, pts)
		if err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			if err = connect(g, MethodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
