// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_cycle.go: Cycle(n): n vertices on a circle, neighbours connected.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertex 0 at the top, then clockwise in screen coordinates.
//   • Edges i → (i+1)%n for i = 0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bocafinder/core"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		_, pts := ring(cfg, n)
		ids, err := addPoints(g, MethodCycle, pts)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = connect(g, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
