// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_complete.go: Complete(n): every pair connected, vertices on a ring.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). n = 1 or 2 degrades to a point or segment.
//   • Edges in lexicographic (i,j) order with i < j.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		var pts []orb.Point
		switch n {
		case 1:
			pts = []orb.Point{cfg.origin}
		case 2:
			pts = []orb.Point{cfg.origin, cfg.at(cfg.spacing, 0)}
		default:
			_, pts = ring(cfg, n)
		}
		ids, err := addPoints(g, MethodComplete, pts)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
