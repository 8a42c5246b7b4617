// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_wheel.go: Wheel(n): a ring of n-1 vertices plus a hub at its center.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Ring vertices first (as Cycle(n-1)), the hub last.
//   • Ring edges first, then spokes hub-ring[i] in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bocafinder/core"
)

// Wheel returns a Constructor that builds a wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		k := n - 1
		center, pts := ring(cfg, k)
		ids, err := addPoints(g, MethodWheel, append(pts, center))
		if err != nil {
			return err
		}
		hub := ids[k]

		for i := 0; i < k; i++ {
			if err = connect(g, MethodWheel, ids[i], ids[(i+1)%k]); err != nil {
				return err
			}
		}
		for i := 0; i < k; i++ {
			if err = connect(g, MethodWheel, hub, ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
