// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_star.go: Star(n): a hub with n-1 leaves at distance spacing.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is added first, then the leaves clockwise from the top.
//   • Edges hub-leaf in leaf order.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		leaves := n - 1
		hub := cfg.at(cfg.spacing, cfg.spacing)
		pts := make([]orb.Point, 0, n)
		pts = append(pts, hub)
		for i := 0; i < leaves; i++ {
			theta := 2*math.Pi*float64(i)/float64(leaves) - math.Pi/2
			pts = append(pts, orb.Point{
				hub.X() + cfg.spacing*math.Cos(theta),
				hub.Y() + cfg.spacing*math.Sin(theta),
			})
		}
		ids, err := addPoints(g, MethodStar, pts)
		if err != nil {
			return err
		}

		for _, leaf := range ids[1:] {
			if err = connect(g, MethodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
