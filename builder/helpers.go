// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// helpers.go: shared emission helpers for impl_*.go.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

// addPoints inserts pts in order and returns their vertex IDs.
func addPoints(g *core.Graph, method string, pts []orb.Point) ([]int, error) {
	ids := make([]int, len(pts))
	for i, p := range pts {
		id, err := g.AddVertex(p)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%v): %w", method, p, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds the edge {u,v}; duplicates are silently accepted by core.
func connect(g *core.Graph, method string, u, v int) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// ring returns n points evenly spaced on a circle whose chord between
// neighbours equals spacing. The circle's bounding box starts at cfg.origin.
func ring(cfg builderConfig, n int) (center orb.Point, pts []orb.Point) {
	r := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))
	center = cfg.at(r, r)
	pts = make([]orb.Point, n)
	for i := range pts {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = orb.Point{center.X() + r*math.Cos(theta), center.Y() + r*math.Sin(theta)}
	}

	return center, pts
}
