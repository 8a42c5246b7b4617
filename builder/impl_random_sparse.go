// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// impl_random_sparse.go: RandomSparse(n, p): random positions, Erdős–Rényi edges.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource); positions always draw from it.
//   • Positions are jittered grid points: n distinct cells of a ⌈√n⌉×⌈√n⌉ grid
//     of side spacing, each point uniform in the central half of its cell.
//     Any two points are therefore at least spacing/2 apart.
//   • Edge trials in (i asc, j asc, j > i) order.
//
// Determinism: identical for a fixed seed because draw order is fixed.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
)

const (
	probMin = 0.0
	probMax = 1.0

	// A point stays within [jitterLo, jitterLo+jitterSpan) of its cell, in cell units.
	jitterLo   = 0.25
	jitterSpan = 0.5
)

// RandomSparse returns a Constructor that samples n random points and joins
// each pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate: size, probability, RNG.
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Positions: one jittered point per chosen cell.
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		cells := rng.Perm(cols * cols)[:n]
		pts := make([]orb.Point, n)
		for i, c := range cells {
			dx := (float64(c%cols) + jitterLo + jitterSpan*rng.Float64()) * cfg.spacing
			dy := (float64(c/cols) + jitterLo + jitterSpan*rng.Float64()) * cfg.spacing
			pts[i] = cfg.at(dx, dy)
		}
		ids, err := addPoints(g, MethodRandomSparse, pts)
		if err != nil {
			return err
		}

		// 3) Bernoulli trials over unordered pairs.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err = connect(g, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
