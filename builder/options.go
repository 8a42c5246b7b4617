// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithOrigin sets the top-left corner of the layout's bounding box.
// Panics on non-finite coordinates.
func WithOrigin(p orb.Point) BuilderOption {
	if math.IsNaN(p.X()) || math.IsNaN(p.Y()) || math.IsInf(p.X(), 0) || math.IsInf(p.Y(), 0) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) { c.origin = p }
}

// WithSpacing sets the distance between neighbouring vertices.
// Panics if s <= 0 or non-finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
