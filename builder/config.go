// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin   = (100, 100)  top-left of the layout's bounding box
//   • spacing  = 80          distance between neighbouring vertices
//   • rng      = nil         pure/deterministic unless seeded

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	origin  orb.Point
	spacing float64
	rng     *rand.Rand
}

const (
	defaultOriginX = 100.0
	defaultOriginY = 100.0
	defaultSpacing = 80.0
	defaultRandomP = 0.35
)

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin:  orb.Point{defaultOriginX, defaultOriginY},
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns the origin shifted by (dx, dy).
func (c builderConfig) at(dx, dy float64) orb.Point {
	return orb.Point{c.origin.X() + dx, c.origin.Y() + dy}
}
