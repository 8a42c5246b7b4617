// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go; each appends to whatever g already holds,
//     so several layouts can be composed side by side with WithOrigin.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bocafinder/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. one owned by a session
// that is still in its drawing phase.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Layout names accepted by ByName.
const (
	LayoutPath     = "path"
	LayoutCycle    = "cycle"
	LayoutStar     = "star"
	LayoutWheel    = "wheel"
	LayoutGrid     = "grid"
	LayoutComplete = "complete"
	LayoutRandom   = "random"
)

// ByName returns the constructor for a named layout of n vertices.
// For LayoutGrid, n is the side length (n×n). LayoutRandom uses edge probability 0.35.
func ByName(name string, n int) (Constructor, error) {
	switch name {
	case LayoutPath:
		return Path(n), nil
	case LayoutCycle:
		return Cycle(n), nil
	case LayoutStar:
		return Star(n), nil
	case LayoutWheel:
		return Wheel(n), nil
	case LayoutGrid:
		return Grid(n, n), nil
	case LayoutComplete:
		return Complete(n), nil
	case LayoutRandom:
		return RandomSparse(n, defaultRandomP), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
