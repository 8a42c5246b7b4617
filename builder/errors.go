// SPDX-License-Identifier: MIT
// Package: bocafinder/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using %w (method name, offending value).
//   • Constructors never panic; validation panics are confined to option constructors.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not apply a constructor
// (nil constructor, nil graph, or a core mutation error such as a frozen graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownLayout indicates ByName received an unsupported layout name.
var ErrUnknownLayout = errors.New("builder: unknown layout")
