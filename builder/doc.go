// Package builder provides deterministic geometric fixtures for the planar
// graph store: each constructor places vertices at screen coordinates and
// connects them, exactly as a user clicking on the canvas would.
//
// The package offers the following components:
//
//   - Orchestration:
//     – BuildGraph:  new core.Graph + constructors applied in order.
//     – Apply:       constructors applied to an existing, unfrozen graph.
//     – ByName:      layout name ("path", "cycle", "grid", ...) → Constructor.
//   - Constructors (impl_*.go):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Grid(rows, cols), Complete(n),
//     RandomSparse(n, p).
//   - Options:
//     – WithOrigin:   top-left corner of the layout (default (100,100)).
//     – WithSpacing:  neighbour distance (default 80).
//     – WithSeed / WithRand: RNG for RandomSparse.
//
// Constructors append: vertex IDs continue from whatever the graph already
// holds, so two layouts composed with different origins form two components.
// That is the canonical way to build an "unreachable target" fixture.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
//   - Deterministic vertex placement and edge emission order per constructor.
package builder
