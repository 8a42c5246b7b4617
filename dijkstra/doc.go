// Package dijkstra provides the combined-cost shortest-path search used to
// route from an anchor vertex to one target in a user-drawn planar graph.
//
// Overview:
//
//   - Every vertex carries a distance (sum of Euclidean edge weights from the
//     source) and a hop count (edges from the source).
//   - The search priority is cost = alpha·distance + (1−alpha)·hops.
//   - alpha = 1 finds the geometrically shortest route; alpha = 0 finds the
//     route with the fewest edges; values in between trade one for the other.
//
// Why it is still Dijkstra:
//
//   - Crossing an edge of weight w raises cost by alpha·w + (1−alpha).
//   - With w ≥ 0 and alpha ∈ [0,1] that increment is non-negative, so cost is
//     an ordinary non-negative edge-weighted distance and the usual
//     first-extraction optimality argument applies.
//   - alpha outside [0,1] breaks this and is rejected with ErrBadAlpha.
//
// Determinism:
//
//   - The priority queue orders by (cost, vertex ID); equal costs are always
//     resolved toward the lower ID.
//   - Relaxation only replaces a route on a strictly lower cost, so the first
//     route found at a given cost is kept.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilAdjacency, ErrBadAlpha, ErrMissingEndpoint, ErrVertexNotFound,
//     ErrNegativeWeight. An unreachable target is NOT an error: the Result
//     carries a nil Path.
//
// API reference:
//
//	func ShortestPath(adj *adjacency.Map, opts ...Option) (Result, error)
//
//	  - opts: Source(id), Target(id), WithAlpha(a).
//	  - Result.Path: vertex IDs Source..Target, nil when unreachable,
//	    [Source] when Source == Target.
//
// Thread safety:
//
//   - adjacency.Map is immutable, so concurrent ShortestPath calls over the
//     same Map are safe.
package dijkstra
