// Package dijkstra defines core types and configuration options for the
// combined-cost shortest-path search.
//
// The search ranks vertices by
//
//	cost(v) = alpha·distance(v) + (1−alpha)·hops(v)
//
// where distance is the sum of edge weights from the source and hops is the
// number of edges on the current best route. alpha = 1 is plain shortest
// distance; alpha = 0 is fewest hops.
//
// Options:
//
//	– Source: ID of the starting vertex (required).
//	– Target: ID of the vertex to reach (required).
//	– Alpha:  blend factor in [0,1]; default DefaultAlpha.
//
// Errors (sentinel):
//
//	– ErrNilAdjacency     if the adjacency map is nil.
//	– ErrBadAlpha         if alpha is NaN or outside [0,1].
//	– ErrMissingEndpoint  if Source or Target was never set.
//	– ErrVertexNotFound   if Source or Target is not a vertex of the map.
//	– ErrNegativeWeight   if any adjacency entry has a negative weight.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilAdjacency indicates that a nil *adjacency.Map was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency map is nil")

	// ErrBadAlpha indicates alpha outside [0,1] (or NaN). Outside that range the
	// per-edge cost increment can be negative and optimality no longer holds.
	ErrBadAlpha = errors.New("dijkstra: alpha must be within [0,1]")

	// ErrMissingEndpoint indicates Source or Target was not provided.
	ErrMissingEndpoint = errors.New("dijkstra: source and target are required")

	// ErrVertexNotFound indicates Source or Target does not exist in the map.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in adjacency map")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// DefaultAlpha weights distance at 70% and hop count at 30%.
const DefaultAlpha = 0.7

// noVertex marks an unset endpoint or a missing predecessor.
const noVertex = -1

// Options configures a single ShortestPath run.
//
// Source – starting vertex ID.
// Target – vertex ID to reach; the search stops once it is extracted.
// Alpha  – blend factor between distance (alpha) and hops (1-alpha).
type Options struct {
	Source int
	Target int
	Alpha  float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id int) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the vertex ID to reach.
func Target(id int) Option {
	return func(o *Options) { o.Target = id }
}

// WithAlpha sets the distance/hops blend factor. Values outside [0,1] are
// reported by ShortestPath as ErrBadAlpha.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// DefaultOptions returns Options with unset endpoints and DefaultAlpha.
func DefaultOptions() Options {
	return Options{
		Source: noVertex,
		Target: noVertex,
		Alpha:  DefaultAlpha,
	}
}

// ValidateAlpha reports ErrBadAlpha unless 0 <= alpha <= 1.
func ValidateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return ErrBadAlpha
	}

	return nil
}

// Result is the outcome of one ShortestPath run.
//
// Path is nil when Target is unreachable from Source. When Source == Target
// the path is the single vertex [Source] with zero distance, hops and cost.
type Result struct {
	Path     []int   // vertex IDs from Source to Target, or nil
	Distance float64 // sum of edge weights along Path (+Inf if unreachable)
	Hops     int     // number of edges along Path
	Cost     float64 // combined cost of Path (+Inf if unreachable)
}

// Found reports whether a path was found.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Cost returns alpha·distance + (1−alpha)·hops. An infinite distance always
// yields +Inf, including for alpha = 0 where 0·Inf would otherwise be NaN.
func Cost(alpha, distance float64, hops int) float64 {
	if math.IsInf(distance, 1) {
		return math.Inf(1)
	}

	return alpha*distance + (1-alpha)*float64(hops)
}
