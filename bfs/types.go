// Package bfs provides tunable options and error definitions
// for breadth-first search over an adjacency.Map.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil adjacency map is passed.
	ErrGraphNil = errors.New("bfs: adjacency map is nil")
)

// Unreached is the Depth of vertices the search never saw.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error
}

// DefaultOptions returns options with a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit: func(int, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a traversal. Depth is indexed by vertex ID
// and counts edges from Start; vertices never seen hold Unreached.
type BFSResult struct {
	Start int
	Depth []int
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] != Unreached
}
