// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Vertex IDs are creation indices (0,1,2,...); they are never reused.
//   - Edges are unordered pairs normalised to U < V; no loops, no parallel edges.
//   - All state is guarded by a single sync.RWMutex.

package core

import (
	"errors"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrGraphFrozen indicates a mutation was attempted after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")

	// ErrInvalidPosition indicates a vertex position with a NaN or infinite coordinate.
	ErrInvalidPosition = errors.New("core: position must be finite")

	// ErrBadHitRadius indicates a non-positive or non-finite hit radius.
	ErrBadHitRadius = errors.New("core: hit radius must be positive and finite")
)

// DefaultHitRadius is the radius of the circle around each vertex that
// counts as a hit for FindVertexAt.
const DefaultHitRadius = 15.0

// Vertex is a point placed by the user.
//
// ID is the creation index of the vertex. Pos is its position in screen space.
type Vertex struct {
	// ID is the creation index; stable for the lifetime of the Graph.
	ID int `json:"id"`

	// Pos is the 2D position of the vertex.
	Pos orb.Point `json:"pos"`
}

// Edge is an undirected connection between two distinct vertices.
// Stored edges always satisfy U < V.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// NewEdge returns the normalised form of the unordered pair {u, v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}

	return e.U
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithHitRadius sets the radius used by FindVertexAt.
// Non-positive or non-finite values are ignored by NewGraph, which keeps
// DefaultHitRadius; session.New rejects them with ErrBadHitRadius.
func WithHitRadius(r float64) GraphOption {
	return func(g *Graph) { g.hitRadius = r }
}

// Graph is the mutable store of vertices and edges built during the drawing phase.
//
// vertices is indexed by Vertex.ID. edges keeps insertion order for deterministic
// adjacency construction; edgeSet is the membership index over normalised pairs.
// index is an R-tree over each vertex's hit box, used to narrow hit tests.
type Graph struct {
	mu sync.RWMutex // guards every field below

	hitRadius float64 // radius of the hit circle around each vertex
	frozen    bool    // set by Freeze; rejects further mutation

	vertices []Vertex
	edges    []Edge
	edgeSet  map[Edge]struct{}
	index    *rtreego.Rtree
}

// NewGraph creates an empty Graph.
// By default the hit radius is DefaultHitRadius.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		hitRadius: DefaultHitRadius,
		edgeSet:   make(map[Edge]struct{}),
		index:     rtreego.NewTree(indexDims, indexMinChildren, indexMaxChildren),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !validRadius(g.hitRadius) {
		g.hitRadius = DefaultHitRadius
	}

	return g
}
