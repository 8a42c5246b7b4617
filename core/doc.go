// Package core provides the graph store a user draws into: vertices placed
// at 2D positions and undirected edges between them.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertex IDs are creation indices (0,1,2,…); never reused, never removed.
//   - Positions are orb.Point values in screen space.
//   - Edges are unordered pairs stored once, normalised to U < V.
//     Self-loops and duplicates (in either direction) are silent no-ops.
//   - Hit testing (FindVertexAt) is first-match in creation order, narrowed
//     by an R-tree of per-vertex hit boxes.
//   - Freeze ends the drawing lifecycle; later mutations return ErrGraphFrozen.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(p orb.Point) (id int, err error)  // O(log V)
//	Vertex(id int) (Vertex, error)              // O(1)
//	Vertices() []Vertex                         // O(V), ID order
//
//	// Edge lifecycle
//	AddEdge(u, v int) (added bool, err error)   // O(1), idempotent
//	HasEdge(u, v int) bool                      // O(1)
//	Edges() []Edge                              // O(E), insertion order
//
//	// Queries
//	FindVertexAt(p orb.Point) (id int, ok bool) // O(log V + k)
//	Snapshot() ([]Vertex, []Edge)               // consistent copy
//
//	// Lifecycle
//	Freeze()
//	Frozen() bool
//
// Errors:
//
//	ErrVertexNotFound   – AddEdge/Vertex with an unknown ID
//	ErrGraphFrozen      – mutation after Freeze
//	ErrInvalidPosition  – NaN or infinite coordinate
//
// Concurrency: every method takes the Graph's RWMutex; a Graph may be shared
// across goroutines, although the interactive session drives it from one.
package core
