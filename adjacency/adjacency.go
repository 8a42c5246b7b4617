// Package adjacency derives the weighted adjacency mapping that the path
// search runs over. Each undirected edge {u,v} of a core.Graph becomes two
// directed entries, u→v and v→u, weighted by the Euclidean distance between
// the endpoint positions.
//
// The Map also keeps the vertex positions it was built from, so callers can
// measure the true geometric length of any path returned by a search.
//
// Complexity:
//
//   - Build: O(V + E)
//   - Neighbors: O(1)
//   - Weight: O(deg(u))
//   - PathLength: O(len(path))
package adjacency

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/bocafinder/core"
)

// Sentinel errors for adjacency construction.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Build.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrDanglingEdge indicates an edge references a vertex that is not in the vertex list.
	ErrDanglingEdge = errors.New("adjacency: edge references unknown vertex")
)

// Neighbor is one directed adjacency entry.
type Neighbor struct {
	ID     int     // neighbor vertex ID
	Weight float64 // Euclidean distance to the neighbor
}

// Map is an immutable weighted adjacency mapping over vertex IDs 0..Len()-1.
//
// Neighbors of each vertex appear in edge insertion order. The mapping is
// symmetric: Weight(u,v) == Weight(v,u) for every edge.
type Map struct {
	points []orb.Point  // points[id] = position of vertex id
	adj    [][]Neighbor // adj[id] = ordered neighbor list
	edges  int          // number of logical edges
}

// Build snapshots g and constructs its adjacency Map.
func Build(g *core.Graph) (*Map, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vs, es := g.Snapshot()

	return FromParts(vs, es)
}

// FromParts constructs a Map from explicit vertex and edge lists.
//
// Steps:
//  1. Copy positions indexed by Vertex.ID (vertices must be ID-ordered 0..n-1).
//  2. For each edge {u,v}: weight = planar.Distance(pos[u], pos[v]);
//     append (v,w) to adj[u] and (u,w) to adj[v].
//
// Edges are expected to be de-duplicated already (core.Graph guarantees it);
// FromParts does not dedup, so a repeated edge yields repeated entries.
func FromParts(vertices []core.Vertex, edges []core.Edge) (*Map, error) {
	m := &Map{
		points: make([]orb.Point, len(vertices)),
		adj:    make([][]Neighbor, len(vertices)),
		edges:  len(edges),
	}
	for i, v := range vertices {
		if v.ID != i {
			return nil, fmt.Errorf("adjacency: vertex at index %d has ID %d", i, v.ID)
		}
		m.points[i] = v.Pos
	}

	n := len(vertices)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: {%d,%d}", ErrDanglingEdge, e.U, e.V)
		}
		w := planar.Distance(m.points[e.U], m.points[e.V])
		m.adj[e.U] = append(m.adj[e.U], Neighbor{ID: e.V, Weight: w})
		m.adj[e.V] = append(m.adj[e.V], Neighbor{ID: e.U, Weight: w})
	}

	return m, nil
}

// Len returns the number of vertices covered by the Map.
func (m *Map) Len() int { return len(m.points) }

// EdgeCount returns the number of logical (undirected) edges.
func (m *Map) EdgeCount() int { return m.edges }

// Has reports whether id is a vertex of the Map.
func (m *Map) Has(id int) bool { return id >= 0 && id < len(m.points) }

// Neighbors returns the adjacency list of id, or nil if id is unknown.
// The returned slice must not be modified.
func (m *Map) Neighbors(id int) []Neighbor {
	if !m.Has(id) {
		return nil
	}

	return m.adj[id]
}

// Weight returns the weight of the directed entry u→v.
func (m *Map) Weight(u, v int) (float64, bool) {
	for _, nb := range m.Neighbors(u) {
		if nb.ID == v {
			return nb.Weight, true
		}
	}

	return 0, false
}

// Position returns the position snapshot of id.
func (m *Map) Position(id int) (orb.Point, bool) {
	if !m.Has(id) {
		return orb.Point{}, false
	}

	return m.points[id], true
}

// PathLength returns the true geometric length of path: the sum of Euclidean
// distances between consecutive vertices. Paths with fewer than two vertices
// have length 0. Unknown IDs contribute nothing.
func (m *Map) PathLength(path []int) float64 {
	if len(path) < 2 {
		return 0
	}
	ls := make(orb.LineString, 0, len(path))
	for _, id := range path {
		if p, ok := m.Position(id); ok {
			ls = append(ls, p)
		}
	}

	return planar.Length(ls)
}
