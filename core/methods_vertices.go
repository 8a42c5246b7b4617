// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/Vertex/Vertices/VertexCount, plus
//       the freeze switch that ends the drawing phase.
// Determinism:
//   - IDs are assigned as the vertex count before insertion.
//   - Vertices() returns vertices in ID order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// AddVertex appends a new vertex at p and returns its ID.
//
// Steps:
//  1. Reject non-finite coordinates (ErrInvalidPosition).
//  2. Lock mu; reject if frozen (ErrGraphFrozen).
//  3. id = len(vertices); append; insert hit box into the R-tree.
//
// Complexity: O(log V) amortized (R-tree insertion).
func (g *Graph) AddVertex(p orb.Point) (int, error) {
	if !finite(p) {
		return -1, fmt.Errorf("%w: (%g, %g)", ErrInvalidPosition, p.X(), p.Y())
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return -1, ErrGraphFrozen
	}

	id := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Pos: p})
	g.index.Insert(newHitBox(id, p, g.hitRadius))

	return id, nil
}

// Vertex returns the vertex with the given ID.
// Complexity: O(1)
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// HasVertex reports whether id names an existing vertex.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.vertices)
}

// Vertices returns a copy of all vertices in ID order.
// Complexity: O(V)
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// HitRadius returns the radius used by FindVertexAt.
func (g *Graph) HitRadius() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hitRadius
}

// Freeze ends the editing lifecycle of the graph. Subsequent AddVertex and
// AddEdge calls return ErrGraphFrozen. Freeze is idempotent and irreversible.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

func finite(p orb.Point) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
