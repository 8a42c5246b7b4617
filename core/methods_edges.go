// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order, each normalised to U < V.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddEdge records the undirected edge {u, v}.
//
// Steps:
//  1. Lock mu; reject if frozen (ErrGraphFrozen).
//  2. Validate both endpoints exist (ErrVertexNotFound).
//  3. u == v ⇒ no-op (false, nil).
//  4. Normalise to U < V; if already present ⇒ no-op (false, nil).
//  5. Append to edges and edgeSet; return (true, nil).
//
// The call is idempotent: repeating it with the same pair, in either order,
// never creates a second logical edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, ErrGraphFrozen
	}
	if u < 0 || u >= len(g.vertices) {
		return false, fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if v < 0 || v >= len(g.vertices) {
		return false, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if u == v {
		return false, nil
	}

	e := NewEdge(u, v)
	if _, exists := g.edgeSet[e]; exists {
		return false, nil
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)

	return true, nil
}

// HasEdge reports whether the unordered pair {u, v} is an edge.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edgeSet[NewEdge(u, v)]

	return ok
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of logical edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Snapshot returns consistent copies of vertices and edges taken under one lock.
func (g *Graph) Snapshot() ([]Vertex, []Edge) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vs := make([]Vertex, len(g.vertices))
	copy(vs, g.vertices)
	es := make([]Edge, len(g.edges))
	copy(es, g.edges)

	return vs, es
}
