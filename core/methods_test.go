package core_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bocafinder/core"
)

// ------------------------------------------------------------------------
// 1. Vertex lifecycle
// ------------------------------------------------------------------------

func TestAddVertex_AssignsCreationIndex(t *testing.T) {
	g := core.NewGraph()
	for i, p := range []orb.Point{{0, 0}, {10, 0}, {10, 10}} {
		id, err := g.AddVertex(p)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}

	vs := g.Vertices()
	require.Len(t, vs, 3)
	assert.Equal(t, orb.Point{10, 0}, vs[1].Pos)
	assert.Equal(t, 3, g.VertexCount())
}

func TestAddVertex_SamePositionTwice(t *testing.T) {
	// Duplicate positions are distinct vertices; the store never dedups points.
	g := core.NewGraph()
	a, err := g.AddVertex(orb.Point{5, 5})
	require.NoError(t, err)
	b, err := g.AddVertex(orb.Point{5, 5})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAddVertex_RejectsNonFinite(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex(orb.Point{math.NaN(), 0})
	assert.ErrorIs(t, err, core.ErrInvalidPosition)
	_, err = g.AddVertex(orb.Point{0, math.Inf(1)})
	assert.ErrorIs(t, err, core.ErrInvalidPosition)
	assert.Zero(t, g.VertexCount())
}

func TestVertex_NotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Vertex(0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasVertex(-1))
}

// ------------------------------------------------------------------------
// 2. Edge lifecycle
// ------------------------------------------------------------------------

func TestAddEdge_Idempotent(t *testing.T) {
	g := newTriangle(t)

	added, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, added)

	for i := 0; i < 5; i++ {
		added, err = g.AddEdge(0, 1)
		require.NoError(t, err)
		assert.False(t, added)
		added, err = g.AddEdge(1, 0)
		require.NoError(t, err)
		assert.False(t, added)
	}

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}}, g.Edges())
	assert.True(t, g.HasEdge(1, 0))
}

func TestAddEdge_SelfLoopIsNoop(t *testing.T) {
	g := newTriangle(t)
	for i := 0; i < 3; i++ {
		added, err := g.AddEdge(i, i)
		require.NoError(t, err)
		assert.False(t, added)
	}
	assert.Zero(t, g.EdgeCount())
}

func TestAddEdge_NormalisesAndKeepsInsertionOrder(t *testing.T) {
	g := newTriangle(t)
	_, _ = g.AddEdge(2, 1)
	_, _ = g.AddEdge(0, 2)
	_, _ = g.AddEdge(1, 0)

	assert.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 0, V: 2}, {U: 0, V: 1}}, g.Edges())
}

func TestAddEdge_UnknownVertex(t *testing.T) {
	g := newTriangle(t)
	_, err := g.AddEdge(0, 7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdge_Other(t *testing.T) {
	e := core.NewEdge(4, 2)
	assert.Equal(t, core.Edge{U: 2, V: 4}, e)
	assert.Equal(t, 4, e.Other(2))
	assert.Equal(t, 2, e.Other(4))
}

// ------------------------------------------------------------------------
// 3. Freeze
// ------------------------------------------------------------------------

func TestFreeze_RejectsMutation(t *testing.T) {
	g := newTriangle(t)
	g.Freeze()
	g.Freeze() // idempotent

	assert.True(t, g.Frozen())
	_, err := g.AddVertex(orb.Point{1, 1})
	assert.ErrorIs(t, err, core.ErrGraphFrozen)
	_, err = g.AddEdge(0, 1)
	assert.ErrorIs(t, err, core.ErrGraphFrozen)
	assert.Equal(t, 3, g.VertexCount())
}

func TestSnapshot_IsACopy(t *testing.T) {
	g := newTriangle(t)
	_, _ = g.AddEdge(0, 1)

	vs, es := g.Snapshot()
	vs[0].Pos = orb.Point{99, 99}
	es[0] = core.Edge{U: 1, V: 2}

	v, err := g.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{0, 0}, v.Pos)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
}

// newTriangle returns a graph with vertices at (0,0), (10,0), (10,10) and no edges.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range []orb.Point{{0, 0}, {10, 0}, {10, 10}} {
		_, err := g.AddVertex(p)
		require.NoError(t, err)
	}

	return g
}
