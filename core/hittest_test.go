package core_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bocafinder/core"
)

func TestFindVertexAt_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	_, ok := g.FindVertexAt(orb.Point{0, 0})
	assert.False(t, ok)
}

func TestFindVertexAt_InsideAndOutside(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddVertex(orb.Point{100, 100})
	require.NoError(t, err)

	got, ok := g.FindVertexAt(orb.Point{105, 110})
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = g.FindVertexAt(orb.Point{116, 100})
	assert.False(t, ok)

	// Inside the bounding square but outside the circle.
	_, ok = g.FindVertexAt(orb.Point{111, 111})
	assert.False(t, ok)
}

func TestFindVertexAt_BoundaryInclusive(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex(orb.Point{0, 0})

	for _, p := range []orb.Point{{15, 0}, {-15, 0}, {0, 15}, {0, -15}, {9, 12}} {
		_, ok := g.FindVertexAt(p)
		assert.True(t, ok, "point %v on the hit circle must count", p)
	}
}

func TestFindVertexAt_FirstMatchNotNearest(t *testing.T) {
	// Vertex 0 at x=0, vertex 1 at x=20; both circles contain x=12,
	// which is nearer to vertex 1. The earliest-created vertex still wins.
	g := core.NewGraph()
	_, _ = g.AddVertex(orb.Point{0, 0})
	_, _ = g.AddVertex(orb.Point{20, 0})

	got, ok := g.FindVertexAt(orb.Point{12, 0})
	require.True(t, ok)
	assert.Equal(t, 0, got)

	// Outside vertex 0's circle only vertex 1 qualifies.
	got, ok = g.FindVertexAt(orb.Point{30, 0})
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestFindVertexAt_CustomRadius(t *testing.T) {
	g := core.NewGraph(core.WithHitRadius(2))
	assert.Equal(t, 2.0, g.HitRadius())
	_, _ = g.AddVertex(orb.Point{0, 0})

	_, ok := g.FindVertexAt(orb.Point{3, 0})
	assert.False(t, ok)
	_, ok = g.FindVertexAt(orb.Point{2, 0})
	assert.True(t, ok)
}

func TestWithHitRadius_InvalidFallsBack(t *testing.T) {
	for _, r := range []float64{-4, 0, math.NaN(), math.Inf(1)} {
		g := core.NewGraph(core.WithHitRadius(r))
		assert.Equal(t, core.DefaultHitRadius, g.HitRadius(), "r=%v", r)
	}
}

func TestFindVertexAt_ManyVertices(t *testing.T) {
	// Enough vertices to force R-tree splits (max 50 entries per node).
	g := core.NewGraph()
	for i := 0; i < 400; i++ {
		_, err := g.AddVertex(orb.Point{float64(i%20) * 40, float64(i/20) * 40})
		require.NoError(t, err)
	}
	for i := 0; i < 400; i += 37 {
		got, ok := g.FindVertexAt(orb.Point{float64(i%20)*40 + 3, float64(i/20)*40 - 4})
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}
