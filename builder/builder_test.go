// Package builder_test verifies the geometric constructors: sizes, edge
// emission, placement, validation and composition.
package builder_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bocafinder/adjacency"
	"github.com/katalvlaran/bocafinder/builder"
	"github.com/katalvlaran/bocafinder/core"
	"github.com/katalvlaran/bocafinder/dijkstra"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Sizes and edge sets
// ------------------------------------------------------------------------

func TestConstructors_Sizes(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		verts int
		edges int
	}{
		{"Path5", builder.Path(5), 5, 4},
		{"Cycle6", builder.Cycle(6), 6, 6},
		{"Star5", builder.Star(5), 5, 4},
		{"Wheel6", builder.Wheel(6), 6, 10},
		{"Grid3x4", builder.Grid(3, 4), 12, 17},
		{"Grid1x1", builder.Grid(1, 1), 1, 0},
		{"Complete5", builder.Complete(5), 5, 10},
		{"Complete1", builder.Complete(1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.con)
			assert.Equal(t, tc.verts, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestPath_Placement(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithOrigin(orb.Point{10, 20}), builder.WithSpacing(30)}, builder.Path(3))
	vs := g.Vertices()
	assert.Equal(t, orb.Point{10, 20}, vs[0].Pos)
	assert.Equal(t, orb.Point{40, 20}, vs[1].Pos)
	assert.Equal(t, orb.Point{70, 20}, vs[2].Pos)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, g.Edges())
}

func TestCycle_NeighbourChordEqualsSpacing(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSpacing(50)}, builder.Cycle(7))
	vs := g.Vertices()
	for _, e := range g.Edges() {
		d := planar.Distance(vs[e.U].Pos, vs[e.V].Pos)
		assert.InDelta(t, 50.0, d, 1e-9, "edge %v", e)
	}
}

func TestStar_HubFirst(t *testing.T) {
	g := build(t, nil, builder.Star(4))
	for _, e := range g.Edges() {
		assert.Equal(t, 0, e.U)
	}
	vs := g.Vertices()
	for _, v := range vs[1:] {
		assert.InDelta(t, 80.0, planar.Distance(vs[0].Pos, v.Pos), 1e-9)
	}
}

func TestGrid_EdgesAxisAligned(t *testing.T) {
	g := build(t, nil, builder.Grid(3, 3))
	vs := g.Vertices()
	for _, e := range g.Edges() {
		a, b := vs[e.U].Pos, vs[e.V].Pos
		assert.True(t, a.X() == b.X() || a.Y() == b.Y(), "edge %v", e)
		assert.InDelta(t, 80.0, planar.Distance(a, b), 1e-9)
	}
}

// ------------------------------------------------------------------------
// 2. Validation
// ------------------------------------------------------------------------

func TestConstructors_Validation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"Path1", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star1", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel3", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid0", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Complete0", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomP", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomNoRNG", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"Nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithOrigin(orb.Point{math.NaN(), 0}) })
}

func TestApply_FrozenGraph(t *testing.T) {
	g := core.NewGraph()
	g.Freeze()
	err := builder.Apply(g, nil, builder.Path(3))
	assert.ErrorIs(t, err, core.ErrGraphFrozen)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"path", "cycle", "star", "wheel", "grid", "complete"} {
		con, err := builder.ByName(name, 4)
		require.NoError(t, err, name)
		g := build(t, nil, con)
		assert.NotZero(t, g.VertexCount(), name)
	}
	_, err := builder.ByName("hexagram", 4)
	assert.ErrorIs(t, err, builder.ErrUnknownLayout)
}

// ------------------------------------------------------------------------
// 3. Determinism and composition
// ------------------------------------------------------------------------

func TestRandomSparse_Deterministic(t *testing.T) {
	a := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	b := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())

	full := build(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	assert.Equal(t, 15, full.EdgeCount())
}

func TestRandomSparse_MinSeparation(t *testing.T) {
	// Half the default spacing, which exceeds two default hit radii.
	const minSep = 40.0
	for seed := int64(1); seed <= 20; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		vs := g.Vertices()
		for i := range vs {
			for j := i + 1; j < len(vs); j++ {
				d := planar.Distance(vs[i].Pos, vs[j].Pos)
				assert.GreaterOrEqual(t, d, minSep, "seed=%d pair (%d,%d)", seed, i, j)
			}
			hit, ok := g.FindVertexAt(vs[i].Pos)
			require.True(t, ok)
			assert.Equal(t, i, hit, "seed=%d", seed)
		}
	}
}

func TestComposition_DisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithOrigin(orb.Point{500, 500})}, builder.Cycle(3)))
	assert.Equal(t, 6, g.VertexCount())

	adj, err := adjacency.Build(g)
	require.NoError(t, err)
	res, err := dijkstra.ShortestPath(adj, dijkstra.Source(0), dijkstra.Target(4))
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestGrid_ManhattanRoute(t *testing.T) {
	// On a grid every shortest route to the opposite corner has length 2·(n-1)·spacing.
	g := build(t, nil, builder.Grid(4, 4))
	adj, err := adjacency.Build(g)
	require.NoError(t, err)
	for _, a := range []float64{0, 0.7, 1} {
		res, err := dijkstra.ShortestPath(adj, dijkstra.Source(0), dijkstra.Target(15), dijkstra.WithAlpha(a))
		require.NoError(t, err)
		assert.InDelta(t, 480.0, res.Distance, 1e-9)
		assert.Equal(t, 6, res.Hops)
	}
}
