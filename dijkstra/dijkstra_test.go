// Package dijkstra_test contains unit tests for the combined-cost search.
// These tests cover input validation, the route-shape scenarios that
// distinguish "fewer hops" from "shorter distance", deterministic tie-breaking,
// unreachable targets, and brute-force optimality on random planar graphs.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bocafinder/adjacency"
	"github.com/katalvlaran/bocafinder/core"
	"github.com/katalvlaran/bocafinder/dijkstra"
)

// buildMap constructs an adjacency.Map from positions and edge pairs.
func buildMap(t *testing.T, pts []orb.Point, edges [][2]int) *adjacency.Map {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pts {
		_, err := g.AddVertex(p)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	m, err := adjacency.Build(g)
	require.NoError(t, err)

	return m
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestShortestPath_NilAdjacency(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, dijkstra.Source(0), dijkstra.Target(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilAdjacency)
}

func TestShortestPath_BadAlpha(t *testing.T) {
	m := buildMap(t, []orb.Point{{0, 0}}, nil)
	for _, a := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(0), dijkstra.WithAlpha(a))
		assert.ErrorIs(t, err, dijkstra.ErrBadAlpha, "alpha=%v", a)
	}
	for _, a := range []float64{0, 0.5, 1} {
		assert.NoError(t, dijkstra.ValidateAlpha(a))
	}
}

func TestShortestPath_MissingEndpoint(t *testing.T) {
	m := buildMap(t, []orb.Point{{0, 0}}, nil)
	_, err := dijkstra.ShortestPath(m, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrMissingEndpoint)
	_, err = dijkstra.ShortestPath(m, dijkstra.Target(0))
	assert.ErrorIs(t, err, dijkstra.ErrMissingEndpoint)
}

func TestShortestPath_VertexNotFound(t *testing.T) {
	m := buildMap(t, []orb.Point{{0, 0}}, nil)
	_, err := dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(4))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(m, dijkstra.Source(9), dijkstra.Target(0))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Scenario Tests
// ------------------------------------------------------------------------

func TestShortestPath_TriangleScenario(t *testing.T) {
	pts := []orb.Point{{0, 0}, {10, 0}, {10, 10}}

	// Edges {0,1}, {1,2}: the only route is the two-hop one.
	m := buildMap(t, pts, [][2]int{{0, 1}, {1, 2}})
	res, err := dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(2), dijkstra.WithAlpha(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.InDelta(t, 20.0, res.Distance, 1e-9)
	assert.Equal(t, 2, res.Hops)

	// Adding {0,2} makes the direct edge both shorter and fewer hops.
	m = buildMap(t, pts, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	for _, a := range []float64{0, 1} {
		res, err = dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(2), dijkstra.WithAlpha(a))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, res.Path, "alpha=%v", a)
		assert.InDelta(t, math.Sqrt(200), res.Distance, 1e-9)
	}
}

// detourGraph has a straight 4-hop route 0-1-2-3-4 of length 40 and a
// 2-hop detour 0-5-4 through (20,30) of length ≈72.11. The detour wins only
// for alpha below ≈0.0586.
func detourGraph(t *testing.T) *adjacency.Map {
	pts := []orb.Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}, {20, 30}}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 5}, {5, 4}}

	return buildMap(t, pts, edges)
}

func TestShortestPath_FewerHopsVersusShorterDistance(t *testing.T) {
	m := detourGraph(t)

	cases := []struct {
		alpha float64
		want  []int
	}{
		{0, []int{0, 5, 4}},
		{0.01, []int{0, 5, 4}},
		{0.05, []int{0, 5, 4}},
		{0.1, []int{0, 1, 2, 3, 4}},
		{0.7, []int{0, 1, 2, 3, 4}},
		{1, []int{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		res, err := dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(4), dijkstra.WithAlpha(tc.alpha))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Path, "alpha=%v", tc.alpha)
		assert.InDelta(t, m.PathLength(res.Path), res.Distance, 1e-9)
		assert.Equal(t, len(res.Path)-1, res.Hops)
	}
}

func TestShortestPath_TieBreakLowestID(t *testing.T) {
	// Unit square: 0→3 via 1 or via 2 costs the same for every alpha.
	pts := []orb.Point{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	forward := buildMap(t, pts, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	reverse := buildMap(t, pts, [][2]int{{2, 3}, {1, 3}, {0, 2}, {0, 1}})

	for _, m := range []*adjacency.Map{forward, reverse} {
		for _, a := range []float64{0, 0.3, 1} {
			res, err := dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(3), dijkstra.WithAlpha(a))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 3}, res.Path, "alpha=%v", a)
		}
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	pts := []orb.Point{{0, 0}, {10, 0}, {100, 100}, {110, 100}}
	m := buildMap(t, pts, [][2]int{{0, 1}, {2, 3}})

	for _, a := range []float64{0, 0.7, 1} {
		res, err := dijkstra.ShortestPath(m, dijkstra.Source(0), dijkstra.Target(3), dijkstra.WithAlpha(a))
		require.NoError(t, err)
		assert.Nil(t, res.Path)
		assert.False(t, res.Found())
		assert.True(t, math.IsInf(res.Distance, 1))
		assert.True(t, math.IsInf(res.Cost, 1))
	}
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	m := buildMap(t, []orb.Point{{0, 0}, {5, 0}}, [][2]int{{0, 1}})
	res, err := dijkstra.ShortestPath(m, dijkstra.Source(1), dijkstra.Target(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Path)
	assert.Zero(t, res.Distance)
	assert.Zero(t, res.Hops)
	assert.Zero(t, res.Cost)
}

func TestCost(t *testing.T) {
	assert.InDelta(t, 0.7*10+0.3*2, dijkstra.Cost(0.7, 10, 2), 1e-12)
	assert.True(t, math.IsInf(dijkstra.Cost(0, math.Inf(1), 0), 1))
	assert.Equal(t, 3.0, dijkstra.Cost(0, 123, 3))
}

// ------------------------------------------------------------------------
// 3. Optimality: compare against exhaustive simple-path enumeration.
// ------------------------------------------------------------------------

// bruteForceMinCost enumerates every simple path src→dst and returns the
// minimum combined cost (+Inf if none).
func bruteForceMinCost(m *adjacency.Map, src, dst int, alpha float64) float64 {
	best := math.Inf(1)
	onPath := make([]bool, m.Len())
	var walk func(u int, dist float64, hops int)
	walk = func(u int, dist float64, hops int) {
		if u == dst {
			if c := dijkstra.Cost(alpha, dist, hops); c < best {
				best = c
			}
			return
		}
		onPath[u] = true
		for _, nb := range m.Neighbors(u) {
			if !onPath[nb.ID] {
				walk(nb.ID, dist+nb.Weight, hops+1)
			}
		}
		onPath[u] = false
	}
	walk(src, 0, 0)

	return best
}

// randomPlanarish builds n random points in a 200×200 box and connects each
// pair with probability p (edges may cross; planarity is irrelevant to the search).
func randomPlanarish(t *testing.T, r *rand.Rand, n int, p float64) *adjacency.Map {
	pts := make([]orb.Point, n)
	for i := range pts {
		pts[i] = orb.Point{r.Float64() * 200, r.Float64() * 200}
	}
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	return buildMap(t, pts, edges)
}

func TestShortestPath_OptimalAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alphas := []float64{0, 0.05, 0.3, 0.7, 1}

	for trial := 0; trial < 40; trial++ {
		n := 4 + r.Intn(5) // 4..8 vertices keeps enumeration cheap
		m := randomPlanarish(t, r, n, 0.45)
		src, dst := r.Intn(n), r.Intn(n)

		for _, a := range alphas {
			res, err := dijkstra.ShortestPath(m, dijkstra.Source(src), dijkstra.Target(dst), dijkstra.WithAlpha(a))
			require.NoError(t, err)

			want := bruteForceMinCost(m, src, dst, a)
			if math.IsInf(want, 1) {
				assert.Nil(t, res.Path, "trial %d alpha %v", trial, a)
				continue
			}
			require.NotNil(t, res.Path, "trial %d alpha %v", trial, a)
			assert.InDelta(t, want, res.Cost, 1e-9, "trial %d alpha %v", trial, a)

			// The reported path must be a real path with the reported cost.
			assert.Equal(t, src, res.Path[0])
			assert.Equal(t, dst, res.Path[len(res.Path)-1])
			for i := 0; i+1 < len(res.Path); i++ {
				_, ok := m.Weight(res.Path[i], res.Path[i+1])
				assert.True(t, ok, "missing edge %d-%d", res.Path[i], res.Path[i+1])
			}
			assert.InDelta(t, dijkstra.Cost(a, m.PathLength(res.Path), len(res.Path)-1), res.Cost, 1e-9)
		}
	}
}
