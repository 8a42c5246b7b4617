// Package dijkstra implements a single-source, single-target Dijkstra search
// whose priority is a convex blend of accumulated distance and hop count.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all adjacency entries (O(E)) to detect
//     negative weights and fail fast.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their vertex is visited.
//   - Equal costs are broken by the smaller vertex ID, so results never depend
//     on map or heap iteration order.
//   - The search stops as soon as Target is extracted.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/bocafinder/adjacency"
)

// ShortestPath finds the minimum combined-cost path from Options.Source to
// Options.Target over adj.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. alpha must lie in [0,1] (ErrBadAlpha).
//  3. Source and Target must be set (ErrMissingEndpoint).
//  4. Source and Target must be vertices of adj (ErrVertexNotFound).
//  5. No adjacency entry may have a negative weight (ErrNegativeWeight).
//
// Optimality: each edge raises cost by alpha·w + (1−alpha) ≥ 0 whenever
// w ≥ 0 and alpha ∈ [0,1], so cost is a non-negative edge-weighted distance
// and the first extraction of Target is optimal.
//
// An unreachable Target is not an error: the Result has a nil Path and
// infinite Distance and Cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(adj *adjacency.Map, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if adj == nil {
		return Result{}, ErrNilAdjacency
	}
	if err := ValidateAlpha(cfg.Alpha); err != nil {
		return Result{}, fmt.Errorf("%w: got %v", err, cfg.Alpha)
	}
	if cfg.Source == noVertex || cfg.Target == noVertex {
		return Result{}, ErrMissingEndpoint
	}
	if !adj.Has(cfg.Source) {
		return Result{}, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if !adj.Has(cfg.Target) {
		return Result{}, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	// 3) Pre-scan weights
	for u := 0; u < adj.Len(); u++ {
		for _, nb := range adj.Neighbors(u) {
			if nb.Weight < 0 || math.IsNaN(nb.Weight) {
				return Result{}, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, nb.ID, nb.Weight)
			}
		}
	}

	// 4) Run
	r := newRunner(adj, cfg)
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	adj     *adjacency.Map
	options Options
	dist    []float64 // dist[v]: sum of weights along the best route found
	hops    []int     // hops[v]: edge count along that route
	cost    []float64 // cost[v]: Cost(alpha, dist[v], hops[v]), cached
	prev    []int     // prev[v]: predecessor on that route, noVertex if none
	visited []bool    // visited[v]: v has been extracted
	pq      costPQ
}

func newRunner(adj *adjacency.Map, cfg Options) *runner {
	n := adj.Len()

	return &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]float64, n),
		hops:    make([]int, n),
		cost:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(costPQ, 0, n),
	}
}

// init sets dist = +Inf, hops = 0, prev = none for every vertex, then seeds
// the heap with the source at cost 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.cost[v] = inf
		r.prev[v] = noVertex
	}
	src := r.options.Source
	r.dist[src] = 0
	r.cost[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &costItem{id: src, cost: 0})
}

// process extracts vertices in (cost, id) order until Target is extracted
// or the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		if u == r.options.Target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbor of u through u.
// A neighbor is updated only on a strictly smaller combined cost.
func (r *runner) relax(u int) {
	alpha := r.options.Alpha
	for _, nb := range r.adj.Neighbors(u) {
		v := nb.ID
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		newHops := r.hops[u] + 1
		newCost := Cost(alpha, newDist, newHops)
		if newCost >= r.cost[v] {
			continue
		}
		r.dist[v] = newDist
		r.hops[v] = newHops
		r.cost[v] = newCost
		r.prev[v] = u
		heap.Push(&r.pq, &costItem{id: v, cost: newCost})
	}
}

// result reconstructs the path by walking prev from Target back to Source.
func (r *runner) result() Result {
	src, dst := r.options.Source, r.options.Target
	if math.IsInf(r.dist[dst], 1) {
		return Result{Distance: math.Inf(1), Cost: math.Inf(1)}
	}

	var rev []int
	for v := dst; v != noVertex; v = r.prev[v] {
		rev = append(rev, v)
		if v == src {
			break
		}
		if len(rev) > len(r.prev) {
			// A predecessor cycle cannot occur with non-negative costs; treat as no path.
			return Result{Distance: math.Inf(1), Cost: math.Inf(1)}
		}
	}
	if rev[len(rev)-1] != src {
		return Result{Distance: math.Inf(1), Cost: math.Inf(1)}
	}

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return Result{
		Path:     path,
		Distance: r.dist[dst],
		Hops:     r.hops[dst],
		Cost:     r.cost[dst],
	}
}

// costItem is a heap entry: a vertex and the cost it was pushed with.
type costItem struct {
	id   int
	cost float64
}

// costPQ is a min-heap of *costItem ordered by cost, then by vertex ID.
type costPQ []*costItem

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by cost ascending; equal costs go to the smaller vertex ID.
func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
