// Package bfs provides breadth-first search over an adjacency.Map,
// returning hop distances from the start vertex.
//
// Neighbours are explored in adjacency order, so the visit order is
// deterministic for a given graph.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/bocafinder/adjacency"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   *adjacency.Map
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on adj starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// or any error returned by the OnVisit hook.
func BFS(adj *adjacency.Map, start int, opts ...Option) (*BFSResult, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !adj.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := adj.Len()
	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start: start,
			Depth: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id seen at depth d.
func (w *walker) enqueue(id, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, id)
}

// loop processes the queue until it is empty or the hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[id]

		if err := w.opts.OnVisit(id, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		for _, nb := range w.adj.Neighbors(id) {
			if w.res.Depth[nb.ID] == Unreached {
				w.enqueue(nb.ID, d+1)
			}
		}
	}

	return nil
}

// Components labels every vertex with the smallest vertex ID of its
// connected component. Two vertices are mutually reachable iff their labels match.
func Components(adj *adjacency.Map) ([]int, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	label := make([]int, adj.Len())
	for i := range label {
		label[i] = Unreached
	}
	for root := range label {
		if label[root] != Unreached {
			continue
		}
		mark := func(id, _ int) error {
			label[id] = root
			return nil
		}
		if _, err := BFS(adj, root, WithOnVisit(mark)); err != nil {
			return nil, err
		}
	}

	return label, nil
}
