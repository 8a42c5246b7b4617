// Package selector picks, among several candidate targets, the one whose
// combined-cost route from a shared anchor is geometrically shortest.
//
// The per-target route comes from dijkstra.ShortestPath, so alpha shapes
// each route (fewer hops vs. shorter distance). The comparison ACROSS
// targets always uses the true Euclidean length of those routes, never the
// blended cost.
package selector

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bocafinder/adjacency"
	"github.com/katalvlaran/bocafinder/bfs"
	"github.com/katalvlaran/bocafinder/dijkstra"
)

// Sentinel errors returned by Select.
var (
	// ErrNoTargets indicates Select was called with an empty target list.
	ErrNoTargets = errors.New("selector: no targets given")

	// ErrNoPath indicates no target is reachable from the anchor.
	ErrNoPath = errors.New("selector: no path found to any target")
)

// Options configures Select.
type Options struct {
	Alpha float64 // blend factor handed to dijkstra.WithAlpha
}

// Option is a functional option for Select.
type Option func(*Options)

// WithAlpha sets the blend factor used for each per-target search.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// DefaultOptions returns Options with dijkstra.DefaultAlpha.
func DefaultOptions() Options {
	return Options{Alpha: dijkstra.DefaultAlpha}
}

// Candidate is the search outcome for one target.
type Candidate struct {
	Target int     `json:"target"`
	Path   []int   `json:"path"`
	Length float64 `json:"-"` // +Inf when unreachable, which JSON cannot carry
	Hops   int     `json:"hops"`
}

// Reachable reports whether a route to this candidate exists.
func (c Candidate) Reachable() bool { return len(c.Path) > 0 }

// Result is the winning candidate plus the per-target breakdown.
type Result struct {
	Anchor int     `json:"anchor"`
	Target int     `json:"target"` // -1 when nothing was reachable
	Path   []int   `json:"path"`
	Length float64 `json:"length"` // geometric length of Path

	// Candidates holds one entry per target, in the order targets were given.
	Candidates []Candidate `json:"candidates"`
	// Unreachable lists targets with no route from the anchor, in input order.
	Unreachable []int `json:"unreachable,omitempty"`
}

// Select runs one combined-cost search per target and returns the target
// whose route has the smallest geometric length.
//
// Steps:
//  1. Resolve options; reject an empty target list (ErrNoTargets) and a bad
//     alpha (dijkstra.ErrBadAlpha).
//  2. One BFS from the anchor marks its connected component. Existing targets
//     outside it are recorded unreachable without running Dijkstra.
//  3. For each remaining target in order: dijkstra.ShortestPath(anchor, target, alpha).
//     Any search error is returned wrapped; nothing is selected.
//  4. Length = adj.PathLength(path) for every non-empty path.
//  5. Keep the strictly smallest length; earlier targets win ties.
//  6. If no target produced a path, return ErrNoPath (Result still carries
//     the per-target breakdown).
//
// Complexity: O(T · (V + E) log V) for T targets.
func Select(adj *adjacency.Map, anchor int, targets []int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(targets) == 0 {
		return Result{}, ErrNoTargets
	}
	if err := dijkstra.ValidateAlpha(cfg.Alpha); err != nil {
		return Result{}, fmt.Errorf("selector: %w", err)
	}

	// Invalid anchors fall through to dijkstra, which reports them.
	var reach *bfs.BFSResult
	if adj != nil && adj.Has(anchor) {
		r, err := bfs.BFS(adj, anchor)
		if err != nil {
			return Result{}, fmt.Errorf("selector: reachability: %w", err)
		}
		reach = r
	}

	res := Result{
		Anchor:     anchor,
		Target:     -1,
		Length:     math.Inf(1),
		Candidates: make([]Candidate, 0, len(targets)),
	}
	for _, target := range targets {
		if reach != nil && adj.Has(target) && !reach.Reached(target) {
			res.Unreachable = append(res.Unreachable, target)
			res.Candidates = append(res.Candidates, Candidate{Target: target, Length: math.Inf(1)})
			continue
		}

		sp, err := dijkstra.ShortestPath(adj,
			dijkstra.Source(anchor),
			dijkstra.Target(target),
			dijkstra.WithAlpha(cfg.Alpha),
		)
		if err != nil {
			return Result{}, fmt.Errorf("selector: target %d: %w", target, err)
		}

		c := Candidate{Target: target, Path: sp.Path, Length: math.Inf(1), Hops: sp.Hops}
		if !sp.Found() {
			res.Unreachable = append(res.Unreachable, target)
			res.Candidates = append(res.Candidates, c)
			continue
		}
		c.Length = adj.PathLength(sp.Path)
		res.Candidates = append(res.Candidates, c)

		if c.Length < res.Length {
			res.Target = c.Target
			res.Path = c.Path
			res.Length = c.Length
		}
	}

	if res.Path == nil {
		return res, ErrNoPath
	}

	return res, nil
}
