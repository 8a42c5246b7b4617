// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session state machine: Click, PressSubmit, PressFindDistance, Dispatch.
// Determinism:
//   - Targets keep first-insertion order; the selector breaks ties by it.
// Concurrency:
//   - A Session is not safe for concurrent use; callers serialise events.

package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/adjacency"
	"github.com/katalvlaran/bocafinder/core"
	"github.com/katalvlaran/bocafinder/dijkstra"
	"github.com/katalvlaran/bocafinder/selector"
)

const noVertex = -1

// Session owns one graph and the selection state built on top of it.
type Session struct {
	opts  Options
	graph *core.Graph
	phase Phase

	pending int // Drawing: first endpoint of the edge being drawn, or noVertex

	anchor   int   // Selecting: anchor vertex, or noVertex
	targets  []int // Selecting: ordered, no duplicates
	isTarget map[int]bool

	adj  *adjacency.Map   // built once on Submit; the graph is frozen afterwards
	last *selector.Result // most recent successful query
}

// New creates a Session in the Drawing phase.
//
// Steps:
//  1. Apply options over DefaultOptions.
//  2. Validate alpha (ErrBadAlpha), hit radius (core.ErrBadHitRadius) and layout (ErrBadLayout).
//  3. Create the empty graph.
func New(opts ...Option) (*Session, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := dijkstra.ValidateAlpha(cfg.Alpha); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAlpha, cfg.Alpha)
	}
	if !(cfg.HitRadius > 0) || math.IsInf(cfg.HitRadius, 1) {
		return nil, fmt.Errorf("%w: %v", core.ErrBadHitRadius, cfg.HitRadius)
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		opts:     cfg,
		graph:    core.NewGraph(core.WithHitRadius(cfg.HitRadius)),
		phase:    Drawing,
		pending:  noVertex,
		anchor:   noVertex,
		isTarget: make(map[int]bool),
	}, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Options returns the resolved options.
func (s *Session) Options() Options { return s.opts }

// Graph exposes the underlying graph for read access.
func (s *Session) Graph() *core.Graph { return s.graph }

// Anchor returns the anchor vertex and whether one is set.
func (s *Session) Anchor() (int, bool) { return s.anchor, s.anchor != noVertex }

// Targets returns a copy of the targets in insertion order.
func (s *Session) Targets() []int { return append([]int(nil), s.targets...) }

// Pending returns the pending edge endpoint and whether one is set.
func (s *Session) Pending() (int, bool) { return s.pending, s.pending != noVertex }

// LastResult returns the most recent successful query, or nil.
func (s *Session) LastResult() *selector.Result { return s.last }

// Click handles a click on the drawing surface (never on a button).
func (s *Session) Click(p orb.Point) (Outcome, error) {
	if s.phase == Drawing {
		return s.clickDrawing(p)
	}

	return s.clickSelecting(p), nil
}

// clickDrawing:
//  1. Empty space: add a vertex, drop any pending endpoint.
//  2. Hit with nothing pending: the hit vertex becomes pending.
//  3. Hit on the pending vertex: clear pending, no edge.
//  4. Hit on another vertex: add the edge (idempotent), clear pending.
func (s *Session) clickDrawing(p orb.Point) (Outcome, error) {
	hit, ok := s.graph.FindVertexAt(p)
	if !ok {
		id, err := s.graph.AddVertex(p)
		if err != nil {
			return ignored(), fmt.Errorf("session: add vertex: %w", err)
		}
		s.pending = noVertex

		return Outcome{Kind: OutcomeVertexAdded, Vertex: id}, nil
	}

	switch s.pending {
	case noVertex:
		s.pending = hit
		return Outcome{Kind: OutcomePendingSet, Vertex: hit}, nil
	case hit:
		s.pending = noVertex
		return Outcome{Kind: OutcomePendingCleared, Vertex: hit}, nil
	}

	from := s.pending
	s.pending = noVertex
	added, err := s.graph.AddEdge(from, hit)
	if err != nil {
		return ignored(), fmt.Errorf("session: add edge %d-%d: %w", from, hit, err)
	}
	e := core.NewEdge(from, hit)
	if !added {
		return Outcome{Kind: OutcomeEdgeExists, Vertex: hit, Edge: &e}, nil
	}

	return Outcome{Kind: OutcomeEdgeAdded, Vertex: hit, Edge: &e}, nil
}

// clickSelecting sets the anchor first, then appends targets.
// The anchor itself may become a target.
func (s *Session) clickSelecting(p orb.Point) Outcome {
	hit, ok := s.graph.FindVertexAt(p)
	if !ok {
		return ignored()
	}
	if s.anchor == noVertex {
		s.anchor = hit
		return Outcome{Kind: OutcomeAnchorSet, Vertex: hit}
	}
	if s.isTarget[hit] {
		return Outcome{Kind: OutcomeIgnored, Vertex: hit}
	}
	s.isTarget[hit] = true
	s.targets = append(s.targets, hit)

	return Outcome{Kind: OutcomeTargetAdded, Vertex: hit}
}

// PressSubmit ends the Drawing phase: the graph is frozen, the adjacency map
// is built, and any pending endpoint is dropped. Pressing it again does nothing.
func (s *Session) PressSubmit() (Outcome, error) {
	if s.phase == Selecting {
		return ignored(), nil
	}

	s.graph.Freeze()
	adj, err := adjacency.Build(s.graph)
	if err != nil {
		return ignored(), fmt.Errorf("session: submit: %w", err)
	}
	s.adj = adj
	s.pending = noVertex
	s.phase = Selecting

	return Outcome{Kind: OutcomeSubmitted, Vertex: noVertex}, nil
}

// PressFindDistance runs the multi-target query.
//
// Errors:
//   - ErrWrongPhase in Drawing.
//   - ErrNothingSelected when the anchor is unset or there are no targets.
//   - selector.ErrNoPath when no target is reachable; the breakdown is still returned.
//
// On success the result becomes the highlighted path in View.
func (s *Session) PressFindDistance() (selector.Result, error) {
	if s.phase != Selecting {
		return selector.Result{}, ErrWrongPhase
	}
	if s.anchor == noVertex || len(s.targets) == 0 {
		return selector.Result{}, ErrNothingSelected
	}

	res, err := selector.Select(s.adj, s.anchor, s.targets, selector.WithAlpha(s.opts.Alpha))
	if err != nil {
		return res, err
	}
	s.last = &res

	return res, nil
}

// Dispatch routes a raw screen click: the Submit region first, then the
// Find Distance region, then the graph. The Submit region never reaches the
// graph. The Find Distance region is a button only while Selecting; during
// Drawing a click there is an ordinary canvas click.
func (s *Session) Dispatch(p orb.Point) (Outcome, error) {
	switch {
	case s.opts.Layout.Submit.Contains(p):
		return s.PressSubmit()
	case s.phase == Selecting && s.opts.Layout.FindDistance.Contains(p):
		res, err := s.PressFindDistance()
		if err != nil {
			if errors.Is(err, selector.ErrNoPath) {
				return Outcome{Kind: OutcomeQueried, Vertex: noVertex, Result: &res}, err
			}
			return ignored(), err
		}
		return Outcome{Kind: OutcomeQueried, Vertex: res.Target, Result: &res}, nil
	default:
		return s.Click(p)
	}
}
