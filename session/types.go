// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Phase, Outcome, Layout, Options and sentinel errors for the interaction session.
// Policy:
//   - Two phases only: Drawing, then Selecting. There is no way back.
//   - Every user event yields an Outcome; no-ops report OutcomeIgnored.

package session

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/core"
	"github.com/katalvlaran/bocafinder/dijkstra"
	"github.com/katalvlaran/bocafinder/selector"
)

// Sentinel errors for session operations.
var (
	// ErrBadAlpha indicates an alpha outside [0,1] (or NaN) given to New.
	ErrBadAlpha = errors.New("session: alpha must be in [0,1]")

	// ErrBadLayout indicates an empty or overlapping button layout.
	ErrBadLayout = errors.New("session: invalid button layout")

	// ErrWrongPhase indicates an operation that is not allowed in the current phase.
	ErrWrongPhase = errors.New("session: operation not allowed in this phase")

	// ErrNothingSelected indicates a query without an anchor or without targets.
	ErrNothingSelected = errors.New("session: nothing selected, please select anchor and target nodes")
)

// User-facing notices for the two failed-query conditions.
const (
	NoticeNothingSelected = "Nothing found, please select anchor and target nodes."
	NoticeNoPath          = "No path found from the anchor to any target."
)

// Phase is the interaction phase of a Session.
type Phase int

const (
	// Drawing is the initial phase: clicks create vertices and edges.
	Drawing Phase = iota
	// Selecting starts after Submit: clicks choose the anchor and targets.
	Selecting
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Drawing:
		return "drawing"
	case Selecting:
		return "selecting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "drawing":
		*p = Drawing
	case "selecting":
		*p = Selecting
	default:
		return fmt.Errorf("session: unknown phase %q", b)
	}

	return nil
}

// OutcomeKind names what a single event did to the session.
type OutcomeKind int

const (
	OutcomeIgnored        OutcomeKind = iota // event had no effect
	OutcomeVertexAdded                       // Drawing: click on empty space
	OutcomePendingSet                        // Drawing: first endpoint chosen
	OutcomePendingCleared                    // Drawing: pending vertex clicked again
	OutcomeEdgeAdded                         // Drawing: second endpoint chosen, new edge
	OutcomeEdgeExists                        // Drawing: second endpoint chosen, edge already present
	OutcomeAnchorSet                         // Selecting: first vertex hit
	OutcomeTargetAdded                       // Selecting: later vertex hit
	OutcomeSubmitted                         // Drawing → Selecting
	OutcomeQueried                           // Find Distance ran (see Outcome.Result)
)

var outcomeNames = [...]string{
	"ignored", "vertex_added", "pending_set", "pending_cleared", "edge_added",
	"edge_exists", "anchor_set", "target_added", "submitted", "queried",
}

// String returns the snake_case outcome name.
func (k OutcomeKind) String() string {
	if k < 0 || int(k) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(k))
	}

	return outcomeNames[k]
}

// MarshalText encodes the outcome kind by name.
func (k OutcomeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes an outcome name.
func (k *OutcomeKind) UnmarshalText(b []byte) error {
	for i, name := range outcomeNames {
		if name == string(b) {
			*k = OutcomeKind(i)
			return nil
		}
	}

	return fmt.Errorf("session: unknown outcome %q", b)
}

// Outcome describes the effect of one event.
//
// Vertex is the vertex involved (-1 if none). Edge is set for edge outcomes.
// Result is set for OutcomeQueried, including a failed query that produced
// a per-target breakdown.
type Outcome struct {
	Kind   OutcomeKind      `json:"kind"`
	Vertex int              `json:"vertex"`
	Edge   *core.Edge       `json:"edge,omitempty"`
	Result *selector.Result `json:"result,omitempty"`
}

func ignored() Outcome { return Outcome{Kind: OutcomeIgnored, Vertex: -1} }

// Layout holds the screen regions of the two buttons.
type Layout struct {
	Submit       orb.Bound `json:"submit"`
	FindDistance orb.Bound `json:"find_distance"`
}

// DefaultLayout places both buttons in the lower-right corner of an 800×600 canvas.
func DefaultLayout() Layout {
	return Layout{
		Submit:       orb.Bound{Min: orb.Point{650, 500}, Max: orb.Point{770, 540}},
		FindDistance: orb.Bound{Min: orb.Point{650, 550}, Max: orb.Point{770, 590}},
	}
}

// Validate rejects empty regions and overlapping buttons.
func (l Layout) Validate() error {
	for name, b := range map[string]orb.Bound{"submit": l.Submit, "find_distance": l.FindDistance} {
		if b.Max.X() <= b.Min.X() || b.Max.Y() <= b.Min.Y() {
			return fmt.Errorf("%w: %s region is empty", ErrBadLayout, name)
		}
	}
	if l.Submit.Intersects(l.FindDistance) {
		return fmt.Errorf("%w: buttons overlap", ErrBadLayout)
	}

	return nil
}

// Options configures a Session.
type Options struct {
	Alpha     float64 // blend factor for every query
	HitRadius float64 // vertex hit radius in screen units
	Layout    Layout  // button regions used by Dispatch
}

// Option is a functional option for New.
type Option func(*Options)

// WithAlpha sets the blend factor for queries.
func WithAlpha(alpha float64) Option { return func(o *Options) { o.Alpha = alpha } }

// WithHitRadius sets the vertex hit radius.
func WithHitRadius(r float64) Option { return func(o *Options) { o.HitRadius = r } }

// WithLayout sets the button regions.
func WithLayout(l Layout) Option { return func(o *Options) { o.Layout = l } }

// DefaultOptions returns alpha 0.7, hit radius 15 and DefaultLayout.
func DefaultOptions() Options {
	return Options{
		Alpha:     dijkstra.DefaultAlpha,
		HitRadius: core.DefaultHitRadius,
		Layout:    DefaultLayout(),
	}
}
