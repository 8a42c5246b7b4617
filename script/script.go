// Package script reads TOML event scripts and replays them through a
// session.Session, standing in for a window loop.
//
//	[[events]]
//	kind = "click"
//	x = 100.0
//	y = 100.0
//
//	[[events]]
//	kind = "submit"
//
//	[[events]]
//	kind = "find"
//
// "click" is dispatched like a raw screen click (so it may hit a button);
// "submit" and "find" press the buttons directly.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/bocafinder/selector"
	"github.com/katalvlaran/bocafinder/session"
)

// Sentinel errors for script parsing.
var (
	ErrUnknownKind = errors.New("script: unknown event kind")
	ErrEmpty       = errors.New("script: no events")
)

// Event kinds.
const (
	KindClick  = "click"
	KindSubmit = "submit"
	KindFind   = "find"
)

// Event is one scripted user action.
type Event struct {
	Kind string  `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

// Point returns the event position.
func (e Event) Point() orb.Point { return orb.Point{e.X, e.Y} }

// Script is an ordered list of events.
type Script struct {
	Events []Event `toml:"events"`
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if len(s.Events) == 0 {
		return nil, ErrEmpty
	}
	for i, e := range s.Events {
		switch e.Kind {
		case KindClick, KindSubmit, KindFind:
		default:
			return nil, fmt.Errorf("%w: event %d: %q", ErrUnknownKind, i, e.Kind)
		}
	}

	return &s, nil
}

// Load parses the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Step is the record of one replayed event.
//
// Err holds a user-level failure (wrong phase, nothing selected, no path);
// replay continues past it the way an interactive front end would.
type Step struct {
	Index   int
	Event   Event
	Outcome session.Outcome
	Err     error
}

// Query reports whether this step ran Find Distance, successfully or not.
func (st Step) Query() bool {
	return st.Outcome.Kind == session.OutcomeQueried ||
		errors.Is(st.Err, session.ErrNothingSelected) ||
		errors.Is(st.Err, selector.ErrNoPath)
}

// Replay feeds every event into s and returns one Step per event.
// The optional observer is called after each step.
func Replay(s *session.Session, sc *Script, observe func(Step)) []Step {
	steps := make([]Step, 0, len(sc.Events))
	for i, e := range sc.Events {
		st := Step{Index: i, Event: e}
		switch e.Kind {
		case KindClick:
			st.Outcome, st.Err = s.Dispatch(e.Point())
		case KindSubmit:
			st.Outcome, st.Err = s.PressSubmit()
		case KindFind:
			res, err := s.PressFindDistance()
			st.Err = err
			st.Outcome = session.Outcome{Kind: session.OutcomeIgnored, Vertex: -1}
			if err == nil || errors.Is(err, selector.ErrNoPath) {
				st.Outcome = session.Outcome{Kind: session.OutcomeQueried, Vertex: res.Target, Result: &res}
			}
		}
		steps = append(steps, st)
		if observe != nil {
			observe(st)
		}
	}

	return steps
}
