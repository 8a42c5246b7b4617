// Package session implements the two-phase interaction state machine that
// turns raw clicks into a planar graph and then into a multi-target query.
//
// # Phases
//
//	Drawing ──Submit──▶ Selecting
//
// In Drawing, a click on empty space adds a vertex; a click on a vertex
// makes it the pending endpoint, and a second click on a different vertex
// connects the two. Clicking the pending vertex again cancels it.
//
// Submit freezes the graph (core.ErrGraphFrozen on any later mutation),
// builds the adjacency map once, and drops any pending endpoint. There is no
// transition back.
//
// In Selecting, the first vertex hit becomes the anchor and every later hit
// is appended to the target list (once). Re-clicking the anchor adds it as a
// target; its route is the single vertex and has length 0.
//
// # Queries
//
// PressFindDistance runs selector.Select with the session's alpha. The two
// failure conditions stay distinct:
//
//	ErrNothingSelected   anchor unset or no targets; no search runs
//	selector.ErrNoPath   search ran, every target unreachable
//
// # Dispatch
//
// Dispatch is the raw-click entry point of a front end. It checks the Submit
// region, then the Find Distance region, then hands the click to the graph.
// A click inside a button region is always consumed by that button, so
// pressing Find Distance while still drawing yields ErrWrongPhase rather than
// a stray vertex.
//
// A Session is single-threaded; wrap it in a mutex when sharing.
package session
