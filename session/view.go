package session

import (
	"github.com/katalvlaran/bocafinder/bfs"
	"github.com/katalvlaran/bocafinder/core"
)

// View is a read-only snapshot of everything a renderer needs.
type View struct {
	Phase    Phase         `json:"phase"`
	Vertices []core.Vertex `json:"vertices"`
	Edges    []core.Edge   `json:"edges"`

	Pending int   `json:"pending"` // -1 when none
	Anchor  int   `json:"anchor"`  // -1 when none
	Targets []int `json:"targets"`

	Path   []int   `json:"path,omitempty"` // highlighted route of the last query
	Target int     `json:"target"`         // winner of the last query, -1 when none
	Length float64 `json:"length"`

	// Components labels each vertex with the smallest ID of its connected
	// component. Nil while Drawing, when the graph can still change.
	Components []int `json:"components,omitempty"`

	Buttons Layout `json:"buttons"`
}

// View returns the current snapshot. Slices are copies.
func (s *Session) View() View {
	vs, es := s.graph.Snapshot()
	v := View{
		Phase:    s.phase,
		Vertices: vs,
		Edges:    es,
		Pending:  s.pending,
		Anchor:   s.anchor,
		Targets:  s.Targets(),
		Target:   noVertex,
		Buttons:  s.opts.Layout,
	}
	if s.adj != nil {
		if labels, err := bfs.Components(s.adj); err == nil {
			v.Components = labels
		}
	}
	if s.last != nil {
		v.Path = append([]int(nil), s.last.Path...)
		v.Target = s.last.Target
		v.Length = s.last.Length
	}

	return v
}

// IsTarget reports whether id is in vw.Targets.
func (vw View) IsTarget(id int) bool {
	for _, t := range vw.Targets {
		if t == id {
			return true
		}
	}

	return false
}

// ReachableFromAnchor reports whether id shares the anchor's connected
// component. It is false when no anchor is set or components are unknown.
func (vw View) ReachableFromAnchor(id int) bool {
	n := len(vw.Components)
	if vw.Anchor < 0 || vw.Anchor >= n || id < 0 || id >= n {
		return false
	}

	return vw.Components[id] == vw.Components[vw.Anchor]
}

// PathEdges returns the consecutive pairs of the highlighted path as normalised edges.
func (vw View) PathEdges() []core.Edge {
	if len(vw.Path) < 2 {
		return nil
	}
	out := make([]core.Edge, 0, len(vw.Path)-1)
	for i := 0; i+1 < len(vw.Path); i++ {
		out = append(out, core.NewEdge(vw.Path[i], vw.Path[i+1]))
	}

	return out
}
