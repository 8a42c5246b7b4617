// SPDX-License-Identifier: MIT
//
// File: hittest.go
// Role: Point-in-vertex hit testing backed by an R-tree of vertex hit boxes.
// Policy:
//   - First-match, not nearest-match: among all vertices whose hit circle
//     contains the query point, the one created earliest (lowest ID) wins.
//   - The R-tree only narrows candidates; the exact circle test decides.

package core

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// R-tree shape: 2D, min 25 / max 50 entries per node.
const (
	indexDims        = 2
	indexMinChildren = 25
	indexMaxChildren = 50
)

// hitSlack widens both the stored boxes and the query box so that points on
// the circle boundary are never lost to R-tree edge comparisons.
const hitSlack = 1e-6

// hitBox is the R-tree entry for one vertex.
type hitBox struct {
	id   int
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (h *hitBox) Bounds() rtreego.Rect {
	return h.bbox
}

func newHitBox(id int, p orb.Point, r float64) *hitBox {
	return &hitBox{id: id, bbox: squareAround(p, r+hitSlack)}
}

// squareAround returns the axis-aligned square of half-side h centred on p.
// h > 0 is guaranteed by callers, so NewRect cannot fail here.
func squareAround(p orb.Point, h float64) rtreego.Rect {
	rect, _ := rtreego.NewRect(
		rtreego.Point{p.X() - h, p.Y() - h},
		[]float64{2 * h, 2 * h},
	)

	return rect
}

// FindVertexAt returns the ID of the first vertex, in creation order, whose
// hit circle contains p. The boundary counts as inside (dx²+dy² <= R²).
//
// Overlapping vertices resolve to the earliest-created one even when a later
// vertex is nearer to p.
//
// Complexity: O(log V + k) where k is the number of candidate boxes.
func (g *Graph) FindVertexAt(p orb.Point) (int, bool) {
	if !finite(p) {
		return -1, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.vertices) == 0 {
		return -1, false
	}

	r2 := g.hitRadius * g.hitRadius
	best := -1
	for _, item := range g.index.SearchIntersect(squareAround(p, hitSlack)) {
		id := item.(*hitBox).id
		if best != -1 && id >= best {
			continue
		}
		v := g.vertices[id].Pos
		dx, dy := v.X()-p.X(), v.Y()-p.Y()
		if dx*dx+dy*dy <= r2 {
			best = id
		}
	}
	if best == -1 {
		return -1, false
	}

	return best, true
}
