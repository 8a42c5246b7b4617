package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/bocafinder/session"
)

// Feature kinds written to the "kind" property.
const (
	KindVertex = "vertex"
	KindEdge   = "edge"
	KindPath   = "path"
)

// Vertex roles written to the "role" property.
const (
	RoleAnchor = "anchor"
	RoleTarget = "target"
	RolePlain  = "vertex"
)

// GeoJSON exports v as a FeatureCollection in screen coordinates (x right, y down).
//
// One Point per vertex (id, label, role, and once submitted component plus
// reachable from the anchor), one LineString per edge (u, v, length)
// and, when a query succeeded, one LineString for the highlighted path
// (target, length, vertices).
func GeoJSON(v session.View) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, vx := range v.Vertices {
		f := geojson.NewFeature(vx.Pos)
		f.Properties["kind"] = KindVertex
		f.Properties["id"] = vx.ID
		f.Properties["label"] = vx.ID + 1
		f.Properties["role"] = role(v, vx.ID)
		if vx.ID < len(v.Components) {
			f.Properties["component"] = v.Components[vx.ID]
			if v.Anchor >= 0 {
				f.Properties["reachable"] = v.ReachableFromAnchor(vx.ID)
			}
		}
		fc.Append(f)
	}

	for _, e := range v.Edges {
		ls := orb.LineString{v.Vertices[e.U].Pos, v.Vertices[e.V].Pos}
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindEdge
		f.Properties["u"] = e.U
		f.Properties["v"] = e.V
		f.Properties["length"] = planar.Length(ls)
		fc.Append(f)
	}

	if len(v.Path) > 0 {
		ls := make(orb.LineString, 0, len(v.Path))
		for _, id := range v.Path {
			ls = append(ls, v.Vertices[id].Pos)
		}
		var g orb.Geometry = ls
		if len(ls) == 1 {
			g = ls[0]
		}
		f := geojson.NewFeature(g)
		f.Properties["kind"] = KindPath
		f.Properties["target"] = v.Target
		f.Properties["length"] = v.Length
		f.Properties["vertices"] = append([]int(nil), v.Path...)
		fc.Append(f)
	}

	return fc
}

func role(v session.View, id int) string {
	switch {
	case id == v.Anchor:
		return RoleAnchor
	case v.IsTarget(id):
		return RoleTarget
	default:
		return RolePlain
	}
}
