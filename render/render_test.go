package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bocafinder/render"
	"github.com/katalvlaran/bocafinder/session"
)

// queried returns the view of a triangle session after a successful query
// from vertex 0 to vertex 2 along 0-1-2.
func queried(t *testing.T) session.View {
	t.Helper()
	s, err := session.New()
	require.NoError(t, err)
	for _, p := range []orb.Point{{100, 100}, {300, 100}, {300, 300}, {500, 100}} {
		_, err = s.Graph().AddVertex(p)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}} {
		_, err = s.Graph().AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	_, err = s.PressSubmit()
	require.NoError(t, err)
	_, err = s.Click(orb.Point{100, 100})
	require.NoError(t, err)
	_, err = s.Click(orb.Point{300, 300})
	require.NoError(t, err)
	_, err = s.PressFindDistance()
	require.NoError(t, err)

	return s.View()
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// ------------------------------------------------------------------------
// 1. PNG
// ------------------------------------------------------------------------

func TestImage_Layers(t *testing.T) {
	v := queried(t)
	img, err := render.Image(v)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	// Disc rims (away from the centred label).
	assert.Equal(t, rgba(render.Anchor), rgba(img.At(100, 110)))
	assert.Equal(t, rgba(render.Target), rgba(img.At(300, 310)))
	assert.Equal(t, rgba(render.Plain), rgba(img.At(500, 110)))

	// Midpoint of the highlighted edge 0-1.
	assert.Equal(t, rgba(render.PathColor), rgba(img.At(200, 100)))

	// Inside a button.
	assert.Equal(t, rgba(render.ButtonFill), rgba(img.At(655, 505)))
}

func TestImage_BadCanvas(t *testing.T) {
	_, err := render.Image(session.View{}, render.WithCanvas(0, 10, 0))
	assert.ErrorIs(t, err, render.ErrBadCanvas)
}

func TestPNG_Encodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, queried(t), render.WithCanvas(640, 480, 0)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.png")
	require.NoError(t, render.SavePNG(path, queried(t)))
	assert.FileExists(t, path)
}

// ------------------------------------------------------------------------
// 2. GeoJSON
// ------------------------------------------------------------------------

func TestGeoJSON(t *testing.T) {
	v := queried(t)
	fc := render.GeoJSON(v)
	require.Len(t, fc.Features, 4+2+1)

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)

	var anchors, targets, paths int
	for _, f := range back.Features {
		switch f.Properties.MustString("kind") {
		case render.KindVertex:
			switch f.Properties.MustString("role") {
			case render.RoleAnchor:
				anchors++
			case render.RoleTarget:
				targets++
			}
		case render.KindPath:
			paths++
			assert.InDelta(t, 400.0, f.Properties.MustFloat64("length"), 1e-9)
			assert.Equal(t, 2, f.Properties.MustInt("target"))
			ls, ok := f.Geometry.(orb.LineString)
			require.True(t, ok)
			assert.Len(t, ls, 3)
		}
	}
	assert.Equal(t, 1, anchors)
	assert.Equal(t, 1, targets)
	assert.Equal(t, 1, paths)
}

func TestGeoJSON_ReachableFromAnchor(t *testing.T) {
	fc := render.GeoJSON(queried(t))

	reach := map[int]bool{}
	comp := map[int]int{}
	for _, f := range fc.Features {
		if f.Properties["kind"] != render.KindVertex {
			continue
		}
		id := f.Properties.MustInt("id")
		reach[id] = f.Properties.MustBool("reachable")
		comp[id] = f.Properties.MustInt("component")
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: false}, reach)
	assert.Equal(t, map[int]int{0: 0, 1: 0, 2: 0, 3: 3}, comp)
}

func TestGeoJSON_NoQuery(t *testing.T) {
	s, err := session.New()
	require.NoError(t, err)
	_, err = s.Click(orb.Point{50, 50})
	require.NoError(t, err)

	fc := render.GeoJSON(s.View())
	require.Len(t, fc.Features, 1)
	assert.Equal(t, render.RolePlain, fc.Features[0].Properties["role"])
	assert.NotContains(t, fc.Features[0].Properties, "component")
}
