// Package render turns a session.View into artifacts a person can look at:
// a PNG snapshot of the canvas and a GeoJSON export of the graph.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/paulmach/orb"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/bocafinder/core"
	"github.com/katalvlaran/bocafinder/session"
)

// Palette used for every snapshot.
var (
	Background = color.White
	GridLine   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	EdgeColor  = color.Black
	PathColor  = color.RGBA{R: 255, A: 255}
	Anchor     = color.RGBA{G: 160, A: 255}
	Target     = color.RGBA{B: 255, A: 255}
	Plain      = color.Black
	Pending    = color.RGBA{R: 255, G: 140, A: 255}
	Label      = color.White
	ButtonFill = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Options sizes the canvas.
type Options struct {
	Width     int     // canvas width in pixels
	Height    int     // canvas height in pixels
	Grid      int     // grid spacing; 0 disables the grid
	Radius    float64 // vertex disc radius
	EdgeWidth float64
	PathWidth float64
	FontSize  float64
}

// Option is a functional option for PNG and Image.
type Option func(*Options)

// WithCanvas sets width, height and grid spacing.
func WithCanvas(w, h, grid int) Option {
	return func(o *Options) { o.Width, o.Height, o.Grid = w, h, grid }
}

// WithRadius sets the vertex disc radius.
func WithRadius(r float64) Option { return func(o *Options) { o.Radius = r } }

// DefaultOptions matches the interactive canvas: 800×600, 40 px grid, radius 15.
func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		Grid:      40,
		Radius:    core.DefaultHitRadius,
		EdgeWidth: 2,
		PathWidth: 4,
		FontSize:  14,
	}
}

// ErrBadCanvas indicates non-positive canvas dimensions.
var ErrBadCanvas = errors.New("render: canvas dimensions must be positive")

// Image draws v and returns the raster.
//
// Layers, bottom to top:
//  1. background and grid
//  2. all edges in black
//  3. highlighted path in red, wider
//  4. vertex discs: anchor green, targets blue, pending orange, others black
//  5. 1-based labels centred on each disc
//  6. Submit and Find Distance buttons
func Image(v session.View, opts ...Option) (image.Image, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadCanvas, cfg.Width, cfg.Height)
	}

	face, err := labelFace(cfg.FontSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetColor(Background)
	dc.Clear()
	dc.SetFontFace(face)

	drawGrid(dc, cfg)
	drawEdges(dc, v, cfg)
	drawPath(dc, v, cfg)
	drawVertices(dc, v, cfg)
	drawButtons(dc, v)

	return dc.Image(), nil
}

// PNG encodes the snapshot of v to w.
func PNG(w io.Writer, v session.View, opts ...Option) error {
	img, err := Image(v, opts...)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)

	return dc.EncodePNG(w)
}

// SavePNG writes the snapshot of v to path.
func SavePNG(path string, v session.View, opts ...Option) error {
	img, err := Image(v, opts...)
	if err != nil {
		return err
	}

	return gg.SavePNG(path, img)
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}

	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

func drawGrid(dc *gg.Context, cfg Options) {
	if cfg.Grid <= 0 {
		return
	}
	dc.SetColor(GridLine)
	dc.SetLineWidth(1)
	for x := 0; x <= cfg.Width; x += cfg.Grid {
		dc.DrawLine(float64(x), 0, float64(x), float64(cfg.Height))
	}
	for y := 0; y <= cfg.Height; y += cfg.Grid {
		dc.DrawLine(0, float64(y), float64(cfg.Width), float64(y))
	}
	dc.Stroke()
}

func drawEdges(dc *gg.Context, v session.View, cfg Options) {
	dc.SetColor(EdgeColor)
	dc.SetLineWidth(cfg.EdgeWidth)
	for _, e := range v.Edges {
		a, b := v.Vertices[e.U].Pos, v.Vertices[e.V].Pos
		dc.DrawLine(a.X(), a.Y(), b.X(), b.Y())
	}
	dc.Stroke()
}

func drawPath(dc *gg.Context, v session.View, cfg Options) {
	if len(v.Path) < 2 {
		return
	}
	dc.SetColor(PathColor)
	dc.SetLineWidth(cfg.PathWidth)
	for _, e := range v.PathEdges() {
		a, b := v.Vertices[e.U].Pos, v.Vertices[e.V].Pos
		dc.DrawLine(a.X(), a.Y(), b.X(), b.Y())
	}
	dc.Stroke()
}

// VertexColor is the disc color of vertex id in v.
func VertexColor(v session.View, id int) color.Color {
	switch {
	case id == v.Anchor:
		return Anchor
	case v.IsTarget(id):
		return Target
	case id == v.Pending:
		return Pending
	default:
		return Plain
	}
}

func drawVertices(dc *gg.Context, v session.View, cfg Options) {
	for _, vx := range v.Vertices {
		dc.SetColor(VertexColor(v, vx.ID))
		dc.DrawCircle(vx.Pos.X(), vx.Pos.Y(), cfg.Radius)
		dc.Fill()

		dc.SetColor(Label)
		dc.DrawStringAnchored(strconv.Itoa(vx.ID+1), vx.Pos.X(), vx.Pos.Y(), 0.5, 0.35)
	}
}

func drawButtons(dc *gg.Context, v session.View) {
	for _, btn := range []struct {
		text string
		b    orb.Bound
	}{
		{"Submit", v.Buttons.Submit},
		{"Find Distance", v.Buttons.FindDistance},
	} {
		x, y := btn.b.Min.X(), btn.b.Min.Y()
		w, h := btn.b.Max.X()-x, btn.b.Max.Y()-y
		dc.SetColor(ButtonFill)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
		dc.DrawStringAnchored(btn.text, x+w/2, y+h/2, 0.5, 0.35)
	}
}
