package main

import (
	"errors"
	"io"

	"github.com/katalvlaran/bocafinder/config"
	"github.com/katalvlaran/bocafinder/internal/ui"
	"github.com/katalvlaran/bocafinder/render"
	"github.com/katalvlaran/bocafinder/selector"
	"github.com/katalvlaran/bocafinder/session"
)

// reportQuery prints the outcome of one Find Distance press.
// It returns false when the press did not produce a route.
func reportQuery(w io.Writer, res *selector.Result, err error) bool {
	switch {
	case err == nil && res != nil:
		ui.Report(w, *res)
		return true
	case errors.Is(err, session.ErrNothingSelected):
		ui.Notice(w, session.NoticeNothingSelected)
	case errors.Is(err, selector.ErrNoPath):
		ui.Notice(w, session.NoticeNoPath)
	case errors.Is(err, session.ErrWrongPhase):
		ui.Notice(w, "Press Submit before Find Distance.")
	case err != nil:
		ui.Bad.Fprintf(w, "  query failed: %v\n", err)
	}

	return false
}

// writeArtifacts saves the optional PNG and GeoJSON outputs.
func writeArtifacts(w io.Writer, cfg *config.Config, v session.View, pngPath, geoPath string) error {
	if pngPath != "" {
		opts := []render.Option{
			render.WithCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Grid),
			render.WithRadius(cfg.HitRadius),
		}
		if err := render.SavePNG(pngPath, v, opts...); err != nil {
			return err
		}
		ui.Subtle.Fprintf(w, "  wrote %s\n", pngPath)
	}
	if geoPath != "" {
		data, err := render.GeoJSON(v).MarshalJSON()
		if err != nil {
			return err
		}
		if err := writeFile(geoPath, data); err != nil {
			return err
		}
		ui.Subtle.Fprintf(w, "  wrote %s\n", geoPath)
	}

	return nil
}
