package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bocafinder/internal/ui"
	"github.com/katalvlaran/bocafinder/render"
	"github.com/katalvlaran/bocafinder/server"
	"github.com/katalvlaran/bocafinder/session"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an interactive session over HTTP",
		Long: `Expose one session as a JSON API.

  POST /api/click {"x":..,"y":..}   raw click (buttons included)
  POST /api/submit                  finish drawing
  POST /api/find                    run the query
  POST /api/reset                   start a fresh session
  GET  /api/state                   current view
  GET  /api/snapshot.png            rendered canvas
  GET  /api/graph.geojson           graph export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			srv, err := server.New(
				func() (*session.Session, error) { return newSession(cfg) },
				server.WithLogger(log.New(os.Stderr, "bocafinder ", log.LstdFlags)),
				server.WithRenderOptions(
					render.WithCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Grid),
					render.WithRadius(cfg.HitRadius),
				),
			)
			if err != nil {
				return err
			}

			ui.Banner(cmd.OutOrStdout(), "serve")
			ui.Info.Fprintf(cmd.OutOrStdout(), "  Listening on %s\n", addr)

			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
