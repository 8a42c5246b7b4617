package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bocafinder/internal/ui"
	"github.com/katalvlaran/bocafinder/script"
)

func replayCmd() *cobra.Command {
	var (
		pngPath string
		geoPath string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Replay a scripted click session and print every query",
		Long: `Feed a TOML event script through a session as if a user clicked it.

  bocafinder replay session.toml
  bocafinder replay session.toml --png out.png --geojson out.json -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sc, err := script.Load(args[0])
			if err != nil {
				ui.Bad.Printf("  Failed to load script: %v\n", err)
				return err
			}
			sess, err := newSession(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ui.Banner(out, fmt.Sprintf("replay %s (%d events, alpha %.2f)", args[0], len(sc.Events), cfg.Alpha))

			script.Replay(sess, sc, func(st script.Step) {
				if verbose {
					ui.Outcome(out, st.Index, st.Outcome)
				}
				if st.Event.Kind == script.KindFind || st.Query() {
					reportQuery(out, st.Outcome.Result, st.Err)
				}
			})

			return writeArtifacts(out, cfg, sess.View(), pngPath, geoPath)
		},
	}

	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG snapshot of the final state")
	cmd.Flags().StringVar(&geoPath, "geojson", "", "write the final graph as GeoJSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every event outcome")

	return cmd
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
