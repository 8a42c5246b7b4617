package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bocafinder/builder"
	"github.com/katalvlaran/bocafinder/internal/ui"
	"github.com/katalvlaran/bocafinder/session"
)

var errLabelShadowed = errors.New("demo: vertex cannot be clicked")

func demoCmd() *cobra.Command {
	var (
		layout  string
		n       int
		seed    int64
		alpha   float64
		anchor  int
		targets []int
		pngPath string
		geoPath string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a fixture graph and run one query on it",
		Long: `Lay out a generated graph, then click the anchor and targets by label.

  bocafinder demo --layout grid --n 4 --targets 16,13
  bocafinder demo --layout random --n 12 --seed 3 --alpha 0 --png demo.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("alpha") {
				cfg.Alpha = alpha
				if err := cfg.Validate(); err != nil {
					ui.Bad.Printf("  %v\n", err)
					return err
				}
			}

			con, err := builder.ByName(layout, n)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				return err
			}
			sess, err := newSession(cfg)
			if err != nil {
				return err
			}
			if err := builder.Apply(sess.Graph(), []builder.BuilderOption{builder.WithSeed(seed)}, con); err != nil {
				ui.Bad.Printf("  %v\n", err)
				return err
			}
			if _, err := sess.PressSubmit(); err != nil {
				return err
			}

			count := sess.Graph().VertexCount()
			if len(targets) == 0 {
				targets = []int{count}
			}
			for _, label := range append([]int{anchor}, targets...) {
				if err := clickLabel(sess, label); err != nil {
					ui.Bad.Printf("  %v\n", err)
					return err
				}
			}

			out := cmd.OutOrStdout()
			ui.Banner(out, fmt.Sprintf("demo %s n=%d (%d vertices, %d edges, alpha %.2f)",
				layout, n, count, sess.Graph().EdgeCount(), cfg.Alpha))

			res, qerr := sess.PressFindDistance()
			reportQuery(out, &res, qerr)

			return writeArtifacts(out, cfg, sess.View(), pngPath, geoPath)
		},
	}

	cmd.Flags().StringVar(&layout, "layout", builder.LayoutGrid, "path|cycle|star|wheel|grid|complete|random")
	cmd.Flags().IntVar(&n, "n", 4, "vertex count (grid: side length)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the random layout")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.7, "distance weight in [0,1]; overrides the config")
	cmd.Flags().IntVar(&anchor, "anchor", 1, "anchor label (1-based)")
	cmd.Flags().IntSliceVar(&targets, "targets", nil, "target labels (1-based, default: last vertex)")
	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG snapshot")
	cmd.Flags().StringVar(&geoPath, "geojson", "", "write the graph as GeoJSON")

	return cmd
}

// clickLabel clicks the centre of the vertex with 1-based label. Hit-testing
// is first-match, so a vertex whose centre lies inside an earlier vertex's disc
// cannot be clicked; that is reported instead of selecting the wrong vertex.
func clickLabel(sess *session.Session, label int) error {
	v, err := sess.Graph().Vertex(label - 1)
	if err != nil {
		return fmt.Errorf("label %d: %w", label, err)
	}
	if hit, ok := sess.Graph().FindVertexAt(v.Pos); !ok || hit != v.ID {
		return fmt.Errorf("%w: label %d is covered by label %d", errLabelShadowed, label, hit+1)
	}
	_, err = sess.Click(v.Pos)

	return err
}
