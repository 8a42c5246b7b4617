package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bocafinder/config"
	"github.com/katalvlaran/bocafinder/internal/ui"
	"github.com/katalvlaran/bocafinder/session"
)

var version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bocafinder",
	Short: "bocafinder: nearest-target routing on hand-drawn planar graphs",
	Long: ui.Brand.Sprint("bocafinder") + ": draw a planar graph, pick an anchor and targets,\n" +
		ui.Subtle.Sprint("and find the target whose route is geometrically shortest"),
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate("bocafinder {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	rootCmd.AddCommand(
		replayCmd(),
		serveCmd(),
		demoCmd(),
		configCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		ui.Bad.Printf("  Failed to load config: %v\n", err)
		return nil, err
	}

	return cfg, nil
}

func newSession(cfg *config.Config) (*session.Session, error) {
	return session.New(cfg.SessionOptions()...)
}
