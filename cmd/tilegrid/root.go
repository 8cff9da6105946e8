package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/internal/config"
	"github.com/katalvlaran/tilegrid/internal/mapfile"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	settings config.Settings
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tilegrid",
		Short: "Inspect tile maps: regions, neighbors and bridges",
		Long: `tilegrid reads YAML tile maps and runs grid queries over them.

Available commands:
  regions    - Partition a map into 4-connected regions
  fill       - Flood fill the region around one cell
  neighbors  - List the neighbors of one cell
  bridge     - Find the cheapest conversion joining two regions

Examples:
  tilegrid regions maps/cave.yaml
  tilegrid fill maps/cave.yaml --at 1,1
  tilegrid neighbors maps/cave.yaml --at 0,0 --group all
  tilegrid bridge maps/islands.yaml --from 1,0 --to 4,0 --free 12`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to settings file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(a.regionsCmd())
	root.AddCommand(a.fillCmd())
	root.AddCommand(a.neighborsCmd())
	root.AddCommand(a.bridgeCmd())
	return root
}

// setup loads settings and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.settings = cfg

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "tilegrid",
	})
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.logger.SetLevel(lvl)
	a.logger.Debug("settings loaded", "config", a.configPath, "color", cfg.Color, "group", cfg.Group)
	return nil
}

// openMap loads a map file and wraps its rows in a grid view.
func (a *app) openMap(path string) (*mapfile.Map, *grid.View[rune], error) {
	m, err := mapfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("map loaded", "map", path, "name", m.Name, "width", m.Width, "height", m.Height)
	return m, grid.NewView(m.Rows()), nil
}

func (a *app) renderer() *renderer {
	return newRenderer(a.settings.Color, a.settings.Palette)
}
