// Package cli implements the gridpath command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. It is a
// thin harness around the astar and gridgraph packages: it builds grids,
// feeds them to the search and shows the result.
//
// # Commands
//
//   - play:     interactive terminal grid; draw walls, run A*, watch it expand
//   - solve:    read a text map, run A* and print the marked map
//   - export:   solve a text map and write it as SVG or DOT
//   - serve:    HTTP API for searches
//   - generate: random maze or wall map for solve and export
//
// # Configuration
//
// --config points at a TOML file (see internal/config). A missing file
// means defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed to commands through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and default paths.
	appName = "gridpath"

	// defaultConfigPath is read when --config is not given.
	defaultConfigPath = "gridpath.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Its PersistentPreRunE loads the configuration and attaches the logger to
// the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gridpath finds shortest paths on a grid with A*",
		Long:         `gridpath runs the A* search with a Manhattan heuristic over square grids of open and blocked cells, interactively in the terminal, on text maps, or over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigPath, "path to a TOML configuration file")

	root.AddCommand(c.playCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// loadConfig reads --config and stores the logger in the command context.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", c.configPath, "grid_size", cfg.GridSize,
		"cell_px", cfg.CellPixelWidth(), "frame_delay", cfg.FrameDelay)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
