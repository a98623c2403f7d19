package cli

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
)

// playOpts holds the command-line flags for the play command. Zero values
// fall back to the configuration.
type playOpts struct {
	size   int
	delay  time.Duration
	border bool
}

func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Draw a grid in the terminal and watch A* search it",
		Long: `Play opens an interactive grid. The first left click places the start
cell, the second the end cell, and further clicks (or drags) draw walls.
Right click erases. Space runs the search one step per frame.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if opts.size > 0 {
				cfg.GridSize = opts.size
			}
			if cmd.Flags().Changed("delay") {
				cfg.FrameDelay = opts.delay
			}
			if cmd.Flags().Changed("border") {
				cfg.FrameBorder = opts.border
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			m, err := NewPlayModel(ctx, cfg.GridSize, cfg.FrameDelay, cfg.FrameBorder)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}

			if fm, ok := final.(PlayModel); ok && fm.Result != nil {
				switch {
				case fm.Result.Found:
					logger.Info("last search", "runs", fm.Runs, "cost", fm.Result.Cost, "expanded", len(fm.Result.Expanded))
				case errors.Is(fm.Err, astar.ErrNoPath):
					logger.Info("last search", "runs", fm.Runs, "found", false, "expanded", len(fm.Result.Expanded))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "cells per side (default from config, 50)")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "pause between search steps (default from config, 15ms)")
	cmd.Flags().BoolVar(&opts.border, "border", false, "wall off the outer ring of cells")

	return cmd
}
