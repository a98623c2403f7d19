package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
)

const (
	kindMaze  = "maze"
	kindWalls = "walls"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	kind    string
	size    int
	seed    int64
	density float64
	output  string
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{kind: kindMaze, density: 0.25}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random text map with S and E for solve or export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size <= 0 {
				opts.size = c.Config.GridSize
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind, "map kind: maze (default), walls")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "cells per side (default from config, 50)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: time-based)")
	cmd.Flags().Float64Var(&opts.density, "density", opts.density, "wall probability per walk step (walls)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; stdout when empty")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	g, err := gridgraph.New(opts.size)
	if err != nil {
		return err
	}
	mopts := []maze.Option{maze.WithContext(cmd.Context()), maze.WithSeed(opts.seed)}

	switch opts.kind {
	case kindMaze:
		res, err := maze.Carve(g, mopts...)
		if err != nil {
			return err
		}
		g.At(res.Start).SetState(gridgraph.Start)
		g.At(res.End).SetState(gridgraph.End)
	case kindWalls:
		last := opts.size - 1
		g.At(gridgraph.Position{}).SetState(gridgraph.Start)
		g.At(gridgraph.Position{Row: last, Col: last}).SetState(gridgraph.End)
		placed, err := maze.Scatter(g, append(mopts, maze.WithDensity(opts.density))...)
		if err != nil {
			return err
		}
		logger.Debug("walls placed", "count", placed)
	default:
		return fmt.Errorf("invalid kind: %s (must be 'maze' or 'walls')", opts.kind)
	}
	logger.Debug("generated", "kind", opts.kind, "size", opts.size, "seed", opts.seed)

	return writeOutput(cmd.OutOrStdout(), opts.output, []byte(g.Format()))
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(w, path)
	return nil
}
