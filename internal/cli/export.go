package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/render"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string // output file; its extension picks the format
	format   string // overrides the extension: svg or dot
	noSearch bool   // export the map as read, without running A*
}

func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Solve a text map and write it as SVG or Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := exportFormat(opts)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg or .dot); stdout when empty")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, dot (default from extension, else svg)")
	cmd.Flags().BoolVar(&opts.noSearch, "no-search", false, "export the map without running A*")

	return cmd
}

// exportFormat resolves the output format from --format or the extension.
func exportFormat(opts exportOpts) (string, error) {
	f := strings.ToLower(opts.format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	}
	switch f {
	case "", formatSVG:
		return formatSVG, nil
	case formatDOT, "gv":
		return formatDOT, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", f)
}

func (c *CLI) runExport(ctx context.Context, w io.Writer, stdin io.Reader, path string, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	g, start, end, err := loadMap(path, stdin)
	if err != nil {
		return err
	}

	dotOpts := render.DOTOptions{CellPixels: c.Config.CellPixelWidth()}
	if !opts.noSearch {
		res, err := astar.Search(g, start, end, astar.WithContext(ctx))
		switch {
		case err == nil:
			dotOpts.Path = res.Path
		case errors.Is(err, astar.ErrNoPath):
			logger.Warn("no path", "start", start, "end", end)
		default:
			return err
		}
	}

	dot := render.ToDOT(g, dotOpts)
	data := []byte(dot)
	if opts.format == formatSVG {
		prog := newProgress(logger)
		data, err = render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		prog.done("rendered svg", "bytes", len(data))
	}

	return writeOutput(w, opts.output, data)
}
