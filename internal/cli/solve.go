package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	verify  bool          // cross-check the cost with BFS
	asJSON  bool          // print a JSON report instead of the map
	plain   bool          // print map symbols instead of colored cells
	timeout time.Duration // 0 means no limit
}

// solveReport is the JSON form of one solve.
type solveReport struct {
	Found    bool     `json:"found"`
	Cost     int      `json:"cost"`
	Path     [][2]int `json:"path"`
	Expanded int      `json:"expanded"`
	Enqueued int      `json:"enqueued"`
	Verified *bool    `json:"verified,omitempty"`
	Bridge   [][2]int `json:"bridge,omitempty"`
	Grid     string   `json:"grid"`
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Run A* on a text map and print the result",
		Long: `Solve reads a square text map ('.' empty, '#' barrier, 'S' start, 'E' end;
use '-' for stdin), runs A* from S to E and prints the map with the
search marks applied ('o' open, 'x' closed, '*' path).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check the path length with breadth-first search")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print a JSON report")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print map symbols instead of colored cells")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")

	return cmd
}

func runSolve(ctx context.Context, w io.Writer, stdin io.Reader, path string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	g, start, end, err := loadMap(path, stdin)
	if err != nil {
		return err
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	prog := newProgress(logger)
	res, err := astar.Search(g, start, end, astar.WithContext(ctx))
	if err != nil && !errors.Is(err, astar.ErrNoPath) {
		return err
	}
	prog.done("search finished", "size", g.Size(), "found", res.Found, "expanded", len(res.Expanded))

	report := solveReport{
		Found:    res.Found,
		Cost:     res.Cost,
		Path:     toPairs(res.Path),
		Expanded: len(res.Expanded),
		Enqueued: len(res.Enqueued),
	}

	if opts.verify {
		ok, err := verifyWithBFS(ctx, g, start, end, res)
		if err != nil {
			return err
		}
		report.Verified = &ok
		if !ok {
			return fmt.Errorf("verify: A* cost %d disagrees with breadth-first search", res.Cost)
		}
	}

	if !res.Found {
		if bridge, _, err := g.Bridge(start, end); err == nil {
			report.Bridge = toPairs(g.BarriersOn(bridge))
		}
	}
	report.Grid = g.Format()

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printSolve(w, g, report, opts.plain)
	return nil
}

// loadMap parses the map at path ("-" reads stdin), computes adjacency and
// returns its S and E cells.
func loadMap(path string, stdin io.Reader) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	var zero gridgraph.Position
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, zero, zero, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("%s: %w", path, err)
	}
	start, end, ok := g.Endpoints()
	if !ok {
		return nil, zero, zero, fmt.Errorf("%s: map needs one S and one E cell", path)
	}
	g.RecomputeAdjacency()
	return g, start, end, nil
}

// verifyWithBFS reports whether BFS agrees with res on reachability and
// path length. Search marks do not change adjacency, so BFS sees the same
// graph A* did.
func verifyWithBFS(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Position, res *astar.Result) (bool, error) {
	br, err := bfs.BFS(g, start, bfs.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	d, reached := br.Distance(end)
	if reached != res.Found {
		return false, nil
	}
	return !reached || d == res.Cost, nil
}

func printSolve(w io.Writer, g *gridgraph.Grid, r solveReport, plain bool) {
	fmt.Fprintln(w, render.Terminal(g, render.TermOptions{Plain: plain}))
	fmt.Fprintln(w)

	if r.Found {
		printSuccess(w, "path found")
		printKeyValue(w, "cost", strconv.Itoa(r.Cost))
	} else {
		printError(w, "no path from S to E")
	}
	printKeyValue(w, "expanded", strconv.Itoa(r.Expanded))
	printKeyValue(w, "enqueued", strconv.Itoa(r.Enqueued))
	if r.Verified != nil {
		printInfo(w, "breadth-first search agrees")
	}
	if len(r.Bridge) > 0 {
		printWarning(w, "removing %d barrier(s) would connect S and E", len(r.Bridge))
		for _, p := range r.Bridge {
			printDetail(w, "(%d,%d)", p[0], p[1])
		}
	}
}

func toPairs(ps []gridgraph.Position) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{p.Row, p.Col}
	}
	return out
}
