package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// DefaultCellPixels is the cell size used when DOTOptions.CellPixels is 0:
// an 800 px canvas split into 50 rows.
const DefaultCellPixels = 16

// DOTOptions configures ToDOT.
type DOTOptions struct {
	// CellPixels is the side of one cell in pixels (points at 72 dpi).
	CellPixels int

	// Path, when it has two or more cells, is also drawn as a polyline
	// through the cell centers.
	Path []gridgraph.Position
}

// NodeID names the DOT node of the cell at p.
func NodeID(p gridgraph.Position) string {
	return fmt.Sprintf("r%d_c%d", p.Row, p.Col)
}

// ToDOT converts g into a neato document with one filled square node per
// cell, pinned at its pixel position. Row 0 is at the top.
// The result can be rendered with RenderSVG.
func ToDOT(g *gridgraph.Grid, opts DOTOptions) string {
	px := opts.CellPixels
	if px <= 0 {
		px = DefaultCellPixels
	}
	inches := float64(px) / 72

	n := g.Size()
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=square, fixedsize=true, width=%.4f, label=\"\", style=filled, color=%q, penwidth=0.5];\n",
		inches, GridLine)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=%.1f];\n", Hex(gridgraph.Path), float64(px)/4)
	buf.WriteString("\n")

	for _, c := range g.Cells() {
		p := c.Position()
		x := p.Col*px + px/2
		y := (n-1-p.Row)*px + px/2
		fmt.Fprintf(&buf, "  %s [pos=\"%d,%d!\", fillcolor=%q];\n", NodeID(p), x, y, Hex(c.State()))
	}

	if len(opts.Path) > 1 {
		buf.WriteString("\n")
		for i := 1; i < len(opts.Path); i++ {
			fmt.Fprintf(&buf, "  %s -- %s;\n", NodeID(opts.Path[i-1]), NodeID(opts.Path[i]))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT document to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
