package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// DefaultCellColumns is the number of terminal columns one cell spans.
// Two columns make a cell roughly square in most fonts.
const DefaultCellColumns = 2

// TermOptions configures Terminal.
type TermOptions struct {
	// CellColumns is the width of one cell in terminal columns.
	// Zero means DefaultCellColumns.
	CellColumns int

	// Cursor, when non-nil, highlights one cell.
	Cursor *gridgraph.Position

	// Plain draws map symbols instead of colored blocks.
	Plain bool
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(GridLine)).Bold(true)
	cellStyles  = func() []lipgloss.Style {
		out := make([]lipgloss.Style, len(stateHex))
		for s := range stateHex {
			out[s] = lipgloss.NewStyle().Background(Color(gridgraph.State(s)))
		}
		return out
	}()
)

// Terminal renders g as one line per row. Each line is exactly
// N×CellColumns columns wide; lines are joined by '\n' with no trailing
// newline.
func Terminal(g *gridgraph.Grid, opts TermOptions) string {
	w := opts.CellColumns
	if w <= 0 {
		w = DefaultCellColumns
	}
	blank := strings.Repeat(" ", w)
	mark := cursorMark(w)

	n := g.Size()
	var b strings.Builder
	for r := 0; r < n; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < n; c++ {
			p := gridgraph.Position{Row: r, Col: c}
			st := g.At(p).State()
			isCursor := opts.Cursor != nil && *opts.Cursor == p

			if opts.Plain {
				if isCursor {
					b.WriteString(mark)
					continue
				}
				b.WriteString(strings.Repeat(string(st.Symbol()), w))
				continue
			}
			content := blank
			if isCursor {
				content = mark
			}
			b.WriteString(cellStyle(st, isCursor).Render(content))
		}
	}
	return b.String()
}

func cellStyle(s gridgraph.State, cursor bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	if int(s) < len(cellStyles) {
		st = cellStyles[s]
	}
	if cursor {
		return st.Inherit(cursorStyle)
	}
	return st
}

// cursorMark fills w columns with a bracket pair, or a single marker when
// a cell is one column wide.
func cursorMark(w int) string {
	if w == 1 {
		return "+"
	}
	return "[" + strings.Repeat(" ", w-2) + "]"
}

// CellAtPoint maps a terminal coordinate, relative to the grid's top-left
// corner, to the cell under it. ok is false outside the grid.
func CellAtPoint(x, y, cellColumns, n int) (p gridgraph.Position, ok bool) {
	if cellColumns <= 0 {
		cellColumns = DefaultCellColumns
	}
	if x < 0 || y < 0 {
		return gridgraph.Position{}, false
	}
	p = gridgraph.Position{Row: y, Col: x / cellColumns}
	if p.Row >= n || p.Col >= n {
		return gridgraph.Position{}, false
	}
	return p, true
}
