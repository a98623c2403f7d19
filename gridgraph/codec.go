package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map symbols, one rune per cell.
const (
	SymbolEmpty   = '.'
	SymbolOpen    = 'o'
	SymbolClosed  = 'x'
	SymbolBarrier = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolPath    = '*'
)

var stateSymbols = [...]rune{
	Empty:   SymbolEmpty,
	Open:    SymbolOpen,
	Closed:  SymbolClosed,
	Barrier: SymbolBarrier,
	Start:   SymbolStart,
	End:     SymbolEnd,
	Path:    SymbolPath,
}

// Symbol returns the map rune for s.
func (s State) Symbol() rune {
	if int(s) < len(stateSymbols) {
		return stateSymbols[s]
	}
	return '?'
}

// ParseSymbol maps a map rune back to its State.
func ParseSymbol(r rune) (State, bool) {
	for s, sym := range stateSymbols {
		if sym == r {
			return State(s), true
		}
	}
	return Empty, false
}

// Parse reads a square text map, one line per row, one rune per cell.
// Blank lines and lines starting with ';' are ignored. Trailing whitespace
// on a line is trimmed.
//
// Returns ErrEmptyGrid for no rows, ErrNonSquare for ragged or non-square
// input, ErrBadSymbol for unknown runes and ErrDuplicateEndpoint when more
// than one S or E is present. The returned grid has no adjacency yet.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, y, len(row), n)
		}
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	var starts, ends int
	for y, row := range rows {
		for x, sym := range row {
			s, ok := ParseSymbol(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, sym, y, x)
			}
			switch s {
			case Start:
				starts++
			case End:
				ends++
			}
			g.cells[y*n+x].state = s
		}
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: %d start(s), %d end(s)", ErrDuplicateEndpoint, starts, ends)
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Format renders g as a text map readable by Parse, one row per line,
// each line terminated by '\n'.
func (g *Grid) Format() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.n)
	for i := range g.cells {
		b.WriteRune(g.cells[i].state.Symbol())
		if (i+1)%g.n == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Endpoints returns the first Start and End cells found in row-major
// order. ok is false unless both exist.
func (g *Grid) Endpoints() (start, end Position, ok bool) {
	var hasStart, hasEnd bool
	for i := range g.cells {
		switch g.cells[i].state {
		case Start:
			if !hasStart {
				start, hasStart = g.cells[i].pos, true
			}
		case End:
			if !hasEnd {
				end, hasEnd = g.cells[i].pos, true
			}
		}
	}
	return start, end, hasStart && hasEnd
}
