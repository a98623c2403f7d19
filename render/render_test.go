package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

func mustParse(t *testing.T, m string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseString(m)
	require.NoError(t, err)
	return g
}

//--------------------------------------------------------------------------------
// Palette
//--------------------------------------------------------------------------------

func TestHex_Palette(t *testing.T) {
	cases := map[gridgraph.State]string{
		gridgraph.Empty:   "#ffffff",
		gridgraph.Open:    "#00ff00",
		gridgraph.Closed:  "#ff0000",
		gridgraph.Barrier: "#000000",
		gridgraph.Start:   "#ffa500",
		gridgraph.End:     "#40e0d0",
		gridgraph.Path:    "#800080",
	}
	seen := map[string]bool{}
	for st, want := range cases {
		assert.Equal(t, want, render.Hex(st), st.String())
		assert.Equal(t, lipgloss.Color(want), render.Color(st))
		assert.False(t, seen[want], "color %s reused", want)
		seen[want] = true
	}
	assert.Equal(t, render.GridLine, render.Hex(gridgraph.State(200)))
}

//--------------------------------------------------------------------------------
// Terminal
//--------------------------------------------------------------------------------

func TestTerminal_Dimensions(t *testing.T) {
	g := mustParse(t, "S..\n.#.\n..E\n")
	for _, cols := range []int{0, 1, 3} {
		out := render.Terminal(g, render.TermOptions{CellColumns: cols})
		want := cols
		if want == 0 {
			want = render.DefaultCellColumns
		}
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		for _, l := range lines {
			assert.Equal(t, 3*want, lipgloss.Width(l))
		}
	}
}

func TestTerminal_Plain(t *testing.T) {
	g := mustParse(t, "S#\n*E\n")
	out := render.Terminal(g, render.TermOptions{Plain: true, CellColumns: 1})
	assert.Equal(t, "S#\n*E", out)

	cur := gridgraph.Position{Row: 1, Col: 0}
	out = render.Terminal(g, render.TermOptions{Plain: true, CellColumns: 2, Cursor: &cur})
	assert.Equal(t, "SS##\n[]EE", out)
}

func TestCellAtPoint(t *testing.T) {
	cases := []struct {
		x, y, cols int
		want       gridgraph.Position
		ok         bool
	}{
		{0, 0, 2, gridgraph.Position{Row: 0, Col: 0}, true},
		{1, 0, 2, gridgraph.Position{Row: 0, Col: 0}, true},
		{2, 0, 2, gridgraph.Position{Row: 0, Col: 1}, true},
		{9, 4, 2, gridgraph.Position{Row: 4, Col: 4}, true},
		{10, 4, 2, gridgraph.Position{}, false},
		{0, 5, 2, gridgraph.Position{}, false},
		{-1, 0, 2, gridgraph.Position{}, false},
		{3, 1, 0, gridgraph.Position{Row: 1, Col: 1}, true},
	}
	for _, c := range cases {
		p, ok := render.CellAtPoint(c.x, c.y, c.cols, 5)
		assert.Equal(t, c.ok, ok, "(%d,%d)", c.x, c.y)
		assert.Equal(t, c.want, p, "(%d,%d)", c.x, c.y)
	}
}

//--------------------------------------------------------------------------------
// DOT / SVG
//--------------------------------------------------------------------------------

func TestToDOT_Structure(t *testing.T) {
	g := mustParse(t, "S.\n#E\n")
	dot := render.ToDOT(g, render.DOTOptions{CellPixels: 10})

	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(dot), "}"))
	for _, exp := range []string{
		"layout=neato",
		"inputscale=72",
		`r0_c0 [pos="5,15!", fillcolor="#ffa500"]`,
		`r0_c1 [pos="15,15!", fillcolor="#ffffff"]`,
		`r1_c0 [pos="5,5!", fillcolor="#000000"]`,
		`r1_c1 [pos="15,5!", fillcolor="#40e0d0"]`,
	} {
		assert.Contains(t, dot, exp)
	}
	assert.NotContains(t, dot, " -- ")
}

func TestToDOT_PathEdges(t *testing.T) {
	g := mustParse(t, "S.\n.E\n")
	path := []gridgraph.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	dot := render.ToDOT(g, render.DOTOptions{Path: path})

	assert.Contains(t, dot, "r0_c0 -- r1_c0;")
	assert.Contains(t, dot, "r1_c0 -- r1_c1;")
	assert.Equal(t, 2, strings.Count(dot, " -- "))
}

func TestRenderSVG(t *testing.T) {
	g := mustParse(t, "S.\n.E\n")
	svg, err := render.RenderSVG(context.Background(), render.ToDOT(g, render.DOTOptions{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "r1_c1")
}
