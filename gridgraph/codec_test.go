package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestParse_Errors verifies that Parse rejects malformed maps.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyComments", "; nothing here\n\n", gridgraph.ErrEmptyGrid},
		{"Ragged", "...\n..\n...\n", gridgraph.ErrNonSquare},
		{"WideNotSquare", "....\n....\n", gridgraph.ErrNonSquare},
		{"BadSymbol", "..\n.?\n", gridgraph.ErrBadSymbol},
		{"TwoStarts", "S.\n.S\n", gridgraph.ErrDuplicateEndpoint},
		{"TwoEnds", "EE\n..\n", gridgraph.ErrDuplicateEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseString(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_AllSymbols reads every symbol and writes the same text back.
func TestParse_AllSymbols(t *testing.T) {
	in := "S.#\nox*\n..E\n"
	g, err := gridgraph.Parse(strings.NewReader("; header comment\n" + in + "\n"))
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Start, g.At(pos(0, 0)).State())
	assert.Equal(t, gridgraph.Barrier, g.At(pos(0, 2)).State())
	assert.Equal(t, gridgraph.Open, g.At(pos(1, 0)).State())
	assert.Equal(t, gridgraph.Closed, g.At(pos(1, 1)).State())
	assert.Equal(t, gridgraph.Path, g.At(pos(1, 2)).State())
	assert.Equal(t, gridgraph.End, g.At(pos(2, 2)).State())
	assert.Equal(t, in, g.Format())
	assert.False(t, g.HasAdjacency(), "Parse must not compute adjacency")
}

func TestParse_TrimsTrailingWhitespace(t *testing.T) {
	g, err := gridgraph.ParseString("S. \r\n.E\t\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestEndpoints(t *testing.T) {
	g, err := gridgraph.ParseString("...\n.S.\nE..\n")
	require.NoError(t, err)
	s, e, ok := g.Endpoints()
	require.True(t, ok)
	assert.Equal(t, pos(1, 1), s)
	assert.Equal(t, pos(2, 0), e)

	g.At(e).Reset()
	_, _, ok = g.Endpoints()
	assert.False(t, ok)
}

func TestParseSymbol(t *testing.T) {
	for _, s := range []gridgraph.State{
		gridgraph.Empty, gridgraph.Open, gridgraph.Closed, gridgraph.Barrier,
		gridgraph.Start, gridgraph.End, gridgraph.Path,
	} {
		got, ok := gridgraph.ParseSymbol(s.Symbol())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := gridgraph.ParseSymbol('Z')
	assert.False(t, ok)
}
