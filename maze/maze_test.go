package maze_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
)

func newGrid(t *testing.T, n int) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(n)
	require.NoError(t, err)
	return g
}

// openEdges counts 4-connected pairs of non-barrier cells.
func openEdges(g *gridgraph.Grid) int {
	n := g.Size()
	edges := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.At(gridgraph.Position{Row: r, Col: c}).Is(gridgraph.Barrier) {
				continue
			}
			if r+1 < n && !g.At(gridgraph.Position{Row: r + 1, Col: c}).Is(gridgraph.Barrier) {
				edges++
			}
			if c+1 < n && !g.At(gridgraph.Position{Row: r, Col: c + 1}).Is(gridgraph.Barrier) {
				edges++
			}
		}
	}
	return edges
}

//--------------------------------------------------------------------------------
// Carve
//--------------------------------------------------------------------------------

func TestCarve_Errors(t *testing.T) {
	_, err := maze.Carve(nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)

	_, err = maze.Carve(newGrid(t, 2))
	assert.ErrorIs(t, err, maze.ErrTooSmall)
}

// TestCarve_PerfectMaze checks the carved cells form a single tree: every
// passage cell is open, there is one region, and edges = cells - 1.
func TestCarve_PerfectMaze(t *testing.T) {
	for _, n := range []int{3, 5, 11, 12} {
		g := newGrid(t, n)
		res, err := maze.Carve(g, maze.WithSeed(int64(n)))
		require.NoError(t, err, "n=%d", n)

		k := (n - 1) / 2
		wantOpen := 2*k*k - 1
		assert.Len(t, res.Carved, wantOpen, "n=%d", n)
		assert.Len(t, g.Find(gridgraph.Empty), wantOpen, "n=%d", n)
		assert.Len(t, g.Regions(), 1, "n=%d", n)
		assert.Equal(t, wantOpen-1, openEdges(g), "n=%d", n)

		for r := 1; r < 2*k; r += 2 {
			for c := 1; c < 2*k; c += 2 {
				assert.True(t, g.At(gridgraph.Position{Row: r, Col: c}).Is(gridgraph.Empty))
			}
		}
		assert.Equal(t, gridgraph.Position{Row: 1, Col: 1}, res.Start)
		assert.Equal(t, gridgraph.Position{Row: 2*k - 1, Col: 2*k - 1}, res.End)
		assert.Positive(t, res.MaxDepth)
	}
}

func TestCarve_Border(t *testing.T) {
	g := newGrid(t, 9)
	_, err := maze.Carve(g)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		for _, p := range []gridgraph.Position{{Row: 0, Col: i}, {Row: 8, Col: i}, {Row: i, Col: 0}, {Row: i, Col: 8}} {
			assert.True(t, g.At(p).Is(gridgraph.Barrier), "%v", p)
		}
	}
}

func TestCarve_Deterministic(t *testing.T) {
	a, b, c := newGrid(t, 15), newGrid(t, 15), newGrid(t, 15)
	_, err := maze.Carve(a, maze.WithSeed(42))
	require.NoError(t, err)
	_, err = maze.Carve(b, maze.WithSeed(42))
	require.NoError(t, err)
	_, err = maze.Carve(c, maze.WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a.Format(), b.Format())
	assert.NotEqual(t, a.Format(), c.Format())
}

// TestCarve_Searchable runs A* through a carved maze and checks the path
// length against BFS.
func TestCarve_Searchable(t *testing.T) {
	g := newGrid(t, 21)
	res, err := maze.Carve(g, maze.WithSeed(7))
	require.NoError(t, err)
	g.RecomputeAdjacency()

	br, err := bfs.BFS(g, res.Start)
	require.NoError(t, err)
	want, ok := br.Distance(res.End)
	require.True(t, ok)

	ar, err := astar.Search(g, res.Start, res.End, astar.WithoutStateMarking())
	require.NoError(t, err)
	assert.Equal(t, want, ar.Cost)
}

func TestCarve_OnCarveAbort(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	_, err := maze.Carve(newGrid(t, 7), maze.WithOnCarve(func(gridgraph.Position) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestCarve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := maze.Carve(newGrid(t, 7), maze.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

//--------------------------------------------------------------------------------
// Scatter
//--------------------------------------------------------------------------------

func TestScatter_KeepsMarkedCells(t *testing.T) {
	g := newGrid(t, 20)
	g.At(gridgraph.Position{Row: 0, Col: 0}).SetState(gridgraph.Start)
	g.At(gridgraph.Position{Row: 19, Col: 19}).SetState(gridgraph.End)
	g.At(gridgraph.Position{Row: 5, Col: 5}).SetState(gridgraph.Path)

	placed, err := maze.Scatter(g, maze.WithSeed(3), maze.WithDensity(1), maze.WithClusters(10, 200))
	require.NoError(t, err)
	assert.Positive(t, placed)
	assert.Len(t, g.Find(gridgraph.Barrier), placed)
	assert.True(t, g.At(gridgraph.Position{Row: 0, Col: 0}).Is(gridgraph.Start))
	assert.True(t, g.At(gridgraph.Position{Row: 19, Col: 19}).Is(gridgraph.End))
	assert.True(t, g.At(gridgraph.Position{Row: 5, Col: 5}).Is(gridgraph.Path))
}

func TestScatter_ZeroDensity(t *testing.T) {
	g := newGrid(t, 10)
	placed, err := maze.Scatter(g, maze.WithDensity(0))
	require.NoError(t, err)
	assert.Zero(t, placed)
	assert.Empty(t, g.Find(gridgraph.Barrier))
}

func TestScatter_Options(t *testing.T) {
	g := newGrid(t, 10)
	_, err := maze.Scatter(g, maze.WithDensity(1.5))
	assert.ErrorIs(t, err, maze.ErrOptionViolation)
	_, err = maze.Scatter(g, maze.WithClusters(0, 5))
	assert.ErrorIs(t, err, maze.ErrOptionViolation)
	_, err = maze.Scatter(nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)
}

func TestScatter_Deterministic(t *testing.T) {
	a, b := newGrid(t, 30), newGrid(t, 30)
	_, err := maze.Scatter(a, maze.WithSeed(11))
	require.NoError(t, err)
	_, err = maze.Scatter(b, maze.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a.Format(), b.Format())
}
