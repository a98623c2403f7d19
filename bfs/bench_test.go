package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkBFS_OpenGrid measures BFS on an open 300×300 grid from a corner.
func BenchmarkBFS_OpenGrid(b *testing.B) {
	const n = 300
	g, err := gridgraph.New(n)
	if err != nil {
		b.Fatal(err)
	}
	g.RecomputeAdjacency()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, gridgraph.Position{})
	}
}

// BenchmarkBFS_Maze runs BFS on a 300×300 grid with 30% random barriers.
func BenchmarkBFS_Maze(b *testing.B) {
	const n = 300
	g, err := gridgraph.New(n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	for _, c := range g.Cells() {
		if rng.Float64() < 0.3 {
			c.SetState(gridgraph.Barrier)
		}
	}
	g.At(gridgraph.Position{}).Reset()
	g.RecomputeAdjacency()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, gridgraph.Position{})
	}
}
