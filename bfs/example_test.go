package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on an open 3×3 grid.
// The visit order follows non-decreasing Manhattan distance from (0,0),
// with ties broken by neighbour order (down, up, right, left).
func ExampleBFS_gridTraversal() {
	g, _ := gridgraph.New(3)
	g.RecomputeAdjacency()

	res, err := bfs.BFS(g, gridgraph.Position{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [(0,0) (1,0) (0,1) (2,0) (1,1) (0,2) (2,1) (1,2) (2,2)]
}

// ExampleResult_PathTo finds the fewest-move route around a barrier.
func ExampleResult_PathTo() {
	g, _ := gridgraph.ParseString(`
...
##.
...
`)
	g.RecomputeAdjacency()

	res, _ := bfs.BFS(g, gridgraph.Position{Row: 2, Col: 0})
	path, _ := res.PathTo(gridgraph.Position{Row: 0, Col: 0})
	fmt.Println(len(path)-1, "moves:", path)
	// Output:
	// 6 moves: [(2,0) (2,1) (2,2) (1,2) (0,2) (0,1) (0,0)]
}
