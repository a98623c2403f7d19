package maze_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/maze"
)

// ExampleCarve carves a 7×7 maze and reports its shape. Nine passage
// cells joined as a tree need eight opened walls.
func ExampleCarve() {
	g, _ := gridgraph.New(7)
	res, err := maze.Carve(g, maze.WithSeed(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("open cells:", len(res.Carved))
	fmt.Println("regions:", len(g.Regions()))
	fmt.Println("from", res.Start, "to", res.End)
	// Output:
	// open cells: 17
	// regions: 1
	// from (1,1) to (5,5)
}
