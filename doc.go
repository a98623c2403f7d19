// Package gridpath finds shortest paths on square grids with A* and the
// Manhattan heuristic, and lets you watch it happen.
//
// 🚀 What is gridpath?
//
//	A small toolkit built around one search engine:
//		• gridgraph: cells, states, 4-connected adjacency, regions, text maps
//		• astar:     A* with (f, seq) tie-breaking, hooks and a step-by-step Stepper
//		• bfs:       breadth-first oracle used to cross-check A* path lengths
//		• render:    state palette, terminal drawing, Graphviz DOT/SVG export
//
// and a harness on top of it:
//
//	cmd/gridpath        — entry point
//	internal/cli        — cobra commands: play (TUI), solve, export, serve
//	internal/config     — TOML configuration
//	internal/server     — HTTP API (chi)
//
// ✨ Guarantees
//
//   - Shortest paths: Manhattan distance is admissible and consistent on a
//     4-connected unit-cost grid.
//   - Deterministic: equal f scores pop in enqueue order, and neighbours are
//     visited down, up, right, left.
//   - Cooperative: one Step per expansion, cancellation via context.Context,
//     no goroutines inside the engine.
//
// Quick start:
//
//	g, _ := gridgraph.New(50)
//	g.At(gridgraph.Position{Row: 10, Col: 3}).SetState(gridgraph.Barrier)
//	g.RecomputeAdjacency()
//	res, err := astar.Search(g, gridgraph.Position{}, gridgraph.Position{Row: 49, Col: 49})
//	if errors.Is(err, astar.ErrNoPath) {
//		// unreachable
//	}
//	fmt.Println(res.Cost, res.Path)
package gridpath
