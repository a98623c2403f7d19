// Package astar provides A* shortest-path search over a gridgraph.Grid,
// returning the path, its cost and the order cells were explored in.
//
// What
//
//   - Expands cells in ascending (f, seq) order, where f = g + h, g is the
//     move count from start, h is the Manhattan distance to end and seq is
//     a strictly increasing enqueue counter. Among equal f, the cell
//     enqueued first is expanded first, so runs are fully reproducible.
//   - Every move costs 1; neighbours come from the grid's adjacency cache.
//   - Marks cells as it goes: Open when enqueued, Closed once expanded,
//     Path during reconstruction, and finally restores Start and End.
//   - Supports functional hooks at four points:
//   - OnEnqueue (cell joins the open set)
//   - OnExpand  (cell popped)
//   - OnStep    (after each expansion, and after each path cell is marked)
//   - OnPath    (each intermediate path cell, end side first)
//   - Stepper runs the same search one step at a time (Step, All, Run).
//
// Why
//
//   - Manhattan distance is admissible and consistent on a 4-connected
//     unit-cost grid, so the first time end is popped its g is optimal.
//   - Pull-based stepping lets a UI, a test or a debugger control pace
//     without the engine knowing anything about rendering.
//
// Determinism
//
//	Neighbour order (down, up, right, left) and the sequence tie-break fix
//	the expansion order. Two runs on identical grids produce identical
//	Result.Expanded and Result.Path.
//
// Complexity (V = cells)
//
//   - Time:   O(V log V)
//   - Memory: O(V)
//
// Usage
//
//	g.RecomputeAdjacency()
//	res, err := astar.Search(g, start, end,
//	    astar.WithContext(ctx),
//	    astar.WithOnStep(func() { redraw(g) }),
//	)
//	switch {
//	case errors.Is(err, astar.ErrNoPath):
//	    // unreachable with current barriers
//	case err != nil:
//	    // ErrInvalidEndpoint, ErrCancelled, ErrNilGrid
//	}
//
//	// Or step manually:
//	s, _ := astar.NewStepper(g, start, end)
//	for snap, err := range s.All() {
//	    draw(g, snap)
//	}
//
// Errors
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrInvalidEndpoint  if start or end is out of bounds or a Barrier.
//   - ErrNoPath           if end is unreachable.
//   - ErrCancelled        if the context is done; wraps ctx.Err().
package astar
