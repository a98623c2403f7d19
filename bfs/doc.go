// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (moves) from a start cell.
//   - Returns a Result holding the visit Order and, per cell, the distance
//     (Distance) and tree predecessor (Parent), stored in slices indexed
//     by the grid's flat cell index.
//   - OnVisit hook (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Exact unweighted distances in O(V) on a grid; the reference against
//     which astar results are checked for optimality.
//   - Reachability: everything in Order is reachable from the start under
//     the current adjacency.
//
// Determinism
//
//	Neighbours are taken from the grid's adjacency cache in its fixed order
//	(down, up, right, left), so the visit sequence is fully reproducible.
//
// Complexity (V = cells)
//
//   - Time:   O(V)   (each cell enqueued once, ≤ 4 neighbours each)
//   - Memory: O(V)
//
// Usage
//
//	g.RecomputeAdjacency()
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(10))
//	if d, ok := res.Distance(end); ok { ... }
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if the start lies outside the grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreached          from PathTo for a cell never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
