// Package astar finds shortest paths on a gridgraph.Grid with A* and the
// Manhattan heuristic.
//
// Search runs to completion, calling hooks as it goes. Stepper exposes the
// same run one step at a time for harnesses that pace the search
// themselves.
package astar

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs A* on g from start to end, applying any number of functional
// Options, and returns the Result.
//
// Returns:
//
//   - (*Result, nil) with Found=true when a path exists. Path runs from
//     start to end inclusive and Cost equals its number of moves.
//   - (*Result, ErrNoPath) when the open set empties first. The Result is
//     non-nil and reports what was expanded.
//   - (*Result, ErrCancelled) when the context is done mid-run; the error
//     also wraps the context's error.
//   - (nil, ErrNilGrid) or (nil, ErrInvalidEndpoint) for bad input.
//
// start == end succeeds immediately with Path=[start] and Cost=0; only
// start is ever enqueued.
//
// Unless WithoutStateMarking is given, Search writes Open, Closed and Path
// into the grid as it runs and restores End and Start on success. Start
// and End cells are never overwritten mid-run.
//
// Precondition: adjacency must be current. Search trusts the neighbour
// lists attached to the grid and does not recompute them; a grid whose
// adjacency was never computed yields ErrNoPath.
//
// Complexity:
//
//   - Time:  O(V log V), V = cells; each cell is pushed at most once per
//     strictly improving g, and has at most 4 neighbours.
//   - Space: O(V) for scores, predecessors and the open set.
func Search(g *gridgraph.Grid, start, end gridgraph.Position, opts ...Option) (*Result, error) {
	s, err := NewStepper(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
