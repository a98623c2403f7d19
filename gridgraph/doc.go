// Package gridgraph models a square grid of cells as a 4-connected graph,
// the playing field for the astar and bfs searches.
//
// What:
//
//   - Cell holds a fixed (row, col) Position and exactly one State:
//     Empty, Open, Closed, Barrier, Start, End or Path.
//   - Grid stores N×N cells in a flat row-major slice (index = row*N + col).
//   - RecomputeAdjacency derives, for every cell, the up-to-4 in-bounds
//     neighbours that are not Barrier. The result is a cache: searches trust
//     it as-is and never recompute it themselves.
//   - Regions groups non-barrier cells into 4-connected components.
//   - Parse and Format read and write a plain-text map (see codec.go).
//
// Why:
//
//   - Keeping State an explicit enum decouples search semantics from any
//     rendering palette; renderers map State → color, never the reverse.
//   - Flat integer indices let search bookkeeping live in slices instead of
//     maps keyed by pointer identity.
//
// Adjacency contract:
//
//	Call RecomputeAdjacency after any Barrier change and before the next
//	search. A grid whose adjacency was never computed reports zero
//	neighbours for every cell, so a search degrades to "no path".
//
// Neighbour order is down, up, right, left. Search expansion order, and
// therefore tie-breaking among equal-cost paths, follows it.
//
// Complexity:
//
//   - New:                O(N²) time and memory.
//   - RecomputeAdjacency: O(N²·4).
//   - Regions:            O(N²·4), Memory: O(N²).
//
// Errors:
//
//   - ErrInvalidSize:        New called with rows ≤ 0.
//   - ErrOutOfBounds:        position outside the grid.
//   - ErrEmptyGrid:          text map with no rows.
//   - ErrNonSquare:          text map rows of differing length, or rows ≠ cols.
//   - ErrBadSymbol:          unknown rune in a text map.
//   - ErrDuplicateEndpoint:  more than one S or E in a text map.
package gridgraph
