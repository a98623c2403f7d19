// Package maze fills a gridgraph.Grid with barriers for the searches to
// work on.
//
// What:
//
//   - Carve: randomized depth-first search (recursive backtracker, run
//     with an explicit stack) that turns the grid into a perfect maze.
//   - Scatter: random walks that drop clustered walls on Empty cells.
//
// Both are reproducible: the default randomness source has a fixed seed
// (DefaultSeed), and WithSeed or WithRand choose another.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per step or walk.
//   - WithSeed(seed) / WithRand(r)
//   - WithOnCarve(fn)           hook per opened cell; an error aborts Carve.
//   - WithDensity(d)            Scatter barrier probability in [0, 1].
//   - WithClusters(c, steps)    Scatter walk count and length.
//
// Neither function recomputes adjacency. Call
// gridgraph.Grid.RecomputeAdjacency before searching.
//
// Errors:
//
//   - ErrGridNil:          nil grid.
//   - ErrTooSmall:         Carve on a grid narrower than 3.
//   - ErrOptionViolation:  density or cluster settings out of range.
//   - context errors on cancellation, wrapped hook errors.
package maze
