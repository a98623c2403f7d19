// Package bfs defines options, results and errors for breadth-first search
// over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a cell the traversal never reached.
	ErrUnreached = errors.New("bfs: position not reached")
)

// Option configures BFS. An invalid Option is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds BFS parameters and hooks.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// OnVisit is called for each dequeued cell with its distance from the
	// start. Returning an error aborts the traversal.
	OnVisit func(p gridgraph.Position, depth int) error

	// MaxDepth, if > 0, leaves cells farther than MaxDepth moves unreached.
	// 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with context.Background(), no depth limit
// and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(gridgraph.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the per-cell visit hook.
func WithOnVisit(fn func(p gridgraph.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the traversal to d moves from the start (inclusive).
// d == 0 removes the bound; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// unseen marks a cell with no distance or no parent.
const unseen = -1

// Result is a BFS tree over the grid it was computed on. Per-cell data is
// kept in slices indexed like the grid's cells.
type Result struct {
	// Start is the root of the tree.
	Start gridgraph.Position
	// Order lists reached cells in visit sequence, Start first.
	Order []gridgraph.Position

	grid   *gridgraph.Grid
	dist   []int
	parent []int
}

// Reached reports whether p was reached.
func (r *Result) Reached(p gridgraph.Position) bool {
	_, ok := r.Distance(p)
	return ok
}

// Distance returns the number of moves from Start to p, or false if p was
// not reached or is out of bounds.
func (r *Result) Distance(p gridgraph.Position) (int, bool) {
	if !r.grid.InBounds(p) {
		return 0, false
	}
	d := r.dist[r.grid.Index(p)]
	return d, d != unseen
}

// Parent returns p's predecessor in the tree; false for Start and for
// cells not reached.
func (r *Result) Parent(p gridgraph.Position) (gridgraph.Position, bool) {
	if !r.grid.InBounds(p) {
		return gridgraph.Position{}, false
	}
	i := r.parent[r.grid.Index(p)]
	if i == unseen {
		return gridgraph.Position{}, false
	}
	return r.grid.Position(i), true
}

// PathTo returns a fewest-moves path from Start to dest, both inclusive.
// Returns ErrUnreached if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, error) {
	d, ok := r.Distance(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	path := make([]gridgraph.Position, 0, d+1)
	for i := r.grid.Index(dest); i != unseen; i = r.parent[i] {
		path = append(path, r.grid.Position(i))
	}
	slices.Reverse(path)
	return path, nil
}
