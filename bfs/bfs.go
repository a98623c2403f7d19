package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker encapsulates mutable BFS state. The queue is a slice of cell
// indices with a read cursor; every cell enters it at most once.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	queue []int
	head  int
	res   *Result
}

// BFS runs breadth-first search on g from start over the grid's adjacency
// cache. Like astar.Search it trusts the cache: call RecomputeAdjacency
// first.
//
// Returns ErrGridNil, ErrStartOutOfBounds or ErrOptionViolation for bad
// input, the context's error on cancellation, or a wrapped OnVisit error.
// On cancellation or hook abort the partial Result is returned too.
func BFS(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			grid:   g,
			dist:   slices.Repeat([]int{unseen}, n),
			parent: slices.Repeat([]int{unseen}, n),
		},
	}

	w.discover(g.Index(start), 0, unseen)
	return w.res, w.loop()
}

// discover records idx at distance d with the given parent and queues it.
func (w *walker) discover(idx, d, parent int) {
	w.res.dist[idx] = d
	w.res.parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop drains the queue, checking cancellation once per cell.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		idx := w.queue[w.head]
		w.head++
		d := w.res.dist[idx]

		p := w.grid.Position(idx)
		w.res.Order = append(w.res.Order, p)
		if err := w.opts.OnVisit(p, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", p, err)
		}

		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.grid.NeighborIndices(idx) {
			if w.res.dist[nb] == unseen {
				w.discover(nb, d+1, idx)
			}
		}
	}
	return nil
}
