package maze

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Passage cells sit on odd coordinates; the cells between them are walls
// until carved.
var carveSteps = [4]gridgraph.Position{{Row: 2}, {Row: -2}, {Col: 2}, {Col: -2}}

// carver encapsulates state during Carve.
type carver struct {
	grid  *gridgraph.Grid
	opts  Options
	res   *Result
	stack []gridgraph.Position
}

// Carve turns g into a perfect maze: every cell becomes Barrier, then a
// randomized depth-first search from (1,1) opens passages two cells apart
// and the wall between them. Any two passage cells end up joined by
// exactly one route. For an even N the last two rows and columns stay walls.
//
// Any Start/End marks are overwritten; the adjacency cache is not touched,
// so call RecomputeAdjacency before searching.
//
// Errors: ErrGridNil, ErrTooSmall, ErrOptionViolation, the context's error
// on cancellation, and any OnCarve error (wrapped).
//
// Complexity: O(N²) time and memory.
func Carve(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if g.Size() < 3 {
		return nil, fmt.Errorf("%w: need at least 3 cells per side, got %d", ErrTooSmall, g.Size())
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	for _, c := range g.Cells() {
		c.SetState(gridgraph.Barrier)
	}

	c := &carver{grid: g, opts: o, res: &Result{}}
	if err := c.run(gridgraph.Position{Row: 1, Col: 1}); err != nil {
		return c.res, err
	}

	c.res.Start = c.res.Carved[0]
	last := c.res.Carved[0]
	for _, p := range c.res.Carved {
		if p.Row > last.Row || (p.Row == last.Row && p.Col > last.Col) {
			last = p
		}
	}
	c.res.End = last
	return c.res, nil
}

// run is the iterative backtracker: peek the top cell, open a random
// unvisited passage two steps away, or pop when there is none.
func (c *carver) run(root gridgraph.Position) error {
	if err := c.open(root); err != nil {
		return err
	}
	c.stack = append(c.stack, root)

	var options [4]gridgraph.Position
	for len(c.stack) > 0 {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}
		if len(c.stack) > c.res.MaxDepth {
			c.res.MaxDepth = len(c.stack)
		}

		cur := c.stack[len(c.stack)-1]
		n := 0
		for _, d := range carveSteps {
			next := gridgraph.Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if c.carvable(next) {
				options[n] = next
				n++
			}
		}
		if n == 0 {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}

		next := options[c.opts.Rand.Intn(n)]
		wall := gridgraph.Position{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
		if err := c.open(wall); err != nil {
			return err
		}
		if err := c.open(next); err != nil {
			return err
		}
		c.stack = append(c.stack, next)
	}
	return nil
}

// carvable reports whether p is an unopened passage cell inside the
// outer wall.
func (c *carver) carvable(p gridgraph.Position) bool {
	last := c.grid.Size() - 1
	if p.Row < 1 || p.Col < 1 || p.Row >= last || p.Col >= last {
		return false
	}
	return c.grid.At(p).Is(gridgraph.Barrier)
}

func (c *carver) open(p gridgraph.Position) error {
	c.grid.At(p).Reset()
	c.res.Carved = append(c.res.Carved, p)
	if c.opts.OnCarve != nil {
		if err := c.opts.OnCarve(p); err != nil {
			return fmt.Errorf("maze: OnCarve hook for %v: %w", p, err)
		}
	}
	return nil
}
