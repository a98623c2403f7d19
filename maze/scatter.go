package maze

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Scatter drops clustered barriers on g with random walks: each walk starts
// at a random cell, moves Steps times in a random direction (staying
// inside the grid) and, at every step, turns the cell under it into a
// Barrier with probability Density. Only Empty cells are changed, so
// Start, End and search marks survive. It returns the number of barriers
// placed.
//
// Errors: ErrGridNil, ErrOptionViolation, or the context's error.
//
// Complexity: O(Clusters·Steps).
func Scatter(g *gridgraph.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	n := g.Size()
	clusters, steps := o.Clusters, o.Steps
	if clusters == 0 {
		clusters = max(1, n/5)
	}
	if steps == 0 {
		steps = 4 * n
	}

	dirs := [4]gridgraph.Position{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}
	placed := 0
	for range clusters {
		select {
		case <-o.Ctx.Done():
			return placed, o.Ctx.Err()
		default:
		}
		p := gridgraph.Position{Row: o.Rand.Intn(n), Col: o.Rand.Intn(n)}
		for range steps {
			if o.Rand.Float64() < o.Density {
				if c := g.At(p); c.Is(gridgraph.Empty) {
					c.SetState(gridgraph.Barrier)
					placed++
				}
			}
			d := dirs[o.Rand.Intn(len(dirs))]
			next := gridgraph.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if g.InBounds(next) {
				p = next
			}
		}
	}
	return placed, nil
}
