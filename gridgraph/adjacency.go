package gridgraph

// neighborOffsets lists (dRow, dCol) in the order neighbours are recorded:
// down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// RecomputeAdjacency rebuilds the neighbour list of every cell as the
// up-to-4 grid-adjacent cells that are in bounds and not Barrier.
// Must be called after any Barrier change and before the next search.
// Calling it twice without an intervening change yields identical lists.
// Complexity: O(N²·4).
func (g *Grid) RecomputeAdjacency() {
	if g.adj == nil {
		g.adj = make([][]int, len(g.cells))
	}
	for i := range g.cells {
		g.adj[i] = g.adjacent(i, g.adj[i][:0])
	}
}

// adjacent appends to dst the indices of the non-barrier 4-neighbours of
// cell idx and returns the extended slice.
func (g *Grid) adjacent(idx int, dst []int) []int {
	p := g.cells[idx].pos
	for _, d := range neighborOffsets {
		q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !g.InBounds(q) {
			continue
		}
		j := g.Index(q)
		if g.cells[j].state == Barrier {
			continue
		}
		dst = append(dst, j)
	}
	return dst
}

// NeighborIndices returns the cached neighbour indices of cell idx.
// The slice is owned by the grid and must not be modified.
// Returns nil if adjacency was never computed.
func (g *Grid) NeighborIndices(idx int) []int {
	if g.adj == nil {
		return nil
	}
	return g.adj[idx]
}

// Neighbors returns the cached neighbours of p as positions.
// Returns nil for out-of-bounds p or before the first RecomputeAdjacency.
func (g *Grid) Neighbors(p Position) []Position {
	if !g.InBounds(p) {
		return nil
	}
	idx := g.NeighborIndices(g.Index(p))
	if len(idx) == 0 {
		return nil
	}
	out := make([]Position, len(idx))
	for k, j := range idx {
		out[k] = g.cells[j].pos
	}
	return out
}

// HasAdjacency reports whether RecomputeAdjacency has run since the grid
// was built or last cleared.
func (g *Grid) HasAdjacency() bool { return g.adj != nil }
