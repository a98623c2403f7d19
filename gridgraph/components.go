package gridgraph

// Regions finds all 4-connected regions of non-barrier cells.
// Returns a slice of regions; each region is a slice of cell indices
// (row-major) in discovery order. Regions are read from cell states
// directly, not from the adjacency cache, so the answer is current even
// when adjacency is stale.
//
// To convert an index back to (row, col), use Position(idx).
//
// Time:   O(N²·4).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int
	var scratch []int

	for i0 := range g.cells {
		if seen[i0] || g.cells[i0].state == Barrier {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			scratch = g.adjacent(u, scratch[:0])
			for _, v := range scratch {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// RegionLabels returns, for every cell index, the index of the region in
// Regions() that contains it, or -1 for Barrier cells.
func (g *Grid) RegionLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for r, region := range g.Regions() {
		for _, idx := range region {
			labels[idx] = r
		}
	}
	return labels
}

// SameRegion reports whether a and b are both non-barrier cells connected by
// a 4-connected chain of non-barrier cells. Out-of-bounds positions are
// never in a region.
func (g *Grid) SameRegion(a, b Position) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	labels := g.RegionLabels()
	la, lb := labels[g.Index(a)], labels[g.Index(b)]
	return la >= 0 && la == lb
}
