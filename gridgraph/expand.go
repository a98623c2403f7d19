package gridgraph

import (
	"container/list"
	"fmt"
)

// Bridge finds a minimum-conversion route from a to b where stepping onto a
// Barrier cell costs 1 and stepping onto any other cell costs 0. The
// returned path (a..b inclusive, 4-connected) crosses exactly cost
// barriers; removing them connects a and b. A cost of 0 means a and b are
// already in the same region.
//
// Behavior:
//  1. Validate both positions (ErrOutOfBounds).
//  2. 0–1 BFS from a:
//     • moving into a non-barrier cell → cost 0 (push front)
//     • moving into a barrier cell     → cost 1 (push back)
//  3. Stop when b is popped.
//  4. Reconstruct path via predecessors.
//
// Like Regions, Bridge reads cell states, not the adjacency cache.
//
// Complexity: O(N²·4) time, O(N²) memory.
func (g *Grid) Bridge(a, b Position) (path []Position, cost int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %v → %v", ErrOutOfBounds, a, b)
	}
	total := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(a), g.Index(b)
	dist[src] = 0
	if g.cells[src].state == Barrier {
		dist[src] = 1
	}
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, total)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		up := g.cells[u].pos
		for _, d := range neighborOffsets {
			q := Position{Row: up.Row + d[0], Col: up.Col + d[1]}
			if !g.InBounds(q) {
				continue
			}
			v := g.Index(q)
			step := 0
			if g.cells[v].state == Barrier {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, g.cells[at].pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}

// BarriersOn returns the positions on path that are currently Barrier.
func (g *Grid) BarriersOn(path []Position) []Position {
	var out []Position
	for _, p := range path {
		if g.InBounds(p) && g.cells[g.Index(p)].state == Barrier {
			out = append(out, p)
		}
	}
	return out
}
