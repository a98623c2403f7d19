package astar

// queueItem is one open-set entry: a cell index with the f score and
// sequence number it had when enqueued. Neither changes afterwards.
type queueItem struct {
	cell int
	f    int
	seq  int
}

// openQueue is a min-heap of *queueItem ordered by (f, seq) ascending.
// seq is strictly increasing per push, so among equal f the earliest
// enqueued cell pops first and the order is total.
type openQueue []*queueItem

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by f, then by enqueue sequence.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two elements.
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x (a *queueItem) at the end; called by heap.Push.
func (q *openQueue) Push(x interface{}) {
	*q = append(*q, x.(*queueItem))
}

// Pop removes the last element; called by heap.Pop.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return it
}
