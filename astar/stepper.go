package astar

import (
	"container/heap"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// unreached is the g and f score of a cell not yet discovered.
const unreached = math.MaxInt

// Stepper runs one A* search one step at a time. Each Step either expands
// one cell or marks one path cell, so a caller can redraw, inspect or
// cancel between steps at its own pace. A Stepper is not safe for
// concurrent use, and the grid must not change while it runs.
type Stepper struct {
	grid       *gridgraph.Grid
	opts       Options
	start, end int

	g        []int
	f        []int
	cameFrom []int
	queued   []bool // true while the cell is in the open set
	open     openQueue
	seq      int

	trace []int // path cells still to mark, end side first

	res   *Result
	phase Phase
	last  Snapshot
	err   error
}

// NewStepper validates the endpoints and seeds the open set with start.
// Returns ErrNilGrid or ErrInvalidEndpoint for bad input.
//
// Precondition: the grid's adjacency must be current (see
// gridgraph.Grid.RecomputeAdjacency). The stepper never recomputes it.
func NewStepper(g *gridgraph.Grid, start, end gridgraph.Position, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := validateEndpoint(g, "end", end); err != nil {
		return nil, err
	}

	n := g.Len()
	s := &Stepper{
		grid:     g,
		opts:     o,
		start:    g.Index(start),
		end:      g.Index(end),
		g:        make([]int, n),
		f:        make([]int, n),
		cameFrom: make([]int, n),
		queued:   make([]bool, n),
		open:     make(openQueue, 0, 4*g.Size()),
		res:      &Result{},
		phase:    PhaseExpand,
	}
	for i := 0; i < n; i++ {
		s.g[i] = unreached
		s.f[i] = unreached
		s.cameFrom[i] = -1
	}

	heap.Init(&s.open)
	s.g[s.start] = 0
	s.f[s.start] = o.Heuristic(start, end)
	s.push(s.start)

	return s, nil
}

// validateEndpoint rejects positions outside the grid and Barrier cells.
func validateEndpoint(g *gridgraph.Grid, name string, p gridgraph.Position) error {
	c, err := g.Cell(p)
	if err != nil {
		return fmt.Errorf("%w: %s %v out of bounds", ErrInvalidEndpoint, name, p)
	}
	if c.State() == gridgraph.Barrier {
		return fmt.Errorf("%w: %s %v is a barrier", ErrInvalidEndpoint, name, p)
	}
	return nil
}

// push enqueues cell i with its current f score and the next sequence
// number. The start cell is pushed with sequence 0.
func (s *Stepper) push(i int) {
	it := &queueItem{cell: i, f: s.f[i], seq: s.seq}
	s.seq++
	heap.Push(&s.open, it)
	s.queued[i] = true
	p := s.grid.Position(i)
	s.res.Enqueued = append(s.res.Enqueued, p)
	s.opts.OnEnqueue(p, s.f[i])
}

// Done reports whether the search has reached a terminal phase.
func (s *Stepper) Done() bool { return s.phase.Terminal() }

// Phase returns the current phase.
func (s *Stepper) Phase() Phase { return s.phase }

// Err returns the terminal error: nil while running or after success,
// ErrNoPath after exhaustion, a wrapped ErrCancelled after cancellation.
func (s *Stepper) Err() error { return s.err }

// Result returns the search outcome so far. It is complete once Done.
func (s *Stepper) Result() *Result { return s.res }

// GScore returns the best known cost from start to p, or false if p has not
// been reached (or is out of bounds).
func (s *Stepper) GScore(p gridgraph.Position) (int, bool) {
	if !s.grid.InBounds(p) {
		return 0, false
	}
	v := s.g[s.grid.Index(p)]
	return v, v != unreached
}

// Step advances the search by one unit of work and returns a snapshot.
// The returned error is non-nil only on the step that ends the run
// unsuccessfully (ErrNoPath, ErrCancelled); after that, Step keeps returning
// the final snapshot and the same error.
func (s *Stepper) Step() (Snapshot, error) {
	if s.Done() {
		return s.last, s.err
	}
	select {
	case <-s.opts.Ctx.Done():
		s.phase = PhaseCancelled
		s.err = fmt.Errorf("%w: %w", ErrCancelled, s.opts.Ctx.Err())
		return s.snapshot(s.last.Current), s.err
	default:
	}

	s.res.Steps++
	if s.phase == PhaseTrace {
		return s.traceStep(), nil
	}
	return s.expandStep()
}

// expandStep pops the lowest (f, seq) cell and relaxes its neighbours.
func (s *Stepper) expandStep() (Snapshot, error) {
	if s.open.Len() == 0 {
		s.phase = PhaseExhausted
		s.err = ErrNoPath
		return s.snapshot(s.last.Current), s.err
	}

	it := heap.Pop(&s.open).(*queueItem)
	cur := it.cell
	s.queued[cur] = false
	curPos := s.grid.Position(cur)
	s.res.Expanded = append(s.res.Expanded, curPos)
	s.opts.OnExpand(curPos, s.g[cur])

	if cur == s.end {
		s.beginTrace()
		return s.snapshot(curPos), nil
	}

	for _, nb := range s.grid.NeighborIndices(cur) {
		tentative := s.g[cur] + 1
		if tentative >= s.g[nb] {
			continue
		}
		s.cameFrom[nb] = cur
		s.g[nb] = tentative
		s.f[nb] = tentative + s.opts.Heuristic(s.grid.Position(nb), s.grid.Position(s.end))
		// A queued cell keeps the key it was pushed with.
		if s.queued[nb] {
			continue
		}
		s.push(nb)
		s.mark(nb, gridgraph.Open)
	}

	s.opts.OnStep()
	if cur != s.start {
		s.mark(cur, gridgraph.Closed)
	}
	return s.snapshot(curPos), nil
}

// beginTrace records the path and queues its intermediate cells for marking.
func (s *Stepper) beginTrace() {
	var chain []int
	for at := s.end; at >= 0; at = s.cameFrom[at] {
		chain = append(chain, at)
	}
	// chain runs end → start; intermediates are chain[1 : len-1].
	if len(chain) > 2 {
		s.trace = chain[1 : len(chain)-1]
	}
	path := make([]gridgraph.Position, len(chain))
	for k, idx := range chain {
		path[len(chain)-1-k] = s.grid.Position(idx)
	}
	s.res.Path = path
	s.res.Cost = s.g[s.end]

	s.phase = PhaseTrace
	if len(s.trace) == 0 {
		s.finish()
	}
}

// traceStep marks the next path cell, walking from end towards start.
func (s *Stepper) traceStep() Snapshot {
	idx := s.trace[0]
	s.trace = s.trace[1:]
	p := s.grid.Position(idx)
	s.mark(idx, gridgraph.Path)
	s.opts.OnPath(p)
	s.opts.OnStep()
	if len(s.trace) == 0 {
		s.finish()
	}
	return s.snapshot(p)
}

// finish restores the endpoints' distinguishing states and concludes.
func (s *Stepper) finish() {
	if s.opts.MarkStates {
		s.grid.CellAt(s.end).SetState(gridgraph.End)
		s.grid.CellAt(s.start).SetState(gridgraph.Start)
	}
	s.res.Found = true
	s.phase = PhaseFound
}

// mark writes state st into cell idx unless marking is disabled or the cell
// is an endpoint, whose Start/End state is never overwritten mid-run.
func (s *Stepper) mark(idx int, st gridgraph.State) {
	if !s.opts.MarkStates || idx == s.start || idx == s.end {
		return
	}
	s.grid.CellAt(idx).SetState(st)
}

func (s *Stepper) snapshot(cur gridgraph.Position) Snapshot {
	s.last = Snapshot{
		Phase:    s.phase,
		Step:     s.res.Steps,
		Current:  cur,
		Frontier: s.open.Len(),
		Expanded: len(s.res.Expanded),
	}
	return s.last
}

// All returns an iterator over the remaining steps. It stops after the
// terminal step, whose error (if any) is yielded alongside its snapshot.
func (s *Stepper) All() iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		for !s.Done() {
			snap, err := s.Step()
			if !yield(snap, err) {
				return
			}
		}
	}
}

// Run drives the stepper to completion and returns its Result and
// terminal error.
func (s *Stepper) Run() (*Result, error) {
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			return s.res, err
		}
	}
	return s.res, s.err
}
