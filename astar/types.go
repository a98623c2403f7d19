// Package astar provides tunable options, results and error definitions
// for A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint is returned when start or end is out of bounds
	// or is a Barrier cell.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrNoPath is returned when the open set empties without reaching end.
	// It is a normal negative result, not a failure of the engine.
	ErrNoPath = errors.New("astar: no path exists")

	// ErrCancelled is returned when the context is done before the search
	// concludes. It wraps the context's own error.
	ErrCancelled = errors.New("astar: search cancelled")
)

// Heuristic estimates the remaining cost between two positions. It must
// never overestimate for the returned path to be shortest.
type Heuristic func(from, to gridgraph.Position) int

// Manhattan returns |Δrow| + |Δcol|: admissible and consistent on a
// 4-connected unit-cost grid.
func Manhattan(a, b gridgraph.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Option configures A* behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation. It is checked once per step.
	Ctx context.Context

	// Heuristic estimates remaining cost. Defaults to Manhattan.
	Heuristic Heuristic

	// OnStep is called once per expansion after all neighbours of the
	// current cell are processed, and once per cell marked during path
	// reconstruction. Harnesses redraw here.
	OnStep func()

	// OnEnqueue is called when a cell joins the open set, with its f score.
	OnEnqueue func(p gridgraph.Position, f int)

	// OnExpand is called when a cell is popped from the open set, with its
	// g score.
	OnExpand func(p gridgraph.Position, g int)

	// OnPath is called for each intermediate cell of the reconstructed
	// path, walking backwards from end.
	OnPath func(p gridgraph.Position)

	// MarkStates controls whether the search writes Open, Closed, Path,
	// Start and End into the grid's cells. Default true.
	MarkStates bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Manhattan heuristic
//   - no-op hooks
//   - state marking enabled
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Heuristic:  Manhattan,
		OnStep:     func() {},
		OnEnqueue:  func(gridgraph.Position, int) {},
		OnExpand:   func(gridgraph.Position, int) {},
		OnPath:     func(gridgraph.Position) {},
		MarkStates: true,
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

// WithHeuristic replaces the Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnStep registers the per-step redraw callback.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(p gridgraph.Position, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run when a cell is popped.
func WithOnExpand(fn func(p gridgraph.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPath registers a callback to run for each reconstructed path cell.
func WithOnPath(fn func(p gridgraph.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithoutStateMarking leaves every cell state untouched; only the Result
// reports what happened. Use it for non-visual callers sharing a grid.
func WithoutStateMarking() Option {
	return func(o *Options) { o.MarkStates = false }
}

// Result holds the outcome of one search:
//   - Found: end was reached.
//   - Path: positions from start to end inclusive; [start] when start == end.
//   - Cost: g score of end, i.e. the number of moves.
//   - Expanded: cells in the order they were popped from the open set.
//   - Enqueued: cells in the order they entered the open set, start first.
//   - Steps: number of Step calls that did work.
type Result struct {
	Found    bool
	Path     []gridgraph.Position
	Cost     int
	Expanded []gridgraph.Position
	Enqueued []gridgraph.Position
	Steps    int
}

// Moves returns the number of unit moves along Path, or -1 if not found.
// When start == end the path is the single cell [start], so Moves is 0
// while len(Path) is 1.
func (r *Result) Moves() int {
	if r == nil || !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Phase names where a Stepper is in its run.
type Phase uint8

const (
	// PhaseExpand: popping and expanding open cells.
	PhaseExpand Phase = iota
	// PhaseTrace: end reached, marking path cells one per step.
	PhaseTrace
	// PhaseFound: terminal, path reconstructed.
	PhaseFound
	// PhaseExhausted: terminal, open set emptied without reaching end.
	PhaseExhausted
	// PhaseCancelled: terminal, context done.
	PhaseCancelled
)

var phaseNames = [...]string{"expand", "trace", "found", "exhausted", "cancelled"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Terminal reports whether no further steps will happen.
func (p Phase) Terminal() bool { return p >= PhaseFound }

// Snapshot exposes the state of the search after one step.
type Snapshot struct {
	Phase Phase
	// Step is the 1-based index of the step that produced this snapshot.
	Step int
	// Current is the cell popped (expand) or marked (trace) by this step.
	Current gridgraph.Position
	// Frontier is the open-set size after the step.
	Frontier int
	// Expanded is the number of cells popped so far.
	Expanded int
}
