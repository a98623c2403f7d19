// Package gridgraph defines core types and sentinel errors
// for the gridgraph package of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// State is the traversal state of a single cell. A cell holds exactly one
// State at any time.
type State uint8

const (
	// Empty is an untouched, traversable cell.
	Empty State = iota
	// Open marks a frontier cell: discovered and queued, not yet finalized.
	Open
	// Closed marks a cell whose cost from the start is finalized.
	Closed
	// Barrier is an impassable cell.
	Barrier
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Path marks an intermediate cell of the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Open:    "open",
	Closed:  "closed",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Path:    "path",
}

// String returns the lower-case name of s.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Traversable reports whether a search may step onto a cell in state s.
func (s State) Traversable() bool { return s != Barrier }

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single grid position with its traversal state.
// Row and column are fixed when the grid is built.
type Cell struct {
	pos   Position
	state State
}

// Position returns the cell's (row, col).
func (c *Cell) Position() Position { return c.pos }

// State returns the cell's current traversal state.
func (c *Cell) State() State { return c.state }

// SetState overwrites the cell's state. No transition is validated; keeping
// at most one Start and one End is the caller's business.
func (c *Cell) SetState(s State) { c.state = s }

// Is reports whether the cell is currently in state s.
func (c *Cell) Is(s State) bool { return c.state == s }

// Reset returns the cell to Empty.
func (c *Cell) Reset() { c.state = Empty }
