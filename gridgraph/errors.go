package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a grid was requested with a non-positive side.
	ErrInvalidSize = errors.New("gridgraph: grid size must be positive")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrEmptyGrid indicates a text map with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonSquare indicates a text map whose rows differ in length or whose
	// row count differs from its column count.
	ErrNonSquare = errors.New("gridgraph: grid must be square")
	// ErrBadSymbol indicates an unknown rune in a text map.
	ErrBadSymbol = errors.New("gridgraph: unknown map symbol")
	// ErrDuplicateEndpoint indicates more than one start or end in a text map.
	ErrDuplicateEndpoint = errors.New("gridgraph: duplicate start or end")
)
