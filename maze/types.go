// Package maze defines options, results and errors for filling a
// gridgraph.Grid with barriers: a depth-first carved maze or scattered
// random-walk walls.
package maze

import (
	"context"
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrTooSmall is returned by Carve for grids narrower than 3 cells,
	// which have no room for a wall between two passages.
	ErrTooSmall = errors.New("maze: grid too small")

	// ErrOptionViolation is returned when an option is out of range.
	ErrOptionViolation = errors.New("maze: option violation")
)

// Option configures Carve and Scatter.
type Option func(*Options)

// Options holds generation parameters and hooks.
type Options struct {
	// Ctx allows cancellation; checked once per carve step or walk.
	Ctx context.Context

	// Rand is the randomness source. Defaults to a fixed seed so output
	// is reproducible unless the caller asks otherwise.
	Rand *rand.Rand

	// OnCarve, if non-nil, is called for every cell Carve opens, in order.
	// Returning an error aborts generation.
	OnCarve func(p gridgraph.Position) error

	// Density is the chance that a random-walk step drops a barrier (Scatter).
	Density float64

	// Clusters and Steps shape Scatter: Clusters walks of Steps moves each.
	// Zero means one cluster per 5 rows and 4×N steps.
	Clusters int
	Steps    int

	err error
}

// DefaultSeed seeds Rand when no WithSeed or WithRand is given.
const DefaultSeed = 1

// DefaultOptions returns Options with:
//   - context.Background()
//   - rand seeded with DefaultSeed
//   - no OnCarve hook
//   - Density 0.25, automatic Clusters and Steps
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Rand:    rand.New(rand.NewSource(DefaultSeed)),
		Density: 0.25,
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

// WithSeed seeds a fresh rand source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the randomness source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnCarve registers a hook for every opened cell.
func WithOnCarve(fn func(p gridgraph.Position) error) Option {
	return func(o *Options) { o.OnCarve = fn }
}

// WithDensity sets the barrier probability per walk step. Must be in [0, 1].
func WithDensity(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Density = d
	}
}

// WithClusters sets the number of random walks and their length.
// Both must be positive.
func WithClusters(clusters, steps int) Option {
	return func(o *Options) {
		if clusters <= 0 || steps <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Clusters, o.Steps = clusters, steps
	}
}

// Result describes a carved maze.
type Result struct {
	// Carved lists opened cells in the order Carve opened them.
	Carved []gridgraph.Position

	// MaxDepth is the deepest the backtracking stack grew.
	MaxDepth int

	// Start and End are the first and last passage cells in row-major
	// order, the natural endpoints for a search.
	Start, End gridgraph.Position
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o, o.err
}
