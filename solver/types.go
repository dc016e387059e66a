// Package solver defines options, result diagnostics, and sentinel errors
// for the solver subpackage of github.com/RichardSartori/sudoku.
package solver

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for solver operations.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to Solve.
	ErrNilGrid = errors.New("solver: grid is nil")
	// ErrUnsolvable indicates the puzzle admits no valid completion.
	ErrUnsolvable = errors.New("solver: puzzle has no solution")
	// ErrBudgetExceeded indicates the search node budget ran out before a
	// definite outcome was reached.
	ErrBudgetExceeded = errors.New("solver: search node budget exceeded")
)

// Stats reports what the search did — useful for benchmarks, difficulty
// probes, and budget tuning.
type Stats struct {
	// Nodes counts search invocations (root, plus one per guess taken).
	Nodes int
	// ForcedMoves counts placements made by propagation.
	ForcedMoves int
	// Guesses counts speculative placements made by branching.
	Guesses int
	// Backtracks counts abandoned branches.
	Backtracks int
	// MaxDepth is the deepest guess chain explored.
	MaxDepth int
	// Duration is the wall-clock time spent inside Solve.
	Duration time.Duration
}

// Option configures optional behavior of Solve.
// Use with Solve(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early with the context error.
	Ctx context.Context

	// MaxNodes, if positive, bounds the number of search nodes before the
	// search aborts with ErrBudgetExceeded. Default is 0 (no limit).
	MaxNodes int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No node budget (MaxNodes = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxNodes: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes returns an Option that bounds the search to n nodes.
// Values ≤ 0 mean no limit.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		o.MaxNodes = n
	}
}
