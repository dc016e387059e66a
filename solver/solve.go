// Package solver - entry point for the propagation + backtracking engine.
//
// Design principles:
//   - Deterministic: fixed scan order and tie-breaks, no randomness.
//   - Strict sentinels: only errors from types.go cross the API boundary;
//     contradictions inside the search stay internal.
//   - Ownership: the caller's grid is cloned up front and never mutated;
//     every branch works on its own clone.
package solver

import (
	"time"

	"github.com/RichardSartori/sudoku/grid"
)

// Solve completes g, returning the solved grid and search diagnostics.
// The input grid is not mutated. On failure the returned grid is nil and
// the error is one of ErrNilGrid, ErrUnsolvable, ErrBudgetExceeded, or the
// context error when the search was cancelled; Stats is populated in every
// case.
func Solve(g *grid.Grid, opts ...Option) (*grid.Grid, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGrid
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	start := time.Now()
	w := &walker{opts: o}
	solved, err := w.search(g.Clone(), 0)
	w.stats.Duration = time.Since(start)

	if err != nil {
		return nil, w.stats, err
	}
	if solved == nil {
		// Every branch from the root was exhausted.
		return nil, w.stats, ErrUnsolvable
	}

	return solved, w.stats, nil
}
