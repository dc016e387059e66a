package solver

import "github.com/RichardSartori/sudoku/grid"

// walker encapsulates state during the depth-first search.
type walker struct {
	opts  Options // search options
	stats Stats   // diagnostics collector
}

// search owns g and drives it to completion. It returns (solved, nil) on
// success, (nil, nil) when this branch is exhausted — the backtrack signal
// consumed by the caller's candidate loop — and (nil, err) only for
// cancellation, budget exhaustion, or a broken grid invariant.
func (w *walker) search(g *grid.Grid, depth int) (*grid.Grid, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	// 2. Node accounting and budget
	w.stats.Nodes++
	if w.opts.MaxNodes > 0 && w.stats.Nodes > w.opts.MaxNodes {
		return nil, ErrBudgetExceeded
	}
	if depth > w.stats.MaxDepth {
		w.stats.MaxDepth = depth
	}

	// 3. Propagation to fixpoint; a contradiction fails this branch only
	if !w.propagate(g) {
		return nil, nil
	}

	// 4. Termination check
	if g.IsComplete() {
		return g, nil
	}

	// 5. Branch selection: minimum-remaining-values cell
	r, c, set := mostConstrained(g)

	// 6. Branching: ascending candidates, clone per branch, first success wins
	for _, v := range set.Values() {
		child := g.Clone()
		if err := child.Place(r, c, v); err != nil {
			// v was read from the candidate set; failure here means the
			// grid invariant broke, which must surface, not backtrack.
			return nil, err
		}
		w.stats.Guesses++

		solved, err := w.search(child, depth+1)
		if err != nil {
			return nil, err
		}
		if solved != nil {
			return solved, nil
		}
		w.stats.Backtracks++
	}

	// 7. All candidates failed: backtrack in the caller
	return nil, nil
}

// mostConstrained returns the empty cell with the smallest candidate set,
// ties broken by lowest row-major index. Must be called on an incomplete,
// contradiction-free grid, so every empty cell has ≥ 2 candidates after
// propagation.
func mostConstrained(g *grid.Grid) (row, col int, set grid.CandidateSet) {
	side := g.Side()
	best := side + 1
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if v, _ := g.Get(r, c); v != 0 {
				continue
			}
			cand, _ := g.Candidates(r, c)
			if n := cand.Count(); n < best {
				best = n
				row, col, set = r, c, cand
			}
		}
	}

	return row, col, set
}
