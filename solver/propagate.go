package solver

import "github.com/RichardSartori/sudoku/grid"

// propagate applies forced moves until a full pass over the grid makes no
// placement (fixpoint). It returns false when any empty cell has an empty
// candidate set — a contradiction that fails the current branch.
// Complexity: O(side²) per pass; every pass that repeats placed at least
// one value, so at most side² passes.
func (w *walker) propagate(g *grid.Grid) bool {
	side := g.Side()
	for again := true; again; {
		again = false
		for r := 0; r < side; r++ {
			for c := 0; c < side; c++ {
				if v, _ := g.Get(r, c); v != 0 {
					continue
				}
				set, _ := g.Candidates(r, c)
				switch set.Count() {
				case 0:
					// Over-constrained cell: contradiction.
					return false
				case 1:
					v, _ := set.Sole()
					if err := g.Place(r, c, v); err != nil {
						return false
					}
					w.stats.ForcedMoves++
					again = true
				}
			}
		}
	}

	return true
}
