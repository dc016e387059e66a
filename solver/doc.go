// Package solver drives a grid.Grid from a partial state to a completed
// solution using constraint propagation interleaved with backtracking
// search, or reports ErrUnsolvable when no completion exists.
//
// Algorithm Outline:
//  1. Propagation: scan every empty cell; place any cell whose candidate
//     set has exactly one member (a forced move). Repeat until a full pass
//     makes no placement (fixpoint). A cell with zero candidates is a
//     contradiction and fails the current branch.
//  2. Termination: a complete grid is the solution.
//  3. Branch selection: among empty cells, pick the one with the smallest
//     candidate set (minimum-remaining-values), ties broken by lowest
//     row-major index.
//  4. Branching: try each candidate in ascending order on a clone of the
//     grid, recursing into step 1. The first success wins; untried
//     siblings are never started. Exhaustion backtracks to the caller.
//  5. If the root exhausts every branch, the puzzle is unsolvable.
//
// Contradictions inside the search are local control-flow signals consumed
// by backtracking — only root exhaustion surfaces as ErrUnsolvable.
//
// The search is single-threaded and depth-first; every recursive call owns
// its own clone, so no state is shared across branches. Determinism: fixed
// scan order, fixed tie-breaks, ascending candidate order.
//
// Complexity:
//
//   - Propagation: O(side²) per pass, O(side²) passes worst case.
//   - Search: exponential worst case; MRV keeps typical 9×9 puzzles to a
//     handful of guesses.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithMaxNodes(n)   bounds the number of search nodes.
//
// Errors:
//
//   - ErrNilGrid          if the input grid is nil.
//   - ErrUnsolvable       if no completion exists.
//   - ErrBudgetExceeded   if the node budget runs out.
//   - context error       if ctx is done.
package solver
