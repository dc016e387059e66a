package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RichardSartori/sudoku/grid"
	"github.com/RichardSartori/sudoku/solver"
)

// The classic 9×9 puzzle with a unique, widely published solution.
const (
	classicPuzzle = "" +
		"530070000" +
		"600195000" +
		"098000060" +
		"800060003" +
		"400803001" +
		"700020006" +
		"060000280" +
		"000419005" +
		"000080079"
	classicSolution = "" +
		"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

// A placement pattern with no valid completion: the two 1-2 pairs cannot
// be reconciled in the remaining blanks.
const unsolvablePuzzle = "" +
	"...12...." +
	"......12." +
	"........." +
	"1........" +
	"2........" +
	"........." +
	".1......." +
	".2......." +
	"........."

// SolveSuite exercises the propagation + backtracking engine.
type SolveSuite struct {
	suite.Suite
}

// mustParse builds a grid or fails the suite.
func (s *SolveSuite) mustParse(side int, puzzle string) *grid.Grid {
	g, err := grid.Parse(side, puzzle)
	require.NoError(s.T(), err)

	return g
}

// TestClassic9 verifies that the canonical puzzle solves to exactly its
// known solution.
func (s *SolveSuite) TestClassic9() {
	g := s.mustParse(9, classicPuzzle)

	solved, stats, err := solver.Solve(g)
	require.NoError(s.T(), err)
	require.True(s.T(), solved.IsComplete())
	require.Equal(s.T(), classicSolution, solved.Compact())
	require.Positive(s.T(), stats.Nodes)
	require.Positive(s.T(), stats.ForcedMoves)
}

// TestValidity checks the solved-output invariant: every row, column, and
// box contains each digit exactly once.
func (s *SolveSuite) TestValidity() {
	g := s.mustParse(9, classicPuzzle)
	solved, _, err := solver.Solve(g)
	require.NoError(s.T(), err)

	views := []func(int) ([]int, error){solved.RowValues, solved.ColValues, solved.BoxValues}
	names := []string{"row", "col", "box"}
	for k, view := range views {
		for i := 0; i < 9; i++ {
			vals, verr := view(i)
			require.NoError(s.T(), verr)
			seen := make(map[int]bool, 9)
			for _, v := range vals {
				require.GreaterOrEqual(s.T(), v, 1)
				require.LessOrEqual(s.T(), v, 9)
				require.False(s.T(), seen[v], "%s %d repeats %d", names[k], i, v)
				seen[v] = true
			}
		}
	}
}

// TestFidelityOfGivens verifies every input digit survives unchanged and
// keeps its given flag in the solution.
func (s *SolveSuite) TestFidelityOfGivens() {
	g := s.mustParse(9, classicPuzzle)
	solved, _, err := solver.Solve(g)
	require.NoError(s.T(), err)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			in, _ := g.Get(r, c)
			if in == 0 {
				continue
			}
			out, _ := solved.Get(r, c)
			require.Equal(s.T(), in, out, "given at (%d,%d) changed", r, c)
			given, _ := solved.Given(r, c)
			require.True(s.T(), given, "given flag lost at (%d,%d)", r, c)
		}
	}
}

// TestDeterminism verifies that repeated solves produce identical output
// and identical search shape.
func (s *SolveSuite) TestDeterminism() {
	first, stats1, err := solver.Solve(s.mustParse(9, classicPuzzle))
	require.NoError(s.T(), err)
	second, stats2, err := solver.Solve(s.mustParse(9, classicPuzzle))
	require.NoError(s.T(), err)

	require.Equal(s.T(), first.Compact(), second.Compact())
	require.Equal(s.T(), stats1.Guesses, stats2.Guesses)
	require.Equal(s.T(), stats1.Nodes, stats2.Nodes)
}

// TestInputNotMutated verifies the caller's grid is untouched by Solve.
func (s *SolveSuite) TestInputNotMutated() {
	g := s.mustParse(9, classicPuzzle)
	before := g.Compact()

	_, _, err := solver.Solve(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, g.Compact())
	require.False(s.T(), g.IsComplete())
}

// TestConflictRejectedBeforeSearch verifies that an input duplicate is a
// construction-time ConstraintViolation naming the cells, never reaching
// the solver.
func (s *SolveSuite) TestConflictRejectedBeforeSearch() {
	dup := "" +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		".......1." +
		"........1"
	_, err := grid.Parse(9, dup)
	require.ErrorIs(s.T(), err, grid.ErrConstraintViolation)

	var ce *grid.ConflictError
	require.ErrorAs(s.T(), err, &ce)
	require.Equal(s.T(), 1, ce.Value)
}

// TestImmediateContradiction verifies that a duplicate-free grid with an
// over-constrained cell is reported unsolvable without any guessing.
func (s *SolveSuite) TestImmediateContradiction() {
	// Row 0 holds 1..8; the column peer below (0,8) holds 9.
	puzzle := "" +
		"12345678." +
		"........9" +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........." +
		"........."
	g := s.mustParse(9, puzzle)

	solved, stats, err := solver.Solve(g)
	require.ErrorIs(s.T(), err, solver.ErrUnsolvable)
	require.Nil(s.T(), solved)
	require.Zero(s.T(), stats.Guesses)
}

// TestUnsolvableBySearch verifies exhaustive rejection of a puzzle with no
// completion, within a bounded number of nodes.
func (s *SolveSuite) TestUnsolvableBySearch() {
	g := s.mustParse(9, unsolvablePuzzle)

	solved, stats, err := solver.Solve(g, solver.WithMaxNodes(2_000_000))
	require.ErrorIs(s.T(), err, solver.ErrUnsolvable)
	require.Nil(s.T(), solved)
	require.Positive(s.T(), stats.Backtracks)
}

// TestCancellation verifies that a cancelled context aborts the search with
// the context error.
func (s *SolveSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := s.mustParse(9, classicPuzzle)
	_, _, err := solver.Solve(g, solver.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestNodeBudget verifies that the node budget aborts a search that must
// guess.
func (s *SolveSuite) TestNodeBudget() {
	g, err := grid.New(9, make([]int, 81))
	require.NoError(s.T(), err)

	_, _, err = solver.Solve(g, solver.WithMaxNodes(1))
	require.ErrorIs(s.T(), err, solver.ErrBudgetExceeded)
}

// TestNilGrid verifies the nil-input sentinel.
func (s *SolveSuite) TestNilGrid() {
	_, _, err := solver.Solve(nil)
	require.ErrorIs(s.T(), err, solver.ErrNilGrid)
}

// Test4x4Variant verifies size genericity on the 4×4 geometry.
func (s *SolveSuite) Test4x4Variant() {
	g := s.mustParse(4, "1.34.41223.1412.")

	solved, _, err := solver.Solve(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "1234341223414123", solved.Compact())
}

// Test16x16Variant blanks four independent cells of a solved 16×16 grid
// and checks that propagation alone restores them.
func (s *SolveSuite) Test16x16Variant() {
	values := patternValues(16)
	want, err := grid.New(16, values)
	require.NoError(s.T(), err)

	// No two blanks share a row, column, or box, so each is forced.
	for _, i := range []int{0, 5*16 + 5, 10*16 + 10, 15*16 + 15} {
		values[i] = 0
	}
	g, err := grid.New(16, values)
	require.NoError(s.T(), err)

	solved, stats, err := solver.Solve(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want.Compact(), solved.Compact())
	require.Equal(s.T(), 4, stats.ForcedMoves)
	require.Zero(s.T(), stats.Guesses)
}

// TestSolveSuite runs the suite.
func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
