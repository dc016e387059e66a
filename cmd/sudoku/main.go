// Command sudoku solves a Sudoku puzzle supplied as a single argument.
//
// Usage:
//
//	sudoku [-side N] [-max-nodes N] PUZZLE
//
// PUZZLE is row-major, in either the compact one-symbol-per-cell form
// (digits 1..9 then A..P, blanks 0, '.' or '_') or the comma-separated
// decimal form ('_' or an empty field for a blank).
//
// Exit codes: 0 solved, 1 unsolvable (or search aborted), 2 invalid input
// or usage.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RichardSartori/sudoku/grid"
	"github.com/RichardSartori/sudoku/solver"
)

const (
	exitSolved     = 0
	exitUnsolvable = 1
	exitBadInput   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, solves, and reports; factored out of main for testing.
func run(args []string, out, errw io.Writer) int {
	fs := flag.NewFlagSet("sudoku", flag.ContinueOnError)
	fs.SetOutput(errw)
	side := fs.Int("side", 9, "grid side length (a perfect square)")
	maxNodes := fs.Int("max-nodes", 0, "abort after this many search nodes (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errw, "usage: sudoku [-side N] [-max-nodes N] PUZZLE")
		return exitBadInput
	}

	g, err := grid.Parse(*side, fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errw, "invalid puzzle:", err)
		return exitBadInput
	}

	fmt.Fprintln(out, "Input:")
	fmt.Fprint(out, g)

	solved, stats, err := solver.Solve(g, solver.WithMaxNodes(*maxNodes))
	if err != nil {
		fmt.Fprintln(errw, err)
		return exitUnsolvable
	}

	fmt.Fprintln(out, "Solution:")
	fmt.Fprint(out, solved)
	fmt.Fprintf(out, "solved in %v (%d forced moves, %d guesses, %d backtracks)\n",
		stats.Duration, stats.ForcedMoves, stats.Guesses, stats.Backtracks)

	return exitSolved
}
