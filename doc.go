// Package sudoku is an in-memory Sudoku solving engine — a constraint-aware
// grid model plus a propagation-and-backtracking search.
//
// 🚀 What is sudoku?
//
//	A small, deterministic library that brings together:
//		• Grid model: fixed-size row-major board with per-cell candidate bitsets
//		• Constraint views: row / column / box accessors and conflict scans
//		• Propagation: forced moves (naked singles) driven to a fixpoint
//		• Search: minimum-remaining-values backtracking over grid clones
//		• Variants: any perfect-square side length (4×4, 9×9, 16×16, 25×25)
//
// ✨ Why choose it?
//
//   - Deterministic – fixed scan order and tie-breaks, no hidden randomness
//   - Strict sentinels – every failure mode is a named, comparable error
//   - Pure Go – no cgo, no hidden deps
//   - Bounded – optional context cancellation and node budgets for the search
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/   — Grid, CandidateSet, geometry, parsing & rendering
//	solver/ — Solve: propagation fixpoint + MRV backtracking
//
// Quick ASCII example:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//
//	is the start of the classic 9×9 puzzle; Solve completes it.
//
// A thin CLI lives under cmd/sudoku for one-shot solving from the shell.
//
//	go get github.com/RichardSartori/sudoku
package sudoku
