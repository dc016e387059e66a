// Package grid models a Sudoku board of any perfect-square side length,
// with per-cell candidate sets kept consistent with every placement.
//
// 🚀 What is grid?
//
//	A Grid is a side×side board stored row-major. Each empty cell owns a
//	CandidateSet — a bitmask of the digits in [1, side] not yet ruled out
//	by a placed peer (a cell sharing its row, column or box). Placements
//	strip the placed value from all peer candidate sets in place, so the
//	candidate invariant holds after every mutation.
//
// ✨ Key features:
//   - New(side, values) validates geometry, value ranges and uniqueness
//   - Place(r, c, v) enforces the candidate invariant on every write
//   - Candidates(r, c) exposes the remaining digits for an empty cell
//   - Clone() deep-copies the board for backtracking checkpoints
//   - Conflicts() names the cell pairs that break row/col/box uniqueness
//   - Parse / Compact / String cover compact and comma-separated text forms
//
// Geometry (box index and peer lists per cell) is computed once per side
// and memoized, so constructing many grids of the same size is cheap.
//
// Complexity:
//
//   - New:    O(side²·side) time (peer scan per placed cell), O(side²) memory
//   - Place:  O(side) time (peer candidate updates)
//   - Clone:  O(side²) time & memory
//
// Errors: see types.go for the sentinel list; ConflictError carries the
// pair of conflicting cells and unwraps to ErrConstraintViolation.
package grid
