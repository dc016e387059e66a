package grid

// Grid is a side×side Sudoku board stored row-major. Placed cells hold a
// digit in [1, side]; empty cells hold 0 and own a CandidateSet consistent
// with every placed peer. Geometry is shared and immutable; cell state is
// owned by the Grid and deep-copied by Clone.
type Grid struct {
	geo   *geometry
	cells []int          // 0 = empty, otherwise the placed digit
	cand  []CandidateSet // meaningful only for empty cells
	given []bool         // cells placed at construction time
	empty int            // number of empty cells
}

// New constructs a Grid from a row-major value sequence, 0 marking empty
// cells. It validates the side length (ErrSideLength), the sequence length
// (ErrCellCount), each value's range (ErrValueRange), and row/column/box
// uniqueness of the placed values — a duplicate is reported as a
// *ConflictError naming both cells.
// Complexity: O(side²·side) time, O(side²) memory.
func New(side int, values []int) (*Grid, error) {
	geo, err := geometryFor(side)
	if err != nil {
		return nil, err
	}
	n := side * side
	if len(values) != n {
		return nil, ErrCellCount
	}

	g := &Grid{
		geo:   geo,
		cells: make([]int, n),
		cand:  make([]CandidateSet, n),
		given: make([]bool, n),
		empty: n,
	}
	full := FullSet(side)
	for i, v := range values {
		if v < 0 || v > side {
			return nil, ErrValueRange
		}
		g.cells[i] = v
		g.cand[i] = full
		if v != 0 {
			g.given[i] = true
			g.empty--
		}
	}

	// Placed values must be unique within every row, column, and box
	// before any candidate bookkeeping is trusted.
	if conflicts := g.Conflicts(); len(conflicts) > 0 {
		return nil, &ConflictError{Conflict: conflicts[0]}
	}

	// Strip each placed value from its peers' candidate sets. A cell may
	// legitimately end up with an empty set here; that is an unsolvable
	// grid, not a construction error.
	for i, v := range g.cells {
		if v == 0 {
			continue
		}
		g.cand[i] = 0
		for _, p := range geo.peers[i] {
			g.cand[p] = g.cand[p].Remove(v)
		}
	}

	return g, nil
}

// Side returns the side length of the grid.
func (g *Grid) Side() int { return g.geo.side }

// BoxSide returns the side length of one box (sqrt of Side).
func (g *Grid) BoxSide() int { return g.geo.box }

// EmptyCount returns the number of cells without a placed value.
func (g *Grid) EmptyCount() int { return g.empty }

// IsComplete reports whether every cell has a placed value.
func (g *Grid) IsComplete() bool { return g.empty == 0 }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.geo.side && c >= 0 && c < g.geo.side
}

// index maps (r,c) to the row-major cell index.
func (g *Grid) index(r, c int) int { return r*g.geo.side + c }

// Get returns the value at (r,c), 0 for an empty cell.
// Returns ErrOutOfBounds on invalid indices.
func (g *Grid) Get(r, c int) (int, error) {
	if !g.InBounds(r, c) {
		return 0, ErrOutOfBounds
	}

	return g.cells[g.index(r, c)], nil
}

// Given reports whether the cell at (r,c) was placed at construction time.
// Returns ErrOutOfBounds on invalid indices.
func (g *Grid) Given(r, c int) (bool, error) {
	if !g.InBounds(r, c) {
		return false, ErrOutOfBounds
	}

	return g.given[g.index(r, c)], nil
}

// Candidates returns the digits still allowed at (r,c). A placed cell
// reports the empty set; an over-constrained empty cell may too.
// Returns ErrOutOfBounds on invalid indices.
func (g *Grid) Candidates(r, c int) (CandidateSet, error) {
	if !g.InBounds(r, c) {
		return 0, ErrOutOfBounds
	}

	return g.cand[g.index(r, c)], nil
}

// Place sets (r,c) to v and removes v from the candidate sets of every
// peer, keeping the candidate invariant intact. Returns ErrOutOfBounds or
// ErrValueRange on contract misuse, and ErrConstraintViolation when v is
// not currently a candidate at (r,c) — including when the cell is already
// placed.
// Complexity: O(side) time.
func (g *Grid) Place(r, c, v int) error {
	if !g.InBounds(r, c) {
		return ErrOutOfBounds
	}
	if v < 1 || v > g.geo.side {
		return ErrValueRange
	}
	i := g.index(r, c)
	if !g.cand[i].Has(v) {
		return ErrConstraintViolation
	}

	g.cells[i] = v
	g.cand[i] = 0
	g.empty--
	for _, p := range g.geo.peers[i] {
		g.cand[p] = g.cand[p].Remove(v)
	}

	return nil
}

// Clone returns a deep copy sharing only the immutable geometry — the
// backtracking checkpoint primitive.
// Complexity: O(side²) time & memory.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		geo:   g.geo,
		cells: make([]int, len(g.cells)),
		cand:  make([]CandidateSet, len(g.cand)),
		given: make([]bool, len(g.given)),
		empty: g.empty,
	}
	copy(dup.cells, g.cells)
	copy(dup.cand, g.cand)
	copy(dup.given, g.given)

	return dup
}

// RowValues returns a copy of row r, left to right.
// Returns ErrOutOfBounds on an invalid index.
func (g *Grid) RowValues(r int) ([]int, error) {
	if r < 0 || r >= g.geo.side {
		return nil, ErrOutOfBounds
	}
	out := make([]int, g.geo.side)
	copy(out, g.cells[r*g.geo.side:(r+1)*g.geo.side])

	return out, nil
}

// ColValues returns a copy of column c, top to bottom.
// Returns ErrOutOfBounds on an invalid index.
func (g *Grid) ColValues(c int) ([]int, error) {
	if c < 0 || c >= g.geo.side {
		return nil, ErrOutOfBounds
	}
	out := make([]int, g.geo.side)
	for r := 0; r < g.geo.side; r++ {
		out[r] = g.cells[g.index(r, c)]
	}

	return out, nil
}

// BoxValues returns a copy of box b (boxes numbered row-major, box 0 top
// left) in row-major order within the box.
// Returns ErrOutOfBounds on an invalid index.
func (g *Grid) BoxValues(b int) ([]int, error) {
	if b < 0 || b >= g.geo.side {
		return nil, ErrOutOfBounds
	}
	box := g.geo.box
	br, bc := (b/box)*box, (b%box)*box
	out := make([]int, 0, g.geo.side)
	for dr := 0; dr < box; dr++ {
		for dc := 0; dc < box; dc++ {
			out = append(out, g.cells[g.index(br+dr, bc+dc)])
		}
	}

	return out, nil
}

// Conflicts scans every row, column, and box for duplicated placed values
// and returns one Conflict per offending cell pair, in scan order (rows,
// then columns, then boxes). An empty result means the placed values are
// mutually consistent.
// Complexity: O(side²) time.
func (g *Grid) Conflicts() []Conflict {
	side := g.geo.side
	var out []Conflict

	// lastAt[v] holds the previous cell index carrying v in the unit
	// under scan, or -1.
	lastAt := make([]int, side+1)
	reset := func() {
		for v := range lastAt {
			lastAt[v] = -1
		}
	}
	check := func(i int) {
		v := g.cells[i]
		if v == 0 {
			return
		}
		if p := lastAt[v]; p >= 0 {
			out = append(out, Conflict{
				A:     Coord{Row: p / side, Col: p % side},
				B:     Coord{Row: i / side, Col: i % side},
				Value: v,
			})
		}
		lastAt[v] = i
	}

	for r := 0; r < side; r++ {
		reset()
		for c := 0; c < side; c++ {
			check(g.index(r, c))
		}
	}
	for c := 0; c < side; c++ {
		reset()
		for r := 0; r < side; r++ {
			check(g.index(r, c))
		}
	}
	box := g.geo.box
	for b := 0; b < side; b++ {
		reset()
		br, bc := (b/box)*box, (b%box)*box
		for dr := 0; dr < box; dr++ {
			for dc := 0; dc < box; dc++ {
				check(g.index(br+dr, bc+dc))
			}
		}
	}

	return out
}
