package grid

import "sync"

// geometry captures the per-side constants shared by every Grid of that
// size: the box side, the box index of each cell, and each cell's peers
// (same row, column, or box, excluding the cell itself). Peer lists are
// precomputed once per side to keep Place on the hot path allocation-free.
type geometry struct {
	side  int
	box   int
	boxOf []int   // row-major cell index -> box index
	peers [][]int // row-major cell index -> peer cell indices
}

// geomCache memoizes geometries by side length, so repeated construction
// of same-size grids shares one peer table.
var (
	geomMu    sync.Mutex
	geomCache = make(map[int]*geometry)
)

// intSqrt finds the integer square root of n, reporting whether n is a
// perfect square.
func intSqrt(n int) (int, bool) {
	var i int
	for i = 1; i*i <= n; i++ {
		if i*i == n {
			return i, true
		}
	}

	return i - 1, false
}

// geometryFor returns the memoized geometry for the given side length.
// Returns ErrSideLength unless side is a perfect square in [1, MaxSide].
func geometryFor(side int) (*geometry, error) {
	if side < 1 || side > MaxSide {
		return nil, ErrSideLength
	}
	box, ok := intSqrt(side)
	if !ok {
		return nil, ErrSideLength
	}

	geomMu.Lock()
	defer geomMu.Unlock()
	if g, hit := geomCache[side]; hit {
		return g, nil
	}

	g := newGeometry(side, box)
	geomCache[side] = g

	return g, nil
}

// newGeometry builds the box map and peer lists for a side×side grid.
// Each cell has exactly 2·(side-1) + (box-1)² peers: its row and column
// mates plus the box mates sharing neither row nor column.
// Complexity: O(side³) time, O(side³) memory, paid once per side.
func newGeometry(side, box int) *geometry {
	n := side * side
	g := &geometry{
		side:  side,
		box:   box,
		boxOf: make([]int, n),
		peers: make([][]int, n),
	}
	peerCount := 2*(side-1) + (box-1)*(box-1)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			i := r*side + c
			g.boxOf[i] = (r/box)*box + c/box

			list := make([]int, 0, peerCount)
			for k := 0; k < side; k++ {
				if k != c {
					list = append(list, r*side+k)
				}
				if k != r {
					list = append(list, k*side+c)
				}
			}
			// Box mates sharing the row or column are already listed above.
			br, bc := (r/box)*box, (c/box)*box
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					if rr, cc := br+dr, bc+dc; rr != r && cc != c {
						list = append(list, rr*side+cc)
					}
				}
			}
			g.peers[i] = list
		}
	}

	return g
}
