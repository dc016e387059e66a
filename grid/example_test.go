package grid_test

import (
	"fmt"

	"github.com/RichardSartori/sudoku/grid"
)

// ExampleParse parses a 4×4 puzzle from the compact form and renders it.
func ExampleParse() {
	g, err := grid.Parse(4, "1.34.41223.1412.")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(g)
	// Output:
	// 1 . | 3 4
	// . 4 | 1 2
	// ----+----
	// 2 3 | . 1
	// 4 1 | 2 .
}

// ExampleGrid_Place shows how a placement narrows the peer candidate sets.
func ExampleGrid_Place() {
	g, _ := grid.New(4, make([]int, 16))

	before, _ := g.Candidates(0, 1)
	_ = g.Place(0, 0, 3)
	after, _ := g.Candidates(0, 1)

	fmt.Println("before:", before.Values())
	fmt.Println("after: ", after.Values())
	// Output:
	// before: [1 2 3 4]
	// after:  [1 2 4]
}

// ExampleGrid_Candidates inspects a forced cell: only one digit remains.
func ExampleGrid_Candidates() {
	g, _ := grid.Parse(4, ".234341223414123")

	set, _ := g.Candidates(0, 0)
	v, forced := set.Sole()
	fmt.Println(v, forced)
	// Output:
	// 1 true
}
