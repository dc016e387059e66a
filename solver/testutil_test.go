package solver_test

// patternValues returns a fully solved side×side grid built from the
// shifted-row construction: value(r,c) = (r·box + r/box + c) mod side + 1.
// Rows, columns, and boxes each permute [1, side], for any perfect square.
func patternValues(side int) []int {
	box := 1
	for box*box < side {
		box++
	}
	values := make([]int, 0, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			values = append(values, (r*box+r/box+c)%side+1)
		}
	}

	return values
}
