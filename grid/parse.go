package grid

import (
	"strconv"
	"strings"
	"unicode"
)

// Blank markers accepted by both textual forms.
const blankSymbols = "0._"

// Parse builds a Grid of the given side from text. Two forms are accepted:
//
//   - compact: one symbol per cell in row-major order — digits 1..9, then
//     letters A..P for 10..25, with 0, '.' or '_' marking an empty cell.
//     Whitespace is ignored, so multi-line layouts parse as-is.
//   - comma-separated: side² decimal fields; an empty field, '_' or '.'
//     marks an empty cell. Chosen whenever the text contains a comma.
//
// Returns ErrBadSymbol for unrecognized characters and the New sentinels
// for length, range, and uniqueness failures.
func Parse(side int, s string) (*Grid, error) {
	if strings.ContainsRune(s, ',') {
		return parseFields(side, s)
	}

	return parseCompact(side, s)
}

// parseCompact decodes the one-symbol-per-cell form.
func parseCompact(side int, s string) (*Grid, error) {
	values := make([]int, 0, side*side)
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		v, err := symbolValue(r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return New(side, values)
}

// parseFields decodes the comma-separated decimal form.
func parseFields(side int, s string) (*Grid, error) {
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "_" || f == "." {
			values = append(values, 0)
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, ErrBadSymbol
		}
		values = append(values, v)
	}

	return New(side, values)
}

// symbolValue maps a compact-form rune to a cell value (0 = empty).
func symbolValue(r rune) (int, error) {
	switch {
	case strings.ContainsRune(blankSymbols, r):
		return 0, nil
	case r >= '1' && r <= '9':
		return int(r - '0'), nil
	case r >= 'A' && r <= 'P':
		return int(r-'A') + 10, nil
	case r >= 'a' && r <= 'p':
		return int(r-'a') + 10, nil
	default:
		return 0, ErrBadSymbol
	}
}

// symbolFor is the inverse of symbolValue for the compact form.
func symbolFor(v int) byte {
	switch {
	case v == 0:
		return '.'
	case v <= 9:
		return byte('0' + v)
	default:
		return byte('A' + v - 10)
	}
}

// Compact serializes the grid in the compact one-symbol-per-cell form,
// row-major, '.' marking empty cells. Parse(side, g.Compact()) rebuilds an
// equivalent grid.
func (g *Grid) Compact() string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, v := range g.cells {
		b.WriteByte(symbolFor(v))
	}

	return b.String()
}

// String renders the grid for humans: one row per line, cells separated by
// spaces, with box boundaries ruled off.
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//	------+-------+------
//	...
func (g *Grid) String() string {
	side, box := g.geo.side, g.geo.box
	segment := strings.Repeat("-", 2*box-1)
	parts := make([]string, box)
	for k := 0; k < box; k++ {
		parts[k] = segment
	}
	rule := strings.Join(parts, "-+-")

	var b strings.Builder
	for r := 0; r < side; r++ {
		if r > 0 && r%box == 0 {
			b.WriteString(rule)
			b.WriteByte('\n')
		}
		for c := 0; c < side; c++ {
			if c > 0 {
				if c%box == 0 {
					b.WriteString(" | ")
				} else {
					b.WriteByte(' ')
				}
			}
			b.WriteByte(symbolFor(g.cells[g.index(r, c)]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
