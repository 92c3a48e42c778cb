package grid

import "strings"

// blockRune is the glyph used for blocked cells in terminal output.
const blockRune = '█'

// Letters lays the assigned words onto a Height×Width rune grid.
// Cells not covered by any assigned word hold zero; blocked cells are the
// caller's concern. Words longer than their slot are a caller bug and
// panic on the out-of-range write.
func (g *Grid) Letters(assignment map[Variable]string) [][]rune {
	letters := make([][]rune, g.Height)
	for r := range letters {
		letters[r] = make([]rune, g.Width)
	}
	for v, word := range assignment {
		for k, cell := range v.Cells() {
			letters[cell[0]][cell[1]] = rune(word[k])
		}
	}
	return letters
}

// Format returns a terminal rendering of the assignment: letters in open
// cells, solid blocks elsewhere, one grid row per line.
func (g *Grid) Format(assignment map[Variable]string) string {
	letters := g.Letters(assignment)

	var sb strings.Builder
	for r := range g.Height {
		for c := range g.Width {
			switch {
			case !g.open[r][c]:
				sb.WriteRune(blockRune)
			case letters[r][c] != 0:
				sb.WriteRune(letters[r][c])
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows returns the structure serialized back to its file form, one string
// per row, open cells as OpenCell and blocked cells as '#'.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for r := range g.Height {
		var sb strings.Builder
		sb.Grow(g.Width)
		for c := range g.Width {
			if g.open[r][c] {
				sb.WriteByte(OpenCell)
			} else {
				sb.WriteByte('#')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}
