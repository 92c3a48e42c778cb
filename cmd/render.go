package cmd

import (
	"strings"

	"github.com/vyevs/ansi"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/solver"
)

// formatColor renders the solved grid for the terminal with across words
// distinguished from the blocked cells by color. Letters are colored by
// how many slots cover the cell: crossing letters stand out.
func formatColor(g *grid.Grid, a solver.Assignment) string {
	letters := g.Letters(a)

	// Count how many assigned slots cover each cell.
	coverage := make(map[[2]int]int)
	for v := range a {
		for _, cell := range v.Cells() {
			coverage[cell]++
		}
	}

	var b strings.Builder
	for r := range g.Height {
		for c := range g.Width {
			switch {
			case !g.Open(r, c):
				b.WriteString(ansi.FGColorName("light gray"))
				b.WriteRune('█')
			case letters[r][c] == 0:
				b.WriteByte(' ')
			case coverage[[2]int{r, c}] > 1:
				b.WriteString(ansi.FGColorName("yellow"))
				b.WriteRune(letters[r][c])
			default:
				b.WriteString(ansi.FGColorName("green"))
				b.WriteRune(letters[r][c])
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(ansi.Clear)
	return b.String()
}
