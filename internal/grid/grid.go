// Package grid models a crossword structure: which cells are open, the word
// slots (variables) those cells form, and the overlap constraints between
// slots that cross each other.
//
// A Grid is built once from a structure description and is read-only
// afterwards; the solver shares it freely.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// OpenCell is the structure character marking a fillable cell.
// Every other character is treated as a blocked cell.
const OpenCell = '_'

var (
	ErrEmptyStructure = errors.New("structure has no rows")
	ErrNoSlots        = errors.New("structure contains no word slots")
)

// Grid is the constraint graph for one puzzle: the cell layout plus the
// derived variables, overlaps, and neighbor sets.
type Grid struct {
	Height int
	Width  int

	// open[row][col] reports whether the cell can hold a letter.
	open [][]bool

	// vars holds every word slot in a fixed order (row, then col, then
	// direction). The order is stable for the lifetime of the Grid.
	vars []Variable

	// overlaps maps an ordered variable pair to the local string indices
	// that must hold the same letter. Symmetric: both orderings are stored,
	// with indices swapped.
	overlaps map[[2]Variable][2]int

	// neighbors maps each variable to the slots it crosses, in vars order.
	neighbors map[Variable][]Variable
}

// New builds a Grid from structure rows. Rows may be ragged; short rows are
// padded with blocked cells. A slot is a maximal run of two or more open
// cells, across or down.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyStructure
	}

	g := &Grid{Height: len(rows)}
	for _, row := range rows {
		if len(row) > g.Width {
			g.Width = len(row)
		}
	}
	if g.Width == 0 {
		return nil, ErrEmptyStructure
	}

	g.open = make([][]bool, g.Height)
	for r, row := range rows {
		g.open[r] = make([]bool, g.Width)
		for c := 0; c < len(row); c++ {
			g.open[r][c] = row[c] == OpenCell
		}
	}

	g.findVariables()
	if len(g.vars) == 0 {
		return nil, ErrNoSlots
	}
	g.findOverlaps()

	return g, nil
}

// Parse reads a structure from r, one row per line.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r\n"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}
	return New(rows)
}

// Load reads a structure file from disk.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open structure: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Open reports whether (row, col) is an in-bounds fillable cell.
func (g *Grid) Open(row, col int) bool {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return false
	}
	return g.open[row][col]
}

// Variables returns every word slot in the grid's fixed order.
// The returned slice is shared; callers must not modify it.
func (g *Grid) Variables() []Variable {
	return g.vars
}

// Neighbors returns the slots that cross v, in the grid's fixed order.
// The returned slice is shared; callers must not modify it.
func (g *Grid) Neighbors(v Variable) []Variable {
	return g.neighbors[v]
}

// Overlap returns the local indices (i into v1's word, j into v2's word)
// of the cell shared by v1 and v2. ok is false if the slots do not cross.
func (g *Grid) Overlap(v1, v2 Variable) (i, j int, ok bool) {
	ij, ok := g.overlaps[[2]Variable{v1, v2}]
	return ij[0], ij[1], ok
}

// Degree returns the number of slots crossing v.
func (g *Grid) Degree(v Variable) int {
	return len(g.neighbors[v])
}

// findVariables scans the layout for maximal open runs of length >= 2.
func (g *Grid) findVariables() {
	for r := range g.Height {
		for c := range g.Width {
			if !g.open[r][c] {
				continue
			}

			// An across slot starts where there is no open cell to the left.
			if c == 0 || !g.open[r][c-1] {
				length := 1
				for c+length < g.Width && g.open[r][c+length] {
					length++
				}
				if length > 1 {
					g.vars = append(g.vars, Variable{Row: r, Col: c, Dir: Across, Length: length})
				}
			}

			// A down slot starts where there is no open cell above.
			if r == 0 || !g.open[r-1][c] {
				length := 1
				for r+length < g.Height && g.open[r+length][c] {
					length++
				}
				if length > 1 {
					g.vars = append(g.vars, Variable{Row: r, Col: c, Dir: Down, Length: length})
				}
			}
		}
	}

	sort.Slice(g.vars, func(i, j int) bool {
		a, b := g.vars[i], g.vars[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Dir < b.Dir
	})
}

// findOverlaps records, for every cell covered by more than one slot, the
// pair of local indices that must agree. Maximal runs guarantee that two
// slots share at most one cell, and only when their directions differ.
func (g *Grid) findOverlaps() {
	type covering struct {
		v   Variable
		idx int
	}

	byCell := make(map[[2]int][]covering)
	for _, v := range g.vars {
		for idx, cell := range v.Cells() {
			byCell[cell] = append(byCell[cell], covering{v, idx})
		}
	}

	g.overlaps = make(map[[2]Variable][2]int)
	g.neighbors = make(map[Variable][]Variable)
	for _, cov := range byCell {
		for a := 0; a < len(cov); a++ {
			for b := a + 1; b < len(cov); b++ {
				g.overlaps[[2]Variable{cov[a].v, cov[b].v}] = [2]int{cov[a].idx, cov[b].idx}
				g.overlaps[[2]Variable{cov[b].v, cov[a].v}] = [2]int{cov[b].idx, cov[a].idx}
			}
		}
	}

	for _, v := range g.vars {
		for _, w := range g.vars {
			if v == w {
				continue
			}
			if _, ok := g.overlaps[[2]Variable{v, w}]; ok {
				g.neighbors[v] = append(g.neighbors[v], w)
			}
		}
	}
}
