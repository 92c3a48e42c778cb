// Package pattern implements randomized blocked-cell pattern generation
// for crossword structures. It has no knowledge of the grid or solver
// packages so that it can be imported anywhere without a cycle.
package pattern

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	openCell   = '_'
	blockCell  = '#'
	maxRetries = 200 // upper bound on generation restarts before giving up
)

var ErrPatternFailed = errors.New("failed to generate a valid pattern")

// Generate produces a crossword structure of the given size with roughly
// the requested number of blocked cells. The result satisfies three
// properties: blocked cells are placed with 180° rotational symmetry,
// every open cell belongs to a run of at least two open cells, and the
// open cells form one orthogonally connected region.
//
// Blocks is rounded down to an even count unless the board has a center
// cell, which may absorb the odd block. Returns ErrPatternFailed if no
// valid pattern is found within the retry budget.
func Generate(rng *rand.Rand, height, width, blocks int) ([]string, error) {
	if height < 2 || width < 2 {
		return nil, ErrPatternFailed
	}
	if blocks < 0 || blocks >= height*width {
		return nil, ErrPatternFailed
	}

	for range maxRetries {
		rows, ok := tryGenerate(rng, height, width, blocks)
		if ok {
			return rows, nil
		}
	}
	return nil, ErrPatternFailed
}

// tryGenerate runs one attempt: scatter symmetric block pairs at random,
// then validate the whole pattern. Cheap enough that retrying beats
// incremental repair.
func tryGenerate(rng *rand.Rand, height, width, blocks int) ([]string, bool) {
	open := make([][]bool, height)
	for r := range open {
		open[r] = make([]bool, width)
		for c := range open[r] {
			open[r][c] = true
		}
	}

	placed := 0
	for _, pos := range rng.Perm(height * width) {
		if placed >= blocks {
			break
		}
		r, c := pos/width, pos%width
		if !open[r][c] {
			continue
		}

		mr, mc := height-1-r, width-1-c
		if mr == r && mc == c {
			// Center cell: a lone block, allowed only for an odd target.
			if (blocks-placed)%2 == 1 {
				open[r][c] = false
				placed++
			}
			continue
		}
		if placed+2 > blocks || !open[mr][mc] {
			continue
		}
		open[r][c] = false
		open[mr][mc] = false
		placed += 2
	}

	if !covered(open) || !contiguous(open) {
		return nil, false
	}
	return render(open), true
}

// covered reports whether every open cell is part of an across or down run
// of length at least two, i.e. has an orthogonally adjacent open cell.
func covered(open [][]bool) bool {
	height, width := len(open), len(open[0])
	for r := range height {
		for c := range width {
			if !open[r][c] {
				continue
			}
			adjacent := (r > 0 && open[r-1][c]) ||
				(r < height-1 && open[r+1][c]) ||
				(c > 0 && open[r][c-1]) ||
				(c < width-1 && open[r][c+1])
			if !adjacent {
				return false
			}
		}
	}
	return true
}

// contiguous performs a BFS/flood-fill to verify that all open cells are
// reachable from each other via orthogonal adjacency.
func contiguous(open [][]bool) bool {
	height, width := len(open), len(open[0])

	total := 0
	start := [2]int{-1, -1}
	for r := range height {
		for c := range width {
			if open[r][c] {
				total++
				if start[0] == -1 {
					start = [2]int{r, c}
				}
			}
		}
	}
	if total == 0 {
		return false
	}

	visited := make([][]bool, height)
	for r := range visited {
		visited[r] = make([]bool, width)
	}

	queue := make([][2]int, 0, total)
	queue = append(queue, start)
	visited[start[0]][start[1]] = true
	reached := 1

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		r, c := cell[0], cell[1]

		neighbors := [4][2]int{{r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}}
		for _, nb := range neighbors {
			nr, nc := nb[0], nb[1]
			if nr < 0 || nr >= height || nc < 0 || nc >= width {
				continue
			}
			if open[nr][nc] && !visited[nr][nc] {
				visited[nr][nc] = true
				reached++
				queue = append(queue, nb)
			}
		}
	}

	return reached == total
}

// render serializes the boolean layout to structure rows.
func render(open [][]bool) []string {
	rows := make([]string, len(open))
	for r := range open {
		var sb strings.Builder
		sb.Grow(len(open[r]))
		for _, o := range open[r] {
			if o {
				sb.WriteByte(openCell)
			} else {
				sb.WriteByte(blockCell)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}
