package pattern_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/rybkr/crossword/internal/pattern"
)

func generate(t *testing.T, seed int64, height, width, blocks int) []string {
	t.Helper()
	rows, err := pattern.Generate(rand.New(rand.NewSource(seed)), height, width, blocks)
	if err != nil {
		t.Fatalf("Generate(%dx%d, %d blocks): %v", height, width, blocks, err)
	}
	return rows
}

func TestGenerateDimensions(t *testing.T) {
	rows := generate(t, 1, 7, 9, 12)
	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			t.Errorf("row %d width = %d, want 9", r, len(row))
		}
	}
}

func TestGenerateSymmetry(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rows := generate(t, seed, 7, 7, 10)
		height, width := len(rows), len(rows[0])
		for r := range height {
			for c := range width {
				mirror := rows[height-1-r][width-1-c]
				if (rows[r][c] == '#') != (mirror == '#') {
					t.Fatalf("seed %d: cell (%d,%d)=%q breaks symmetry with %q",
						seed, r, c, rows[r][c], mirror)
				}
			}
		}
	}
}

func TestGenerateCoverage(t *testing.T) {
	// Every open cell must have an orthogonally adjacent open cell, so that
	// it belongs to at least one run of length >= 2.
	for seed := int64(1); seed <= 10; seed++ {
		rows := generate(t, seed, 6, 8, 8)
		height, width := len(rows), len(rows[0])
		open := func(r, c int) bool {
			return r >= 0 && r < height && c >= 0 && c < width && rows[r][c] == '_'
		}
		for r := range height {
			for c := range width {
				if open(r, c) && !open(r-1, c) && !open(r+1, c) && !open(r, c-1) && !open(r, c+1) {
					t.Fatalf("seed %d: open cell (%d,%d) is isolated:\n%v", seed, r, c, rows)
				}
			}
		}
	}
}

func TestGenerateContiguous(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rows := generate(t, seed, 7, 7, 12)
		height, width := len(rows), len(rows[0])

		var queue [][2]int
		visited := make(map[[2]int]bool)
		total := 0
		for r := range height {
			for c := range width {
				if rows[r][c] == '_' {
					total++
					if len(queue) == 0 {
						queue = append(queue, [2]int{r, c})
						visited[[2]int{r, c}] = true
					}
				}
			}
		}

		reached := 0
		for len(queue) > 0 {
			cell := queue[0]
			queue = queue[1:]
			reached++
			r, c := cell[0], cell[1]
			for _, nb := range [][2]int{{r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}} {
				if nb[0] < 0 || nb[0] >= height || nb[1] < 0 || nb[1] >= width {
					continue
				}
				if rows[nb[0]][nb[1]] == '_' && !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		if reached != total {
			t.Fatalf("seed %d: %d of %d open cells reachable:\n%v", seed, reached, total, rows)
		}
	}
}

func TestGenerateNoBlocks(t *testing.T) {
	rows := generate(t, 1, 4, 4, 0)
	for _, row := range rows {
		if row != "____" {
			t.Fatalf("expected fully open grid, got %v", rows)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tt := range []struct {
		name   string
		height int
		width  int
		blocks int
	}{
		{name: "too narrow", height: 1, width: 5, blocks: 0},
		{name: "too short", height: 5, width: 1, blocks: 0},
		{name: "negative blocks", height: 5, width: 5, blocks: -1},
		{name: "all blocked", height: 3, width: 3, blocks: 9},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.Generate(rng, tt.height, tt.width, tt.blocks)
			if !errors.Is(err, pattern.ErrPatternFailed) {
				t.Errorf("error = %v, want %v", err, pattern.ErrPatternFailed)
			}
		})
	}
}
