package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/solver"
)

func TestParseSize(t *testing.T) {
	for _, tt := range []struct {
		in      string
		height  int
		width   int
		wantErr bool
	}{
		{in: "9x13", height: 9, width: 13},
		{in: "5X5", height: 5, width: 5},
		{in: " 7 x 7 ", height: 7, width: 7},
		{in: "9", wantErr: true},
		{in: "9x13x2", wantErr: true},
		{in: "ax5", wantErr: true},
		{in: "2x9", wantErr: true},
	} {
		t.Run(tt.in, func(t *testing.T) {
			h, w, err := parseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.height, h)
			assert.Equal(t, tt.width, w)
		})
	}
}

func TestWriteHTML(t *testing.T) {
	g, err := grid.New([]string{
		"___",
		"#_#",
		"#_#",
	})
	require.NoError(t, err)

	across := grid.Variable{Row: 0, Col: 0, Dir: grid.Across, Length: 3}
	down := grid.Variable{Row: 0, Col: 1, Dir: grid.Down, Length: 3}
	fill := solver.Assignment{across: "ONE", down: "NET"}

	path := filepath.Join(t.TempDir(), "out")
	written, err := writeHTML(path, []page{{Grid: g, Fill: fill}})
	require.NoError(t, err)
	assert.Equal(t, path+".html", written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Crossword #1")
	// Solution letters appear; blocked cells render as block tds.
	for _, letter := range []string{">O</td>", ">N</td>", ">E</td>", ">T</td>"} {
		assert.Contains(t, html, letter)
	}
	assert.Contains(t, html, `class="block"`)
}

func TestFormatColor(t *testing.T) {
	g, err := grid.New([]string{
		"___",
		"#_#",
		"#_#",
	})
	require.NoError(t, err)

	across := grid.Variable{Row: 0, Col: 0, Dir: grid.Across, Length: 3}
	down := grid.Variable{Row: 0, Col: 1, Dir: grid.Down, Length: 3}

	out := formatColor(g, solver.Assignment{across: "ONE", down: "NET"})

	// All letters present, in grid order, with ANSI escapes in between.
	stripped := strings.Map(func(r rune) rune {
		if r == 'O' || r == 'N' || r == 'E' || r == 'T' {
			return r
		}
		return -1
	}, out)
	assert.Equal(t, "ONEET", stripped)
}
