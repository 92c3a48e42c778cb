package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/solver"
)

// page is one printable puzzle: its structure and its fill.
type page struct {
	Grid *grid.Grid
	Fill solver.Assignment
}

// writeHTML creates an HTML file with puzzles, one per page: the blank
// structure first, then the filled solution. Returns the path written,
// which gains an .html extension if missing.
func writeHTML(filename string, pages []page) (string, error) {
	if filepath.Ext(filename) != ".html" {
		filename = filename + ".html"
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	// Write HTML header
	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Crossword Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .crossword-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .crossword-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .crossword-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .crossword-grid td.block {
            background-color: #000;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return "", err
	}

	// Write each puzzle on its own page
	for i, p := range pages {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Crossword #%d</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, gridToHTML(p.Grid, nil), gridToHTML(p.Grid, p.Fill))
		if err != nil {
			return "", err
		}
	}

	// Write HTML footer
	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return filename, err
}

// gridToHTML converts a grid to an HTML table. With a nil fill open cells
// are left blank, producing the printable puzzle page.
func gridToHTML(g *grid.Grid, fill solver.Assignment) string {
	var letters [][]rune
	if fill != nil {
		letters = g.Letters(fill)
	}

	var sb strings.Builder
	sb.WriteString("<div class=\"crossword-grid\"><table>")

	for row := 0; row < g.Height; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < g.Width; col++ {
			cellClass := ""
			cellContent := ""

			if !g.Open(row, col) {
				cellClass = "block"
			} else if letters != nil && letters[row][col] != 0 {
				cellContent = string(letters[row][col])
			}

			sb.WriteString(fmt.Sprintf("<td class=\"%s\">%s</td>", cellClass, cellContent))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
