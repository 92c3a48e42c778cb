package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rybkr/crossword/internal/generator"
	"github.com/rybkr/crossword/internal/words"
)

var (
	genCount   int
	genSize    string
	genBlocks  int
	genSeed    int64
	genUnique  bool
	genOutput  string
	genTimeout time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen WORDS",
		Short: "Generate filled crossword puzzles",
		Long: `Generate one or more crossword puzzles from a word list.

Examples:
  crossword gen words.txt --size 9x9
  crossword gen words.txt -n 5 --size 7x9 --blocks 12
  crossword gen words.txt --size 11x11 --output puzzles.html`,
		Args: cobra.ExactArgs(1),
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVar(&genSize, "size", "5x5", "Grid size as ROWSxCOLS, e.g. 9x13")
	genCmd.Flags().IntVar(&genBlocks, "blocks", -1, "Blocked cells per puzzle (-1 = size/5)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().BoolVar(&genUnique, "unique", false, "Require exactly one possible fill")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (e.g., puzzles.html)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// parseSize parses a grid size string like "9x13" into rows and columns.
func parseSize(s string) (height, width int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size format: %s (use format like '9x13')", s)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size rows: %w", err)
	}
	width, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size cols: %w", err)
	}
	if height < generator.MinSize || width < generator.MinSize {
		return 0, 0, fmt.Errorf("size %dx%d too small (minimum %dx%d)",
			height, width, generator.MinSize, generator.MinSize)
	}
	return height, width, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	height, width, err := parseSize(genSize)
	if err != nil {
		return err
	}

	vocab, err := words.Load(args[0])
	if err != nil {
		return err
	}

	opts := generator.DefaultOptions(height, width)
	if genBlocks >= 0 {
		opts.Blocks = genBlocks
	}
	opts.Seed = genSeed
	opts.Unique = genUnique
	opts.Timeout = genTimeout
	gen := generator.New(opts)

	var pages []page
	outputHTML := genOutput != ""

	for i := 0; i < genCount; i++ {
		g, fill, err := gen.Generate(vocab)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputHTML {
			pages = append(pages, page{Grid: g, Fill: fill})
		} else {
			fmt.Printf("Puzzle #%d (%dx%d):\n", i+1, g.Height, g.Width)
			fmt.Println(strings.Join(g.Rows(), "\n"))
			fmt.Println("\nSolution:")
			fmt.Println(g.Format(fill))
		}
	}

	if outputHTML {
		path, err := writeHTML(genOutput, pages)
		if err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", genCount, path)
	}

	return nil
}
