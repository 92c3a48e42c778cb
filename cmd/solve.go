package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/solver"
	"github.com/rybkr/crossword/internal/words"
)

var (
	solveOutput  string
	solveColor   bool
	solveVerbose bool
	solveMAC     bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve STRUCTURE WORDS",
		Short: "Fill a crossword structure from a word list",
		Long: `Fill a crossword structure from a word list.

STRUCTURE is a text file where '_' marks a fillable cell and any other
character a blocked cell. WORDS is a newline-separated vocabulary.

Examples:
  crossword solve structure.txt words.txt
  crossword solve structure.txt words.txt -o solved.html
  crossword solve structure.txt words.txt --mac --verbose`,
		Args: cobra.ExactArgs(2),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Output file (e.g., solved.html)")
	solveCmd.Flags().BoolVar(&solveColor, "color", false, "Colorize terminal output")
	solveCmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "Print solver statistics")
	solveCmd.Flags().BoolVar(&solveMAC, "mac", false, "Maintain arc consistency during search")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}
	vocab, err := words.Load(args[1])
	if err != nil {
		return err
	}

	opts := solver.DefaultOptions()
	opts.MaintainArcConsistency = solveMAC

	s := solver.New(g, vocab, opts)
	assignment, err := s.Solve()
	if err != nil {
		return fmt.Errorf("%w (%d slots, %d words)", err, len(g.Variables()), len(vocab))
	}

	if solveColor {
		fmt.Print(formatColor(g, assignment))
	} else {
		fmt.Print(g.Format(assignment))
	}

	if solveVerbose {
		pretty.Println(s.Stats())
	}

	if solveOutput != "" {
		path, err := writeHTML(solveOutput, []page{{Grid: g, Fill: assignment}})
		if err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	return nil
}
