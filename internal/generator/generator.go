// Package generator creates filled crossword puzzles: a random blocked
// pattern is generated, parsed into a constraint graph, and handed to the
// solver with a randomized value order. Attempts repeat until a fillable
// pattern is found or the time budget runs out.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/pattern"
	"github.com/rybkr/crossword/internal/solver"
	"github.com/rybkr/crossword/internal/words"
)

const MinSize = 3

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidSize      = errors.New("grid dimensions are too small")
)

// Generator creates crossword puzzles from a vocabulary.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(MinSize, MinSize)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new filled crossword from the vocabulary.
// Returns the structure and its fill, or an error if no fillable pattern
// is found before the timeout. The budget is checked between attempts;
// a single solve is never interrupted.
func (g *Generator) Generate(vocab words.List) (*grid.Grid, solver.Assignment, error) {
	if g.options.Height < MinSize || g.options.Width < MinSize {
		return nil, nil, ErrInvalidSize
	}

	start := time.Now()
	timeout := g.options.Timeout

	for {
		if time.Since(start) >= timeout {
			return nil, nil, ErrGenerationFailed
		}

		rows, err := pattern.Generate(g.rng, g.options.Height, g.options.Width, g.options.Blocks)
		if err != nil {
			continue
		}

		gr, err := grid.New(rows)
		if err != nil {
			// Pattern produced no usable slots; try another.
			continue
		}

		fill, err := g.fill(gr, vocab)
		if err != nil {
			continue
		}

		if g.options.Unique && !g.hasUniqueFill(gr, vocab) {
			continue
		}

		return gr, fill, nil
	}
}

// fill solves the pattern with randomized value ordering so repeated runs
// produce varied fills.
func (g *Generator) fill(gr *grid.Grid, vocab words.List) (solver.Assignment, error) {
	s := solver.New(gr, vocab, &solver.Options{
		MaintainArcConsistency: true,
		Randomize:              true,
		Seed:                   g.rng.Int63(),
	})
	return s.Solve()
}

// hasUniqueFill checks that the pattern admits exactly one fill.
func (g *Generator) hasUniqueFill(gr *grid.Grid, vocab words.List) bool {
	s := solver.New(gr, vocab, nil)
	return s.CountSolutions(2) == 1
}
