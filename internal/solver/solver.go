// Package solver fills a crossword grid from a vocabulary by constraint
// propagation (node consistency, then AC-3 to a fixpoint) followed by
// heuristic backtracking search.
//
// A Solver is single-threaded and owns its domain state for the duration
// of a solve; the grid it reads is shared and never written.
package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/words"
)

var ErrNoSolution = errors.New("puzzle has no solution")

// Assignment maps each variable to its chosen word. A complete assignment
// covers every variable in the grid.
type Assignment map[grid.Variable]string

// Stats carries informational counters from the most recent solve.
type Stats struct {
	Assignments int // tentative (variable, word) extensions tried
	Backtracks  int // extensions undone after failure
	Revisions   int // arc revisions performed
	Removals    int // words removed from domains by revision
}

// Solver holds the constraint graph, the mutable domain store, and the
// solve configuration.
type Solver struct {
	grid    *grid.Grid
	domains domains
	options *Options
	rng     *rand.Rand
	stats   Stats
}

// New creates a solver for the given grid and vocabulary. Every variable
// starts with a private copy of the full vocabulary. If options is nil,
// DefaultOptions is used.
func New(g *grid.Grid, vocab words.List, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	s := &Solver{
		grid:    g,
		domains: newDomains(g, vocab),
		options: options,
	}

	if options.Randomize {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	return s
}

// Solve narrows the domains and searches for a complete assignment.
// Returns ErrNoSolution if none exists; there is no partial output.
func (s *Solver) Solve() (Assignment, error) {
	s.stats = Stats{}

	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		return nil, ErrNoSolution
	}

	a := make(Assignment, len(s.grid.Variables()))
	if !s.backtrack(a, s.domains) {
		return nil, ErrNoSolution
	}
	return a, nil
}

// EnforceNodeConsistency drops every candidate whose length does not match
// its variable's slot. Runs once per solve; never fails, though it may
// leave a domain empty for AC3 to detect.
func (s *Solver) EnforceNodeConsistency() {
	for v, set := range s.domains {
		var remove []string
		for w := range set {
			if len(w) != v.Length {
				remove = append(remove, w)
			}
		}
		for _, w := range remove {
			delete(set, w)
		}
		s.stats.Removals += len(remove)
	}
}

// Domain returns a sorted snapshot of v's remaining candidates.
func (s *Solver) Domain(v grid.Variable) []string {
	return s.domains.sorted(v)
}

// Stats returns counters from the most recent solve.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Consistent reports whether a (possibly partial) assignment violates no
// constraint among its assigned variables: words are pairwise distinct,
// each fits its slot, and crossing words agree at every shared cell.
// Unassigned variables are ignored.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for v, w := range a {
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}

		if len(w) != v.Length {
			return false
		}

		for _, n := range s.grid.Neighbors(v) {
			w2, assigned := a[n]
			if !assigned {
				continue
			}
			i, j, _ := s.grid.Overlap(v, n)
			if w[i] != w2[j] {
				return false
			}
		}
	}
	return true
}

// backtrack extends a depth-first, trying MRV-selected variables and
// LCV-ordered values. Returns true with a populated, consistent, complete
// assignment, or false leaving a exactly as it was given.
func (s *Solver) backtrack(a Assignment, d domains) bool {
	if len(a) == len(s.grid.Variables()) {
		return true
	}

	v := s.selectUnassigned(a, d)
	for _, w := range s.orderDomainValues(v, a, d) {
		a[v] = w
		s.stats.Assignments++

		if s.Consistent(a) {
			if s.descend(a, d, v, w) {
				return true
			}
		}

		delete(a, v)
		s.stats.Backtracks++
	}
	return false
}

// descend recurses below the tentative assignment of w to v. With
// maintained arc consistency it narrows a branch-private domain copy by
// re-propagating the arcs into v; a wipeout fails the branch without
// recursing.
func (s *Solver) descend(a Assignment, d domains, v grid.Variable, w string) bool {
	if !s.options.MaintainArcConsistency {
		return s.backtrack(a, d)
	}

	branch := d.clone()
	branch[v] = map[string]struct{}{w: {}}

	arcs := make([]Arc, 0, len(s.grid.Neighbors(v)))
	for _, z := range s.grid.Neighbors(v) {
		if _, assigned := a[z]; !assigned {
			arcs = append(arcs, Arc{z, v})
		}
	}
	if !s.ac3(branch, arcs) {
		return false
	}
	return s.backtrack(a, branch)
}
