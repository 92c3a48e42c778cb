package solver

import (
	"sort"

	"github.com/rybkr/crossword/internal/grid"
)

// selectUnassigned picks the next variable to try: smallest remaining
// domain first (minimum remaining values), then highest degree among ties.
// Any further tie goes to the first candidate in the grid's fixed variable
// order.
func (s *Solver) selectUnassigned(a Assignment, d domains) grid.Variable {
	var best grid.Variable
	found := false
	for _, v := range s.grid.Variables() {
		if _, assigned := a[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		switch {
		case len(d[v]) < len(d[best]):
			best = v
		case len(d[v]) == len(d[best]) && s.grid.Degree(v) > s.grid.Degree(best):
			best = v
		}
	}
	return best
}

// orderDomainValues returns v's candidates least-constraining first: sorted
// by how many words each choice would eliminate from the domains of v's
// unassigned neighbors. The sort is stable over a deterministic (or, with
// Randomize, shuffled) base order, so only the heuristic ranking is fixed
// and ties keep the base order.
func (s *Solver) orderDomainValues(v grid.Variable, a Assignment, d domains) []string {
	candidates := d.sorted(v)
	if s.rng != nil {
		s.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	eliminated := make(map[string]int, len(candidates))
	for _, w1 := range candidates {
		count := 0
		for _, n := range s.grid.Neighbors(v) {
			if _, assigned := a[n]; assigned {
				continue
			}
			i, j, _ := s.grid.Overlap(v, n)
			for w2 := range d[n] {
				if w1[i] != w2[j] {
					count++
				}
			}
		}
		eliminated[w1] = count
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return eliminated[candidates[i]] < eliminated[candidates[j]]
	})
	return candidates
}
