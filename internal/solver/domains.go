package solver

import (
	"sort"

	"github.com/rybkr/crossword/internal/grid"
	"github.com/rybkr/crossword/internal/words"
)

// domains maps each variable to the candidate words still considered
// possible for it. Owned exclusively by one solve call; propagation shrinks
// the sets and never re-adds a value.
type domains map[grid.Variable]map[string]struct{}

// newDomains seeds every variable with a private copy of the vocabulary.
func newDomains(g *grid.Grid, vocab words.List) domains {
	d := make(domains, len(g.Variables()))
	for _, v := range g.Variables() {
		set := make(map[string]struct{}, len(vocab))
		for w := range vocab {
			set[w] = struct{}{}
		}
		d[v] = set
	}
	return d
}

// clone copies the per-variable sets so a search branch can narrow them
// without touching its parent's state.
func (d domains) clone() domains {
	c := make(domains, len(d))
	for v, set := range d {
		cs := make(map[string]struct{}, len(set))
		for w := range set {
			cs[w] = struct{}{}
		}
		c[v] = cs
	}
	return c
}

// sorted returns v's candidates as a sorted slice.
func (d domains) sorted(v grid.Variable) []string {
	out := make([]string, 0, len(d[v]))
	for w := range d[v] {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
