package solver

import "github.com/rybkr/crossword/internal/grid"

// Arc is an ordered pair of crossing variables: one unit of propagation
// work, meaning "make X consistent with Y".
type Arc struct {
	X, Y grid.Variable
}

// arcQueue is a FIFO worklist with constant-time membership testing so an
// arc already awaiting processing is never enqueued twice.
type arcQueue struct {
	items  []Arc
	head   int
	queued map[Arc]struct{}
}

func newArcQueue() *arcQueue {
	return &arcQueue{queued: make(map[Arc]struct{})}
}

func (q *arcQueue) push(a Arc) {
	if _, ok := q.queued[a]; ok {
		return
	}
	q.queued[a] = struct{}{}
	q.items = append(q.items, a)
}

func (q *arcQueue) pop() (Arc, bool) {
	if q.head >= len(q.items) {
		return Arc{}, false
	}
	a := q.items[q.head]
	q.head++
	delete(q.queued, a)
	return a, true
}

// AC3 propagates overlap constraints until a fixpoint. If arcs is nil the
// worklist starts with every arc in the graph, both directions; otherwise
// it starts with exactly the given arcs (used after a single assignment).
//
// Returns false as soon as any domain empties: the puzzle is unsatisfiable
// from the current state. Returns true once the worklist drains, at which
// point every remaining value has a supporting value in each crossing
// slot's domain.
func (s *Solver) AC3(arcs []Arc) bool {
	return s.ac3(s.domains, arcs)
}

func (s *Solver) ac3(d domains, arcs []Arc) bool {
	queue := newArcQueue()
	if arcs == nil {
		for _, x := range s.grid.Variables() {
			for _, y := range s.grid.Neighbors(x) {
				queue.push(Arc{x, y})
			}
		}
	} else {
		for _, a := range arcs {
			queue.push(a)
		}
	}

	for {
		a, ok := queue.pop()
		if !ok {
			return true
		}
		if !s.revise(d, a.X, a.Y) {
			continue
		}
		if len(d[a.X]) == 0 {
			return false
		}
		// X shrank: its other neighbors may have lost support against it.
		for _, z := range s.grid.Neighbors(a.X) {
			if z != a.Y {
				queue.push(Arc{z, a.X})
			}
		}
	}
}

// revise removes from x's domain every word with no matching partner in
// y's domain at the overlap cell. Reports whether anything was removed.
// Removals are collected first so the set is never mutated mid-scan.
func (s *Solver) revise(d domains, x, y grid.Variable) bool {
	i, j, ok := s.grid.Overlap(x, y)
	if !ok {
		return false
	}
	s.stats.Revisions++

	var remove []string
	for w1 := range d[x] {
		supported := false
		for w2 := range d[y] {
			if w1[i] == w2[j] {
				supported = true
				break
			}
		}
		if !supported {
			remove = append(remove, w1)
		}
	}

	for _, w := range remove {
		delete(d[x], w)
	}
	s.stats.Removals += len(remove)
	return len(remove) > 0
}
