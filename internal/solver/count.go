package solver

// CountSolutions counts complete assignments, stopping once limit is
// reached. Useful for checking whether a puzzle's fill is unique
// (limit 2). Counting always runs plain backtracking regardless of
// options; value and variable ordering do not affect the count.
func (s *Solver) CountSolutions(limit int) int {
	if limit <= 0 {
		return 0
	}
	s.stats = Stats{}

	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		return 0
	}

	count := 0
	a := make(Assignment, len(s.grid.Variables()))
	s.countFrom(a, s.domains, limit, &count)
	return count
}

func (s *Solver) countFrom(a Assignment, d domains, limit int, count *int) {
	if *count >= limit {
		return
	}
	if len(a) == len(s.grid.Variables()) {
		*count++
		return
	}

	v := s.selectUnassigned(a, d)
	for _, w := range s.orderDomainValues(v, a, d) {
		a[v] = w
		if s.Consistent(a) {
			s.countFrom(a, d, limit, count)
		}
		delete(a, v)
		if *count >= limit {
			return
		}
	}
}
