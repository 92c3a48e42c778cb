package solver

// Options configures solving behavior.
type Options struct {
	// MaintainArcConsistency re-runs arc propagation against each tentative
	// assignment on a branch-private domain copy. Prunes harder at the cost
	// of copying; results are identical either way.
	MaintainArcConsistency bool

	// Randomize shuffles candidate words before value ordering so that ties
	// between equally constraining words are broken at random. The ordering
	// heuristic itself is unaffected.
	Randomize bool

	// Seed makes Randomize reproducible (0 = seed from the clock).
	Seed int64
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		MaintainArcConsistency: false,
		Randomize:              false,
		Seed:                   0,
	}
}
