package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	Height  int           // Grid rows
	Width   int           // Grid columns
	Blocks  int           // Target number of blocked cells
	Timeout time.Duration // Timeout limits total generation time
	Seed    int64         // Seed for reproducible puzzles (0 = random)
	Unique  bool          // Unique requires exactly one possible fill
}

// DefaultOptions returns standard generator options for the given size.
func DefaultOptions(height, width int) *Options {
	height = max(height, MinSize)
	width = max(width, MinSize)
	return &Options{
		Height:  height,
		Width:   width,
		Blocks:  height * width / 5,
		Timeout: 10 * time.Second,
		Seed:    0,
		Unique:  false,
	}
}
