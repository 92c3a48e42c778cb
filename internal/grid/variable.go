package grid

import "fmt"

// Direction indicates the orientation of a word slot.
type Direction int

const (
	Across Direction = iota
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Variable identifies one word slot in the grid: its starting cell, its
// orientation, and the number of letters it must hold.
//
// Variable is a comparable value type and is used directly as a map key.
// Two slots are the same variable only if all four fields match; slots that
// merely cross each other in the grid remain distinct.
type Variable struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

// Cells returns the grid positions covered by the variable, in word order.
func (v Variable) Cells() [][2]int {
	cells := make([][2]int, v.Length)
	for k := range v.Length {
		switch v.Dir {
		case Across:
			cells[k] = [2]int{v.Row, v.Col + k}
		case Down:
			cells[k] = [2]int{v.Row + k, v.Col}
		}
	}
	return cells
}

// String returns a compact identifier like "(2,4 across len=5)".
func (v Variable) String() string {
	return fmt.Sprintf("(%d,%d %s len=%d)", v.Row, v.Col, v.Dir, v.Length)
}
