// Package engine implements the 2048 sliding-tile rules: the grid model, the
// slide/merge algorithm, tile spawning, scoring and terminal-state detection.
// It has no external dependencies and no knowledge of terminals or input devices,
// so the platform layer drives it purely through Controller.
package engine

import (
	"errors"
	"fmt"
)

// Size is the grid dimension.
const Size = 4

// ErrInvalidCell is returned when a grid is built from a value that is neither
// zero nor a power of two >= 2.
var ErrInvalidCell = errors.New("engine: invalid cell value")

// Grid is a 4x4 board of cell values indexed [row][col].
// A cell is 0 (empty) or a power of two >= 2.
type Grid [Size][Size]int

// Pos addresses a single cell.
type Pos struct {
	Row, Col int
}

// NewGrid builds a grid from raw values, rejecting anything that is not a valid cell.
func NewGrid(cells [Size][Size]int) (Grid, error) {
	g := Grid(cells)
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// MustGrid is like NewGrid but panics on invalid input. Intended for fixtures.
func MustGrid(cells [Size][Size]int) Grid {
	g, err := NewGrid(cells)
	if err != nil {
		panic(err)
	}
	return g
}

// Validate reports the first cell that breaks the grid invariant.
func (g Grid) Validate() error {
	for row := range Size {
		for col := range Size {
			if !validCell(g[row][col]) {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidCell, g[row][col], row, col)
			}
		}
	}
	return nil
}

// validCell returns true for 0 and for powers of two >= 2.
func validCell(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// At returns the value at (row, col).
func (g Grid) At(row, col int) int {
	return g[row][col]
}

// Set writes a value at (row, col).
func (g *Grid) Set(row, col, value int) {
	g[row][col] = value
}

// IsFull returns true if every cell holds a tile.
func (g Grid) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if g[row][col] == 0 {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Pos {
	var cells []Pos
	for row := range Size {
		for col := range Size {
			if g[row][col] == 0 {
				cells = append(cells, Pos{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for row := range Size {
		for col := range Size {
			if g[row][col] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for row := range Size {
		for col := range Size {
			if g[row][col] > maxVal {
				maxVal = g[row][col]
			}
		}
	}
	return maxVal
}
