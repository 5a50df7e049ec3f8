package engine

// HasAdjacentPair returns true if any horizontally or vertically adjacent cells
// hold equal values.
func HasAdjacentPair(g Grid) bool {
	for row := range Size {
		for col := range Size {
			val := g[row][col]
			// Check right neighbor
			if col < Size-1 && g[row][col+1] == val {
				return true
			}
			// Check bottom neighbor
			if row < Size-1 && g[row+1][col] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true if no move can change the grid.
// A grid with an empty cell is never terminal.
func IsTerminal(g Grid) bool {
	if !g.IsFull() {
		return false
	}
	return !HasAdjacentPair(g)
}
