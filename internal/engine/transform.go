package engine

// transpose swaps rows and columns.
func transpose(g Grid) Grid {
	var result Grid
	for row := range Size {
		for col := range Size {
			result[row][col] = g[col][row]
		}
	}
	return result
}

// reverseRows mirrors every row left to right.
func reverseRows(g Grid) Grid {
	var result Grid
	for row := range Size {
		for col := range Size {
			result[row][col] = g[row][Size-1-col]
		}
	}
	return result
}

// orient rotates/reflects the grid so that sliding in dir becomes sliding left.
func orient(g Grid, dir Direction) Grid {
	switch dir {
	case Up:
		return transpose(g)
	case Down:
		return reverseRows(transpose(g))
	case Right:
		return reverseRows(g)
	default:
		return g
	}
}

// restore undoes orient for the same direction.
func restore(g Grid, dir Direction) Grid {
	switch dir {
	case Up:
		return transpose(g)
	case Down:
		return transpose(reverseRows(g))
	case Right:
		return reverseRows(g)
	default:
		return g
	}
}
