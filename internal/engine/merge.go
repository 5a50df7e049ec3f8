package engine

// compressRow slides and merges a single row toward index 0.
// Returns the updated row and the score gained from merges.
//
// Zeros are dropped, equal neighbours merge in one left-to-right pass
// (the right partner is zeroed so a doubled tile never merges again),
// then the row is compacted a second time and zero-padded.
func compressRow(row [Size]int) (result [Size]int, gained int) {
	seq := make([]int, 0, Size)
	for _, v := range row {
		if v != 0 {
			seq = append(seq, v)
		}
	}

	for i := 0; i < len(seq)-1; i++ {
		if seq[i] != 0 && seq[i] == seq[i+1] {
			seq[i] *= 2
			gained += seq[i]
			seq[i+1] = 0
		}
	}

	pos := 0
	for _, v := range seq {
		if v != 0 {
			result[pos] = v
			pos++
		}
	}

	return result, gained
}

// compressLeft applies compressRow to every row.
// Returns the new grid, the summed score, and whether any row changed.
func compressLeft(g Grid) (Grid, int, bool) {
	var out Grid
	total := 0
	changed := false

	for row := range Size {
		newRow, gained := compressRow(g[row])
		out[row] = newRow
		total += gained
		if newRow != g[row] {
			changed = true
		}
	}

	return out, total, changed
}

// Slide performs a move in the given direction without spawning.
// Returns the new grid, score gained, and whether the grid changed.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	if !dir.Valid() {
		return g, 0, false
	}

	slid, gained, changed := compressLeft(orient(g, dir))
	return restore(slid, dir), gained, changed
}

// CanSlide returns true if sliding in dir would change the grid.
func CanSlide(g Grid, dir Direction) bool {
	_, _, changed := Slide(g, dir)
	return changed
}
