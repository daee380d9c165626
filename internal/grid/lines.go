package grid

// FindFullRows returns the indexes of fully occupied rows in ascending order
// and tags their tiles as clearing.
func (g *Grid) FindFullRows() []int {
	var full []int
	for row := 0; row < g.height; row++ {
		if !g.rowFull(row) {
			continue
		}
		for _, t := range g.cells[row] {
			t.Clearing = true
		}
		full = append(full, row)
	}
	return full
}

// rowFull reports whether every column of the row holds a tile.
func (g *Grid) rowFull(row int) bool {
	if g.width == 0 {
		return false
	}
	for _, t := range g.cells[row] {
		if t == nil {
			return false
		}
	}
	return true
}

// ScoreForRows sums the tile values of the given rows.
// Out-of-range rows are ignored.
func (g *Grid) ScoreForRows(rows []int) int {
	score := 0
	for _, row := range rows {
		if row < 0 || row >= g.height {
			continue
		}
		for _, t := range g.cells[row] {
			if t != nil {
				score += t.Value
			}
		}
	}
	return score
}

// RemoveRows deletes the given rows and compacts the remaining rows toward
// the floor, keeping their order. The vacated rows at the top become empty.
// Order and duplicates in rows do not matter; out-of-range rows are ignored.
func (g *Grid) RemoveRows(rows []int) {
	remove := make([]bool, g.height)
	for _, row := range rows {
		if row >= 0 && row < g.height {
			remove[row] = true
		}
	}

	write := 0
	for row := 0; row < g.height; row++ {
		if remove[row] {
			continue
		}
		g.cells[write], g.cells[row] = g.cells[row], g.cells[write]
		write++
	}
	for row := write; row < g.height; row++ {
		g.cells[row] = make([]*Tile, g.width)
	}
}
