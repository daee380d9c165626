package grid

// MergePair identifies two vertically contiguous tiles of equal value.
type MergePair struct {
	Lower int // Row of the lower tile
	Upper int // Row of the upper tile, always Lower+1
	Col   int
}

// MergeEvent describes one resolved merge.
type MergeEvent struct {
	Row   int // Row of the surviving (lower) tile
	Col   int
	Value int // Value after doubling
}

// FindMergePair scans columns left to right, each from the floor up, and
// returns the first contiguous pair of equal tiles. An empty cell breaks
// adjacency. Only the first pair per column is considered and the leftmost
// column wins; callers resolve one pair and scan again.
func (g *Grid) FindMergePair() (MergePair, bool) {
	for col := 0; col < g.width; col++ {
		prev := 0
		for row := 0; row < g.height; row++ {
			cur := g.cells[row][col]
			if cur == nil {
				prev = 0
				continue
			}
			if prev != 0 && cur.Value == prev {
				return MergePair{Lower: row - 1, Upper: row, Col: col}, true
			}
			prev = cur.Value
		}
	}
	return MergePair{}, false
}

// Merge doubles the tile at (lowerRow, col), removes the tile above it and
// lets the rest of that column fall one row until the first gap.
// Returns the new value, or 0 if there was no tile to merge into.
func (g *Grid) Merge(lowerRow, col int) int {
	lower := g.At(lowerRow, col)
	if lower == nil {
		return 0
	}
	value := lower.double()
	g.Put(lowerRow+1, col, nil)
	g.collapse(lowerRow+1, col)
	return value
}

// collapse shifts the tiles above an emptied cell down by one, stopping at
// the first empty cell. It only touches a single column.
func (g *Grid) collapse(emptied, col int) {
	for row := emptied + 1; row < g.height; row++ {
		t := g.cells[row][col]
		if t == nil {
			return
		}
		g.cells[row-1][col], g.cells[row][col] = t, nil
	}
}

// Cascade resolves merges one pair at a time until none remain, calling
// onMerge after each one. Returns the score gained, the sum of the new values.
// Each merge removes a tile, so the loop runs at most once per cell.
func (g *Grid) Cascade(onMerge func(MergeEvent)) int {
	score := 0
	for {
		pair, ok := g.FindMergePair()
		if !ok {
			return score
		}
		value := g.Merge(pair.Lower, pair.Col)
		score += value
		if onMerge != nil {
			onMerge(MergeEvent{Row: pair.Lower, Col: pair.Col, Value: value})
		}
	}
}

// RunMergeCascade resolves merges to a fixpoint and returns the score gained.
func (g *Grid) RunMergeCascade() int {
	return g.Cascade(nil)
}
