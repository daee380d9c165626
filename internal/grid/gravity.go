package grid

import "github.com/kamstrup/intmap"

// Clump is a maximal 4-connected group of tiles that does not reach the floor.
type Clump []Coord

// neighbours of a cell in flood-fill order: up, down, right, left.
var neighbours = [4]Coord{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// index flattens a coordinate for the visited set.
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// ConnectedClumps partitions the tiles into 4-connected components and
// returns those that contain no floor cell. Seeds are visited row by row
// from row 1 up; each cell is visited at most once across all seeds.
func (g *Grid) ConnectedClumps() []Clump {
	visited := intmap.New[int, struct{}](g.width * g.height)
	stack := make([]Coord, 0, g.width*g.height)
	var clumps []Clump

	for row := 1; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row][col] == nil || visited.Has(g.index(row, col)) {
				continue
			}

			var clump Clump
			grounded := false
			visited.Put(g.index(row, col), struct{}{})
			stack = append(stack[:0], C(row, col))

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				clump = append(clump, cur)
				if cur.Row == 0 {
					grounded = true
				}

				for _, d := range neighbours {
					r, c := cur.Row+d.Row, cur.Col+d.Col
					if !g.IsOccupied(r, c) || visited.Has(g.index(r, c)) {
						continue
					}
					visited.Put(g.index(r, c), struct{}{})
					stack = append(stack, C(r, c))
				}
			}

			if !grounded {
				clumps = append(clumps, clump)
			}
		}
	}
	return clumps
}

// DropClumps lowers every floating clump by one row, repeatedly, until no
// clump floats. Returns the number of passes made.
// Each pass lowers the sum of tile rows, so it stops within Height passes.
func (g *Grid) DropClumps() int {
	passes := 0
	for {
		clumps := g.ConnectedClumps()
		if len(clumps) == 0 {
			return passes
		}
		g.lowerClumps(clumps)
		passes++
	}
}

// lowerClumps moves every clump tile down one row. Cells are walked from
// the bottom so a tile never lands on a clump tile that has not moved yet.
// The cell below a clump tile is either empty or part of the same clump.
func (g *Grid) lowerClumps(clumps []Clump) {
	floating := intmap.New[int, struct{}](g.width * g.height)
	for _, clump := range clumps {
		for _, c := range clump {
			floating.Put(g.index(c.Row, c.Col), struct{}{})
		}
	}

	for row := 1; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if !floating.Has(g.index(row, col)) {
				continue
			}
			g.cells[row-1][col], g.cells[row][col] = g.cells[row][col], nil
		}
	}
}
