package grid

import "fmt"

// Config holds the grid dimensions. It is shared with the piece generator
// so both agree on where the playfield ends.
type Config struct {
	Height int // Number of rows; row 0 is the floor
	Width  int // Number of columns
}

// DefaultConfig returns the classic 20x12 playfield.
func DefaultConfig() Config {
	return Config{Height: 20, Width: 12}
}

// Coord addresses a cell by row (0 = floor) and column (0 = left).
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// AnchoredBlock is a locked piece: a bounded tile matrix plus the absolute
// position of its bottom-left cell. Row 0 of Tiles is the top of the block.
type AnchoredBlock struct {
	Tiles  [][]*Tile
	Anchor Coord
}

// Rows returns the number of rows in the block matrix.
func (b AnchoredBlock) Rows() int {
	return len(b.Tiles)
}

// Cols returns the number of columns in the block matrix.
func (b AnchoredBlock) Cols() int {
	if len(b.Tiles) == 0 {
		return 0
	}
	return len(b.Tiles[0])
}

// Falling is the piece currently moving over the grid.
// The grid only keeps a reference to it; the driver owns its movement.
type Falling interface {
	Block() AnchoredBlock
}

// Grid is the authoritative game state: a fixed matrix of optional tiles.
type Grid struct {
	height   int
	width    int
	cells    [][]*Tile // cells[row][col], row 0 at the bottom
	gameOver bool
	active   Falling
}

// New creates an empty grid with the given dimensions.
func New(cfg Config) *Grid {
	g := &Grid{
		height: cfg.Height,
		width:  cfg.Width,
	}
	g.cells = make([][]*Tile, cfg.Height)
	for r := range g.cells {
		g.cells[r] = make([]*Tile, cfg.Width)
	}
	return g
}

// FromValues builds a grid from a value matrix written top row first,
// the way it reads on screen. Zero means empty.
func FromValues(rows [][]int) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := New(Config{Height: h, Width: w})
	for i, row := range rows {
		r := h - 1 - i
		for c, v := range row {
			if v != 0 {
				g.cells[r][c] = NewTile(v)
			}
		}
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Config returns the grid dimensions.
func (g *Grid) Config() Config {
	return Config{Height: g.height, Width: g.width}
}

// IsInside reports whether (row, col) lies on the grid.
func (g *Grid) IsInside(row, col int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	if col < 0 || col >= g.width {
		return false
	}
	return true
}

// IsOccupied reports whether (row, col) holds a tile.
// Cells outside the grid are never occupied; spawned pieces routinely
// reach above the top row.
func (g *Grid) IsOccupied(row, col int) bool {
	if !g.IsInside(row, col) {
		return false
	}
	return g.cells[row][col] != nil
}

// At returns the tile at (row, col), or nil if the cell is empty or outside the grid.
func (g *Grid) At(row, col int) *Tile {
	if !g.IsInside(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// Put writes a tile at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Put(row, col int, t *Tile) {
	if g.IsInside(row, col) {
		g.cells[row][col] = t
	}
}

// Cells returns a snapshot of the tile matrix, row 0 first.
// The tiles are shared; the row slices are not.
func (g *Grid) Cells() [][]*Tile {
	out := make([][]*Tile, g.height)
	for r := range g.cells {
		out[r] = make([]*Tile, g.width)
		copy(out[r], g.cells[r])
	}
	return out
}

// Values returns a snapshot of tile values, row 0 first. Empty cells are 0.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for r := range g.cells {
		out[r] = make([]int, g.width)
		for c, t := range g.cells[r] {
			if t != nil {
				out[r][c] = t.Value
			}
		}
	}
	return out
}

// OccupiedCount returns the number of tiles on the grid.
func (g *Grid) OccupiedCount() int {
	n := 0
	for r := range g.cells {
		for _, t := range g.cells[r] {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// MaxValue returns the highest tile value on the grid, or 0 when empty.
func (g *Grid) MaxValue() int {
	best := 0
	for r := range g.cells {
		for _, t := range g.cells[r] {
			if t != nil && t.Value > best {
				best = t.Value
			}
		}
	}
	return best
}

// GameOver reports whether a lock has pushed tiles above the grid.
func (g *Grid) GameOver() bool {
	return g.gameOver
}

// Active returns the falling piece, or nil between lock and spawn.
func (g *Grid) Active() Falling {
	return g.active
}

// SetActive records the falling piece.
func (g *Grid) SetActive(f Falling) {
	g.active = f
}

// Lock writes the tiles of a landed piece onto the grid.
// Tiles that would land outside the grid are dropped and end the game.
// The returned flag is sticky: once true, every later call returns true.
func (g *Grid) Lock(block AnchoredBlock) bool {
	rows := block.Rows()
	for r, line := range block.Tiles {
		for c, t := range line {
			if t == nil {
				continue
			}
			row := block.Anchor.Row + (rows - 1 - r)
			col := block.Anchor.Col + c
			if g.IsInside(row, col) {
				g.cells[row][col] = t
			} else {
				g.gameOver = true
			}
		}
	}
	g.active = nil
	return g.gameOver
}
