package tetromino

import (
	"github.com/vovakirdan/tetris2048/internal/grid"
)

// Direction is a one-cell translation of a piece.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

// delta returns the (row, col) offset of a direction.
func (d Direction) delta() grid.Coord {
	switch d {
	case Left:
		return grid.Coord{Col: -1}
	case Right:
		return grid.Coord{Col: 1}
	default:
		return grid.Coord{Row: -1}
	}
}

// Board is the playfield a piece collides with. *grid.Grid satisfies it.
type Board interface {
	IsOccupied(row, col int) bool
	Width() int
}

// Placed is a piece tile at its absolute grid position.
type Placed struct {
	grid.Coord
	Tile *grid.Tile
}

// Piece is a falling tetromino. Its tiles live in a square matrix whose
// bottom-left cell sits at pos; row 0 of the matrix is the top.
type Piece struct {
	kind  Kind
	cells [][]*grid.Tile
	pos   grid.Coord
}

// New creates a piece of the given kind with a fresh tile in every occupied
// cell, placed just above the top of a grid of the given size and centred
// horizontally.
func New(kind Kind, cfg grid.Config, newTile func() *grid.Tile) *Piece {
	mask := masks[kind]
	n := len(mask)
	cells := make([][]*grid.Tile, n)
	for r := range mask {
		cells[r] = make([]*grid.Tile, n)
		for c, on := range mask[r] {
			if on {
				cells[r][c] = newTile()
			}
		}
	}

	p := &Piece{kind: kind, cells: cells}
	_, maxRow, _, _ := p.bounds()
	p.pos = grid.Coord{
		Row: cfg.Height - (n - 1 - maxRow),
		Col: (cfg.Width - n) / 2,
	}
	return p
}

// Kind returns the shape of the piece.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Position returns the absolute position of the bottom-left matrix cell.
func (p *Piece) Position() grid.Coord {
	return p.pos
}

// size returns the side of the square tile matrix.
func (p *Piece) size() int {
	return len(p.cells)
}

// bounds returns the extent of the occupied matrix cells.
func (p *Piece) bounds() (minRow, maxRow, minCol, maxCol int) {
	n := p.size()
	minRow, minCol = n, n
	maxRow, maxCol = -1, -1
	for r, line := range p.cells {
		for c, t := range line {
			if t == nil {
				continue
			}
			minRow = min(minRow, r)
			maxRow = max(maxRow, r)
			minCol = min(minCol, c)
			maxCol = max(maxCol, c)
		}
	}
	return minRow, maxRow, minCol, maxCol
}

// Tiles returns the tiles of the piece at their absolute positions.
func (p *Piece) Tiles() []Placed {
	return placed(p.cells, p.pos)
}

func placed(cells [][]*grid.Tile, pos grid.Coord) []Placed {
	n := len(cells)
	out := make([]Placed, 0, 4)
	for r, line := range cells {
		for c, t := range line {
			if t == nil {
				continue
			}
			out = append(out, Placed{
				Coord: grid.C(pos.Row+(n-1-r), pos.Col+c),
				Tile:  t,
			})
		}
	}
	return out
}

// canOccupy reports whether a piece cell may sit at (row, col). Cells above
// the top row are open so pieces can enter the grid from above.
func canOccupy(b Board, row, col int) bool {
	if row < 0 || col < 0 || col >= b.Width() {
		return false
	}
	return !b.IsOccupied(row, col)
}

// fits reports whether the given matrix can sit at pos.
func fits(b Board, cells [][]*grid.Tile, pos grid.Coord) bool {
	for _, pl := range placed(cells, pos) {
		if !canOccupy(b, pl.Row, pl.Col) {
			return false
		}
	}
	return true
}

// Move shifts the piece one cell in the given direction.
// It reports false and leaves the piece in place when the move collides.
func (p *Piece) Move(b Board, d Direction) bool {
	delta := d.delta()
	next := grid.C(p.pos.Row+delta.Row, p.pos.Col+delta.Col)
	if !fits(b, p.cells, next) {
		return false
	}
	p.pos = next
	return true
}

// Rotate turns the piece a quarter turn clockwise in place.
// The rotation is reverted when it collides; the O piece never rotates.
func (p *Piece) Rotate(b Board) bool {
	if p.kind == O {
		return false
	}

	n := p.size()
	rotated := make([][]*grid.Tile, n)
	for r := range rotated {
		rotated[r] = make([]*grid.Tile, n)
	}
	for r, line := range p.cells {
		col := n - 1 - r
		for c, t := range line {
			rotated[c][col] = t
		}
	}

	if !fits(b, rotated, p.pos) {
		return false
	}
	p.cells = rotated
	return true
}

// DropDistance returns how many rows the piece can fall before it lands.
func (p *Piece) DropDistance(b Board) int {
	d := 0
	for fits(b, p.cells, grid.C(p.pos.Row-d-1, p.pos.Col)) {
		d++
	}
	return d
}

// HardDrop moves the piece straight down until it lands and returns the
// number of rows it fell.
func (p *Piece) HardDrop(b Board) int {
	d := p.DropDistance(b)
	p.pos.Row -= d
	return d
}

// Block returns the piece trimmed to its occupied rows and columns, anchored
// at the absolute position of the trimmed matrix's bottom-left cell.
func (p *Piece) Block() grid.AnchoredBlock {
	minRow, maxRow, minCol, maxCol := p.bounds()
	if maxRow < 0 {
		return grid.AnchoredBlock{Anchor: p.pos}
	}

	tiles := make([][]*grid.Tile, maxRow-minRow+1)
	for r := range tiles {
		tiles[r] = make([]*grid.Tile, maxCol-minCol+1)
		copy(tiles[r], p.cells[minRow+r][minCol:maxCol+1])
	}

	n := p.size()
	return grid.AnchoredBlock{
		Tiles:  tiles,
		Anchor: grid.C(p.pos.Row+(n-1-maxRow), p.pos.Col+minCol),
	}
}
