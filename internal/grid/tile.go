// Package grid implements the Tetris 2048 simulation engine: the tile matrix,
// piece locking, the vertical merge cascade, clump gravity and line clearing.
//
// The package is pure logic. Every operation is synchronous and runs to
// completion; pacing and presentation belong to the caller.
package grid

import "math/rand"

// WinValue is the tile value that traditionally wins a game of 2048.
const WinValue = 2048

// Tile is a numbered cell resting in the grid.
// Its position is implied by the cell that holds it.
type Tile struct {
	Value    int  // Power of two, at least 2
	Clearing bool // Set on tiles of a full row; only the renderer reads it
}

// NewTile creates a tile with the given value.
func NewTile(value int) *Tile {
	return &Tile{Value: value}
}

// NewRandomTile creates a tile holding 2 or 4 with equal probability.
func NewRandomTile(rng *rand.Rand) *Tile {
	return NewTile((rng.Intn(2) + 1) * 2)
}

// NewWeightedTile creates a tile holding 4 with probability fourChance, 2 otherwise.
func NewWeightedTile(rng *rand.Rand, fourChance float64) *Tile {
	if rng.Float64() < fourChance {
		return NewTile(4)
	}
	return NewTile(2)
}

// double doubles the tile value and returns it.
func (t *Tile) double() int {
	t.Value *= 2
	return t.Value
}
