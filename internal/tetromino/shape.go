// Package tetromino models the falling pieces of Tetris 2048: the seven
// shapes, their movement and rotation over a grid, and a seeded generator.
// Every cell of a piece carries its own numbered tile.
package tetromino

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	O
	Z
	J
	L
	S
	T
)

// Kinds lists every shape in generator order.
var Kinds = [...]Kind{I, O, Z, J, L, S, T}

// String returns the letter of the shape.
func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	case S:
		return "S"
	case T:
		return "T"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the kind for a shape letter.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown tetromino %q", s)
}

/*
Shape masks are square so rotation stays in place. Row 0 is the top.

	I          O      Z        J        L        S        T
	. X . .    X X    X X .    X . .    . . X    . X X    . X .
	. X . .    X X    . X X    X X X    X X X    X X .    X X X
	. X . .           . . .    . . .    . . .    . . .    . . .
	. X . .
*/
var masks = map[Kind][][]bool{
	I: {
		{false, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
		{false, true, false, false},
	},
	O: {
		{true, true},
		{true, true},
	},
	Z: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	J: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	L: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
	S: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	T: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
}

// Mask returns a copy of the occupancy mask of a shape, top row first.
func Mask(k Kind) [][]bool {
	src := masks[k]
	out := make([][]bool, len(src))
	for r := range src {
		out[r] = make([]bool, len(src[r]))
		copy(out[r], src[r])
	}
	return out
}
