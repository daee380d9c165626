package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/grid"
)

var _ grid.Falling = (*Piece)(nil)

func twos() *grid.Tile { return grid.NewTile(2) }

// counter hands out tiles numbered 2, 4, 8, ... so tests can track them.
func counter() func() *grid.Tile {
	v := 1
	return func() *grid.Tile {
		v *= 2
		return grid.NewTile(v)
	}
}

func coords(p *Piece) []grid.Coord {
	var out []grid.Coord
	for _, pl := range p.Tiles() {
		out = append(out, pl.Coord)
	}
	return out
}

func TestNewSpawnsAboveGrid(t *testing.T) {
	cfg := grid.Config{Height: 20, Width: 12}

	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			p := New(k, cfg, twos)
			tiles := p.Tiles()
			require.Len(t, tiles, 4)

			lowest := tiles[0].Row
			for _, pl := range tiles {
				lowest = min(lowest, pl.Row)
				assert.GreaterOrEqual(t, pl.Col, 0)
				assert.Less(t, pl.Col, cfg.Width)
			}
			assert.Equal(t, cfg.Height, lowest, "lowest tile should sit just above the top row")
		})
	}
}

func TestNewTShape(t *testing.T) {
	p := New(T, grid.Config{Height: 20, Width: 12}, twos)

	assert.Equal(t, grid.C(19, 4), p.Position())
	assert.ElementsMatch(t, []grid.Coord{
		grid.C(21, 5),
		grid.C(20, 4), grid.C(20, 5), grid.C(20, 6),
	}, coords(p))
}

func TestBlockIsMinBounded(t *testing.T) {
	cfg := grid.Config{Height: 20, Width: 12}

	tests := []struct {
		kind       Kind
		rows, cols int
		anchor     grid.Coord
	}{
		{I, 4, 1, grid.C(20, 5)},
		{O, 2, 2, grid.C(20, 5)},
		{T, 2, 3, grid.C(20, 4)},
		{S, 2, 3, grid.C(20, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			b := New(tc.kind, cfg, twos).Block()
			assert.Equal(t, tc.rows, b.Rows())
			assert.Equal(t, tc.cols, b.Cols())
			assert.Equal(t, tc.anchor, b.Anchor)
		})
	}
}

func TestBlockLocksWhereTilesAre(t *testing.T) {
	g := grid.New(grid.Config{Height: 8, Width: 6})
	p := New(L, g.Config(), counter())
	p.HardDrop(g)
	want := p.Tiles()

	require.False(t, g.Lock(p.Block()))

	for _, pl := range want {
		assert.Same(t, pl.Tile, g.At(pl.Row, pl.Col), "tile at %v", pl.Coord)
	}
	assert.Equal(t, 4, g.OccupiedCount())
}

func TestMoveOnEmptyGrid(t *testing.T) {
	g := grid.New(grid.Config{Height: 6, Width: 6})
	p := New(O, g.Config(), twos)
	require.Equal(t, grid.C(6, 2), p.Position())

	require.True(t, p.Move(g, Down))
	assert.Equal(t, grid.C(5, 2), p.Position())

	require.True(t, p.Move(g, Left))
	require.True(t, p.Move(g, Left))
	assert.False(t, p.Move(g, Left), "left wall")
	assert.Equal(t, grid.C(5, 0), p.Position())

	for i := 0; i < 4; i++ {
		require.True(t, p.Move(g, Right))
	}
	assert.False(t, p.Move(g, Right), "right wall")
	assert.Equal(t, grid.C(5, 4), p.Position())
}

func TestMoveDownStopsOnFloorAndStack(t *testing.T) {
	g := grid.New(grid.Config{Height: 6, Width: 6})
	g.Put(0, 3, grid.NewTile(8))
	p := New(O, g.Config(), twos)

	for p.Move(g, Down) {
	}

	assert.Equal(t, grid.C(1, 2), p.Position())
}

func TestHardDrop(t *testing.T) {
	g := grid.New(grid.Config{Height: 6, Width: 6})
	p := New(O, g.Config(), twos)

	assert.Equal(t, 6, p.DropDistance(g))
	assert.Equal(t, 6, p.HardDrop(g))
	assert.Equal(t, grid.C(0, 2), p.Position())
	assert.Equal(t, 0, p.HardDrop(g))
}

func TestHardDropOntoFullColumn(t *testing.T) {
	g := grid.New(grid.Config{Height: 4, Width: 4})
	for row := 0; row < 4; row++ {
		g.Put(row, 1, grid.NewTile(2))
	}
	p := New(O, g.Config(), twos)

	assert.Equal(t, 0, p.HardDrop(g))
	assert.True(t, g.Lock(p.Block()), "piece locked above the top row")
}

func TestRotateClockwise(t *testing.T) {
	g := grid.New(grid.Config{Height: 10, Width: 10})
	p := New(T, g.Config(), counter())
	for i := 0; i < 5; i++ {
		require.True(t, p.Move(g, Down))
	}
	pos := p.Position()
	before := p.Tiles()

	require.True(t, p.Rotate(g))

	// The stem now points right: a vertical bar in the middle column.
	assert.ElementsMatch(t, []grid.Coord{
		grid.C(pos.Row+2, pos.Col+1),
		grid.C(pos.Row+1, pos.Col+1), grid.C(pos.Row+1, pos.Col+2),
		grid.C(pos.Row, pos.Col+1),
	}, coords(p))

	// Tiles travel with their cells.
	var values []int
	for _, pl := range before {
		values = append(values, pl.Tile.Value)
	}
	var after []int
	for _, pl := range p.Tiles() {
		after = append(after, pl.Tile.Value)
	}
	assert.ElementsMatch(t, values, after)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	g := grid.New(grid.Config{Height: 10, Width: 10})
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			p := New(k, g.Config(), counter())
			p.pos.Row = 3
			before := p.Tiles()
			for i := 0; i < 4; i++ {
				p.Rotate(g)
			}
			assert.Equal(t, before, p.Tiles())
		})
	}
}

func TestRotateRevertsOnCollision(t *testing.T) {
	g := grid.New(grid.Config{Height: 8, Width: 6})
	p := New(I, g.Config(), twos)
	p.pos.Row = 2
	require.True(t, p.Move(g, Left))
	require.True(t, p.Move(g, Left))
	require.False(t, p.Move(g, Left))
	before := p.Tiles()

	assert.False(t, p.Rotate(g))
	assert.Equal(t, before, p.Tiles())
}

func TestRotateBlockedByStack(t *testing.T) {
	g := grid.New(grid.Config{Height: 8, Width: 6})
	p := New(I, g.Config(), twos)
	p.pos.Row = 2
	// Horizontal I would cover matrix row 1, i.e. absolute row 4.
	g.Put(4, 3, grid.NewTile(2))

	assert.False(t, p.Rotate(g))
}

func TestRotateOIsNoop(t *testing.T) {
	g := grid.New(grid.Config{Height: 8, Width: 6})
	p := New(O, g.Config(), counter())
	before := p.Tiles()

	assert.False(t, p.Rotate(g))
	assert.Equal(t, before, p.Tiles())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("X")
	assert.Error(t, err)
}

func TestMaskIsCopy(t *testing.T) {
	m := Mask(O)
	m[0][0] = false
	assert.True(t, masks[O][0][0])
}
