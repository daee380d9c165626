package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/grid"
)

func TestFindFullRowsTagsTiles(t *testing.T) {
	g := grid.FromValues([][]int{
		{0, 0, 0, 0},
		{2, 0, 4, 0},
		{2, 4, 8, 16},
		{8, 0, 2, 2},
	})

	rows := g.FindFullRows()

	require.Equal(t, []int{1}, rows)
	for col := 0; col < g.Width(); col++ {
		assert.True(t, g.At(1, col).Clearing, "col %d", col)
	}
	assert.False(t, g.At(0, 0).Clearing)
	assert.False(t, g.At(2, 0).Clearing)
}

func TestFindFullRowsNone(t *testing.T) {
	g := grid.FromValues([][]int{
		{2, 0},
		{0, 2},
	})
	assert.Empty(t, g.FindFullRows())
}

func TestScoreForRows(t *testing.T) {
	g := grid.FromValues([][]int{
		{2, 2, 2},
		{4, 8, 16},
	})

	assert.Equal(t, 28, g.ScoreForRows([]int{0}))
	assert.Equal(t, 34, g.ScoreForRows([]int{0, 1}))
	assert.Equal(t, 0, g.ScoreForRows(nil))
	assert.Equal(t, 6, g.ScoreForRows([]int{1, 7, -1}))
}

func TestRemoveSingleRow(t *testing.T) {
	g := grid.FromValues([][]int{
		{0, 0, 0, 0},
		{0, 32, 0, 0},
		{2, 4, 8, 16},
		{8, 0, 2, 0},
	})

	g.RemoveRows(g.FindFullRows())

	assert.Equal(t, [][]int{
		{8, 0, 2, 0},
		{0, 32, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, g.Values())
}

func TestRemoveRowsUnorderedAndDuplicated(t *testing.T) {
	g := grid.FromValues([][]int{
		{0, 64},
		{4, 4},
		{0, 16},
		{2, 2},
	})

	g.RemoveRows([]int{2, 0, 2})

	assert.Equal(t, [][]int{
		{0, 16},
		{0, 64},
		{0, 0},
		{0, 0},
	}, g.Values())
}

func TestRemoveRowsIgnoresOutOfRange(t *testing.T) {
	g := grid.FromValues([][]int{
		{0, 2},
		{2, 2},
	})

	g.RemoveRows([]int{-1, 5})

	assert.Equal(t, 3, g.OccupiedCount())
}

func TestRemoveAllRows(t *testing.T) {
	g := grid.FromValues([][]int{
		{2, 4},
		{8, 16},
	})

	g.RemoveRows(g.FindFullRows())

	assert.Equal(t, 0, g.OccupiedCount())
	assert.Equal(t, 2, g.Height())
	assert.False(t, g.IsOccupied(1, 1))
}
