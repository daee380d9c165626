package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/grid"
)

func column(g *grid.Grid, col int) []int {
	out := make([]int, g.Height())
	for row := range out {
		if t := g.At(row, col); t != nil {
			out[row] = t.Value
		}
	}
	return out
}

func TestFindMergePair(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]int
		pair  grid.MergePair
		found bool
	}{
		{
			name: "pair on the floor",
			rows: [][]int{
				{0},
				{2},
				{2},
			},
			pair:  grid.MergePair{Lower: 0, Upper: 1, Col: 0},
			found: true,
		},
		{
			name: "gap breaks adjacency",
			rows: [][]int{
				{2},
				{0},
				{2},
			},
			found: false,
		},
		{
			name: "different values",
			rows: [][]int{
				{8},
				{4},
				{2},
			},
			found: false,
		},
		{
			name: "lowest pair in a column wins",
			rows: [][]int{
				{8},
				{8},
				{2},
				{2},
			},
			pair:  grid.MergePair{Lower: 0, Upper: 1, Col: 0},
			found: true,
		},
		{
			name: "leftmost column wins",
			rows: [][]int{
				{2, 0},
				{2, 4},
				{4, 4},
			},
			pair:  grid.MergePair{Lower: 1, Upper: 2, Col: 0},
			found: true,
		},
		{
			name: "later column when earlier has none",
			rows: [][]int{
				{0, 16},
				{4, 16},
				{2, 8},
			},
			pair:  grid.MergePair{Lower: 1, Upper: 2, Col: 1},
			found: true,
		},
		{
			name: "horizontal neighbours never merge",
			rows: [][]int{
				{2, 2, 2},
			},
			found: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.FromValues(tc.rows)
			pair, found := g.FindMergePair()
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.pair, pair)
			}
		})
	}
}

func TestMergeContract(t *testing.T) {
	g := grid.FromValues([][]int{
		{0},
		{0},
		{16},
		{8},
		{2},
		{2},
		{0},
	})

	value := g.Merge(1, 0)

	assert.Equal(t, 4, value)
	assert.Equal(t, []int{0, 4, 8, 16, 0, 0, 0}, column(g, 0))
}

func TestMergeCollapseStopsAtGap(t *testing.T) {
	g := grid.FromValues([][]int{
		{32},
		{0},
		{8},
		{4},
		{4},
	})

	value := g.Merge(0, 0)

	assert.Equal(t, 8, value)
	// 8 falls into the emptied cell, 32 stays above the gap.
	assert.Equal(t, []int{8, 8, 0, 0, 32}, column(g, 0))
}

func TestMergeLeavesOtherColumnsAlone(t *testing.T) {
	g := grid.FromValues([][]int{
		{0, 4},
		{2, 0},
		{2, 8},
	})

	g.Merge(0, 0)

	assert.Equal(t, []int{8, 0, 4}, column(g, 1))
}

func TestMergeEmptyCellIsNoop(t *testing.T) {
	g := grid.New(grid.Config{Height: 3, Width: 1})
	assert.Equal(t, 0, g.Merge(0, 0))
	assert.Equal(t, 0, g.OccupiedCount())
}

func TestMergeCascadeSimplePair(t *testing.T) {
	g := grid.FromValues([][]int{
		{0, 0},
		{0, 2},
		{0, 2},
	})

	score := g.RunMergeCascade()

	assert.Equal(t, 4, score)
	assert.Equal(t, []int{4, 0, 0}, column(g, 1))
	assert.Equal(t, 1, g.OccupiedCount())
}

func TestMergeCascadeChains(t *testing.T) {
	g := grid.FromValues([][]int{
		{8},
		{4},
		{2},
		{2},
	})

	var events []grid.MergeEvent
	score := g.Cascade(func(e grid.MergeEvent) {
		events = append(events, e)
	})

	// 2+2 -> 4, 4+4 -> 8, 8+8 -> 16
	assert.Equal(t, 4+8+16, score)
	assert.Equal(t, []int{16, 0, 0, 0}, column(g, 0))
	require.Len(t, events, 3)
	assert.Equal(t, grid.MergeEvent{Row: 0, Col: 0, Value: 16}, events[2])
}

func TestMergeCascadeFirstFoundOrder(t *testing.T) {
	// 4,4 above 2,2: the floor pair merges first, then the new 4 pairs with
	// the 4 that slid onto it, leaving the top 4 alone.
	g := grid.FromValues([][]int{
		{4},
		{4},
		{2},
		{2},
	})

	score := g.RunMergeCascade()

	// 2+2=4; column 4,4,4 -> 8,4; no further pair.
	assert.Equal(t, 4+8, score)
	assert.Equal(t, []int{8, 4, 0, 0}, column(g, 0))
}

func TestMergeCascadeReachesFixpoint(t *testing.T) {
	g := grid.FromValues([][]int{
		{2, 4, 0},
		{2, 4, 8},
		{4, 8, 8},
		{4, 8, 2},
	})

	g.RunMergeCascade()

	_, found := g.FindMergePair()
	assert.False(t, found)
}

func TestMergeCascadeNoPairs(t *testing.T) {
	g := grid.FromValues([][]int{
		{2, 4},
		{4, 2},
	})
	assert.Equal(t, 0, g.RunMergeCascade())
	assert.Equal(t, 4, g.OccupiedCount())
}
