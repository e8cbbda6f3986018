package gridpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		matrix [][]int
		row    int
	}{
		{name: "too few rows", width: 2, height: 3, matrix: [][]int{{0, 0}, {0, 0}}, row: -1},
		{name: "too many rows", width: 2, height: 1, matrix: [][]int{{0, 0}, {0, 0}}, row: -1},
		{name: "short row", width: 3, height: 2, matrix: [][]int{{0, 0, 0}, {0, 0}}, row: 1},
		{name: "long row", width: 1, height: 2, matrix: [][]int{{0, 0}, {0}}, row: 0},
		{name: "zero width", width: 0, height: 2, row: -1},
		{name: "negative height", width: 2, height: -1, row: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewGrid(tt.width, tt.height, tt.matrix)
			require.Error(t, err)
			assert.Nil(t, grid)
			assert.True(t, errors.Is(err, ErrInvalidDimensions))

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.row, configErr.Row)
		})
	}
}

func TestMustNewGrid_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNewGrid(2, 2, [][]int{{0}}) })
}

func TestNewGrid_NilMatrixIsOpen(t *testing.T) {
	grid, err := NewGrid(3, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Width())
	assert.Equal(t, 2, grid.Height())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.True(t, grid.IsWalkableAt(x, y))
		}
	}
}

func TestGrid_Bounds(t *testing.T) {
	grid := gridFromRows(t,
		".#.",
		"...",
	)

	node := grid.GetNodeAt(2, 1)
	assert.Equal(t, 2, node.X)
	assert.Equal(t, 1, node.Y)
	assert.True(t, node.Walkable())
	assert.False(t, grid.GetNodeAt(1, 0).Walkable())

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-1_000_000, 1_000_000}} {
		assert.False(t, grid.IsInside(p.X, p.Y), "%v", p)
		assert.False(t, grid.IsWalkableAt(p.X, p.Y), "%v", p)
	}
	assert.True(t, grid.IsInside(1, 0))
	assert.False(t, grid.IsWalkableAt(1, 0))
}

func TestGrid_GetNeighbors(t *testing.T) {
	grid := gridFromRows(t,
		"...",
		"#..",
		"...",
	)

	var got []Point
	for _, n := range grid.GetNeighbors(grid.GetNodeAt(1, 1)) {
		got = append(got, Point{n.X, n.Y})
	}
	// up, right, down; left is blocked and diagonals are never returned
	assert.Equal(t, []Point{{1, 0}, {2, 1}, {1, 2}}, got)

	assert.Len(t, grid.GetNeighbors(grid.GetNodeAt(0, 0)), 1)
}

func TestGrid_ScratchIsResetPerSearch(t *testing.T) {
	grid := gridFromRows(t, "....")

	grid.beginSearch()
	st := grid.state(grid.id(2, 0))
	st.g, st.closed, st.parent = 5, true, 1

	grid.beginSearch()
	st = grid.state(grid.id(2, 0))
	assert.Zero(t, st.g)
	assert.False(t, st.closed)
	assert.EqualValues(t, noParent, st.parent)
}

func TestGrid_GenerationWrap(t *testing.T) {
	grid := gridFromRows(t, "..")
	grid.generation = ^uint32(0)
	st := grid.state(0)
	st.closed = true

	grid.beginSearch()
	assert.EqualValues(t, 1, grid.generation)
	assert.False(t, grid.state(0).closed)
}

func TestGrid_CloneHasOwnScratch(t *testing.T) {
	grid := gridFromRows(t,
		"..#",
		"...",
	)
	clone := grid.Clone()
	assert.Equal(t, grid.nodes, clone.nodes)

	grid.beginSearch()
	grid.state(0).closed = true
	clone.beginSearch()
	assert.False(t, clone.state(0).closed)
	assert.False(t, clone.IsWalkableAt(2, 0))
}

func TestGrid_ReusedAcrossSearches(t *testing.T) {
	grid := gridFromRows(t,
		".....",
		".###.",
		".....",
	)
	finder := NewAStarFinder()
	first := finder.FindPath(0, 0, 4, 2, grid)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, finder.FindPath(0, 0, 4, 2, grid))
	}
	other := finder.FindPath(4, 2, 0, 0, grid)
	require.NotEmpty(t, other)
	assert.InDelta(t, first.Cost(), other.Cost(), 1e-9)
}
