package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadthFirst_FewestSteps(t *testing.T) {
	grid := gridFromRows(t,
		"......",
		".####.",
		"......",
	)
	finder := NewBreadthFirstFinder(WithDiagonalMovement(DiagonalNever))

	path := finder.FindPath(0, 1, 5, 1, grid)
	require.Len(t, path, 7)
	assert.NoError(t, ValidatePath(grid, path, DiagonalNever))

	// discovered cells count as visited, the goal included
	visited := finder.Visited()
	assert.True(t, visited.Has(Point{0, 1}))
	assert.True(t, visited.Has(Point{5, 1}))
	assert.False(t, visited.Has(Point{2, 1}))
	assert.Equal(t, visited.Len(), finder.Stats().Visited)
}

func TestBreadthFirst_IgnoresHeuristic(t *testing.T) {
	grid := randomGrid(t, 3, 15, 15, 0.25)
	plain := NewBreadthFirstFinder().FindPath(0, 0, 14, 14, grid)
	weighted := NewBreadthFirstFinder(WithHeuristic(Manhattan), WithWeight(10)).FindPath(0, 0, 14, 14, grid)
	assert.Equal(t, plain, weighted)
}

func TestBreadthFirst_AbortYieldsNoPath(t *testing.T) {
	grid := MustNewGrid(50, 50, nil)
	finder := NewBreadthFirstFinder(WithMaxVisited(20))

	assert.Empty(t, finder.FindPath(0, 0, 49, 49, grid))
	assert.Equal(t, AbortVisitedLimit, finder.Stats().Aborted)
	assert.GreaterOrEqual(t, finder.Stats().Visited, 20)

	// the same finder recovers on the next call
	assert.NotEmpty(t, finder.FindPath(0, 0, 1, 0, grid))
	assert.Equal(t, AbortNone, finder.Stats().Aborted)
}
