package gridpath

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from an ASCII map: '#' is blocked, anything
// else walkable.
func gridFromRows(t testing.TB, rows ...string) *Grid {
	t.Helper()
	matrix := make([][]int, len(rows))
	for y, row := range rows {
		row = strings.TrimSpace(row)
		matrix[y] = make([]int, len(row))
		for x, c := range row {
			if c == '#' {
				matrix[y][x] = 1
			}
		}
	}
	grid, err := NewGrid(len(matrix[0]), len(matrix), matrix)
	require.NoError(t, err)
	return grid
}

// randomGrid blocks each cell with the given probability, keeping the two
// corners (0, 0) and (w-1, h-1) open.
func randomGrid(t testing.TB, seed int64, width, height int, density float64) *Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	matrix := make([][]int, height)
	for y := range matrix {
		matrix[y] = make([]int, width)
		for x := range matrix[y] {
			if r.Float64() < density {
				matrix[y][x] = 1
			}
		}
	}
	matrix[0][0] = 0
	matrix[height-1][width-1] = 0
	grid, err := NewGrid(width, height, matrix)
	require.NoError(t, err)
	return grid
}

func pts(coords ...[2]int) Path {
	path := make(Path, len(coords))
	for i, c := range coords {
		path[i] = Point{c[0], c[1]}
	}
	return path
}

// fakeClock advances by step every time it is read.
type fakeClock struct {
	now  int64
	step int64
}

func withStepClock(stepNanos int64) Option {
	clock := &fakeClock{step: stepNanos}
	return func(options *Options) {
		options.now = func() time.Time {
			clock.now += clock.step
			return time.Unix(0, clock.now)
		}
	}
}

// allFinders returns one of each finder, configured for movement.
func allFinders(movement DiagonalMovement) map[string]Finder {
	finders := map[string]Finder{
		"astar":      NewAStarFinder(WithDiagonalMovement(movement)),
		"dijkstra":   NewDijkstraFinder(WithDiagonalMovement(movement)),
		"bfs":        NewBreadthFirstFinder(WithDiagonalMovement(movement)),
		"best-first": NewBestFirstFinder(WithDiagonalMovement(movement), WithMaxVisited(0), WithMaxDuration(0)),
	}
	if movement != DiagonalNever {
		finders["jps"] = NewJumpPointFinder(WithDiagonalMovement(movement))
		finders["jps-iterative"] = NewJumpPointFinder(WithDiagonalMovement(movement), WithIterativeJump())
	}
	return finders
}
