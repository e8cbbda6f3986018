package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_FirstStepExpandsStart(t *testing.T) {
	grid := gridFromRows(t,
		"....",
		".#..",
		"....",
	)
	stepper := NewStepper(grid, Point{0, 0}, Point{3, 2})

	snapshot := stepper.Step()
	assert.Equal(t, 1, snapshot.StepIndex)
	assert.Equal(t, Point{0, 0}, snapshot.Current)
	assert.Equal(t, []Point{{0, 0}}, snapshot.Closed)
	// the diagonal to (1, 1) is blocked
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, snapshot.Open)
	assert.False(t, snapshot.Done)
	assert.Empty(t, snapshot.Path)
}

func TestStepper_RunMatchesFindPath(t *testing.T) {
	for _, heuristic := range []Heuristic{Octile, Zero} {
		grid := randomGrid(t, 11, 25, 25, 0.25)
		finder := NewAStarFinder(WithHeuristic(heuristic))
		want := finder.FindPath(0, 0, 24, 24, grid.Clone())

		stepper := NewStepper(grid, Point{0, 0}, Point{24, 24}, WithHeuristic(heuristic))
		final := stepper.Run()
		assert.True(t, final.Done)
		assert.Equal(t, len(want) > 0, final.Found)
		assert.Equal(t, want, final.Path)
		assert.Equal(t, finder.Stats().Visited, stepper.Stats().Visited)
		assert.Len(t, final.Closed, finder.Visited().Len())
	}
}

func TestStepper_StepsAreMonotonic(t *testing.T) {
	grid := MustNewGrid(6, 6, nil)
	stepper := NewStepper(grid, Point{0, 0}, Point{5, 3})

	var snapshots []StepSnapshot
	for {
		snapshot := stepper.Step()
		snapshots = append(snapshots, snapshot)
		if snapshot.Done {
			break
		}
		require.Less(t, len(snapshots), 100)
	}

	for i := 1; i < len(snapshots); i++ {
		assert.Equal(t, snapshots[i-1].StepIndex+1, snapshots[i].StepIndex)
		assert.GreaterOrEqual(t, len(snapshots[i].Closed), len(snapshots[i-1].Closed))
	}

	final := snapshots[len(snapshots)-1]
	assert.True(t, final.Found)
	assert.Equal(t, Point{5, 3}, final.Current)
	assert.Equal(t, Point{5, 3}, final.Path[len(final.Path)-1])

	// a finished stepper keeps returning its final snapshot
	assert.Equal(t, final, stepper.Step())
	assert.Equal(t, final, stepper.Run())
}

func TestStepper_Abort(t *testing.T) {
	grid := enclosedGoalGrid(t, 12, 8, 8)
	stepper := NewStepper(grid, Point{0, 0}, Point{8, 8}, WithMaxVisited(5))

	final := stepper.Run()
	assert.True(t, final.Done)
	assert.False(t, final.Found)
	assert.Equal(t, AbortVisitedLimit, final.Aborted)
	assert.Len(t, final.Closed, 5)
	assert.NotEmpty(t, final.Path)
	assert.Equal(t, AbortVisitedLimit, stepper.Stats().Aborted)
}
