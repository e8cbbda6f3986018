package gridpath

import "time"

const (
	// bestFirstScale makes the heuristic dominate the ranking; g only
	// breaks ties.
	bestFirstScale = 1_000_000

	defaultBestFirstMaxVisited  = 2500
	defaultBestFirstMaxDuration = 2 * time.Second
)

// BestFirstFinder is a greedy best-first search. It does not guarantee a
// shortest path. It is bounded by default to 2500 visited cells and two
// seconds; WithMaxVisited(0) and WithMaxDuration(0) lift the bounds.
type BestFirstFinder struct {
	*AStarFinder
}

func NewBestFirstFinder(options ...Option) *BestFirstFinder {
	defaults := []Option{
		WithMaxVisited(defaultBestFirstMaxVisited),
		WithMaxDuration(defaultBestFirstMaxDuration),
	}
	searchOptions := applyOptions(append(defaults, options...))
	base := searchOptions.Heuristic
	searchOptions.Heuristic = func(dx, dy int) float64 {
		return base(dx, dy) * bestFirstScale
	}
	return &BestFirstFinder{AStarFinder: newAStarFinder("best-first", searchOptions)}
}
