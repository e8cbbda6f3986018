package gridpath

import "time"

// AStarFinder runs A* over an unordered open set, extracting the best node
// by linear scan.
type AStarFinder struct {
	name    string
	options Options
	visited VisitedSet
	stats   Stats
}

// NewAStarFinder returns an A* finder. The heuristic defaults to Octile.
func NewAStarFinder(options ...Option) *AStarFinder {
	return newAStarFinder("astar", applyOptions(options))
}

// NewDijkstraFinder returns A* with the heuristic forced to Zero.
func NewDijkstraFinder(options ...Option) *AStarFinder {
	searchOptions := applyOptions(options)
	searchOptions.Heuristic = Zero
	return newAStarFinder("dijkstra", searchOptions)
}

func newAStarFinder(name string, options Options) *AStarFinder {
	return &AStarFinder{name: name, options: options, visited: make(VisitedSet)}
}

func (f *AStarFinder) Visited() VisitedSet { return f.visited }
func (f *AStarFinder) Stats() Stats        { return f.stats }

func (f *AStarFinder) FindPath(startX, startY, endX, endY int, grid *Grid) Path {
	clear(f.visited)
	search := newAStarSearch(grid, &f.options, Point{startX, startY}, Point{endX, endY}, f.visited)
	for !search.step() {
	}
	f.stats = search.stats()
	switch {
	case search.aborted != AbortNone:
		logAbort(f.options.Logger, f.name, search.aborted, len(f.visited), f.stats.Elapsed)
	case !search.found:
		logUnreachable(f.options.Logger, f.name, search.startPoint, search.endPoint, len(f.visited))
	}
	return search.path
}

// astarSearch is the state of one A* run, advanced one expansion at a time.
type astarSearch struct {
	grid    *Grid
	options *Options

	start, end           int32
	startPoint, endPoint Point

	open      []int32
	visited   VisitedSet
	neighbors []int32
	budget    budget

	current int32
	steps   int
	done    bool
	found   bool
	aborted AbortReason
	path    Path
	elapsed time.Duration
}

func newAStarSearch(grid *Grid, options *Options, start, end Point, visited VisitedSet) *astarSearch {
	grid.beginSearch()

	search := &astarSearch{
		grid:       grid,
		options:    options,
		start:      grid.id(start.X, start.Y),
		end:        grid.id(end.X, end.Y),
		startPoint: start,
		endPoint:   end,
		visited:    visited,
		neighbors:  make([]int32, 0, 8),
		current:    noParent,
	}
	search.budget = newBudget(options, search.start, progress(start, end))

	startState := grid.state(search.start)
	startState.g = 0
	startState.h = search.heuristic(start)
	startState.hasH = true
	startState.f = startState.h
	startState.opened = true
	search.open = append(search.open, search.start)
	return search
}

func (s *astarSearch) heuristic(p Point) float64 {
	return s.options.Weight * s.options.Heuristic(absInt(p.X-s.endPoint.X), absInt(p.Y-s.endPoint.Y))
}

// step performs one iteration of the outer loop and reports whether the
// search has finished.
func (s *astarSearch) step() bool {
	if s.done {
		return true
	}
	if len(s.open) == 0 {
		s.finish(nil)
		return true
	}
	if reason := s.budget.exceeded(len(s.visited)); reason != AbortNone {
		s.abort(reason)
		return true
	}

	s.steps++
	index := s.lowestF()
	current := s.open[index]
	s.current = current
	if current == s.end {
		s.found = true
		s.finish(s.grid.backtrace(current))
		return true
	}

	last := len(s.open) - 1
	s.open[index] = s.open[last]
	s.open = s.open[:last]

	currentState := s.grid.state(current)
	currentState.closed = true
	currentPoint := s.grid.point(current)
	s.visited.add(currentPoint)
	s.budget.observe(current, progress(currentPoint, s.endPoint))

	s.neighbors = s.grid.appendNeighbors(s.neighbors[:0], currentPoint.X, currentPoint.Y, s.options.DiagonalMovement)
	for _, neighbor := range s.neighbors {
		neighborState := s.grid.state(neighbor)
		if neighborState.closed {
			continue
		}
		neighborPoint := s.grid.point(neighbor)
		tentativeG := currentState.g + stepCost(neighborPoint.X-currentPoint.X, neighborPoint.Y-currentPoint.Y, s.options.DiagonalMovement)
		if neighborState.opened && tentativeG >= neighborState.g {
			continue
		}
		neighborState.g = tentativeG
		if !neighborState.hasH {
			neighborState.h = s.heuristic(neighborPoint)
			neighborState.hasH = true
		}
		neighborState.f = neighborState.g + neighborState.h
		neighborState.parent = current
		if !neighborState.opened {
			neighborState.opened = true
			s.open = append(s.open, neighbor)
		}
	}
	return false
}

// lowestF returns the index in the open set of the node ranked first.
func (s *astarSearch) lowestF() int {
	bestIndex := 0
	bestState := s.grid.state(s.open[0])
	for i := 1; i < len(s.open); i++ {
		candidate := s.grid.state(s.open[i])
		if ranksBefore(candidate, bestState, s.open[i], s.open[bestIndex]) {
			bestIndex, bestState = i, candidate
		}
	}
	return bestIndex
}

func (s *astarSearch) abort(reason AbortReason) {
	s.aborted = reason
	if s.budget.best == s.start {
		s.finish(nil)
		return
	}
	s.finish(s.grid.backtrace(s.budget.best))
}

func (s *astarSearch) finish(path Path) {
	s.done = true
	s.path = path
	s.elapsed = s.budget.elapsed()
}

func (s *astarSearch) stats() Stats {
	return Stats{Visited: len(s.visited), Elapsed: s.elapsed, Aborted: s.aborted}
}
