package gridpath

// BreadthFirstFinder expands cells in FIFO order. Every step counts as one
// edge, so the path is shortest by number of steps, not by length.
type BreadthFirstFinder struct {
	options Options
	visited VisitedSet
	stats   Stats
}

// NewBreadthFirstFinder returns a breadth-first finder. The heuristic and
// weight options are ignored.
func NewBreadthFirstFinder(options ...Option) *BreadthFirstFinder {
	return &BreadthFirstFinder{options: applyOptions(options), visited: make(VisitedSet)}
}

func (f *BreadthFirstFinder) Visited() VisitedSet { return f.visited }
func (f *BreadthFirstFinder) Stats() Stats        { return f.stats }

func (f *BreadthFirstFinder) FindPath(startX, startY, endX, endY int, grid *Grid) Path {
	clear(f.visited)
	grid.beginSearch()

	start := grid.id(startX, startY)
	end := grid.id(endX, endY)
	endPoint := Point{endX, endY}
	tracker := newBudget(&f.options, start, progress(Point{startX, startY}, endPoint))

	queue := []int32{start}
	grid.state(start).opened = true
	f.visited.add(Point{startX, startY})

	neighbors := make([]int32, 0, 8)
	for head := 0; head < len(queue); head++ {
		// A bound trip yields no path: level order has no meaningful
		// best-so-far node.
		if reason := tracker.exceeded(len(f.visited)); reason != AbortNone {
			f.stats = Stats{Visited: len(f.visited), Elapsed: tracker.elapsed(), Aborted: reason}
			logAbort(f.options.Logger, "bfs", reason, len(f.visited), f.stats.Elapsed)
			return nil
		}

		current := queue[head]
		if current == end {
			f.stats = Stats{Visited: len(f.visited), Elapsed: tracker.elapsed()}
			return grid.backtrace(current)
		}

		currentPoint := grid.point(current)
		grid.state(current).closed = true
		tracker.observe(current, progress(currentPoint, endPoint))

		neighbors = grid.appendNeighbors(neighbors[:0], currentPoint.X, currentPoint.Y, f.options.DiagonalMovement)
		for _, neighbor := range neighbors {
			neighborState := grid.state(neighbor)
			if neighborState.opened {
				continue
			}
			neighborState.opened = true
			neighborState.parent = current
			f.visited.add(grid.point(neighbor))
			queue = append(queue, neighbor)
		}
	}

	f.stats = Stats{Visited: len(f.visited), Elapsed: tracker.elapsed()}
	logUnreachable(f.options.Logger, "bfs", Point{startX, startY}, endPoint, len(f.visited))
	return nil
}
