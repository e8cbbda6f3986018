package gridpath

import "fmt"

// jumpRule is the capability a Jump Point Search variant provides.
type jumpRule interface {
	// jump probes from (px, py) through (x, y) and returns the first jump
	// point in that direction.
	jump(x, y, px, py int) (Point, bool)
	// findNeighbors appends the pruned successors of (x, y). parent is nil
	// for the search start.
	findNeighbors(dst []Point, x, y int, parent *Point) []Point
}

type jumpRuleFactory func(grid *Grid, goal Point, iterative bool) jumpRule

// jumpRuleFor selects the variant matching movement. There is no variant for
// DiagonalNever.
func jumpRuleFor(movement DiagonalMovement) jumpRuleFactory {
	switch movement {
	case DiagonalOnlyWhenNoObstacles:
		return newRestrictedRule
	case DiagonalIfAtMostOneObstacle:
		return newCanonicalRule
	}
	panic(fmt.Sprintf("gridpath: no jump point variant for diagonal movement %v", movement))
}

// JumpPointFinder runs Jump Point Search: A* over jump points only, with a
// binary heap as the open list. The variant follows the DiagonalMovement
// option: DiagonalIfAtMostOneObstacle selects the canonical pruning rules and
// DiagonalOnlyWhenNoObstacles the diagonal-restricted ones.
type JumpPointFinder struct {
	options Options
	newRule jumpRuleFactory
	visited VisitedSet
	stats   Stats
}

// NewJumpPointFinder panics if the DiagonalMovement option is DiagonalNever.
func NewJumpPointFinder(options ...Option) *JumpPointFinder {
	searchOptions := applyOptions(options)
	return &JumpPointFinder{
		options: searchOptions,
		newRule: jumpRuleFor(searchOptions.DiagonalMovement),
		visited: make(VisitedSet),
	}
}

func (f *JumpPointFinder) Visited() VisitedSet { return f.visited }
func (f *JumpPointFinder) Stats() Stats        { return f.stats }

// FindPath returns a fully stepped path: the jump points found by the search
// are expanded with ExpandPath.
func (f *JumpPointFinder) FindPath(startX, startY, endX, endY int, grid *Grid) Path {
	clear(f.visited)
	grid.beginSearch()

	startPoint, endPoint := Point{startX, startY}, Point{endX, endY}
	start, end := grid.id(startX, startY), grid.id(endX, endY)
	rule := f.newRule(grid, endPoint, f.options.IterativeJump)
	tracker := newBudget(&f.options, start, progress(startPoint, endPoint))

	openList := NewHeap(func(a, b int32) bool {
		return ranksBefore(grid.state(a), grid.state(b), a, b)
	})
	startState := grid.state(start)
	startState.h = f.heuristic(startPoint, endPoint)
	startState.hasH = true
	startState.f = startState.h
	startState.opened = true
	openList.Push(start)

	neighbors := make([]Point, 0, 8)
	for !openList.Empty() {
		if reason := tracker.exceeded(len(f.visited)); reason != AbortNone {
			f.stats = Stats{Visited: len(f.visited), Elapsed: tracker.elapsed(), Aborted: reason}
			logAbort(f.options.Logger, "jps", reason, len(f.visited), f.stats.Elapsed)
			if tracker.best == start {
				return nil
			}
			return ExpandPath(grid.backtrace(tracker.best))
		}

		node := openList.Pop()
		nodeState := grid.state(node)
		nodeState.closed = true
		nodePoint := grid.point(node)
		f.visited.add(nodePoint)

		if node == end {
			f.stats = Stats{Visited: len(f.visited), Elapsed: tracker.elapsed()}
			return ExpandPath(grid.backtrace(end))
		}
		tracker.observe(node, progress(nodePoint, endPoint))

		neighbors = f.identifySuccessors(grid, rule, openList, node, endPoint, neighbors[:0])
	}

	f.stats = Stats{Visited: len(f.visited), Elapsed: tracker.elapsed()}
	logUnreachable(f.options.Logger, "jps", startPoint, endPoint, len(f.visited))
	return nil
}

func (f *JumpPointFinder) heuristic(p, end Point) float64 {
	return f.options.Weight * f.options.Heuristic(absInt(p.X-end.X), absInt(p.Y-end.Y))
}

// identifySuccessors jumps from node in every pruned direction and opens or
// improves the jump points found. The neighbour buffer is returned for reuse.
func (f *JumpPointFinder) identifySuccessors(
	grid *Grid,
	rule jumpRule,
	openList *Heap[int32],
	node int32,
	end Point,
	neighbors []Point,
) []Point {
	nodeState := grid.state(node)
	nodePoint := grid.point(node)

	var parent *Point
	if nodeState.parent != noParent {
		parentPoint := grid.point(nodeState.parent)
		parent = &parentPoint
	}

	neighbors = rule.findNeighbors(neighbors, nodePoint.X, nodePoint.Y, parent)
	for _, neighbor := range neighbors {
		jumpPoint, ok := rule.jump(neighbor.X, neighbor.Y, nodePoint.X, nodePoint.Y)
		if !ok {
			continue
		}
		jumpID := grid.id(jumpPoint.X, jumpPoint.Y)
		jumpState := grid.state(jumpID)
		if jumpState.closed {
			continue
		}

		// A jump covers a single straight or diagonal run, so the octile
		// distance is its exact length.
		tentativeG := nodeState.g + stepCost(jumpPoint.X-nodePoint.X, jumpPoint.Y-nodePoint.Y, f.options.DiagonalMovement)
		if jumpState.opened && tentativeG >= jumpState.g {
			continue
		}
		jumpState.g = tentativeG
		if !jumpState.hasH {
			jumpState.h = f.heuristic(jumpPoint, end)
			jumpState.hasH = true
		}
		jumpState.f = jumpState.g + jumpState.h
		jumpState.parent = node

		if !jumpState.opened {
			jumpState.opened = true
			openList.Push(jumpID)
		} else {
			openList.UpdateItem(jumpID)
		}
	}
	return neighbors
}

// startDirections is the probe order from a node without a parent.
var startDirections = [8]Point{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// travelDirection returns the unit step from parent to (x, y).
func travelDirection(x, y int, parent *Point) (int, int) {
	return sign(x - parent.X), sign(y - parent.Y)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
