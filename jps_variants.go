package gridpath

// canonicalRule implements the classic Jump Point Search pruning. Diagonal
// steps are allowed unless both flanking cells are blocked.
type canonicalRule struct {
	grid      *Grid
	goal      Point
	iterative bool
}

func newCanonicalRule(grid *Grid, goal Point, iterative bool) jumpRule {
	return &canonicalRule{grid: grid, goal: goal, iterative: iterative}
}

func (r *canonicalRule) jump(x, y, px, py int) (Point, bool) {
	dx, dy := x-px, y-py
	switch {
	case !r.iterative:
		return r.jumpRecursive(x, y, px, py)
	case dx != 0 && dy != 0:
		return r.jumpDiagonal(x, y, dx, dy)
	default:
		return r.jumpStraight(x, y, dx, dy)
	}
}

func (r *canonicalRule) jumpRecursive(x, y, px, py int) (Point, bool) {
	g := r.grid
	if !g.IsWalkableAt(x, y) {
		return Point{}, false
	}
	if x == r.goal.X && y == r.goal.Y {
		return Point{x, y}, true
	}

	dx, dy := x-px, y-py
	if dx != 0 && dy != 0 {
		if r.forcedDiagonal(x, y, dx, dy) {
			return Point{x, y}, true
		}
		// a diagonal run stops where a straight run would find something
		if _, ok := r.jumpRecursive(x+dx, y, x, y); ok {
			return Point{x, y}, true
		}
		if _, ok := r.jumpRecursive(x, y+dy, x, y); ok {
			return Point{x, y}, true
		}
	} else if r.forcedStraight(x, y, dx, dy) {
		return Point{x, y}, true
	}

	if g.IsWalkableAt(x+dx, y) || g.IsWalkableAt(x, y+dy) {
		return r.jumpRecursive(x+dx, y+dy, x, y)
	}
	return Point{}, false
}

func (r *canonicalRule) jumpStraight(x, y, dx, dy int) (Point, bool) {
	for r.grid.IsWalkableAt(x, y) {
		if (x == r.goal.X && y == r.goal.Y) || r.forcedStraight(x, y, dx, dy) {
			return Point{x, y}, true
		}
		x, y = x+dx, y+dy
	}
	return Point{}, false
}

func (r *canonicalRule) jumpDiagonal(x, y, dx, dy int) (Point, bool) {
	g := r.grid
	for g.IsWalkableAt(x, y) {
		if (x == r.goal.X && y == r.goal.Y) || r.forcedDiagonal(x, y, dx, dy) {
			return Point{x, y}, true
		}
		if _, ok := r.jumpStraight(x+dx, y, dx, 0); ok {
			return Point{x, y}, true
		}
		if _, ok := r.jumpStraight(x, y+dy, 0, dy); ok {
			return Point{x, y}, true
		}
		if !g.IsWalkableAt(x+dx, y) && !g.IsWalkableAt(x, y+dy) {
			break
		}
		x, y = x+dx, y+dy
	}
	return Point{}, false
}

// forcedStraight reports a forced neighbour: an obstacle beside (x, y) with
// an open cell beyond it in the travel direction.
func (r *canonicalRule) forcedStraight(x, y, dx, dy int) bool {
	g := r.grid
	if dx != 0 {
		return (g.IsWalkableAt(x+dx, y+1) && !g.IsWalkableAt(x, y+1)) ||
			(g.IsWalkableAt(x+dx, y-1) && !g.IsWalkableAt(x, y-1))
	}
	return (g.IsWalkableAt(x+1, y+dy) && !g.IsWalkableAt(x+1, y)) ||
		(g.IsWalkableAt(x-1, y+dy) && !g.IsWalkableAt(x-1, y))
}

func (r *canonicalRule) forcedDiagonal(x, y, dx, dy int) bool {
	g := r.grid
	return (g.IsWalkableAt(x-dx, y+dy) && !g.IsWalkableAt(x-dx, y)) ||
		(g.IsWalkableAt(x+dx, y-dy) && !g.IsWalkableAt(x, y-dy))
}

func (r *canonicalRule) findNeighbors(dst []Point, x, y int, parent *Point) []Point {
	g := r.grid
	if parent == nil {
		for _, d := range startDirections {
			nx, ny := x+d.X, y+d.Y
			if !g.IsWalkableAt(nx, ny) {
				continue
			}
			if d.X != 0 && d.Y != 0 && !g.IsWalkableAt(nx, y) && !g.IsWalkableAt(x, ny) {
				continue
			}
			dst = append(dst, Point{nx, ny})
		}
		return dst
	}

	dx, dy := travelDirection(x, y, parent)
	switch {
	case dx != 0 && dy != 0:
		walkY := g.IsWalkableAt(x, y+dy)
		walkX := g.IsWalkableAt(x+dx, y)
		if walkY {
			dst = append(dst, Point{x, y + dy})
		}
		if walkX {
			dst = append(dst, Point{x + dx, y})
		}
		if (walkX || walkY) && g.IsWalkableAt(x+dx, y+dy) {
			dst = append(dst, Point{x + dx, y + dy})
		}
		if !g.IsWalkableAt(x-dx, y) && walkY {
			dst = append(dst, Point{x - dx, y + dy})
		}
		if !g.IsWalkableAt(x, y-dy) && walkX {
			dst = append(dst, Point{x + dx, y - dy})
		}
	case dx != 0:
		if g.IsWalkableAt(x+dx, y) {
			dst = append(dst, Point{x + dx, y})
			if !g.IsWalkableAt(x, y+1) {
				dst = append(dst, Point{x + dx, y + 1})
			}
			if !g.IsWalkableAt(x, y-1) {
				dst = append(dst, Point{x + dx, y - 1})
			}
		}
	default:
		if g.IsWalkableAt(x, y+dy) {
			dst = append(dst, Point{x, y + dy})
			if !g.IsWalkableAt(x+1, y) {
				dst = append(dst, Point{x + 1, y + dy})
			}
			if !g.IsWalkableAt(x-1, y) {
				dst = append(dst, Point{x - 1, y + dy})
			}
		}
	}
	return dst
}

// restrictedRule allows a diagonal step only when neither flanking cell is
// blocked. Diagonal runs have no forced neighbours under that rule; straight
// runs stop where an obstacle beside the previous cell ends.
type restrictedRule struct {
	grid      *Grid
	goal      Point
	iterative bool
}

func newRestrictedRule(grid *Grid, goal Point, iterative bool) jumpRule {
	return &restrictedRule{grid: grid, goal: goal, iterative: iterative}
}

func (r *restrictedRule) jump(x, y, px, py int) (Point, bool) {
	dx, dy := x-px, y-py
	switch {
	case !r.iterative:
		return r.jumpRecursive(x, y, px, py)
	case dx != 0 && dy != 0:
		return r.jumpDiagonal(x, y, dx, dy)
	default:
		return r.jumpStraight(x, y, dx, dy)
	}
}

func (r *restrictedRule) jumpRecursive(x, y, px, py int) (Point, bool) {
	g := r.grid
	if !g.IsWalkableAt(x, y) {
		return Point{}, false
	}
	if x == r.goal.X && y == r.goal.Y {
		return Point{x, y}, true
	}

	dx, dy := x-px, y-py
	if dx != 0 && dy != 0 {
		if _, ok := r.jumpRecursive(x+dx, y, x, y); ok {
			return Point{x, y}, true
		}
		if _, ok := r.jumpRecursive(x, y+dy, x, y); ok {
			return Point{x, y}, true
		}
	} else if r.forcedStraight(x, y, dx, dy) {
		return Point{x, y}, true
	}

	if g.IsWalkableAt(x+dx, y) && g.IsWalkableAt(x, y+dy) {
		return r.jumpRecursive(x+dx, y+dy, x, y)
	}
	return Point{}, false
}

func (r *restrictedRule) jumpStraight(x, y, dx, dy int) (Point, bool) {
	for r.grid.IsWalkableAt(x, y) {
		if (x == r.goal.X && y == r.goal.Y) || r.forcedStraight(x, y, dx, dy) {
			return Point{x, y}, true
		}
		x, y = x+dx, y+dy
	}
	return Point{}, false
}

func (r *restrictedRule) jumpDiagonal(x, y, dx, dy int) (Point, bool) {
	g := r.grid
	for g.IsWalkableAt(x, y) {
		if x == r.goal.X && y == r.goal.Y {
			return Point{x, y}, true
		}
		if _, ok := r.jumpStraight(x+dx, y, dx, 0); ok {
			return Point{x, y}, true
		}
		if _, ok := r.jumpStraight(x, y+dy, 0, dy); ok {
			return Point{x, y}, true
		}
		if !g.IsWalkableAt(x+dx, y) || !g.IsWalkableAt(x, y+dy) {
			break
		}
		x, y = x+dx, y+dy
	}
	return Point{}, false
}

// forcedStraight reports a side cell that opens up at (x, y) after being
// blocked beside the previous cell.
func (r *restrictedRule) forcedStraight(x, y, dx, dy int) bool {
	g := r.grid
	if dx != 0 {
		return (g.IsWalkableAt(x, y-1) && !g.IsWalkableAt(x-dx, y-1)) ||
			(g.IsWalkableAt(x, y+1) && !g.IsWalkableAt(x-dx, y+1))
	}
	return (g.IsWalkableAt(x-1, y) && !g.IsWalkableAt(x-1, y-dy)) ||
		(g.IsWalkableAt(x+1, y) && !g.IsWalkableAt(x+1, y-dy))
}

func (r *restrictedRule) findNeighbors(dst []Point, x, y int, parent *Point) []Point {
	g := r.grid
	if parent == nil {
		for _, d := range startDirections {
			nx, ny := x+d.X, y+d.Y
			if !g.IsWalkableAt(nx, ny) {
				continue
			}
			if d.X != 0 && d.Y != 0 && (!g.IsWalkableAt(nx, y) || !g.IsWalkableAt(x, ny)) {
				continue
			}
			dst = append(dst, Point{nx, ny})
		}
		return dst
	}

	dx, dy := travelDirection(x, y, parent)
	switch {
	case dx != 0 && dy != 0:
		walkY := g.IsWalkableAt(x, y+dy)
		walkX := g.IsWalkableAt(x+dx, y)
		if walkY {
			dst = append(dst, Point{x, y + dy})
		}
		if walkX {
			dst = append(dst, Point{x + dx, y})
		}
		if walkX && walkY && g.IsWalkableAt(x+dx, y+dy) {
			dst = append(dst, Point{x + dx, y + dy})
		}
	case dx != 0:
		next := g.IsWalkableAt(x+dx, y)
		below := g.IsWalkableAt(x, y+1)
		above := g.IsWalkableAt(x, y-1)
		if next {
			dst = append(dst, Point{x + dx, y})
			if below {
				dst = append(dst, Point{x + dx, y + 1})
			}
			if above {
				dst = append(dst, Point{x + dx, y - 1})
			}
		}
		if below {
			dst = append(dst, Point{x, y + 1})
		}
		if above {
			dst = append(dst, Point{x, y - 1})
		}
	default:
		next := g.IsWalkableAt(x, y+dy)
		right := g.IsWalkableAt(x+1, y)
		left := g.IsWalkableAt(x-1, y)
		if next {
			dst = append(dst, Point{x, y + dy})
			if right {
				dst = append(dst, Point{x + 1, y + dy})
			}
			if left {
				dst = append(dst, Point{x - 1, y + dy})
			}
		}
		if right {
			dst = append(dst, Point{x + 1, y})
		}
		if left {
			dst = append(dst, Point{x - 1, y})
		}
	}
	return dst
}
