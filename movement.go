package gridpath

import (
	"fmt"
	"math"
)

// DiagonalMovement decides when a diagonal step is allowed.
type DiagonalMovement int

const (
	// DiagonalOnlyWhenNoObstacles allows a diagonal step only when both
	// orthogonal cells flanking it are walkable. This is the default.
	DiagonalOnlyWhenNoObstacles DiagonalMovement = iota
	// DiagonalIfAtMostOneObstacle allows a diagonal step unless both flanking
	// cells are blocked, so a path never squeezes between two corners.
	DiagonalIfAtMostOneObstacle
	// DiagonalNever restricts movement to the four orthogonal directions.
	DiagonalNever
)

func (m DiagonalMovement) String() string {
	switch m {
	case DiagonalOnlyWhenNoObstacles:
		return "only-when-no-obstacles"
	case DiagonalIfAtMostOneObstacle:
		return "if-at-most-one-obstacle"
	case DiagonalNever:
		return "never"
	default:
		return fmt.Sprintf("DiagonalMovement(%d)", int(m))
	}
}

var (
	orthogonalDirections = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalDirections   = [4]Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// canStepDiagonally reports whether the diagonal step from (x, y) to
// (x+dx, y+dy) is admitted, assuming the target itself is walkable.
func (g *Grid) canStepDiagonally(x, y, dx, dy int, movement DiagonalMovement) bool {
	walkX := g.IsWalkableAt(x+dx, y)
	walkY := g.IsWalkableAt(x, y+dy)
	switch movement {
	case DiagonalOnlyWhenNoObstacles:
		return walkX && walkY
	case DiagonalIfAtMostOneObstacle:
		return walkX || walkY
	default:
		return false
	}
}

// appendNeighbors appends the ids of the cells reachable in one step from
// (x, y): orthogonal ones first, then the admitted diagonals.
func (g *Grid) appendNeighbors(dst []int32, x, y int, movement DiagonalMovement) []int32 {
	for _, direction := range orthogonalDirections {
		nx, ny := x+direction.X, y+direction.Y
		if g.IsWalkableAt(nx, ny) {
			dst = append(dst, g.id(nx, ny))
		}
	}
	if movement == DiagonalNever {
		return dst
	}
	for _, direction := range diagonalDirections {
		nx, ny := x+direction.X, y+direction.Y
		if g.IsWalkableAt(nx, ny) && g.canStepDiagonally(x, y, direction.X, direction.Y, movement) {
			dst = append(dst, g.id(nx, ny))
		}
	}
	return dst
}

// stepCost is the movement cost between two points joined by a straight or
// diagonal run.
func stepCost(dx, dy int, movement DiagonalMovement) float64 {
	dx, dy = absInt(dx), absInt(dy)
	if movement == DiagonalNever {
		return float64(dx + dy)
	}
	if dx > dy {
		return math.Sqrt2*float64(dy) + float64(dx-dy)
	}
	return math.Sqrt2*float64(dx) + float64(dy-dx)
}

// ValidatePath checks that every point of path is walkable, that consecutive
// points are distinct neighbours, and that every diagonal step is admitted by
// movement. An empty path is valid.
func ValidatePath(grid *Grid, path Path, movement DiagonalMovement) error {
	for i, p := range path {
		if !grid.IsWalkableAt(p.X, p.Y) {
			return fmt.Errorf("%w: point %d %v is not walkable", ErrInvalidPath, i, p)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dx, dy := p.X-prev.X, p.Y-prev.Y
		if absInt(dx) > 1 || absInt(dy) > 1 || (dx == 0 && dy == 0) {
			return fmt.Errorf("%w: step %v -> %v is not a single move", ErrInvalidPath, prev, p)
		}
		if dx != 0 && dy != 0 && !grid.canStepDiagonally(prev.X, prev.Y, dx, dy, movement) {
			return fmt.Errorf("%w: diagonal step %v -> %v cuts a corner", ErrInvalidPath, prev, p)
		}
	}
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
