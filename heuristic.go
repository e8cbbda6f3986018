package gridpath

import "math"

// Heuristic estimates the remaining cost from the absolute coordinate deltas
// between a cell and the goal.
type Heuristic func(dx, dy int) float64

// Manhattan is admissible for 4-connected movement.
func Manhattan(dx, dy int) float64 {
	return float64(dx + dy)
}

func Euclidean(dx, dy int) float64 {
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// Octile is admissible for 8-connected movement costing 1 orthogonally and
// sqrt(2) diagonally. It equals the exact cost of a straight/diagonal run.
func Octile(dx, dy int) float64 {
	const f = math.Sqrt2 - 1
	if dx < dy {
		return f*float64(dx) + float64(dy)
	}
	return f*float64(dy) + float64(dx)
}

func Chebyshev(dx, dy int) float64 {
	return float64(max(dx, dy))
}

// Zero turns A* into Dijkstra's algorithm.
func Zero(int, int) float64 { return 0 }
