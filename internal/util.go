package internal

// ReconstructPath rebuilds the path ending at current by following
// predecessor links until a node reports none. The result runs from the
// first node of the chain to current.
func ReconstructPath[NodeType comparable](
	current NodeType,
	predecessor func(NodeType) (NodeType, bool),
) []NodeType {
	path := []NodeType{current}
	for {
		previousNode, exists := predecessor(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Line walks the Bresenham line from (x0, y0) to (x1, y1), both ends
// included, calling visit for every cell.
func Line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
