package gridpath

import "github.com/pdrpinto/gridpath/internal"

// Path is an ordered list of cells from start to end inclusive. An empty path
// means no path.
type Path []Point

// Cost returns the movement cost of the path, treating each segment as a
// straight or diagonal run. It is exact for fully stepped paths and for jump
// point paths alike.
func (p Path) Cost() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += stepCost(p[i].X-p[i-1].X, p[i].Y-p[i-1].Y, DiagonalOnlyWhenNoObstacles)
	}
	return total
}

// Interpolate returns the Bresenham line from (x0, y0) to (x1, y1), both ends
// included.
func Interpolate(x0, y0, x1, y1 int) Path {
	line := make(Path, 0, max(absInt(x1-x0), absInt(y1-y0))+1)
	internal.Line(x0, y0, x1, y1, func(x, y int) {
		line = append(line, Point{X: x, Y: y})
	})
	return line
}

// ExpandPath turns a sparse path of waypoints into a fully stepped one by
// interpolating every consecutive pair.
func ExpandPath(path Path) Path {
	if len(path) < 2 {
		return path
	}

	expanded := make(Path, 0, len(path))
	for i := 0; i < len(path)-1; i++ {
		segment := Interpolate(path[i].X, path[i].Y, path[i+1].X, path[i+1].Y)
		expanded = append(expanded, segment[:len(segment)-1]...)
	}
	return append(expanded, path[len(path)-1])
}
