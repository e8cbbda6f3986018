package gridpath

import "github.com/pdrpinto/gridpath/internal"

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Node is a grid cell. Its coordinates and walkable flag never change after
// the grid is built; per-search state is kept apart in the grid's scratch.
type Node struct {
	X, Y     int
	walkable bool
}

// Walkable reports whether the cell is not an obstacle.
func (n *Node) Walkable() bool { return n.walkable }

// nodeState is the transient search state of one node. It is valid only
// while generation matches the grid's current generation.
type nodeState struct {
	generation uint32
	g, h, f    float64
	parent     int32
	opened     bool
	closed     bool
	hasH       bool
}

const noParent = -1

// Grid is a rectangular occupancy grid. It owns its nodes and the scratch
// state used by searches, so it is not safe for concurrent searches.
type Grid struct {
	width, height int
	nodes         []Node

	scratch    []nodeState
	generation uint32
}

// NewGrid builds a grid from a row-major matrix where 0 marks a walkable cell
// and any other value an obstacle. A nil matrix yields an all-walkable grid.
func NewGrid(width, height int, matrix [][]int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Width: width, Height: height, Row: -1, Got: len(matrix)}
	}
	if matrix != nil {
		if len(matrix) != height {
			return nil, &ConfigError{Width: width, Height: height, Row: -1, Got: len(matrix)}
		}
		for rowIndex, row := range matrix {
			if len(row) != width {
				return nil, &ConfigError{Width: width, Height: height, Row: rowIndex, Got: len(row)}
			}
		}
	}

	grid := &Grid{
		width:   width,
		height:  height,
		nodes:   make([]Node, width*height),
		scratch: make([]nodeState, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.nodes[y*width+x] = Node{
				X:        x,
				Y:        y,
				walkable: matrix == nil || matrix[y][x] == 0,
			}
		}
	}
	return grid, nil
}

// MustNewGrid is like NewGrid but panics on error.
func MustNewGrid(width, height int, matrix [][]int) *Grid {
	grid, err := NewGrid(width, height, matrix)
	if err != nil {
		panic(err)
	}
	return grid
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// GetNodeAt returns the node at (x, y). Bounds are not checked.
func (g *Grid) GetNodeAt(x, y int) *Node {
	return &g.nodes[y*g.width+x]
}

// IsInside reports whether (x, y) lies on the grid.
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWalkableAt reports whether (x, y) is on the grid and walkable.
func (g *Grid) IsWalkableAt(x, y int) bool {
	return g.IsInside(x, y) && g.nodes[y*g.width+x].walkable
}

// GetNeighbors returns the walkable up, right, down and left neighbours of
// node.
func (g *Grid) GetNeighbors(node *Node) []*Node {
	neighbors := make([]*Node, 0, 4)
	for _, direction := range orthogonalDirections {
		nx, ny := node.X+direction.X, node.Y+direction.Y
		if g.IsWalkableAt(nx, ny) {
			neighbors = append(neighbors, g.GetNodeAt(nx, ny))
		}
	}
	return neighbors
}

// Clone returns a grid with the same obstacles and its own scratch state.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		width:   g.width,
		height:  g.height,
		nodes:   make([]Node, len(g.nodes)),
		scratch: make([]nodeState, len(g.scratch)),
	}
	copy(clone.nodes, g.nodes)
	return clone
}

func (g *Grid) id(x, y int) int32 { return int32(y*g.width + x) }

func (g *Grid) point(id int32) Point {
	node := &g.nodes[id]
	return Point{X: node.X, Y: node.Y}
}

// beginSearch invalidates all scratch state in O(1). The scratch array is
// cleared only when the generation counter wraps.
func (g *Grid) beginSearch() {
	g.generation++
	if g.generation == 0 {
		clear(g.scratch)
		g.generation = 1
	}
}

// state returns the scratch state of id, resetting it to defaults if it was
// last touched by an earlier search.
func (g *Grid) state(id int32) *nodeState {
	st := &g.scratch[id]
	if st.generation != g.generation {
		*st = nodeState{generation: g.generation, parent: noParent}
	}
	return st
}

// backtrace follows parent links from id back to the search start.
func (g *Grid) backtrace(id int32) Path {
	ids := internal.ReconstructPath(id, func(current int32) (int32, bool) {
		parent := g.state(current).parent
		return parent, parent != noParent
	})
	path := make(Path, len(ids))
	for i, nodeID := range ids {
		path[i] = g.point(nodeID)
	}
	return path
}
