// Package gridpath provides path finding over 2-D occupancy grids.
//
// A Grid is built once from a row-major matrix (0 walkable, anything else
// blocked) and reused across searches. Several interchangeable finders are
// available:
//
//   - AStarFinder: A* with an admissible heuristic (octile by default).
//   - NewDijkstraFinder: A* with the zero heuristic.
//   - BreadthFirstFinder: level-order search, shortest by edge count.
//   - BestFirstFinder: greedy descent on the heuristic, resource bounded.
//   - JumpPointFinder: Jump Point Search, expanding only jump points.
//
// Every finder returns a Path from start to end inclusive, or an empty Path
// when the goal is unreachable or a resource bound aborted the search.
//
// Diagonal steps never cut corners: by default a diagonal move needs both
// flanking orthogonal cells to be walkable (see DiagonalMovement).
//
// A Grid carries per-search scratch state, so a Grid must not be searched by
// more than one goroutine at a time. SolveAll runs batches of queries
// concurrently on private clones.
package gridpath
