package gridpath

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Finder searches a grid for a path between two cells.
//
// FindPath mutates the grid's scratch state, so a Grid must not be shared by
// concurrent FindPath calls. The start and end coordinates are not bounds
// checked.
type Finder interface {
	FindPath(startX, startY, endX, endY int, grid *Grid) Path
	// Visited returns the cells visited by the last FindPath call. The set is
	// owned by the finder and reused by the next call.
	Visited() VisitedSet
	// Stats describes the last FindPath call.
	Stats() Stats
}

// VisitedSet is a set of cell keys.
type VisitedSet map[Point]struct{}

func (s VisitedSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s VisitedSet) Len() int { return len(s) }

// Points returns the members ordered by row, then column.
func (s VisitedSet) Points() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}

func (s VisitedSet) add(p Point) { s[p] = struct{}{} }

// AbortReason tells why a search stopped before reaching its goal.
type AbortReason int

const (
	AbortNone AbortReason = iota
	AbortVisitedLimit
	AbortTimeLimit
	AbortStalled
)

func (r AbortReason) String() string {
	switch r {
	case AbortNone:
		return "none"
	case AbortVisitedLimit:
		return "visited-limit"
	case AbortTimeLimit:
		return "time-limit"
	case AbortStalled:
		return "stalled"
	default:
		return fmt.Sprintf("AbortReason(%d)", int(r))
	}
}

// Stats describes one FindPath call.
type Stats struct {
	Visited int
	Elapsed time.Duration
	Aborted AbortReason
}

// Options defines parameters shared by the finders.
type Options struct {
	Heuristic        Heuristic
	DiagonalMovement DiagonalMovement
	// Weight multiplies the heuristic. Values above 1 trade optimality for
	// fewer expansions.
	Weight float64

	// MaxVisited, MaxDuration and MaxStall bound a search. Zero disables a
	// bound. MaxStall counts consecutive expansions that bring no node
	// closer to the goal.
	MaxVisited  int
	MaxDuration time.Duration
	MaxStall    int

	// IterativeJump makes Jump Point Search probe with loops instead of
	// recursion.
	IterativeJump bool

	Logger *slog.Logger

	now func() time.Time
}

// Option is a function that modifies Options.
type Option func(*Options)

func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

func WithDiagonalMovement(movement DiagonalMovement) Option {
	return func(options *Options) { options.DiagonalMovement = movement }
}

func WithWeight(weight float64) Option {
	return func(options *Options) { options.Weight = weight }
}

// WithMaxVisited aborts a search once it has visited limit cells.
func WithMaxVisited(limit int) Option {
	return func(options *Options) { options.MaxVisited = limit }
}

// WithMaxDuration aborts a search that runs longer than limit.
func WithMaxDuration(limit time.Duration) Option {
	return func(options *Options) { options.MaxDuration = limit }
}

// WithMaxStall aborts a search after iterations expansions in a row fail to
// get closer to the goal.
func WithMaxStall(iterations int) Option {
	return func(options *Options) { options.MaxStall = iterations }
}

func WithIterativeJump() Option {
	return func(options *Options) { options.IterativeJump = true }
}

func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	// --- Apply options ---
	searchOptions := Options{
		Heuristic:        Octile,
		DiagonalMovement: DiagonalOnlyWhenNoObstacles,
		Weight:           1,
		now:              time.Now,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Octile
	}
	if searchOptions.Weight <= 0 {
		searchOptions.Weight = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = discardLogger
	}
	return searchOptions
}

// budget tracks the resource bounds of one search.
type budget struct {
	options *Options
	began   time.Time

	best         int32
	bestDistance float64
	stalled      int
}

func newBudget(options *Options, start int32, startDistance float64) budget {
	return budget{
		options:      options,
		began:        options.now(),
		best:         start,
		bestDistance: startDistance,
	}
}

// exceeded is checked once per outer iteration.
func (b *budget) exceeded(visited int) AbortReason {
	switch {
	case b.options.MaxVisited > 0 && visited >= b.options.MaxVisited:
		return AbortVisitedLimit
	case b.options.MaxDuration > 0 && b.elapsed() > b.options.MaxDuration:
		return AbortTimeLimit
	case b.options.MaxStall > 0 && b.stalled >= b.options.MaxStall:
		return AbortStalled
	}
	return AbortNone
}

// observe records an expanded node and its distance to the goal.
func (b *budget) observe(id int32, distance float64) {
	if distance < b.bestDistance {
		b.best, b.bestDistance = id, distance
		b.stalled = 0
		return
	}
	b.stalled++
}

func (b *budget) elapsed() time.Duration { return b.options.now().Sub(b.began) }

// progress measures closeness to the goal independently of the ranking
// heuristic, so searches with a zero heuristic still report partial paths.
func progress(from, to Point) float64 {
	return Octile(absInt(from.X-to.X), absInt(from.Y-to.Y))
}

// ranksBefore is the total order of open nodes shared by every finder: lower
// f, then lower h, then lower id.
func ranksBefore(a, b *nodeState, idA, idB int32) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return idA < idB
}
