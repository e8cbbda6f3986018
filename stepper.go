package gridpath

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Point
	Open      []Point
	Closed    []Point
	Done      bool
	Found     bool
	Aborted   AbortReason
	Path      Path
	StepIndex int
}

// Stepper runs the A* family one expansion at a time, for visualisers and
// debugging. It accepts the same options as NewAStarFinder; use
// WithHeuristic(Zero) for Dijkstra ordering.
type Stepper struct {
	grid    *Grid
	options Options
	search  *astarSearch
}

// NewStepper starts a search from start to goal. The grid's scratch state
// belongs to the stepper until it is done.
func NewStepper(grid *Grid, start, goal Point, options ...Option) *Stepper {
	s := &Stepper{grid: grid, options: applyOptions(options)}
	s.search = newAStarSearch(grid, &s.options, start, goal, make(VisitedSet))
	return s
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	s.search.step()
	return s.snapshot()
}

// Run steps until the search is done.
func (s *Stepper) Run() StepSnapshot {
	for !s.search.step() {
	}
	return s.snapshot()
}

// Stats describes the search so far.
func (s *Stepper) Stats() Stats {
	if !s.search.done {
		return Stats{Visited: len(s.search.visited), Elapsed: s.search.budget.elapsed()}
	}
	return s.search.stats()
}

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Closed:    s.search.visited.Points(),
		Done:      s.search.done,
		Found:     s.search.found,
		Aborted:   s.search.aborted,
		Path:      s.search.path,
		StepIndex: s.search.steps,
	}
	if s.search.current != noParent {
		snapshot.Current = s.grid.point(s.search.current)
	}
	open := make(VisitedSet, len(s.search.open))
	for _, id := range s.search.open {
		open.add(s.grid.point(id))
	}
	snapshot.Open = open.Points()
	return snapshot
}
