package gridpath

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Query is one path request of a batch.
type Query struct {
	Start Point
	Goal  Point
}

// Result is the outcome of one Query.
type Result struct {
	Query Query
	Path  Path
	Cost  float64
	Stats Stats
}

// PoolOptions defines parameters for SolveAll.
type PoolOptions struct {
	NumberOfWorkers int
	Logger          *slog.Logger
}

// PoolOption is a function that modifies PoolOptions.
type PoolOption func(*PoolOptions)

// WithWorkers specifies how many goroutines solve queries.
func WithWorkers(numberOfWorkers int) PoolOption {
	return func(options *PoolOptions) { options.NumberOfWorkers = numberOfWorkers }
}

func WithPoolLogger(logger *slog.Logger) PoolOption {
	return func(options *PoolOptions) { options.Logger = logger }
}

// SolveAll answers every query against grid. Each worker searches its own
// clone of grid with its own finder from newFinder, so searches never share
// scratch state. Results are in query order.
//
// Cancelling ctx stops workers from starting new queries; a search already
// running completes first.
func SolveAll(
	ctx context.Context,
	grid *Grid,
	queries []Query,
	newFinder func() Finder,
	options ...PoolOption,
) ([]Result, error) {
	// --- Apply options ---
	poolOptions := PoolOptions{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&poolOptions)
	}
	if poolOptions.NumberOfWorkers < 1 {
		poolOptions.NumberOfWorkers = 1
	}
	if poolOptions.Logger == nil {
		poolOptions.Logger = discardLogger
	}

	for i, query := range queries {
		for _, p := range [2]Point{query.Start, query.Goal} {
			if !grid.IsInside(p.X, p.Y) {
				return nil, fmt.Errorf("query %d: %v: %w", i, p, ErrOutOfBounds)
			}
		}
	}

	results := make([]Result, len(queries))
	taskChannel := make(chan int)
	group, groupContext := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(taskChannel)
		for i := range queries {
			select {
			case <-groupContext.Done():
				return groupContext.Err()
			case taskChannel <- i:
			}
		}
		return nil
	})

	// --- Start worker pool ---
	for worker := 0; worker < min(poolOptions.NumberOfWorkers, max(len(queries), 1)); worker++ {
		group.Go(func() error {
			workerGrid := grid.Clone()
			finder := newFinder()
			for i := range taskChannel {
				query := queries[i]
				path := finder.FindPath(query.Start.X, query.Start.Y, query.Goal.X, query.Goal.Y, workerGrid)
				results[i] = Result{
					Query: query,
					Path:  path,
					Cost:  path.Cost(),
					Stats: finder.Stats(),
				}
				poolOptions.Logger.Debug("query solved",
					"worker", worker,
					"query", i,
					"found", len(path) > 0,
					"visited", results[i].Stats.Visited,
				)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
