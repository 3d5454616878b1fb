package convert

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"nrql2dql/internal/domain"
)

// ConvertAll converts queries concurrently and returns results in
// input order, one per query. workers bounds the fan-out; zero or
// negative means GOMAXPROCS. The only error is context cancellation:
// individual queries cannot fail.
func (c *Converter) ConvertAll(ctx context.Context, queries []string, workers int) ([]domain.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]domain.Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range queries {
		i := i
		query := queries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.Convert(query)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("convert batch: %w", err)
	}
	return results, nil
}
