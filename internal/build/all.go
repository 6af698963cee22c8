package build

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildAll builds several independent schemas concurrently over the same
// registry. Results are returned in the order of rootSets. A failing build
// does not stop the others; only cancellation of ctx skips builds that have
// not started, leaving their result nil. The returned error is the first
// failure.
func (s *Schema) BuildAll(ctx context.Context, rootSets [][]string) ([]*Result, error) {
	results := make([]*Result, len(rootSets))

	var g errgroup.Group

	for i, roots := range rootSets {
		i, roots := i, roots
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := s.Build(roots...)
			results[i] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
