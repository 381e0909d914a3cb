package concurrency

import (
	"context"
	"sync"
)

// ProcessParallel runs fn over items with at most workers goroutines.
// Results and errors come back index-aligned with the input, so the
// caller can attribute each failure to its item. Items must not share
// mutable state through fn.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	workers int,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 {
		return results, errs
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					errs[i] = ctx.Err()
					continue
				}
				results[i], errs[i] = fn(ctx, i, items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, errs
}
