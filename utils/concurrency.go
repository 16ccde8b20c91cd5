package utils

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Concurrency runs do for every index in [0, count) with at most
// weight calls in flight. The first error cancels the context given
// to the pending calls and is returned.
func Concurrency(
	ctx context.Context,
	weight int64,
	count int,
	do func(ctx context.Context, index int) error,
) error {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	sem := semaphore.NewWeighted(weight)
	// Ctx with cancel if error
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	setError := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < count; i++ {
		// Acquire may succeed on a done ctx
		if err := ctx.Err(); err != nil {
			setError(err)
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			setError(err)
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			if err := do(ctx, index); err != nil {
				setError(err)
			}
		}(i)
	}
	// Close all
	wg.Wait()
	return firstErr
}
