// Package parallel runs independent tasks with bounded concurrency.
package parallel

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrency caps concurrent calls so a large selection does not flood the API server.
const DefaultMaxConcurrency int64 = 4

// Executor runs tasks concurrently, at most maxConcurrency at a time.
type Executor struct {
	maxConcurrency int64
}

// NewExecutor creates an executor. A non-positive maxConcurrency selects DefaultMaxConcurrency.
func NewExecutor(maxConcurrency int64) *Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	return &Executor{maxConcurrency: maxConcurrency}
}

// Task is one unit of work.
type Task func(ctx context.Context) error

// Execute runs every task and returns the first error. The context passed to the
// remaining tasks is cancelled once a task fails.
func (executor *Executor) Execute(ctx context.Context, tasks ...Task) error {
	switch len(tasks) {
	case 0:
		return nil
	case 1:
		return tasks[0](ctx)
	}

	sem := semaphore.NewWeighted(executor.maxConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		group.Go(func() error {
			err := sem.Acquire(groupCtx, 1)
			if err != nil {
				return fmt.Errorf("acquire semaphore: %w", err)
			}

			defer sem.Release(1)

			return task(groupCtx)
		})
	}

	err := group.Wait()
	if err != nil {
		return fmt.Errorf("parallel execution: %w", err)
	}

	return nil
}

// Results collects values from concurrent tasks.
type Results[T any] struct {
	mu     sync.Mutex
	values []T
}

// NewResults creates an empty collector.
func NewResults[T any]() *Results[T] {
	return &Results[T]{}
}

// Add appends a value.
func (results *Results[T]) Add(value T) {
	results.mu.Lock()
	defer results.mu.Unlock()

	results.values = append(results.values, value)
}

// Values returns a copy of the collected values in insertion order.
func (results *Results[T]) Values() []T {
	results.mu.Lock()
	defer results.mu.Unlock()

	return slices.Clone(results.values)
}
