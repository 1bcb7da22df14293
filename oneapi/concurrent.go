package oneapi

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var errNilFuture = errors.New("nil future")

// Gather waits for every future and returns the results in argument order,
// whatever order they completed in.
func Gather(ctx context.Context, futures ...*Future) []Result {
	results := make([]Result, len(futures))

	var g errgroup.Group
	for i, f := range futures {
		if f == nil {
			results[i] = Fail(errNilFuture)
			continue
		}
		g.Go(func() error {
			results[i] = f.Await(ctx)
			return nil
		})
	}

	// Await never errors; failures live in the results.
	_ = g.Wait()
	return results
}

// Task is a named future tracked by a Batch.
type Task struct {
	ID     string
	Name   string
	future *Future
}

// TaskResult pairs a Result with the task that produced it.
type TaskResult struct {
	ID     string
	Name   string
	Result Result
}

// Batch collects concurrent fetches and joins them. Add is not safe for
// concurrent use; Wait may be called once all tasks are added.
type Batch struct {
	tasks []Task
}

// NewBatch creates an empty batch
func NewBatch() *Batch {
	return &Batch{}
}

// Add registers a future under name and returns the task id.
func (b *Batch) Add(name string, f *Future) string {
	id := uuid.NewString()
	b.tasks = append(b.tasks, Task{ID: id, Name: name, future: f})
	return id
}

// Len returns the number of tasks in the batch.
func (b *Batch) Len() int {
	return len(b.tasks)
}

// Wait joins every task. Results are returned in the order tasks were added
// and each carries its task's id and name.
func (b *Batch) Wait(ctx context.Context) []TaskResult {
	futures := make([]*Future, len(b.tasks))
	for i, t := range b.tasks {
		futures[i] = t.future
	}

	results := Gather(ctx, futures...)

	out := make([]TaskResult, len(b.tasks))
	for i, t := range b.tasks {
		out[i] = TaskResult{ID: t.ID, Name: t.Name, Result: results[i]}
	}
	return out
}
