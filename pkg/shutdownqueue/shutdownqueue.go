// Package shutdownqueue collects cleanup tasks and drains them in LIFO
// order at process exit.
//
// Components register tasks via Add as they start; main drains the default
// queue once with Shutdown:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	_ = shutdownqueue.Shutdown(ctx)
//
// Tasks run exactly once. Panics are recovered and reported as errors, and
// all task errors are aggregated with errors.Join.
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is a shutdown function. It should honor ctx and return an error if
// it cannot finish in time.
type Task func(ctx context.Context) error

// Queue is a LIFO list of shutdown tasks safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	tasks  []Task
	closed bool
}

func New() *Queue {
	return &Queue{}
}

// Add registers a task. Nil tasks and tasks added after Shutdown has begun
// are dropped.
func (q *Queue) Add(t Task) {
	if t == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.tasks = append(q.tasks, t)
}

// Shutdown drains the queue in reverse registration order. It is
// idempotent; only the first call runs tasks. If ctx expires mid-drain the
// remaining tasks are skipped and the context error is included in the
// aggregate.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()

	if q.closed {
		q.mu.Unlock()

		return nil
	}

	q.closed = true
	tasks := q.tasks
	q.tasks = nil

	q.mu.Unlock()

	var errs []error

	for i := len(tasks) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))

			return errors.Join(errs...)
		default:
		}

		err := runTask(ctx, tasks[i])
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func runTask(ctx context.Context, t Task) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task: %v", r)
		}
	}()

	return t(ctx)
}

var defaultQueue = New()

// Add registers a task with the process-wide default queue.
func Add(t Task) { defaultQueue.Add(t) }

// Shutdown drains the process-wide default queue.
func Shutdown(ctx context.Context) error { return defaultQueue.Shutdown(ctx) }
