package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an operation.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Await blocks until the future completes and returns its result and error.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the future completes or the timeout
// elapses, in which case it returns ErrTimeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has completed without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Complete runs fn synchronously on the calling goroutine and returns an
// already-completed future carrying its result. A panic inside fn is
// recovered and recorded as a *PanicError instead of unwinding the caller.
//
// Use Complete when an operation must take effect eagerly but its outcome
// should compose with other deferred work: by the time Complete returns,
// every side effect of fn has happened, and Await never blocks.
func Complete[T any](fn func() (T, error)) (f *Future[T]) {
	f = &Future[T]{done: make(chan struct{})}

	defer func() {
		if r := recover(); r != nil {
			f.err = &PanicError{Value: r}
		}
		close(f.done)
	}()

	f.result, f.err = fn()
	return f
}

// Resolved returns an already-completed future holding v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{result: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Go runs fn in its own goroutine and returns a future for its result.
// If ctx is already cancelled, fn is never started and the future
// completes with ctx.Err().
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// WaitAll blocks until every future completes and returns their results
// in order, along with the first error encountered.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
