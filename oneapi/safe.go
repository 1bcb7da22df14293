package oneapi

import (
	"context"
	"fmt"
)

// Operation is a blocking call that cannot fail with a Go error.
type Operation func(ctx context.Context, req Request) Result

// AsyncOperation starts a call in the background and returns its Future.
type AsyncOperation func(ctx context.Context, req Request) *Future

// Safe wraps fn so that returned errors and panics become failed Results.
// A successful call returns fn's payload unchanged.
func Safe(fn func(context.Context, Request) (any, error)) Operation {
	return func(ctx context.Context, req Request) (res Result) {
		defer func() {
			if r := recover(); r != nil {
				res = Fail(fmt.Errorf("%v", r))
			}
		}()

		data, err := fn(ctx, req)
		if err != nil {
			return Fail(err)
		}
		return Success(data)
	}
}

// SafeAsync is Safe for the concurrent path: each call runs in its own
// goroutine and resolves a Future with the Result.
func SafeAsync(fn func(context.Context, Request) (any, error)) AsyncOperation {
	op := Safe(fn)
	return func(ctx context.Context, req Request) *Future {
		f := newFuture()
		go func() {
			f.resolve(op(ctx, req))
		}()
		return f
	}
}

// Future is the pending Result of an AsyncOperation.
type Future struct {
	done chan struct{}
	res  Result
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a Future that already holds res.
func Resolved(res Result) *Future {
	f := newFuture()
	f.resolve(res)
	return f
}

func (f *Future) resolve(res Result) {
	f.res = res
	close(f.done)
}

// Done is closed once the Result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Result is ready or ctx ends.
// If ctx ends first, the returned Result carries ctx's error.
func (f *Future) Await(ctx context.Context) Result {
	select {
	case <-f.done:
		return f.res
	default:
	}

	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return Fail(ctx.Err())
	}
}
