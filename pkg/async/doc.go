// Package async provides a small generic Future type for composing
// synchronous and asynchronous work behind a single completion handle.
//
// A Future can be obtained three ways: Go starts the supplied function in
// its own goroutine, Complete runs the function eagerly on the calling
// goroutine and hands back an already-finished future, and Resolved wraps
// a plain value. Callers wait with Await, bound the wait with
// AwaitWithTimeout, or poll with IsComplete. WaitAll collects a batch.
//
// The distinction between Go and Complete matters for ordering-sensitive
// code: Complete guarantees that every side effect of the function has
// happened before the future is returned, so issuing further synchronous
// work immediately afterwards observes those effects. Go makes no such
// guarantee.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/marat0n/treeed/pkg/async"
//	)
//
//	func main() {
//	    future := async.Go(context.Background(), func(ctx context.Context) (int, error) {
//	        return expensiveComputation(ctx)
//	    })
//
//	    // do other work …
//	    n, err := future.Await()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(n)
//	}
//
// # Error Handling
//
// Futures carry whatever error the wrapped function returned.
// AwaitWithTimeout returns ErrTimeout when the deadline passes first.
// Complete additionally converts a panic inside the function into a
// *PanicError so the caller's stack is never unwound; IsPanicError
// distinguishes that case.
package async
