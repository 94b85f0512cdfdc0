package treeed

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Watcher bridges notifications out of the engine's single-goroutine
// world into a buffered channel. Delivery is non-blocking: when the
// buffer is full the payload is dropped for that watcher rather than
// stalling the dispatch that produced it.
type Watcher[T any] struct {
	id     string
	ch     chan T
	source *Notifier[T]
	subID  string
	mu     sync.RWMutex
	closed bool
}

// WatchOption configures a Watcher.
type WatchOption func(*watchConfig)

type watchConfig struct {
	bufferSize int
}

// WithBufferSize sets the watcher's channel buffer. A minimum of 1 is
// enforced, since an unbuffered channel would make every delivery block
// the dispatching goroutine.
func WithBufferSize(n int) WatchOption {
	return func(c *watchConfig) {
		c.bufferSize = n
	}
}

// Watch subscribes a channel-backed watcher to the notifier. Cancelling
// ctx closes the receive channel and silences delivery; Close
// additionally removes the watcher's registry entry.
//
// Watch itself must be called from the notifier's owning goroutine, like
// any other registration; the returned channel may then be consumed from
// anywhere.
func (n *Notifier[T]) Watch(ctx context.Context, opts ...WatchOption) *Watcher[T] {
	cfg := watchConfig{bufferSize: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Watcher[T]{
		id:     uuid.New().String(),
		ch:     make(chan T, max(cfg.bufferSize, 1)),
		source: n,
	}
	w.subID = n.subscribe(w.send)
	if n.log != nil {
		n.log.Debug("watcher attached", "watcher_id", w.id, "buffer", cap(w.ch))
	}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			w.close()
		}()
	}

	return w
}

// Receive returns the channel notifications are delivered on. The
// channel is closed once the watcher is.
func (w *Watcher[T]) Receive() <-chan T {
	return w.ch
}

func (w *Watcher[T]) send(v T) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return
	}

	select {
	case w.ch <- v:
	default:
		// Buffer full; the consumer catches up on the next delivery.
	}
}

// Close detaches the watcher from its notifier and closes the receive
// channel. It is idempotent, removes exactly this watcher's subscription
// regardless of how many watchers share the notifier, and, because it
// mutates the registry, must run on the notifier's owning goroutine.
func (w *Watcher[T]) Close() {
	w.close()
	w.source.unsubscribeID(w.subID)
	if w.source.log != nil {
		w.source.log.Debug("watcher detached", "watcher_id", w.id)
	}
}

func (w *Watcher[T]) close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}
