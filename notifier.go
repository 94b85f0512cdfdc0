package treeed

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/google/uuid"
)

// Callback receives the payload of a notification.
type Callback[T any] func(T)

// subscription pairs a callback with a stable id so internal consumers
// (watchers, adoption edges) can detach their exact entry even when
// several registered callbacks share a code pointer.
type subscription[T any] struct {
	id string
	fn Callback[T]
}

// Notifier owns an ordered registry of callbacks and fans a payload out
// to all of them. Registration order is preserved and duplicates are
// permitted: subscribing the same callback twice means two invocations
// per notification.
//
// A Notifier is not safe for concurrent use. The engine is built for a
// single goroutine with re-entrant dispatch: a callback may freely call
// back into the Notifier (or the State built on it) that triggered it,
// which recurses rather than deadlocks. Use Watch to hand notifications
// to other goroutines.
type Notifier[T any] struct {
	subs []subscription[T]
	log  *slog.Logger
}

// NewNotifier creates an empty Notifier.
func NewNotifier[T any](opts ...Option) *Notifier[T] {
	n := &Notifier[T]{}
	n.configure(opts)
	return n
}

func (n *Notifier[T]) configure(opts []Option) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	n.log = cfg.log
}

// Subscribe appends fn to the registry. It never deduplicates.
func (n *Notifier[T]) Subscribe(fn Callback[T]) {
	n.subscribe(fn)
}

func (n *Notifier[T]) subscribe(fn Callback[T]) string {
	id := uuid.New().String()
	n.subs = append(n.subs, subscription[T]{id: id, fn: fn})
	if n.log != nil {
		n.log.Debug("subscriber added", "subscription_id", id, "subscribers", len(n.subs))
	}
	return id
}

// Unsubscribe removes the first registered callback whose underlying
// function equals fn, comparing by code pointer. Removing a callback
// that was never registered is a no-op.
//
// Distinct closures created from the same function literal share a code
// pointer and therefore match each other; with duplicates registered,
// only the earliest entry is removed per call.
func (n *Notifier[T]) Unsubscribe(fn Callback[T]) {
	if fn == nil {
		return
	}
	ptr := reflect.ValueOf(fn).Pointer()
	for i, sub := range n.subs {
		if reflect.ValueOf(sub.fn).Pointer() == ptr {
			n.removeAt(i)
			return
		}
	}
}

func (n *Notifier[T]) unsubscribeID(id string) {
	for i, sub := range n.subs {
		if sub.id == id {
			n.removeAt(i)
			return
		}
	}
}

func (n *Notifier[T]) removeAt(i int) {
	id := n.subs[i].id
	n.subs = append(n.subs[:i], n.subs[i+1:]...)
	if n.log != nil {
		n.log.Debug("subscriber removed", "subscription_id", id, "subscribers", len(n.subs))
	}
}

// Notify invokes every currently registered callback, in registration
// order, with payload. Dispatch iterates over a copy of the registry
// taken when Notify begins: callbacks subscribed during dispatch are not
// invoked until the next notification, and callbacks removed mid-dispatch
// cannot shift their neighbours' turns.
//
// A panicking callback is not recovered; the panic interrupts the
// remaining callbacks of that dispatch and unwinds to the caller.
func (n *Notifier[T]) Notify(payload T) {
	if len(n.subs) == 0 {
		return
	}
	if n.log != nil {
		n.log.Debug("notifying subscribers", "subscribers", len(n.subs))
	}
	for _, sub := range slices.Clone(n.subs) {
		sub.fn(payload)
	}
}

// Dispose clears the registry. The Notifier remains usable: new
// subscriptions take effect normally. A dispatch already in flight keeps
// its snapshot and is unaffected.
func (n *Notifier[T]) Dispose() {
	n.subs = nil
	if n.log != nil {
		n.log.Debug("disposed")
	}
}

// Len returns the number of registered callbacks.
func (n *Notifier[T]) Len() int {
	return len(n.subs)
}
