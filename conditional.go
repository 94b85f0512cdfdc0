package treeed

import "github.com/marat0n/treeed/pkg/async"

// ConditionalState is a State with two extra dispatch paths: predicate
// guards registered through When and an exact-value table registered
// through WhenEquals. Both paths run on every Set, independently of the
// plain subscribers and of each other.
type ConditionalState[T comparable] struct {
	State[T]
	exact map[T][]func()
}

// NewConditional creates a ConditionalState seeded with initial.
func NewConditional[T comparable](initial T, opts ...Option) *ConditionalState[T] {
	c := &ConditionalState[T]{
		State: State[T]{value: initial},
		exact: make(map[T][]func()),
	}
	c.configure(opts)
	return c
}

// When registers a subscriber that calls action(v) only when pred(v)
// holds. The underlying subscriber stays registered until Dispose; the
// predicate is re-evaluated on every write.
func (c *ConditionalState[T]) When(pred func(T) bool, action Callback[T]) {
	c.Subscribe(func(v T) {
		if pred(v) {
			action(v)
		}
	})
}

// WhenEquals registers action to run, with no arguments, every time the
// state is set to exactly key. Actions for the same key run in
// registration order.
func (c *ConditionalState[T]) WhenEquals(key T, action func()) {
	c.exact[key] = append(c.exact[key], action)
}

// Set stores v, notifies all subscribers (predicate listeners included),
// then runs the exact-match actions registered for v.
func (c *ConditionalState[T]) Set(v T) {
	c.State.Set(v)
	for _, action := range c.exact[v] {
		action()
	}
}

// SetAsync is the deferred-completion flavor of the conditional Set. It
// shadows State.SetAsync so the exact-match table participates in the
// async path too.
func (c *ConditionalState[T]) SetAsync(v T) *async.Future[T] {
	return async.Complete(func() (T, error) {
		c.Set(v)
		return v, nil
	})
}

// Dispose clears the exact-match table along with the subscriber
// registry.
func (c *ConditionalState[T]) Dispose() {
	c.State.Dispose()
	c.exact = make(map[T][]func())
}
