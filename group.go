package treeed

import "github.com/marat0n/treeed/pkg/async"

// Group composes states and other groups into a tree of change
// notifications. It is a Notifier whose payload is the group itself: a
// subscriber learns that something beneath the group changed, never
// which child or what the new value is.
//
// Adoption happens only through AdoptState, AdoptConditional, and
// AdoptGroup. A group that merely holds a reference to a state or
// another group, without having adopted it, is never re-fired by it.
type Group struct {
	Notifier[*Group]
}

// NewGroup creates an empty Group. Until something is adopted, it only
// fires through Update.
func NewGroup(opts ...Option) *Group {
	g := &Group{}
	g.configure(opts)
	return g
}

// refire returns the subscriber adoption installs on a child: it drops
// the child's payload and announces the group itself.
func refire[T any](g *Group) Callback[T] {
	return func(T) {
		g.Notify(g)
	}
}

// AdoptState creates a State seeded with initial and wires it into g:
// every write to the returned state re-fires g. Subscribers passed as
// first are registered ahead of the adoption edge, so for a given write
// they observe the new value before g's own subscribers run.
//
// This is a free function because Go methods cannot introduce type
// parameters of their own.
func AdoptState[T any](g *Group, initial T, first ...Callback[T]) *State[T] {
	s := New(initial)
	for _, fn := range first {
		s.Subscribe(fn)
	}
	s.Subscribe(refire[T](g))
	return s
}

// AdoptConditional is AdoptState for a ConditionalState.
func AdoptConditional[T comparable](g *Group, initial T, first ...Callback[T]) *ConditionalState[T] {
	c := NewConditional(initial)
	for _, fn := range first {
		c.Subscribe(fn)
	}
	c.Subscribe(refire[T](g))
	return c
}

// AdoptGroup wires child into g: any notification on child, whether
// from its own Update or propagated from something it adopted, re-fires
// g. The child is returned unchanged for fluent assignment.
//
// Propagation depth is unbounded and synchronous: a leaf write unwinds
// through every adopting ancestor on the same call stack.
func (g *Group) AdoptGroup(child *Group) *Group {
	child.Subscribe(refire[*Group](g))
	return child
}

// Update announces the group itself to its subscribers, independent of
// any child state.
func (g *Group) Update() {
	g.Notify(g)
}

// UpdateAsync performs Update eagerly on the calling goroutine and
// returns an already-completed future. A subscriber panic completes the
// future with an error instead of unwinding the caller.
func (g *Group) UpdateAsync() *async.Future[*Group] {
	return async.Complete(func() (*Group, error) {
		g.Update()
		return g, nil
	})
}
