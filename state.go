package treeed

import "github.com/marat0n/treeed/pkg/async"

// State holds a single mutable value and notifies its subscribers on
// every non-silent write. Subscribers always observe the value already
// stored, so a callback reading back through Get sees what it was
// handed.
//
// Like the Notifier it embeds, a State belongs to one goroutine.
// Callbacks may re-enter Set/SetSilent on the same State; the nested
// dispatch runs to completion before the outer one resumes.
type State[T any] struct {
	Notifier[T]
	value T
}

// New creates a State seeded with initial.
func New[T any](initial T, opts ...Option) *State[T] {
	s := &State[T]{value: initial}
	s.configure(opts)
	return s
}

// Get returns the current value without side effects.
func (s *State[T]) Get() T {
	return s.value
}

// Set stores v and notifies all subscribers with it.
func (s *State[T]) Set(v T) {
	s.value = v
	s.Notify(v)
}

// SetSilent stores v without notifying anyone. Useful for updating
// state from inside a subscriber without starting another dispatch.
func (s *State[T]) SetSilent(v T) {
	s.value = v
}

// Reupdate re-announces the current value to all subscribers without
// changing it, e.g. to bring freshly added subscribers up to date.
func (s *State[T]) Reupdate() {
	s.Notify(s.value)
}

// SetAsync performs Set eagerly on the calling goroutine and returns an
// already-completed future carrying the stored value. The mutation and
// the full dispatch happen before SetAsync returns; the future exists so
// the write composes with other deferred work. A subscriber panic is
// captured as the future's error instead of unwinding the caller.
func (s *State[T]) SetAsync(v T) *async.Future[T] {
	return async.Complete(func() (T, error) {
		s.Set(v)
		return v, nil
	})
}

// ReupdateAsync is the deferred-completion flavor of Reupdate, with the
// same eager-dispatch contract as SetAsync.
func (s *State[T]) ReupdateAsync() *async.Future[T] {
	return async.Complete(func() (T, error) {
		s.Reupdate()
		return s.value, nil
	})
}
