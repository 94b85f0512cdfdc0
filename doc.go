// Package treeed provides a hierarchical, push-based value-observation
// primitive: states that notify callbacks on change, composable into a
// tree of groups so that a write anywhere below a group re-fires the
// group itself.
//
// The package revolves around four types:
//
//   - Notifier — an ordered callback registry with synchronous fan-out
//   - State — a mutable value on top of Notifier
//   - ConditionalState — a State with predicate-gated and
//     exact-value-keyed listeners
//   - Group — a Notifier whose payload is itself, assembled into a tree
//     through adoption
//
// Basic Usage:
//
//	name := treeed.New("anonymous")
//	name.Subscribe(func(v string) {
//		fmt.Println("name is now", v)
//	})
//
//	name.Set("alice")     // stores and notifies
//	name.SetSilent("bob") // stores without notifying
//	name.Reupdate()       // re-announces "bob"
//
// Composition:
//
//	form := treeed.NewGroup()
//	email := treeed.AdoptState(form, "")
//	age := treeed.AdoptState(form, 0)
//
//	form.Subscribe(func(*treeed.Group) {
//		fmt.Println("some form field changed")
//	})
//
//	email.Set("a@b.c") // fires email's subscribers, then form's
//	age.Set(42)        // likewise
//
// Groups nest: AdoptGroup chains a child group under a parent, and a
// leaf write re-fires every adopting ancestor, one level at a time, on
// the same call stack. The payload carried upward is always the group
// itself — ancestors learn that something beneath them changed, not
// what.
//
// # Concurrency Model
//
// The engine is single-goroutine and re-entrant by design: no locks
// guard the registries or values, and a subscriber may synchronously
// call Set on the very state that triggered it, producing nested
// dispatch rather than a deadlock. To observe changes from other
// goroutines, attach a Watcher with Watch, which delivers payloads into
// a buffered channel without blocking dispatch.
//
// The *Async operation flavors (SetAsync, ReupdateAsync, UpdateAsync)
// do not defer the mutation: value and dispatch are settled before the
// call returns, and the returned future is already complete. They exist
// so a write can be composed with other deferred work, and so a
// subscriber panic can surface as a failed future instead of unwinding
// the writer.
//
// # Error Handling
//
// Operations either succeed or are no-ops; there is no error taxonomy.
// Subscriber panics are not isolated: during a synchronous dispatch a
// panicking subscriber prevents later-registered subscribers of that
// pass from running and unwinds to the caller.
package treeed
