package treeed_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marat0n/treeed"
)

func TestNotifier_SubscribeAndNotify(t *testing.T) {
	t.Parallel()

	t.Run("invokes subscribers in registration order", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		var order []string
		n.Subscribe(func(int) { order = append(order, "first") })
		n.Subscribe(func(int) { order = append(order, "second") })
		n.Subscribe(func(int) { order = append(order, "third") })

		n.Notify(0)
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("passes the payload to every subscriber", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[string]()

		var got []string
		n.Subscribe(func(v string) { got = append(got, v) })
		n.Subscribe(func(v string) { got = append(got, v) })

		n.Notify("hello")
		assert.Equal(t, []string{"hello", "hello"}, got)
	})

	t.Run("duplicate registration means one invocation per entry", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		calls := 0
		count := func(int) { calls++ }
		n.Subscribe(count)
		n.Subscribe(count)

		n.Notify(1)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 2, n.Len())
	})

	t.Run("notify with no subscribers is a no-op", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()
		n.Notify(42)
		assert.Equal(t, 0, n.Len())
	})
}

func TestNotifier_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("removes the first matching entry only", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		calls := 0
		count := func(int) { calls++ }
		n.Subscribe(count)
		n.Subscribe(count)

		n.Unsubscribe(count)
		require.Equal(t, 1, n.Len())

		n.Notify(1)
		assert.Equal(t, 1, calls)
	})

	t.Run("unsubscribed callback is not invoked again", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		calls := 0
		count := func(int) { calls++ }
		n.Subscribe(count)

		n.Notify(1)
		n.Unsubscribe(count)
		n.Notify(2)

		assert.Equal(t, 1, calls)
	})

	t.Run("absent callback is a no-op", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()
		n.Subscribe(func(int) {})

		n.Unsubscribe(func(int) { panic("never registered") })
		assert.Equal(t, 1, n.Len())
	})

	t.Run("nil callback is a no-op", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()
		n.Subscribe(func(int) {})

		n.Unsubscribe(nil)
		assert.Equal(t, 1, n.Len())
	})

	t.Run("does not remove other subscribers", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		var survivorCalls int
		survivor := func(int) { survivorCalls++ }
		removed := func(int) { t.Error("removed subscriber was invoked") }

		n.Subscribe(survivor)
		n.Subscribe(removed)
		n.Unsubscribe(removed)

		n.Notify(1)
		assert.Equal(t, 1, survivorCalls)
	})
}

func TestNotifier_DispatchSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("subscribers added during dispatch are excluded from it", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		lateCalls := 0
		late := func(int) { lateCalls++ }
		n.Subscribe(func(int) { n.Subscribe(late) })

		n.Notify(1)
		require.Equal(t, 0, lateCalls)

		n.Notify(2)
		assert.Equal(t, 1, lateCalls)
	})

	t.Run("removal mid-dispatch leaves the current snapshot intact", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		secondCalls := 0
		second := func(int) { secondCalls++ }
		n.Subscribe(func(int) { n.Unsubscribe(second) })
		n.Subscribe(second)

		// Dispatch iterates over a copy, so the entry removed by the
		// first subscriber still runs this pass but not the next.
		n.Notify(1)
		require.Equal(t, 1, secondCalls)

		n.Notify(2)
		assert.Equal(t, 1, secondCalls)
	})

	t.Run("removal mid-dispatch never shifts a neighbour's turn", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()

		var order []string
		first := func(int) { order = append(order, "first") }
		third := func(int) { order = append(order, "third") }
		n.Subscribe(first)
		n.Subscribe(func(int) {
			order = append(order, "second")
			n.Unsubscribe(first)
		})
		n.Subscribe(third)

		n.Notify(1)
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})
}

func TestNotifier_Dispose(t *testing.T) {
	t.Parallel()

	t.Run("clears the registry", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()
		n.Subscribe(func(int) { t.Error("disposed subscriber was invoked") })
		n.Subscribe(func(int) { t.Error("disposed subscriber was invoked") })

		n.Dispose()
		require.Equal(t, 0, n.Len())

		n.Notify(1)
	})

	t.Run("remains usable after dispose", func(t *testing.T) {
		t.Parallel()
		n := treeed.NewNotifier[int]()
		n.Subscribe(func(int) {})
		n.Dispose()

		calls := 0
		n.Subscribe(func(int) { calls++ })
		n.Notify(1)
		assert.Equal(t, 1, calls)
	})
}

func TestNotifier_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := treeed.NewNotifier[int](treeed.WithLogger(log))
	n.Subscribe(func(int) {})
	n.Notify(1)
	n.Dispose()

	out := buf.String()
	assert.Contains(t, out, "subscriber added")
	assert.Contains(t, out, "notifying subscribers")
	assert.Contains(t, out, "disposed")
}

func TestNotifier_PanicPropagation(t *testing.T) {
	t.Parallel()

	n := treeed.NewNotifier[int]()

	laterCalls := 0
	n.Subscribe(func(int) { panic("subscriber failure") })
	n.Subscribe(func(int) { laterCalls++ })

	// A failing subscriber interrupts the rest of the pass and unwinds
	// to the caller; no isolation between subscribers.
	assert.PanicsWithValue(t, "subscriber failure", func() { n.Notify(1) })
	assert.Equal(t, 0, laterCalls)
}
