package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- Dispatch tests --

func TestHub_PublishInSubscriptionOrder(t *testing.T) {
	h := NewHub[int]()

	var order []string
	h.Subscribe(func(int) { order = append(order, "A") })
	h.Subscribe(func(int) { order = append(order, "B") })
	h.Subscribe(func(int) { order = append(order, "C") })

	h.Publish(1)
	h.Publish(2)

	assert.Equal(t, []string{"A", "B", "C", "A", "B", "C"}, order)
}

func TestHub_PublishDeliversValue(t *testing.T) {
	h := NewHub[string]()

	var got []string
	h.Subscribe(func(v string) { got = append(got, v) })

	h.Publish("first")
	h.Publish("second")

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestHub_PublishWithNoSubscribers(t *testing.T) {
	h := NewHub[int]()
	assert.NotPanics(t, func() { h.Publish(42) })
}

// -- Subscription tests --

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub[int]()

	countA, countB := 0, 0
	subA := h.Subscribe(func(int) { countA++ })
	h.Subscribe(func(int) { countB++ })

	h.Publish(1)
	h.Unsubscribe(subA)
	h.Publish(2)

	assert.Equal(t, 1, countA)
	assert.Equal(t, 2, countB)
	assert.Equal(t, 1, h.Len())
}

func TestHub_UnsubscribeUnknownIsNoOp(t *testing.T) {
	h := NewHub[int]()
	sub := h.Subscribe(func(int) {})

	h.Unsubscribe(sub)
	assert.NotPanics(t, func() { h.Unsubscribe(sub) })
	assert.NotPanics(t, func() { h.Unsubscribe(nil) })
	assert.Equal(t, 0, h.Len())
}

func TestHub_ResubscribeGetsFreshHandle(t *testing.T) {
	h := NewHub[int]()

	count := 0
	fn := func(int) { count++ }
	first := h.Subscribe(fn)
	h.Unsubscribe(first)
	h.Subscribe(fn)

	h.Unsubscribe(first) // stale handle must not remove the new subscription
	h.Publish(1)

	assert.Equal(t, 1, count)
}
