package eventbus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createdEvent struct {
	name string
}

type updatedEvent struct {
	name string
}

func newTestBus() EventBus {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewEventPublisher(log)
}

func TestPublisher_DispatchesToMatchingHandler(t *testing.T) {
	t.Parallel()
	bus := newTestBus()

	var got []string
	bus.Subscribe(func(e *createdEvent) {
		got = append(got, e.name)
	})
	bus.Subscribe(func(e *updatedEvent) {
		t.Error("updated handler should not fire for created event")
	})

	bus.Publish(&createdEvent{name: "ada"})
	bus.Publish(&createdEvent{name: "grace"})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"ada", "grace"}, got)
}

func TestPublisher_NoMatchingSubscribersIsSilent(t *testing.T) {
	t.Parallel()
	bus := newTestBus()

	bus.Subscribe(func(e *createdEvent) {
		t.Error("should not be called")
	})

	// Different event type; nothing should fire and nothing should panic.
	bus.Publish(&updatedEvent{name: "x"})
}

func TestPublisher_RecoversFromPanickingHandler(t *testing.T) {
	t.Parallel()
	bus := newTestBus()

	called := false
	bus.Subscribe(func(e *createdEvent) {
		panic("boom")
	})
	bus.Subscribe(func(e *createdEvent) {
		called = true
	})

	bus.Publish(&createdEvent{name: "ada"})
	assert.True(t, called, "second handler should still run after the first panics")
}

func TestPublisher_Unsubscribe(t *testing.T) {
	t.Parallel()
	bus := newTestBus()

	calls := 0
	handler := func(e *createdEvent) { calls++ }
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Publish(&createdEvent{})
	bus.Unsubscribe(handler)
	bus.Publish(&createdEvent{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.SubscribersCount())
}

func TestPublisher_Clear(t *testing.T) {
	t.Parallel()
	bus := newTestBus()

	bus.Subscribe(func(e *createdEvent) {})
	bus.Subscribe(func(e *updatedEvent) {})
	require.Equal(t, 2, bus.SubscribersCount())

	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}
