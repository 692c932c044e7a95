package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventItemReported, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		ID:   "evt-1",
		Type: EventItemReported,
	})

	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventItemCollected, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventItemsArchived})

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventItemReported, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("handler blew up")
	})
	dispatcher.Subscribe(EventItemReported, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventItemReported})

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
