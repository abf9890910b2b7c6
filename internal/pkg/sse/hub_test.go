package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe()
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup2()

	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Publish(Event{Event: EventRecordCreated, Data: "payload"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, EventRecordCreated, event.Event)
			assert.Equal(t, "payload", event.Data)
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	ch, cleanup := hub.Subscribe()
	cleanup()
	// Cleanup is safe to call twice.
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)
}

func TestHubPublishNeverBlocks(t *testing.T) {
	t.Parallel()

	hub := NewHub()

	_, cleanup := hub.Subscribe()
	defer cleanup()

	// Nobody drains the channel; publishing past the buffer must not hang.
	for i := 0; i < 100; i++ {
		hub.Publish(Event{Event: EventCodeAssigned, Data: i})
	}

	require.Equal(t, 1, hub.SubscriberCount())
}
