package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishRunsListenersSynchronously(t *testing.T) {
	hub := NewHub()

	var got []Resource
	hub.Listen(func(inv Invalidation) {
		got = append(got, inv.Resource)
	})

	hub.Publish(ResourceEmployees)
	hub.Publish(ResourceHolidays)

	assert.Equal(t, []Resource{ResourceEmployees, ResourceHolidays}, got)
}

func TestHub_Subscribe(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe()
	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Publish(ResourceEmployees)

	select {
	case inv := <-ch:
		assert.Equal(t, ResourceEmployees, inv.Resource)
		assert.False(t, inv.At.IsZero())
	default:
		t.Fatal("expected an invalidation on the subscriber channel")
	}

	cleanup()
	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_FullSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe()
	defer cleanup()

	for i := 0; i < 25; i++ {
		hub.Publish(ResourceRoles)
	}
	require.Len(t, ch, cap(ch))
}
