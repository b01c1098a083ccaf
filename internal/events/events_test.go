package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := NewEventBus()

	var seen []Event
	bus.Subscribe(TypeBookingsChanged, func(e Event) error {
		seen = append(seen, e)
		return nil
	})

	bus.Publish(BookingsChanged(OpAdd, "42"))

	require.Len(t, seen, 1)
	assert.Equal(t, TypeBookingsChanged, seen[0].Type)
	assert.False(t, seen[0].CreatedAt.IsZero())

	var payload ChangePayload
	require.NoError(t, json.Unmarshal(seen[0].Payload, &payload))
	assert.Equal(t, OpAdd, payload.Op)
	assert.Equal(t, "42", payload.BookingID)
}

func TestEventBus_UnrelatedTypeNotDelivered(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.Subscribe("other.type", func(Event) error {
		called = true
		return nil
	})

	bus.Publish(BookingsChanged(OpDelete, "1"))
	assert.False(t, called)
}

func TestEventBus_AllSubscribersRun(t *testing.T) {
	bus := NewEventBus()

	count := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(TypeBookingsChanged, func(Event) error {
			count++
			return nil
		})
	}

	bus.Publish(BookingsChanged(OpUpdate, "7"))
	assert.Equal(t, 3, count)
}
