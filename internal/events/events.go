package events

import (
	"encoding/json"
	"sync"
	"time"
)

// TypeBookingsChanged is published after every successful persisted
// mutation of the booking list.
const TypeBookingsChanged = "bookings.changed"

// Mutation operations carried in a bookings.changed payload.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Event represents a lightweight domain event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// ChangePayload describes which booking changed and how.
type ChangePayload struct {
	Op        string `json:"op"`
	BookingID string `json:"bookingId"`
}

// BookingsChanged builds a bookings.changed event for the given mutation.
func BookingsChanged(op, bookingID string) Event {
	payload, _ := json.Marshal(ChangePayload{Op: op, BookingID: bookingID})
	return Event{Type: TypeBookingsChanged, Payload: payload, CreatedAt: time.Now()}
}

// EventHandler reacts to an event.
type EventHandler func(event Event) error

// EventBus provides in-process pub/sub for events. Delivery is
// synchronous: Publish returns after every subscriber has run.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		_ = handler(event)
	}
}
