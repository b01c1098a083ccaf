// Package store owns the canonical booking list and its persisted
// mirror: one JSON array blob in the key-value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"salonbook/internal/events"
	"salonbook/internal/kv"
	"salonbook/internal/metrics"
	"salonbook/internal/models"
)

// BookingsKey is the key-value slot holding the serialized list.
const BookingsKey = "bookings"

// BookingStore is the single source of truth for the booking
// collection. One running instance is the only writer; the mutex only
// protects the in-memory slice against concurrent HTTP readers.
type BookingStore struct {
	kv     kv.Store
	bus    *events.EventBus
	logger *zerolog.Logger

	mu       sync.RWMutex
	bookings []Booking
}

// Booking aliases the shared model so store callers read naturally.
type Booking = models.Booking

// New constructs a store over the given key-value backend. The bus may
// be nil when no observers are interested in change notifications.
func New(backend kv.Store, bus *events.EventBus, logger *zerolog.Logger) *BookingStore {
	return &BookingStore{kv: backend, bus: bus, logger: logger}
}

// Load reads the persisted blob and replaces the in-memory state.
// A missing key or unparseable content is treated as an empty list and
// never surfaced to the caller.
func (s *BookingStore) Load(ctx context.Context) []Booking {
	list := s.fetch(ctx)

	s.mu.Lock()
	s.bookings = list
	s.mu.Unlock()

	return copyBookings(list)
}

// Bookings returns a copy of the current in-memory list.
func (s *BookingStore) Bookings() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookings(s.bookings)
}

// Add appends the booking and persists the full list. The blob is
// re-read first so an append never clobbers records written since the
// last Load.
func (s *BookingStore) Add(ctx context.Context, b Booking) error {
	current := s.fetch(ctx)
	updated := append(current, b)

	if err := s.persist(ctx, updated); err != nil {
		return fmt.Errorf("add booking %s: %w", b.ID, err)
	}

	s.swap(updated)
	s.notify(events.OpAdd, b.ID)
	return nil
}

// Update replaces the record whose id matches. An unknown id leaves
// the list unchanged and returns nil.
func (s *BookingStore) Update(ctx context.Context, b Booking) error {
	s.mu.RLock()
	updated := make([]Booking, len(s.bookings))
	for i, existing := range s.bookings {
		if existing.ID == b.ID {
			updated[i] = b
		} else {
			updated[i] = existing
		}
	}
	s.mu.RUnlock()

	if err := s.persist(ctx, updated); err != nil {
		return fmt.Errorf("update booking %s: %w", b.ID, err)
	}

	s.swap(updated)
	s.notify(events.OpUpdate, b.ID)
	return nil
}

// Delete removes the record whose id matches. Unknown ids are a no-op,
// so deleting twice is the same as deleting once.
func (s *BookingStore) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	updated := make([]Booking, 0, len(s.bookings))
	for _, existing := range s.bookings {
		if existing.ID != id {
			updated = append(updated, existing)
		}
	}
	s.mu.RUnlock()

	if err := s.persist(ctx, updated); err != nil {
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	s.swap(updated)
	s.notify(events.OpDelete, id)
	return nil
}

// fetch reads and parses the persisted blob. Any failure degrades to
// an empty list: read errors are logged, never propagated.
func (s *BookingStore) fetch(ctx context.Context) []Booking {
	blob, err := s.kv.Get(ctx, BookingsKey)
	if errors.Is(err, kv.ErrNotFound) {
		return []Booking{}
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("reading bookings blob failed, treating as empty")
		metrics.IncStoreLoadFailure()
		return []Booking{}
	}

	var list []Booking
	if err := json.Unmarshal([]byte(blob), &list); err != nil {
		s.logger.Error().Err(err).Msg("bookings blob is not a valid JSON array, treating as empty")
		metrics.IncStoreLoadFailure()
		return []Booking{}
	}
	if list == nil {
		list = []Booking{}
	}
	return list
}

func (s *BookingStore) persist(ctx context.Context, list []Booking) error {
	blob, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	if err := s.kv.Set(ctx, BookingsKey, string(blob)); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	return nil
}

func (s *BookingStore) swap(list []Booking) {
	s.mu.Lock()
	s.bookings = list
	s.mu.Unlock()
}

func (s *BookingStore) notify(op, id string) {
	metrics.IncBookingMutation(op)
	if s.bus != nil {
		s.bus.Publish(events.BookingsChanged(op, id))
	}
}

func copyBookings(list []Booking) []Booking {
	out := make([]Booking, len(list))
	copy(out, list)
	return out
}
