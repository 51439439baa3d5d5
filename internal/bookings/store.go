package bookings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/store"
)

// backend is the slice of Service the store depends on.
type backend interface {
	List(ctx context.Context) ([]Booking, error)
	Create(ctx context.Context, req CreateRequest) (Booking, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Booking, error)
	Delete(ctx context.Context, id string) error
}

// Store caches the last-fetched booking collection. Mutations apply to the
// cache only after the remote call succeeds; failures leave it untouched.
type Store struct {
	mu      sync.Mutex
	service backend
	items   []Booking
	flags   store.Flags
	gate    store.FetchGate
	logger  *slog.Logger
}

// NewStore creates a booking store backed by the given service.
func NewStore(log *slog.Logger, service *Service) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		service: service,
		logger:  log.With(slog.String("store", "bookings")),
	}
}

// Bookings returns a copy of the cached collection.
func (s *Store) Bookings() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Booking, len(s.items))
	copy(out, s.items)
	return out
}

// Flags returns the current transient flags.
func (s *Store) Flags() store.Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Fetch replaces the cached collection with the backend's current state.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.flags.Loading = true
	s.flags.LastError = ""
	s.mu.Unlock()

	gen := s.gate.Begin()
	items, err := s.service.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gate.Current(gen) {
		// A newer fetch already resolved; drop this result.
		return nil
	}
	s.flags.Loading = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to fetch bookings")
		return err
	}
	s.items = items
	return nil
}

// Create creates a booking remotely and appends the server-returned
// record to the cache exactly once.
func (s *Store) Create(ctx context.Context, req CreateRequest) (Booking, error) {
	s.setProcessing(true)
	item, err := s.service.Create(ctx, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to create booking")
		return Booking{}, err
	}
	s.flags.LastError = ""
	s.items = append(s.items, item)
	return item, nil
}

// Update patches a booking remotely, then mirrors the change locally.
func (s *Store) Update(ctx context.Context, id string, req UpdateRequest) (Booking, error) {
	s.setProcessing(true)
	item, err := s.service.Update(ctx, id, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to update booking")
		return Booking{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

// UpdateStatus transitions a booking remotely, then mirrors it locally.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) (Booking, error) {
	s.setProcessing(true)
	item, err := s.service.UpdateStatus(ctx, id, status)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to update booking status")
		return Booking{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

// Delete removes a booking remotely, then drops it from the cache.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.setProcessing(true)
	err := s.service.Delete(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to delete booking")
		return err
	}
	s.flags.LastError = ""
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

func (s *Store) setProcessing(v bool) {
	s.mu.Lock()
	s.flags.Processing = v
	s.mu.Unlock()
}

func (s *Store) replaceLocked(item Booking) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}
