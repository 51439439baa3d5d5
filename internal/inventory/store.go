package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/store"
)

type backend interface {
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, req CreateRequest) (Item, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Item, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (Item, error)
	Delete(ctx context.Context, id string) error
}

// Store caches the last-fetched inventory collection.
type Store struct {
	mu      sync.Mutex
	service backend
	items   []Item
	flags   store.Flags
	gate    store.FetchGate
	logger  *slog.Logger
}

// NewStore creates an inventory store backed by the given service.
func NewStore(log *slog.Logger, service *Service) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		service: service,
		logger:  log.With(slog.String("store", "inventory")),
	}
}

// Items returns a copy of the cached collection.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Flags returns the current transient flags.
func (s *Store) Flags() store.Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Fetch replaces the cached collection.
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
		return nil
	}
	s.flags.Loading = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to fetch inventory")
		return err
	}
	s.items = items
	return nil
}

// Create creates an item remotely and appends the server record once.
func (s *Store) Create(ctx context.Context, req CreateRequest) (Item, error) {
	s.setProcessing(true)
	item, err := s.service.Create(ctx, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to add item")
		return Item{}, err
	}
	s.flags.LastError = ""
	s.items = append(s.items, item)
	return item, nil
}

// Update patches an item remotely, then mirrors the change locally.
func (s *Store) Update(ctx context.Context, id string, req UpdateRequest) (Item, error) {
	s.setProcessing(true)
	item, err := s.service.Update(ctx, id, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to update item")
		return Item{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

// AdjustQuantity applies a relative change remotely, then mirrors it.
func (s *Store) AdjustQuantity(ctx context.Context, id string, delta int) (Item, error) {
	s.setProcessing(true)
	item, err := s.service.AdjustQuantity(ctx, id, delta)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to adjust quantity")
		return Item{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

// Delete removes an item remotely, then drops it from the cache.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.setProcessing(true)
	err := s.service.Delete(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to delete item")
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

func (s *Store) replaceLocked(item Item) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}
