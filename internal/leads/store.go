package leads

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/store"
)

// backend is the slice of Service the store depends on.
type backend interface {
	List(ctx context.Context) ([]Lead, error)
	Create(ctx context.Context, req CreateRequest) (Lead, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Lead, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Lead, error)
	Delete(ctx context.Context, id string) error
}

// Store caches the last-fetched lead collection. Status moves are
// optimistic: the cache is mutated before the remote call resolves, and a
// failed call discards the optimistic state by issuing a full refetch.
// The inconsistency window is bounded by one round-trip.
type Store struct {
	mu      sync.Mutex
	service backend
	items   []Lead
	flags   store.Flags
	gate    store.FetchGate
	logger  *slog.Logger
}

// NewStore creates a lead store backed by the given service.
func NewStore(log *slog.Logger, service *Service) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		service: service,
		logger:  log.With(slog.String("store", "leads")),
	}
}

// Leads returns a copy of the cached collection.
func (s *Store) Leads() []Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Lead, len(s.items))
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
		return nil
	}
	s.flags.Loading = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to fetch leads")
		return err
	}
	s.items = items
	return nil
}

// Create creates a lead remotely and appends the server record once.
func (s *Store) Create(ctx context.Context, req CreateRequest) (Lead, error) {
	s.setProcessing(true)
	item, err := s.service.Create(ctx, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to create lead")
		return Lead{}, err
	}
	s.flags.LastError = ""
	s.items = append(s.items, item)
	return item, nil
}

// Update patches a lead remotely, then mirrors the change locally.
func (s *Store) Update(ctx context.Context, id string, req UpdateRequest) (Lead, error) {
	s.setProcessing(true)
	item, err := s.service.Update(ctx, id, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to update lead")
		return Lead{}, err
	}
	s.flags.LastError = ""
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			break
		}
	}
	return item, nil
}

// MoveStatus optimistically moves one lead to the given stage. The cache
// changes immediately; a failed remote call triggers a full refetch.
func (s *Store) MoveStatus(ctx context.Context, id string, status Status) error {
	s.mu.Lock()
	var prevSeen bool
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			prevSeen = true
			break
		}
	}
	s.flags.Processing = true
	s.mu.Unlock()

	if !prevSeen {
		s.logger.Warn("optimistic move for unknown lead", slog.String("lead_id", id))
	}

	_, err := s.service.UpdateStatus(ctx, id, status)

	s.mu.Lock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to move lead")
	} else {
		s.flags.LastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		// Discard the optimistic state by re-syncing with the source of truth.
		_ = s.Fetch(ctx)
		return err
	}
	return nil
}

// BulkMove optimistically moves every lead in stage from to stage to,
// issuing one concurrent status call per lead. Any failure discards the
// optimistic state via a full refetch.
func (s *Store) BulkMove(ctx context.Context, from, to Status) BulkMoveResult {
	s.mu.Lock()
	ids := make([]string, 0, len(s.items))
	for i := range s.items {
		if s.items[i].Status == from {
			ids = append(ids, s.items[i].ID)
			s.items[i].Status = to
		}
	}
	s.flags.Processing = true
	s.mu.Unlock()

	if len(ids) == 0 {
		s.setProcessing(false)
		return BulkMoveResult{Success: true, Count: 0}
	}

	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = s.service.UpdateStatus(ctx, id, to)
		}(i, id)
	}
	wg.Wait()

	var firstErr error
	for _, err := range errs {
		if err != nil {
			firstErr = err
			break
		}
	}

	s.mu.Lock()
	s.flags.Processing = false
	if firstErr != nil {
		s.flags.LastError = api.DisplayMessage(firstErr, "Failed to move leads")
	} else {
		s.flags.LastError = ""
	}
	s.mu.Unlock()

	if firstErr != nil {
		_ = s.Fetch(ctx)
		return BulkMoveResult{Success: false, Count: len(ids), Err: api.DisplayMessage(firstErr, "Failed to move leads")}
	}
	return BulkMoveResult{Success: true, Count: len(ids)}
}

// Delete removes a lead remotely, then drops it from the cache.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.setProcessing(true)
	err := s.service.Delete(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to delete lead")
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
