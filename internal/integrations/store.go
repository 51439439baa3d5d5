package integrations

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/store"
)

type backend interface {
	Statuses(ctx context.Context) ([]Status, error)
	Connect(ctx context.Context, provider Provider) (Status, error)
	Disconnect(ctx context.Context, provider Provider) (Status, error)
	Sync(ctx context.Context, provider Provider) (Status, error)
}

// Store caches the last-fetched provider statuses.
type Store struct {
	mu      sync.Mutex
	service backend
	items   []Status
	flags   store.Flags
	gate    store.FetchGate
	logger  *slog.Logger
}

// NewStore creates an integration store backed by the given service.
func NewStore(log *slog.Logger, service *Service) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		service: service,
		logger:  log.With(slog.String("store", "integrations")),
	}
}

// Statuses returns a copy of the cached statuses.
func (s *Store) Statuses() []Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Status, len(s.items))
	copy(out, s.items)
	return out
}

// Status returns the cached status for one provider, if present.
func (s *Store) Status(provider Provider) (Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Provider == provider {
			return item, true
		}
	}
	return Status{}, false
}

// Flags returns the current transient flags.
func (s *Store) Flags() store.Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Fetch replaces the cached statuses.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.flags.Loading = true
	s.flags.LastError = ""
	s.mu.Unlock()

	gen := s.gate.Begin()
	items, err := s.service.Statuses(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gate.Current(gen) {
		return nil
	}
	s.flags.Loading = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to fetch integrations")
		return err
	}
	s.items = items
	return nil
}

// Connect starts the connection flow and mirrors the returned status.
func (s *Store) Connect(ctx context.Context, provider Provider) (Status, error) {
	return s.apply(ctx, provider, s.service.Connect, "Failed to connect integration")
}

// Disconnect tears down the connection and mirrors the returned status.
func (s *Store) Disconnect(ctx context.Context, provider Provider) (Status, error) {
	return s.apply(ctx, provider, s.service.Disconnect, "Failed to disconnect integration")
}

// Sync triggers a manual sync and mirrors the returned status.
func (s *Store) Sync(ctx context.Context, provider Provider) (Status, error) {
	return s.apply(ctx, provider, s.service.Sync, "Failed to sync integration")
}

func (s *Store) apply(ctx context.Context, provider Provider, op func(context.Context, Provider) (Status, error), fallback string) (Status, error) {
	s.setProcessing(true)
	item, err := op(ctx, provider)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, fallback)
		return Status{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

func (s *Store) setProcessing(v bool) {
	s.mu.Lock()
	s.flags.Processing = v
	s.mu.Unlock()
}

func (s *Store) replaceLocked(item Status) {
	for i := range s.items {
		if s.items[i].Provider == item.Provider {
			s.items[i] = item
			return
		}
	}
	s.items = append(s.items, item)
}
