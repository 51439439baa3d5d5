package staff

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/store"
)

type backend interface {
	List(ctx context.Context) ([]Member, error)
	Invite(ctx context.Context, req InviteRequest) (Member, error)
	UpdatePermissions(ctx context.Context, id string, perms PermissionSet) (Member, error)
	UpdateStatus(ctx context.Context, id string, status ActivityStatus) (Member, error)
	Remove(ctx context.Context, id string) error
}

// Store caches the staff roster.
type Store struct {
	mu      sync.Mutex
	service backend
	items   []Member
	flags   store.Flags
	gate    store.FetchGate
	logger  *slog.Logger
}

// NewStore creates a staff store backed by the given service.
func NewStore(log *slog.Logger, service *Service) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		service: service,
		logger:  log.With(slog.String("store", "staff")),
	}
}

// Members returns a copy of the cached roster.
func (s *Store) Members() []Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Member, len(s.items))
	copy(out, s.items)
	return out
}

// Flags returns the current transient flags.
func (s *Store) Flags() store.Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Fetch replaces the cached roster.
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
		s.flags.LastError = api.DisplayMessage(err, "Failed to fetch team")
		return err
	}
	s.items = items
	return nil
}

// Invite sends an invitation and appends the pending member on success.
func (s *Store) Invite(ctx context.Context, req InviteRequest) (Member, error) {
	s.setProcessing(true)
	item, err := s.service.Invite(ctx, req)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to send invite")
		return Member{}, err
	}
	s.flags.LastError = ""
	s.items = append(s.items, item)
	return item, nil
}

// UpdatePermissions replaces a member's permissions and mirrors locally.
func (s *Store) UpdatePermissions(ctx context.Context, id string, perms PermissionSet) (Member, error) {
	s.setProcessing(true)
	item, err := s.service.UpdatePermissions(ctx, id, perms)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to update permissions")
		return Member{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

// UpdateStatus changes a member's activity status and mirrors locally.
func (s *Store) UpdateStatus(ctx context.Context, id string, status ActivityStatus) (Member, error) {
	s.setProcessing(true)
	item, err := s.service.UpdateStatus(ctx, id, status)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to update member status")
		return Member{}, err
	}
	s.flags.LastError = ""
	s.replaceLocked(item)
	return item, nil
}

// Remove deletes a member remotely, then drops it from the cache.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.setProcessing(true)
	err := s.service.Remove(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Processing = false
	if err != nil {
		s.flags.LastError = api.DisplayMessage(err, "Failed to remove member")
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

func (s *Store) replaceLocked(item Member) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}
