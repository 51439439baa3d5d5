// Package integrations provides the provider-connection service wrapper
// and cached store.
package integrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps integration operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates an integration service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Statuses returns the connection state of every provider.
func (s *Service) Statuses(ctx context.Context) ([]Status, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Status
	if err := s.client.Get(ctx, "/integrations/status", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Connect begins the connection flow for a provider and returns its
// updated status.
func (s *Service) Connect(ctx context.Context, provider Provider) (Status, error) {
	return s.post(ctx, provider, "connect")
}

// Disconnect tears down a provider connection.
func (s *Service) Disconnect(ctx context.Context, provider Provider) (Status, error) {
	return s.post(ctx, provider, "disconnect")
}

// Sync triggers a manual sync for a connected provider.
func (s *Service) Sync(ctx context.Context, provider Provider) (Status, error) {
	return s.post(ctx, provider, "sync")
}

func (s *Service) post(ctx context.Context, provider Provider, op string) (Status, error) {
	if s.client == nil {
		return Status{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(string(provider)) == "" {
		return Status{}, fmt.Errorf("provider is required")
	}
	var item Status
	path := "/integrations/" + string(provider) + "/" + op
	if err := s.client.Post(ctx, path, nil, &item); err != nil {
		return Status{}, err
	}
	return item, nil
}
