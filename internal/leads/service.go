// Package leads provides the lead service wrapper, the derived
// presentation decorations, and the optimistic lead store.
package leads

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps lead operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates a lead service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns all leads, decorated with the derived presentation fields.
func (s *Service) List(ctx context.Context) ([]Lead, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Lead
	if err := s.client.Get(ctx, "/leads", &items); err != nil {
		return nil, err
	}
	return decorateAll(items), nil
}

// Create creates a lead and returns the decorated server representation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Lead, error) {
	if s.client == nil {
		return Lead{}, fmt.Errorf("api client not configured")
	}
	var item Lead
	if err := s.client.Post(ctx, "/leads", req, &item); err != nil {
		return Lead{}, err
	}
	item.Decoration = Decorate(item)
	return item, nil
}

// Update patches lead fields and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Lead, error) {
	if s.client == nil {
		return Lead{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Lead{}, fmt.Errorf("lead id is required")
	}
	var item Lead
	if err := s.client.Patch(ctx, "/leads/"+id, req, &item); err != nil {
		return Lead{}, err
	}
	item.Decoration = Decorate(item)
	return item, nil
}

// UpdateStatus moves a lead to the given pipeline stage.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Lead, error) {
	if s.client == nil {
		return Lead{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Lead{}, fmt.Errorf("lead id is required")
	}
	var item Lead
	body := map[string]Status{"status": status}
	if err := s.client.Patch(ctx, "/leads/"+id+"/status", body, &item); err != nil {
		return Lead{}, err
	}
	item.Decoration = Decorate(item)
	return item, nil
}

// Delete removes a lead.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("lead id is required")
	}
	return s.client.Delete(ctx, "/leads/"+id, nil)
}
