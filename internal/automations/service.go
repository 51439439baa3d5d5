// Package automations provides the automation service wrapper, the
// type-to-descriptor lookup, and the cached store.
package automations

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps automation operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates an automation service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns all automations for the current business.
func (s *Service) List(ctx context.Context) ([]Automation, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Automation
	if err := s.client.Get(ctx, "/automations", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create creates an automation and returns the server representation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Automation, error) {
	if s.client == nil {
		return Automation{}, fmt.Errorf("api client not configured")
	}
	var item Automation
	if err := s.client.Post(ctx, "/automations", req, &item); err != nil {
		return Automation{}, err
	}
	return item, nil
}

// Update patches automation fields and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Automation, error) {
	if s.client == nil {
		return Automation{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Automation{}, fmt.Errorf("automation id is required")
	}
	var item Automation
	if err := s.client.Patch(ctx, "/automations/"+id, req, &item); err != nil {
		return Automation{}, err
	}
	return item, nil
}

// SetEnabled toggles whether the automation runs.
func (s *Service) SetEnabled(ctx context.Context, id string, enabled bool) (Automation, error) {
	if s.client == nil {
		return Automation{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Automation{}, fmt.Errorf("automation id is required")
	}
	var item Automation
	body := map[string]bool{"enabled": enabled}
	if err := s.client.Patch(ctx, "/automations/"+id+"/enabled", body, &item); err != nil {
		return Automation{}, err
	}
	return item, nil
}

// Delete removes an automation.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("automation id is required")
	}
	return s.client.Delete(ctx, "/automations/"+id, nil)
}
