// Package forms provides the intake-form service wrapper and cached store.
package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps form operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates a form service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns all intake forms for the current business.
func (s *Service) List(ctx context.Context) ([]Form, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Form
	if err := s.client.Get(ctx, "/forms", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create creates a form and returns the server representation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Form, error) {
	if s.client == nil {
		return Form{}, fmt.Errorf("api client not configured")
	}
	var item Form
	if err := s.client.Post(ctx, "/forms", req, &item); err != nil {
		return Form{}, err
	}
	return item, nil
}

// Update patches form fields and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Form, error) {
	if s.client == nil {
		return Form{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Form{}, fmt.Errorf("form id is required")
	}
	var item Form
	if err := s.client.Patch(ctx, "/forms/"+id, req, &item); err != nil {
		return Form{}, err
	}
	return item, nil
}

// SetPublished toggles whether the form accepts public submissions.
func (s *Service) SetPublished(ctx context.Context, id string, published bool) (Form, error) {
	if s.client == nil {
		return Form{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Form{}, fmt.Errorf("form id is required")
	}
	var item Form
	body := map[string]bool{"published": published}
	if err := s.client.Patch(ctx, "/forms/"+id+"/publish", body, &item); err != nil {
		return Form{}, err
	}
	return item, nil
}

// Delete removes a form.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("form id is required")
	}
	return s.client.Delete(ctx, "/forms/"+id, nil)
}
