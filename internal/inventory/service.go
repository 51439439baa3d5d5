// Package inventory provides the stock item service wrapper and cached store.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps inventory operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates an inventory service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns all inventory items.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Item
	if err := s.client.Get(ctx, "/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create creates an item and returns the server representation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Item, error) {
	if s.client == nil {
		return Item{}, fmt.Errorf("api client not configured")
	}
	var item Item
	if err := s.client.Post(ctx, "/inventory", req, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Update patches item fields and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Item, error) {
	if s.client == nil {
		return Item{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Item{}, fmt.Errorf("item id is required")
	}
	var item Item
	if err := s.client.Patch(ctx, "/inventory/"+id, req, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// AdjustQuantity applies a relative quantity change (receiving stock,
// recording usage) and returns the updated record.
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) (Item, error) {
	if s.client == nil {
		return Item{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Item{}, fmt.Errorf("item id is required")
	}
	var item Item
	body := map[string]int{"delta": delta}
	if err := s.client.Patch(ctx, "/inventory/"+id+"/quantity", body, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("item id is required")
	}
	return s.client.Delete(ctx, "/inventory/"+id, nil)
}
