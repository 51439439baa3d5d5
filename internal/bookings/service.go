// Package bookings provides the booking service wrapper and cached store.
package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps booking operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates a booking service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns all bookings for the current business.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Booking
	if err := s.client.Get(ctx, "/bookings", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create creates a booking and returns the server representation.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Booking, error) {
	if s.client == nil {
		return Booking{}, fmt.Errorf("api client not configured")
	}
	var item Booking
	if err := s.client.Post(ctx, "/bookings", req, &item); err != nil {
		return Booking{}, err
	}
	return item, nil
}

// Update patches booking fields and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Booking, error) {
	if s.client == nil {
		return Booking{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Booking{}, fmt.Errorf("booking id is required")
	}
	var item Booking
	if err := s.client.Patch(ctx, "/bookings/"+id, req, &item); err != nil {
		return Booking{}, err
	}
	return item, nil
}

// UpdateStatus transitions a booking to the given status.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Booking, error) {
	if s.client == nil {
		return Booking{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Booking{}, fmt.Errorf("booking id is required")
	}
	var item Booking
	body := map[string]Status{"status": status}
	if err := s.client.Patch(ctx, "/bookings/"+id+"/status", body, &item); err != nil {
		return Booking{}, err
	}
	return item, nil
}

// Delete removes a booking.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("booking id is required")
	}
	return s.client.Delete(ctx, "/bookings/"+id, nil)
}
