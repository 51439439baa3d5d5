// Package staff provides staff member management and the current user's
// staff profile lookup.
package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
)

// Service maps staff operations onto backend calls. It keeps no state.
type Service struct {
	client *api.Client
}

// NewService creates a staff service using the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List returns all staff members of the business.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	if s.client == nil {
		return nil, fmt.Errorf("api client not configured")
	}
	var items []Member
	if err := s.client.Get(ctx, "/staff", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Me returns the current user's staff profile.
func (s *Service) Me(ctx context.Context) (Profile, error) {
	if s.client == nil {
		return Profile{}, fmt.Errorf("api client not configured")
	}
	var profile Profile
	if err := s.client.Get(ctx, "/staff/me", &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Invite sends a staff invitation.
func (s *Service) Invite(ctx context.Context, req InviteRequest) (Member, error) {
	if s.client == nil {
		return Member{}, fmt.Errorf("api client not configured")
	}
	var item Member
	if err := s.client.Post(ctx, "/staff/invite", req, &item); err != nil {
		return Member{}, err
	}
	return item, nil
}

// Accept redeems an invitation token.
func (s *Service) Accept(ctx context.Context, token string, req AcceptRequest) (Member, error) {
	if s.client == nil {
		return Member{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(token) == "" {
		return Member{}, fmt.Errorf("invite token is required")
	}
	var item Member
	if err := s.client.Post(ctx, "/staff/accept/"+token, req, &item); err != nil {
		return Member{}, err
	}
	return item, nil
}

// UpdatePermissions replaces a member's permission set.
func (s *Service) UpdatePermissions(ctx context.Context, id string, perms PermissionSet) (Member, error) {
	if s.client == nil {
		return Member{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Member{}, fmt.Errorf("staff id is required")
	}
	var item Member
	body := map[string]PermissionSet{"permissions": perms}
	if err := s.client.Patch(ctx, "/staff/"+id+"/permissions", body, &item); err != nil {
		return Member{}, err
	}
	return item, nil
}

// UpdateStatus changes a member's activity status.
func (s *Service) UpdateStatus(ctx context.Context, id string, status ActivityStatus) (Member, error) {
	if s.client == nil {
		return Member{}, fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return Member{}, fmt.Errorf("staff id is required")
	}
	var item Member
	body := map[string]ActivityStatus{"status": status}
	if err := s.client.Patch(ctx, "/staff/"+id+"/status", body, &item); err != nil {
		return Member{}, err
	}
	return item, nil
}

// Remove deletes a staff member.
func (s *Service) Remove(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("api client not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("staff id is required")
	}
	return s.client.Delete(ctx, "/staff/"+id, nil)
}
