// Package auth implements login, logout, and session restore against the
// backend auth endpoints.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rohitwaghmare7/veltro-console/internal/api"
	"github.com/Rohitwaghmare7/veltro-console/internal/localstate"
	"github.com/Rohitwaghmare7/veltro-console/internal/session"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the envelope data of a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Service drives the sign-in lifecycle. On login it installs the session
// and caches it in local state; on logout it clears both.
type Service struct {
	client   *api.Client
	sessions *session.Store
	local    *localstate.Store
	logger   *slog.Logger
}

// NewService creates an auth service.
func NewService(log *slog.Logger, client *api.Client, sessions *session.Store, local *localstate.Store) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client:   client,
		sessions: sessions,
		local:    local,
		logger:   log.With(slog.String("service", "auth")),
	}
}

// Login authenticates and installs the resulting session.
func (s *Service) Login(ctx context.Context, email, password string) (session.User, error) {
	if s.client == nil || s.sessions == nil {
		return session.User{}, fmt.Errorf("auth service not configured")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return session.User{}, fmt.Errorf("email and password are required")
	}
	var result LoginResult
	req := LoginRequest{Email: email, Password: password}
	if err := s.client.Post(ctx, "/auth/login", req, &result); err != nil {
		return session.User{}, err
	}
	if result.Token == "" {
		return session.User{}, fmt.Errorf("login response missing token")
	}
	s.sessions.Set(result.Token, result.User)
	s.cacheSession(result.Token, result.User)
	return result.User, nil
}

// Restore reinstalls a cached session from local state, if one exists.
func (s *Service) Restore() bool {
	if s.local == nil || s.sessions == nil {
		return false
	}
	blob, ok := s.local.Session()
	if !ok || blob.Token == "" {
		return false
	}
	s.sessions.Set(blob.Token, blob.User)
	return true
}

// Logout tells the backend, then clears the session and the cached blob.
// The backend call is best effort; local teardown always happens.
func (s *Service) Logout(ctx context.Context) {
	if s.client != nil && s.sessions != nil && s.sessions.Active() {
		if err := s.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
			s.logger.Warn("logout request failed", slog.Any("error", err))
		}
	}
	if s.sessions != nil {
		s.sessions.Clear()
	}
	s.cacheClear()
}

func (s *Service) cacheSession(token string, user session.User) {
	if s.local == nil {
		return
	}
	blob := &localstate.SessionBlob{Token: token, User: user}
	if err := s.local.SetSession(blob); err != nil {
		s.logger.Warn("failed to cache session", slog.Any("error", err))
	}
}

func (s *Service) cacheClear() {
	if s.local == nil {
		return
	}
	if err := s.local.SetSession(nil); err != nil {
		s.logger.Warn("failed to clear cached session", slog.Any("error", err))
	}
}
