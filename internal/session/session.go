// Package session holds the client-local authentication session.
package session

import (
	"strings"
	"sync"
)

// User is the cached identity blob returned by the backend at login.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId"`
}

// Store is the mutable session holder. It implements api.TokenSource.
// Clear hooks run on logout so dependents (realtime channel) can tear down.
type Store struct {
	mu      sync.RWMutex
	token   string
	user    *User
	onClear []func()
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Set installs the session after a successful login.
func (s *Store) Set(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	s.user = &user
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached user blob and whether a session exists.
func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Active reports whether a session marker is present.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// OnClear registers a hook invoked after the session is cleared.
func (s *Store) OnClear(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onClear = append(s.onClear, fn)
	s.mu.Unlock()
}

// Clear drops the session and runs the registered hooks (logout).
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	hooks := make([]func(), len(s.onClear))
	copy(hooks, s.onClear)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
