// Package localstate persists small client-local flags to a JSON file,
// mirroring what the browser keeps in local storage. The file is read
// once at open and rewritten on every change. There is no versioning or
// migration scheme.
package localstate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Rohitwaghmare7/veltro-console/internal/session"
)

// State is the persisted shape.
type State struct {
	Theme            string            `json:"theme,omitempty"`
	SidebarCollapsed bool              `json:"sidebarCollapsed,omitempty"`
	Session          *SessionBlob      `json:"session,omitempty"`
	Filters          map[string]string `json:"filters,omitempty"`
}

// SessionBlob is the cached session marker (token plus user snapshot).
type SessionBlob struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Store is the file-backed state holder.
type Store struct {
	mu     sync.Mutex
	path   string
	state  State
	logger *slog.Logger
}

// Open loads the state file at path. A missing file yields empty state.
func Open(log *slog.Logger, path string) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	st := &Store{
		path:   path,
		logger: log.With(slog.String("component", "localstate")),
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &st.state); err != nil {
		// A corrupt file behaves like an absent one.
		st.logger.Warn("state file unreadable, starting empty", slog.Any("error", err))
		st.state = State{}
	}
	return st, nil
}

// Theme returns the stored theme choice ("" when unset).
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

// SetTheme stores the theme choice.
func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	return s.flushLocked()
}

// SidebarCollapsed returns the stored sidebar flag.
func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SidebarCollapsed
}

// SetSidebarCollapsed stores the sidebar flag.
func (s *Store) SetSidebarCollapsed(collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SidebarCollapsed = collapsed
	return s.flushLocked()
}

// Filter returns the persisted filter value for the named store.
func (s *Store) Filter(store string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Filters[store]
}

// SetFilter persists a filter value for the named store.
func (s *Store) SetFilter(store, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Filters == nil {
		s.state.Filters = map[string]string{}
	}
	if value == "" {
		delete(s.state.Filters, store)
	} else {
		s.state.Filters[store] = value
	}
	return s.flushLocked()
}

// Session returns the cached session blob, if any.
func (s *Store) Session() (SessionBlob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Session == nil {
		return SessionBlob{}, false
	}
	return *s.state.Session, true
}

// SetSession caches the session blob; a nil blob clears it.
func (s *Store) SetSession(blob *SessionBlob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Session = blob
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
