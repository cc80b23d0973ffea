// Package session holds the process-wide session state shared by the HTTP
// transport and the auth service. The store is the single owner of the token
// and profile; the transport reads it, and only login, refresh-success,
// profile refetch and logout write to it.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coachdesk/coachdesk-go/internal/types"
	"github.com/pkg/errors"
)

// Store is an injectable session holder. Every mutation bumps a generation
// counter so that slow operations (a token refresh racing a logout) can detect
// that the session they started with is gone and drop their side effects.
type Store struct {
	mu         sync.RWMutex
	session    *types.Session
	generation uint64
	logger     types.Logger
}

// NewStore creates an empty session store
func NewStore(logger types.Logger) *Store {
	return &Store{logger: logger}
}

// Token returns the current access token, or "" when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Session returns a copy of the current session, or nil when logged out
func (s *Store) Session() *types.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	out := *s.session
	return &out
}

// Generation returns the current mutation counter
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Set replaces the session (login, profile refetch)
func (s *Store) Set(session *types.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.generation++
}

// SetTokenIf applies a refreshed token only if no other mutation happened
// since generation gen was observed. It returns false when the session was
// cleared or replaced in the meantime; the caller must treat the refresh as
// failed rather than resurrect a logged-out session.
func (s *Store) SetTokenIf(gen uint64, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen || s.session == nil {
		return false
	}

	s.session.Token = token
	if exp, ok := types.TokenExpiry(token); ok {
		s.session.ExpiresAt = exp
	}
	s.generation++
	return true
}

// Clear removes the session entirely (logout). Clearing an already-empty
// store is a no-op apart from the generation bump.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.generation++
}

// Save persists the session to a JSON file with restrictive permissions
func (s *Store) Save(path string) error {
	session := s.Session()
	if session == nil {
		return types.ErrNotAuthenticated
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create session directory")
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}

	if s.logger != nil {
		s.logger.Info("Session saved", "path", path)
	}

	return nil
}

// Load restores a persisted session, rejecting expired ones
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ErrNotAuthenticated
		}
		return errors.Wrap(err, "failed to read session file")
	}

	var session types.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return errors.Wrap(err, "failed to unmarshal session")
	}

	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return types.ErrSessionExpired
	}

	s.Set(&session)

	if s.logger != nil {
		s.logger.Info("Session loaded", "path", path, "email", session.Email)
	}

	return nil
}
