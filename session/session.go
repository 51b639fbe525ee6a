// File: storefront/session/session.go
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"storefront/models"
	"storefront/utils"

	"go.uber.org/zap"
)

// snapshot is the persisted shape of the session: the auth token and the user
// snapshot, nothing else survives a restart.
type snapshot struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Session owns login state for the whole client. It is constructed once at
// app start and injected into every controller that needs it; there is no
// ambient singleton. Controllers learn about login/logout through Subscribe.
type Session struct {
	mu          sync.Mutex
	token       string
	user        *models.User
	file        string
	subscribers []func(authenticated bool)
}

// New creates a Session persisted at file. A previously saved token and user
// snapshot are restored if present; a corrupt file is discarded.
func New(file string) *Session {
	s := &Session{file: file}
	s.restore()
	return s
}

func (s *Session) restore() {
	if s.file == "" {
		return
	}
	data, err := os.ReadFile(s.file)
	if err != nil {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		utils.GetLogger().Warn("Discarding corrupt session file", zap.String("file", s.file), zap.Error(err))
		return
	}
	s.token = snap.Token
	s.user = snap.User
}

func (s *Session) persist() {
	if s.file == "" {
		return
	}
	if s.token == "" {
		if err := os.Remove(s.file); err != nil && !os.IsNotExist(err) {
			utils.GetLogger().Warn("Failed to remove session file", zap.Error(err))
		}
		return
	}
	data, err := json.Marshal(snapshot{Token: s.token, User: s.user})
	if err != nil {
		utils.GetLogger().Error("Failed to marshal session", zap.Error(err))
		return
	}
	if dir := filepath.Dir(s.file); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			utils.GetLogger().Warn("Failed to create session directory", zap.Error(err))
			return
		}
	}
	if err := os.WriteFile(s.file, data, 0o600); err != nil {
		utils.GetLogger().Warn("Failed to persist session", zap.Error(err))
	}
}

// SetAuth stores the token and user snapshot from a successful login or a
// completed registration, persists them, and notifies subscribers if this is
// a transition into the authenticated state.
func (s *Session) SetAuth(auth models.AuthResponse) error {
	if auth.Token == "" {
		return fmt.Errorf("auth response carries no token")
	}
	s.mu.Lock()
	wasAuthenticated := s.token != ""
	s.token = auth.Token
	user := auth.User
	s.user = &user
	s.persist()
	subs := append([]func(bool){}, s.subscribers...)
	s.mu.Unlock()

	if !wasAuthenticated {
		for _, fn := range subs {
			fn(true)
		}
	}
	return nil
}

// Clear drops the token and user snapshot. Subscribers are notified only when
// this is an actual transition out of the authenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	wasAuthenticated := s.token != ""
	s.token = ""
	s.user = nil
	s.persist()
	subs := append([]func(bool){}, s.subscribers...)
	s.mu.Unlock()

	if wasAuthenticated {
		for _, fn := range subs {
			fn(false)
		}
	}
}

// Token returns the current bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Invalidate implements api.TokenSource; the backend answered 401 so the
// stored token is useless.
func (s *Session) Invalidate() {
	s.Clear()
}

// IsAuthenticated reports whether a token is held.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// CurrentUser returns the stored user snapshot, or nil when signed out.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAdmin reports whether the signed-in user carries the admin role. Display
// gating only; the backend enforces authorization on every call.
func (s *Session) IsAdmin() bool {
	return s.CurrentUser().IsAdmin()
}

// Subscribe registers fn to be called on every authentication transition.
// fn runs synchronously with the transition, outside the session lock.
func (s *Session) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
