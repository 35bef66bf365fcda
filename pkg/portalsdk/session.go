package portalsdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

// Session holds at most one signed-in artist. It is safe for concurrent
// use.
type Session struct {
	client *SDKClient
	store  SessionStore

	// now is overridable in tests.
	now func() time.Time

	mu      sync.RWMutex
	current *StoredSession
}

// NewSession creates an empty session. Call Load to restore a previously
// persisted one.
func NewSession(client *SDKClient, store SessionStore) *Session {
	if store == nil {
		store = NewMemorySessionStore()
	}
	return &Session{client: client, store: store, now: time.Now}
}

// Load restores the persisted session into memory. An expired session is
// discarded rather than restored.
func (s *Session) Load(ctx context.Context) error {
	stored, ok, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !ok || stored.Expired(s.now()) {
		s.current = nil
		if ok {
			return s.store.Clear(ctx)
		}
		return nil
	}

	s.current = &stored
	return nil
}

// Login signs in and persists the new session, replacing any existing one.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	stored := StoredSession{
		User:      resp.User,
		Token:     resp.Token,
		ExpiresAt: time.Unix(resp.ExpiresAt, 0).UTC(),
	}
	if err := s.store.Save(ctx, stored); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &stored
	s.mu.Unlock()
	return nil
}

// Logout ends the session. The server side revocation is best-effort; the
// local session is always cleared.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	current := s.current
	s.current = nil
	s.mu.Unlock()

	if current != nil {
		resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/logout", current.Token, nil)
		if err == nil {
			_ = decodeJSON(resp, nil, http.StatusOK)
		}
	}

	return s.store.Clear(ctx)
}

// User returns the signed-in user, or ok=false when there is none.
func (s *Session) User() (UserResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil || s.current.Expired(s.now()) {
		return UserResponse{}, false
	}
	return s.current.User, true
}

// IsAuthenticated reports whether a non-expired session is held.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// Require gates a protected view: it returns ErrNotAuthenticated when no
// user is signed in.
func (s *Session) Require() (UserResponse, error) {
	u, ok := s.User()
	if !ok {
		return UserResponse{}, ErrNotAuthenticated
	}
	return u, nil
}

// Token returns the current session token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// setUser replaces the cached user after a profile change.
func (s *Session) setUser(ctx context.Context, u UserResponse) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	s.current.User = u
	stored := *s.current
	s.mu.Unlock()

	return s.store.Save(ctx, stored)
}

// drop forgets a session the server rejected. token guards against
// dropping a newer session that replaced it concurrently.
func (s *Session) drop(ctx context.Context, token string) {
	s.mu.Lock()
	if s.current == nil || s.current.Token != token {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.mu.Unlock()

	_ = s.store.Clear(ctx)
}

// do performs an authenticated call and decodes the result into target.
func (s *Session) do(ctx context.Context, method, path string, body, target any) error {
	if _, err := s.Require(); err != nil {
		return err
	}
	token := s.Token()

	resp, err := s.client.doRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	err = decodeJSON(resp, target, http.StatusOK)
	if IsStatus(err, http.StatusUnauthorized) {
		s.drop(ctx, token)
		return errors.Join(ErrNotAuthenticated, err)
	}
	return err
}
