package portalsdk

import (
	"context"
	"sync"
	"time"
)

// StoredSession is what a SessionStore persists between runs.
type StoredSession struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Expired reports whether the session token has expired at now.
func (s StoredSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionStore is durable local storage for at most one session.
type SessionStore interface {
	// Load returns the stored session, or ok=false when there is none.
	Load(ctx context.Context) (sess StoredSession, ok bool, err error)
	Save(ctx context.Context, sess StoredSession) error
	Clear(ctx context.Context) error
}

// MemorySessionStore keeps the session in process memory only.
type MemorySessionStore struct {
	mu   sync.Mutex
	sess *StoredSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) Load(context.Context) (StoredSession, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess == nil {
		return StoredSession{}, false, nil
	}
	return *m.sess, true, nil
}

func (m *MemorySessionStore) Save(_ context.Context, sess StoredSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sess = &sess
	return nil
}

func (m *MemorySessionStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sess = nil
	return nil
}
