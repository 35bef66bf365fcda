package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and stops repositories from opening transactions within
// transactions.
type Store interface {
	Users() Users
	RevokedSessions() RevokedSessions

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped view of the repositories.
type Tx interface {
	Users() Users
	RevokedSessions() RevokedSessions
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login. The match is exact.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUserIfAbsent inserts u unless a row with the same username or
	// email already exists. Existing rows are never modified.
	CreateUserIfAbsent(ctx context.Context, u domain.User) (created bool, err error)

	// UpdatePasswordHash swaps the hash only if it still equals oldHash.
	// Returns ErrNotFound when no row matched.
	UpdatePasswordHash(ctx context.Context, id int64, oldHash, newHash string) error

	// UpdateProfile overwrites name, artistName and avatar.
	// Returns ErrNotFound when no row matched.
	UpdateProfile(ctx context.Context, id int64, p domain.ProfileUpdate) error

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}

type RevokedSessions interface {
	// RevokeSession records a logged out session. Revoking twice is a no-op.
	RevokeSession(ctx context.Context, s domain.RevokedSession) error

	// IsSessionRevoked reports whether sid has been revoked.
	IsSessionRevoked(ctx context.Context, sid string) (bool, error)

	// DeleteExpiredRevokedSessions removes entries whose token has expired
	// by now and returns how many were removed.
	DeleteExpiredRevokedSessions(ctx context.Context, now time.Time) (int64, error)
}
