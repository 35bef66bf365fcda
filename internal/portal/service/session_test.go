package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, s *SessionService) *SessionService {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "test-issuer", NumKeys: 2})
	require.NoError(t, err)

	s.KeyManager = km
	s.Issuer = "test-issuer"
	return s
}

func TestSessionIssueAndResolve(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alex := createUser(t, st, "alexj", "alex@example.com", "password123")
	svc := newSessionService(t, &SessionService{Store: st, TTL: time.Hour})

	sess, err := svc.Issue(ctx, alex)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.NotEmpty(t, sess.ID)
	require.Empty(t, sess.User.PasswordHash)
	require.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)

	claims, err := svc.KeyManager.Verifier.Verify(sess.Token)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(alex.ID, 10), claims.Subject)
	require.Equal(t, sess.ID, claims.SID)
	require.Equal(t, "alexj", claims.Username)
	require.ElementsMatch(t, domain.DefaultScopes, claims.Scopes)

	resolved, err := svc.Resolve(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, alex.ID, resolved.User.ID)
	require.Equal(t, sess.ID, resolved.ID)
	require.Empty(t, resolved.User.PasswordHash)
}

func TestSessionResolve_Rejects(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alex := createUser(t, st, "alexj", "alex@example.com", "password123")

	t.Run("garbage token", func(t *testing.T) {
		svc := newSessionService(t, &SessionService{Store: st})
		_, err := svc.Resolve(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := newSessionService(t, &SessionService{
			Store: st,
			TTL:   time.Minute,
			Now:   func() time.Time { return time.Now().Add(-2 * time.Hour) },
		})
		sess, err := svc.Issue(ctx, alex)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, sess.Token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("token from another instance", func(t *testing.T) {
		issuer := newSessionService(t, &SessionService{Store: st})
		other := newSessionService(t, &SessionService{Store: st})

		sess, err := issuer.Issue(ctx, alex)
		require.NoError(t, err)

		_, err = other.Resolve(ctx, sess.Token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		svc := newSessionService(t, &SessionService{Store: st})
		ghost := alex
		ghost.ID = 4242

		sess, err := svc.Issue(ctx, ghost)
		require.NoError(t, err)

		_, err = svc.Resolve(ctx, sess.Token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestSessionRevoke(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alex := createUser(t, st, "alexj", "alex@example.com", "password123")
	svc := newSessionService(t, &SessionService{Store: st})

	keep, err := svc.Issue(ctx, alex)
	require.NoError(t, err)
	drop, err := svc.Issue(ctx, alex)
	require.NoError(t, err)
	require.NotEqual(t, keep.ID, drop.ID)

	claims, err := svc.KeyManager.Verifier.Verify(drop.Token)
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, claims))

	// Revoking twice is harmless.
	require.NoError(t, svc.Revoke(ctx, claims))

	_, err = svc.Resolve(ctx, drop.Token)
	require.ErrorIs(t, err, ErrInvalidSession)
	require.ErrorIs(t, svc.Check(ctx, claims), ErrInvalidSession)

	_, err = svc.Resolve(ctx, keep.Token)
	require.NoError(t, err)
}

func TestSessionRevoke_RequiresSessionID(t *testing.T) {
	svc := newSessionService(t, &SessionService{Store: newTestStore(t)})

	err := svc.Revoke(context.Background(), jwtx.Claims{})
	require.ErrorIs(t, err, ErrInvalidSession)
}
