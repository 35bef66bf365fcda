package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/store"
	"github.com/aussiebroadwan/artistportal/pkg/idx"
	"github.com/aussiebroadwan/artistportal/pkg/jwtx"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

// SessionService issues and checks the signed session tokens handed to the
// browser after login.
type SessionService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	TTL        time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

// Issue signs a new session for user.
func (s *SessionService) Issue(ctx context.Context, user domain.User) (domain.Session, error) {
	sid := idx.New().String()
	claims := jwtx.Grant{
		Subject:    strconv.FormatInt(user.ID, 10),
		SessionID:  sid,
		Username:   user.Username,
		ArtistName: user.ArtistName,
		Scopes:     domain.DefaultScopes,
		TTL:        s.TTL,
	}.Claims(s.Issuer, s.now())

	token, err := s.KeyManager.GetSigner().Sign(claims)
	if err != nil {
		return domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("session issued", slog.Int64("user_id", user.ID), slog.String("sid", sid))

	return domain.Session{
		Token:     token,
		ID:        sid,
		User:      user.Public(),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Resolve verifies a raw token and returns the live session it names.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	claims, err := s.KeyManager.Verifier.Verify(token)
	if err != nil {
		return domain.Session{}, ErrInvalidSession
	}

	user, err := s.check(ctx, claims)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		Token:     token,
		ID:        claims.SID,
		User:      user.Public(),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Check rejects sessions that were revoked or whose user no longer exists.
// It matches httpx.SessionCheck.
func (s *SessionService) Check(ctx context.Context, claims jwtx.Claims) error {
	_, err := s.check(ctx, claims)
	return err
}

// Revoke ends the session named by claims. It stays on the revocation list
// until the token would have expired.
func (s *SessionService) Revoke(ctx context.Context, claims jwtx.Claims) error {
	if claims.SID == "" || claims.ExpiresAt == nil {
		return ErrInvalidSession
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return ErrInvalidSession
	}

	err = s.Store.RevokedSessions().RevokeSession(ctx, domain.RevokedSession{
		SessionID: claims.SID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: s.now(),
	})
	if err != nil {
		return storeError(err)
	}

	slogx.FromContext(ctx).Info("session revoked", slog.Int64("user_id", userID), slog.String("sid", claims.SID))
	return nil
}

func (s *SessionService) check(ctx context.Context, claims jwtx.Claims) (domain.User, error) {
	if claims.SID == "" {
		return domain.User{}, ErrInvalidSession
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.User{}, ErrInvalidSession
	}

	revoked, err := s.Store.RevokedSessions().IsSessionRevoked(ctx, claims.SID)
	if err != nil {
		return domain.User{}, storeError(err)
	}
	if revoked {
		return domain.User{}, ErrInvalidSession
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidSession
		}
		return domain.User{}, storeError(err)
	}

	return user, nil
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
