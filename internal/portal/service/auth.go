package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/store"
	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
	"github.com/aussiebroadwan/artistportal/pkg/slogx"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// AuthService checks credentials and manages passwords.
type AuthService struct {
	Store store.Store

	dummyOnce sync.Once
	dummyHash string
}

// Login returns the user whose email and password match. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same hashing cost as a real account.
			_ = cryptox.VerifyPassword(password, s.dummy())
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, storeError(err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login rejected", slog.Int64("user_id", user.ID))
		} else {
			l.Error("stored password hash unusable", slog.Int64("user_id", user.ID), slog.Any("err", err))
		}
		return domain.User{}, ErrInvalidCredentials
	}

	if cryptox.NeedsUpgrade(user.PasswordHash) {
		s.upgradeHash(ctx, &user, password)
	}

	return user.Public(), nil
}

// ChangePassword replaces the user's password after checking the current
// one. A concurrent change makes the slower caller fail with
// ErrInvalidCredentials.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if err := CheckPasswordPolicy(next); err != nil {
		return err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return storeError(err)
	}

	if err := cryptox.VerifyPassword(current, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := cryptox.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.Store.Users().UpdatePasswordHash(ctx, user.ID, user.PasswordHash, newHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return storeError(err)
	}

	slogx.FromContext(ctx).Info("password changed", slog.Int64("user_id", user.ID))
	return nil
}

// CheckPasswordPolicy enforces the new password length bounds, counted in
// characters.
func CheckPasswordPolicy(password string) error {
	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return ErrPasswordPolicy
	}
	return nil
}

func (s *AuthService) upgradeHash(ctx context.Context, user *domain.User, password string) {
	l := slogx.FromContext(ctx)

	newHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Warn("password hash upgrade failed", slog.Int64("user_id", user.ID), slog.Any("err", err))
		return
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, user.PasswordHash, newHash); err != nil {
		l.Warn("password hash upgrade failed", slog.Int64("user_id", user.ID), slog.Any("err", err))
		return
	}

	user.PasswordHash = newHash
	l.Info("password hash upgraded", slog.Int64("user_id", user.ID))
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := cryptox.HashPassword("not-a-real-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
