package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/store"
)

type ProfileService struct {
	Store store.Store
}

// GetProfile fetches a user without their password hash.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, storeError(err)
	}
	return user.Public(), nil
}

// UpdateProfile writes all editable fields and returns the stored result.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, p domain.ProfileUpdate) (domain.User, error) {
	var updated domain.User

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateProfile(ctx, userID, p); err != nil {
			return err
		}

		u, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		updated = u.Public()
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, storeError(err)
	}

	return updated, nil
}
