package sqlite

import (
	"context"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/store"
	"github.com/aussiebroadwan/artistportal/internal/portal/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUserIfAbsent(ctx context.Context, u domain.User) (bool, error) {
	n, err := r.q.CreateUserIfAbsent(ctx, gen.CreateUserIfAbsentParams{
		Username:   u.Username,
		Email:      u.Email,
		Password:   u.PasswordHash,
		Name:       u.Name,
		ArtistName: u.ArtistName,
		Avatar:     mapStringNull(u.Avatar),
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id int64, oldHash, newHash string) error {
	n, err := r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		NewHash: newHash,
		ID:      id,
		OldHash: oldHash,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id int64, p domain.ProfileUpdate) error {
	n, err := r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		Name:       p.Name,
		ArtistName: p.ArtistName,
		Avatar:     mapStringNull(p.Avatar),
		ID:         id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}
