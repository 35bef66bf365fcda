package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/store"
	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
	"golang.org/x/sync/errgroup"
)

// SeedReport counts the outcome of a seeding run.
type SeedReport struct {
	Created int
	Skipped int
}

// SeedService inserts demo accounts that are not already present.
type SeedService struct {
	Store  store.Store
	Logger *slog.Logger
}

// Seed creates every missing user in users concurrently. Existing rows,
// matched by username or email, are left untouched. Running Seed any number
// of times, including in parallel, leaves exactly one row per entry.
func (s *SeedService) Seed(ctx context.Context, users []domain.SeedUser) (SeedReport, error) {
	var created, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for _, su := range users {
		g.Go(func() error {
			hash, err := cryptox.HashPassword(su.Password)
			if err != nil {
				return fmt.Errorf("seed %s: hash password: %w", su.Username, err)
			}

			ok, err := s.Store.Users().CreateUserIfAbsent(gctx, domain.User{
				Username:     su.Username,
				Email:        su.Email,
				PasswordHash: hash,
				Name:         su.Name,
				ArtistName:   su.ArtistName,
				Avatar:       su.Avatar,
			})
			if err != nil {
				return fmt.Errorf("seed %s: %w", su.Username, storeError(err))
			}

			if ok {
				created.Add(1)
				s.logger().Info("seeded user", slog.String("username", su.Username))
			} else {
				skipped.Add(1)
				s.logger().Debug("seed user already present", slog.String("username", su.Username))
			}
			return nil
		})
	}

	err := g.Wait()
	return SeedReport{Created: int(created.Load()), Skipped: int(skipped.Load())}, err
}

func (s *SeedService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
