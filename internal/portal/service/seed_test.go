package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestSeed_CreatesDemoUsersOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &SeedService{Store: s}

	report, err := svc.Seed(ctx, domain.DefaultSeedUsers())
	require.NoError(t, err)
	require.Equal(t, SeedReport{Created: 2, Skipped: 0}, report)

	report, err = svc.Seed(ctx, domain.DefaultSeedUsers())
	require.NoError(t, err)
	require.Equal(t, SeedReport{Created: 0, Skipped: 2}, report)

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	auth := &AuthService{Store: s}
	alex, err := auth.Login(ctx, "alex@example.com", domain.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, "Alex J", alex.ArtistName)

	sarah, err := auth.Login(ctx, "sarah@example.com", domain.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, "Sarah Chen", sarah.Name)
}

func TestSeed_ConcurrentRunsLeaveOneRowEach(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &SeedService{Store: s}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total SeedReport
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := svc.Seed(ctx, domain.DefaultSeedUsers())
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			total.Created += r.Created
			total.Skipped += r.Skipped
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 2, total.Created)
	require.Equal(t, 6, total.Skipped)

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestSeed_LeavesChangedPasswordAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &SeedService{Store: s}
	auth := &AuthService{Store: s}

	_, err := svc.Seed(ctx, domain.DefaultSeedUsers())
	require.NoError(t, err)

	alex, err := auth.Login(ctx, "alex@example.com", domain.DemoPassword)
	require.NoError(t, err)
	require.NoError(t, auth.ChangePassword(ctx, alex.ID, domain.DemoPassword, "changed-pass"))

	_, err = svc.Seed(ctx, domain.DefaultSeedUsers())
	require.NoError(t, err)

	_, err = auth.Login(ctx, "alex@example.com", "changed-pass")
	require.NoError(t, err)
}

func TestSeed_StoreFailure(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())

	svc := &SeedService{Store: s}
	_, err := svc.Seed(context.Background(), domain.DefaultSeedUsers())
	require.ErrorIs(t, err, ErrStore)
}
