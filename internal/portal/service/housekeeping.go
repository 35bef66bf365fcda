package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/store"
)

// DefaultPruneInterval is used when a RevocationPruner has no interval.
const DefaultPruneInterval = time.Hour

// RevocationPruner drops revocation records once the session they block
// has expired on its own. Such tokens already fail verification, so the
// records only take up space.
type RevocationPruner struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time
}

// Run prunes once immediately and then every Interval until ctx is done.
func (p *RevocationPruner) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	p.Logger.Info("revocation pruner started", "interval", interval)
	defer p.Logger.Info("revocation pruner stopped")

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		if _, err := p.Prune(ctx); err != nil && ctx.Err() == nil {
			p.Logger.Error("prune revoked sessions", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// Prune deletes every revocation whose session expiry is in the past.
func (p *RevocationPruner) Prune(ctx context.Context) (int64, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	n, err := p.Store.RevokedSessions().DeleteExpiredRevokedSessions(ctx, now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		p.Logger.Info("pruned revoked sessions", "count", n)
	}
	return n, nil
}
