package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/store/drivers/sqlite/gen"
)

type revokedSessionsRepo struct {
	q *gen.Queries
}

func (r *revokedSessionsRepo) RevokeSession(ctx context.Context, s domain.RevokedSession) error {
	revokedAt := s.RevokedAt
	if revokedAt.IsZero() {
		revokedAt = time.Now()
	}
	return r.q.RevokeSession(ctx, gen.RevokeSessionParams{
		SessionID: s.SessionID,
		UserID:    s.UserID,
		ExpiresAt: dbTime(s.ExpiresAt),
		RevokedAt: dbTime(revokedAt),
	})
}

func (r *revokedSessionsRepo) IsSessionRevoked(ctx context.Context, sid string) (bool, error) {
	n, err := r.q.IsSessionRevoked(ctx, sid)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *revokedSessionsRepo) DeleteExpiredRevokedSessions(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredRevokedSessions(ctx, dbTime(now))
}
