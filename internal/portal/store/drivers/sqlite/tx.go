package sqlite

import (
	"database/sql"

	"github.com/aussiebroadwan/artistportal/internal/portal/store"
	"github.com/aussiebroadwan/artistportal/internal/portal/store/drivers/sqlite/gen"
)

type txStore struct {
	q *gen.Queries
}

func newTx(tx *sql.Tx, q *gen.Queries) *txStore {
	return &txStore{q: q.WithTx(tx)}
}

func (t *txStore) Users() store.Users                     { return &usersRepo{q: t.q} }
func (t *txStore) RevokedSessions() store.RevokedSessions { return &revokedSessionsRepo{q: t.q} }
