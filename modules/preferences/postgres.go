package preferences

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/meshjs/dashboard/pkg/pg"
)

// DB is satisfied by *pgxpool.Pool and pgx.Tx.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const getQuery = `
SELECT theme, watchlist, updated_at
FROM wallet_preferences
WHERE address = $1`

const upsertQuery = `
INSERT INTO wallet_preferences (address, theme, watchlist, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (address) DO UPDATE
SET theme = EXCLUDED.theme, watchlist = EXCLUDED.watchlist, updated_at = EXCLUDED.updated_at
RETURNING theme, watchlist, updated_at`

// PostgresStore keeps preferences in the wallet_preferences table created by
// Migrations.
type PostgresStore struct {
	db DB
}

// NewPostgresStore wraps a pool or transaction.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, address string) (Preferences, error) {
	p := Preferences{Address: address}
	var updated time.Time
	err := s.db.QueryRow(ctx, getQuery, address).Scan(&p.Theme, &p.Watchlist, &updated)
	switch {
	case pg.IsNotFoundError(err):
		return Preferences{}, ErrNotFound
	case err != nil:
		return Preferences{}, errors.Join(ErrQueryFailed, err)
	}
	p.UpdatedAt = &updated
	return p, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, in Preferences) (Preferences, error) {
	watchlist := in.Watchlist
	if watchlist == nil {
		watchlist = []string{}
	}

	out := Preferences{Address: in.Address}
	var updated time.Time
	if err := s.db.QueryRow(ctx, upsertQuery, in.Address, in.Theme, watchlist).
		Scan(&out.Theme, &out.Watchlist, &updated); err != nil {
		return Preferences{}, errors.Join(ErrQueryFailed, err)
	}
	out.UpdatedAt = &updated
	return out, nil
}
