package contributors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meshjs/dashboard/pkg/pg"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const listQuery = `
SELECT login, avatar_url, contributions, COALESCE(repositories, '{}') AS repositories
FROM %s
ORDER BY contributions DESC, login ASC`

// PostgresStore reads the leaderboard straight from the dashboards' database.
type PostgresStore struct {
	db    Querier
	query string
}

// NewPostgresStore reads from table, or "contributors" when table is empty.
// The name is quoted as a single identifier.
func NewPostgresStore(db Querier, table string) *PostgresStore {
	if table == "" {
		table = defaultTable
	}
	return &PostgresStore{
		db:    db,
		query: fmt.Sprintf(listQuery, pgx.Identifier{table}.Sanitize()),
	}
}

func (s *PostgresStore) List(ctx context.Context) ([]Contributor, error) {
	rows, err := s.db.Query(ctx, s.query)
	if err != nil {
		if pg.IsUndefinedTableError(err) {
			return nil, errors.Join(ErrListFailed, ErrTableMissing, err)
		}
		return nil, errors.Join(ErrListFailed, err)
	}

	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[Contributor])
	if err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	return list, nil
}
