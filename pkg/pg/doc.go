// Package pg wraps pgx/v5 connection pooling for the dashboard.
//
// Config is populated from PG_* environment variables. Postgres is optional:
// when PG_CONN_URL is empty, Config.Enabled reports false and callers fall
// back to other stores.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// Connect retries with a linear backoff and honours context cancellation.
// Migrate runs goose migrations from an fs.FS against the pool, recording
// versions in PG_MIGRATIONS_TABLE.
// Healthcheck adapts a pool into a readiness probe, and the Is*Error helpers
// classify driver errors without leaking pgconn types to callers.
package pg
