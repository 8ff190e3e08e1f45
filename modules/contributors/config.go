package contributors

import "time"

const defaultTable = "contributors"

// Config tunes the contributors backends. Table names the Postgres table
// read by PostgresStore and the PostgREST resource read by SupabaseStore.
type Config struct {
	Table    string        `env:"CONTRIBUTORS_TABLE" envDefault:"contributors" validate:"required"`
	CacheTTL time.Duration `env:"CONTRIBUTORS_CACHE_TTL" envDefault:"5m"`
}
