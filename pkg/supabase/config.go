package supabase

import "time"

// Config holds the PostgREST endpoint of a Supabase project.
type Config struct {
	URL      string        `env:"SUPABASE_URL"`
	Key      string        `env:"SUPABASE_KEY"`
	Timeout  time.Duration `env:"SUPABASE_TIMEOUT" envDefault:"10s"`
	RetryMax int           `env:"SUPABASE_RETRY_MAX" envDefault:"3"`
}

// Enabled reports whether a project URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}
