package main

import (
	"errors"
	"time"

	"github.com/meshjs/dashboard/modules/contributors"
	"github.com/meshjs/dashboard/pkg/config"
	"github.com/meshjs/dashboard/pkg/cookie"
	"github.com/meshjs/dashboard/pkg/environment"
	"github.com/meshjs/dashboard/pkg/file"
	"github.com/meshjs/dashboard/pkg/httpserver"
	"github.com/meshjs/dashboard/pkg/pg"
	"github.com/meshjs/dashboard/pkg/redis"
	"github.com/meshjs/dashboard/pkg/supabase"
)

var errNoContributorsBackend = errors.New("either PG_CONN_URL or SUPABASE_URL must be set")

// AppConfig is the full service configuration.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cardano-dashboard" validate:"required"`

	// SESSION_SECRETS is comma separated; the first entry signs new tokens.
	SessionSecrets []string      `env:"SESSION_SECRETS,required" envSeparator:"," validate:"min=1,dive,min=32"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"168h" validate:"gt=0"`
	SessionIssuer  string        `env:"SESSION_ISSUER" envDefault:"cardano-dashboard" validate:"required"`

	HTTP         httpserver.Config
	Cookie       cookie.Config
	Postgres     pg.Config
	Redis        redis.Config
	Supabase     supabase.Config
	Contributors contributors.Config
	Content      file.Config
}

func (c AppConfig) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

func (c AppConfig) check() error {
	if !c.Postgres.Enabled() && !c.Supabase.Enabled() {
		return errNoContributorsBackend
	}
	return nil
}

func loadConfig(opts ...config.Option) (AppConfig, error) {
	cfg, err := config.Load[AppConfig](opts...)
	if err != nil {
		return cfg, err
	}
	if err := cfg.check(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
