package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type options struct {
	files   []string
	environ map[string]string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles loads the given dotenv files before parsing. Missing files are
// skipped. Values already present in the process environment win.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnviron parses from m instead of the process environment.
func WithEnviron(m map[string]string) Option {
	return func(o *options) { o.environ = m }
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses environment variables into a T using env struct tags, then
// runs validate struct tags over the result.
//
//	type AppConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
//	}
//
//	cfg, err := config.Load[AppConfig](config.WithEnvFiles(".env"))
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	for _, path := range o.files {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{}
	if o.environ != nil {
		envOpts.Environment = o.environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, errors.Join(ErrInvalidConfig, err)
	}

	return cfg, nil
}
