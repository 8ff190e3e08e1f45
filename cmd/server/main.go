package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/modules/api"
	"github.com/meshjs/dashboard/modules/auth"
	"github.com/meshjs/dashboard/modules/contributors"
	"github.com/meshjs/dashboard/modules/preferences"
	"github.com/meshjs/dashboard/modules/proposals"
	"github.com/meshjs/dashboard/pkg/config"
	"github.com/meshjs/dashboard/pkg/cookie"
	"github.com/meshjs/dashboard/pkg/file"
	"github.com/meshjs/dashboard/pkg/httpserver"
	"github.com/meshjs/dashboard/pkg/logger"
	"github.com/meshjs/dashboard/pkg/pg"
	"github.com/meshjs/dashboard/pkg/redis"
	"github.com/meshjs/dashboard/pkg/requestid"
	"github.com/meshjs/dashboard/pkg/session"
	"github.com/meshjs/dashboard/pkg/supabase"
	"github.com/meshjs/dashboard/pkg/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(config.WithEnvFiles(".env"))
	if err != nil {
		return err
	}
	env := cfg.Environment()

	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), session.LoggerExtractor()),
	)
	slog.SetDefault(log)

	codec, err := token.New(cfg.SessionSecrets,
		token.WithTTL(cfg.SessionTTL),
		token.WithIssuer(cfg.SessionIssuer),
	)
	if err != nil {
		return err
	}

	cookies, err := cookie.New(cookie.PolicyFromConfig(cfg.Cookie, env.IsProduction()))
	if err != nil {
		return err
	}
	resolver := session.NewResolver(codec, cookies)
	errorHandler := handler.NewErrorHandler(log)
	checks := map[string]httpserver.Check{}

	authSvc, err := auth.NewService(auth.Config{Production: env.IsProduction(), Cookie: cfg.Cookie}, codec, resolver, errorHandler)
	if err != nil {
		return err
	}
	modules := api.RouterOptions{Auth: authSvc}

	var store contributors.Store
	if cfg.Postgres.Enabled() {
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()
		checks["postgres"] = pg.Healthcheck(pool)

		store = contributors.NewPostgresStore(pool, cfg.Contributors.Table)

		if err := pg.Migrate(ctx, pool, cfg.Postgres, preferences.Migrations(), log.With(logger.Component("migrate"))); err != nil {
			return err
		}
		prefSvc, err := preferences.NewService(preferences.NewPostgresStore(pool), resolver, errorHandler)
		if err != nil {
			return err
		}
		modules.Preferences = prefSvc
	} else {
		client, err := supabase.New(cfg.Supabase, supabase.WithLogger(log.With(logger.Component("supabase"))))
		if err != nil {
			return err
		}
		store = contributors.NewSupabaseStore(client, cfg.Contributors.Table)
		log.InfoContext(ctx, "postgres not configured, reading contributors from supabase; preferences disabled")
	}

	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer closeRedis(log, rdb)
		checks["redis"] = redis.Healthcheck(rdb)

		if store, err = contributors.NewCachedStore(store, rdb, cfg.Contributors.CacheTTL, log); err != nil {
			return err
		}
	}

	if modules.Contributors, err = contributors.NewService(store, errorHandler); err != nil {
		return err
	}

	storage, err := file.New(ctx, cfg.Content)
	switch {
	case err == nil:
		if modules.Proposals, err = proposals.NewService(storage, errorHandler); err != nil {
			return err
		}
	case errors.Is(err, file.ErrDirectoryNotFound):
		log.WarnContext(ctx, "content directory missing, proposal routes disabled", slog.String("dir", cfg.Content.Dir))
	default:
		return err
	}

	rt := routes{log: log, resolver: resolver, modules: modules, checks: checks}
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, rt.handler())
}

func closeRedis(log *slog.Logger, c *goredis.Client) {
	if err := c.Close(); err != nil {
		log.Warn("redis close failed", logger.Error(err))
	}
}
