package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v3"

	"github.com/meshjs/dashboard/modules/api"
	"github.com/meshjs/dashboard/pkg/httpserver"
	"github.com/meshjs/dashboard/pkg/requestid"
	"github.com/meshjs/dashboard/pkg/session"
)

type routes struct {
	log      *slog.Logger
	resolver *session.Resolver
	modules  api.RouterOptions
	checks   map[string]httpserver.Check
}

func (rt routes) handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(httplog.RequestLogger(rt.log, &httplog.Options{
		Level:         slog.LevelInfo,
		RecoverPanics: true,
		Skip: func(req *http.Request, respStatus int) bool {
			return respStatus < http.StatusBadRequest && (req.URL.Path == "/healthz" || req.URL.Path == "/readyz")
		},
	}))
	r.Use(rt.resolver.Middleware)

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(rt.log, rt.checks))
	r.Mount("/api", api.Router(rt.modules))

	return r
}
