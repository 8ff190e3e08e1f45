package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshjs/dashboard/handler"
	"github.com/meshjs/dashboard/modules/api"
	"github.com/meshjs/dashboard/modules/auth"
	"github.com/meshjs/dashboard/modules/contributors"
	"github.com/meshjs/dashboard/pkg/cookie"
	"github.com/meshjs/dashboard/pkg/httpserver"
	"github.com/meshjs/dashboard/pkg/requestid"
	"github.com/meshjs/dashboard/pkg/session"
	"github.com/meshjs/dashboard/pkg/token"
)

type failingStore struct{}

func (failingStore) List(context.Context) ([]contributors.Contributor, error) {
	return nil, errors.New("db unavailable")
}

func newTestRouter(t *testing.T, checks map[string]httpserver.Check) (http.Handler, *token.Codec) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	codec, err := token.New([]string{secret})
	require.NoError(t, err)
	cookies, err := cookie.New(cookie.DefaultPolicy(false))
	require.NoError(t, err)
	resolver := session.NewResolver(codec, cookies)
	errorHandler := handler.NewErrorHandler(log)

	authSvc, err := auth.NewService(auth.Config{}, codec, resolver, errorHandler)
	require.NoError(t, err)
	contribSvc, err := contributors.NewService(failingStore{}, errorHandler)
	require.NoError(t, err)

	rt := routes{
		log:      log,
		resolver: resolver,
		modules:  api.RouterOptions{Auth: authSvc, Contributors: contribSvc},
		checks:   checks,
	}
	return rt.handler(), codec
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	h, codec := newTestRouter(t, map[string]httpserver.Check{
		"postgres": func(context.Context) error { return errors.New("down") },
	})
	raw, err := codec.Issue("addr1xyz")
	require.NoError(t, err)

	tests := []struct {
		name    string
		method  string
		path    string
		cookie  string
		status  int
		body    string
		headers map[string]string
	}{
		{"me with session", http.MethodGet, "/api/auth/me", raw, http.StatusOK, `{"authenticated":true,"address":"addr1xyz"}`, nil},
		{"me without session", http.MethodGet, "/api/auth/me", "", http.StatusOK, `{"authenticated":false}`, nil},
		{"logout wrong method", http.MethodGet, "/api/auth/logout", "", http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`, map[string]string{"Allow": "POST"}},
		{"logout", http.MethodPost, "/api/auth/logout", raw, http.StatusOK, `{"ok":true}`, map[string]string{"Set-Cookie": "cd_auth=; Path=/; Max-Age=0; SameSite=Lax"}},
		{"contributors failure", http.MethodGet, "/api/contributors", "", http.StatusInternalServerError, `{"error":"Internal server error"}`, nil},
		{"unknown api route", http.MethodGet, "/api/nope", "", http.StatusNotFound, `{"error":"Not Found"}`, nil},
		{"liveness", http.MethodGet, "/healthz", "", http.StatusOK, `{"status":"ok"}`, nil},
		{"readiness", http.MethodGet, "/readyz", "", http.StatusServiceUnavailable, `{"status":"unavailable","checks":{"postgres":"error"}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "cd_auth", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(requestid.Header))
			for k, v := range tt.headers {
				assert.Equal(t, v, w.Header().Get(k), k)
			}
		})
	}
}
